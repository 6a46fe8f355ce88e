package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Color codes
const (
	reset      = "\033[0m"
	dim        = "\033[2m"
	blue       = "\033[34m"
	magenta    = "\033[35m"
	white      = "\033[37m"
	boldRed    = "\033[1;31m"
	boldGreen  = "\033[1;32m"
	boldYellow = "\033[1;33m"
)

// Emojis for different log types
const (
	infoEmoji    = "ℹ️ "
	successEmoji = "✅ "
	errorEmoji   = "❌ "
	warnEmoji    = "⚠️ "
	debugEmoji   = "🔍 "
	sectionEmoji = "📦 "
	valueEmoji   = "🔢 "
)

// Logger writes coloured, emoji-prefixed diagnostics
type Logger struct {
	debug bool
	color bool
	out   io.Writer
	mu    sync.Mutex
}

// New creates a new logger writing to stderr
func New(debug bool) *Logger {
	return NewWithWriter(os.Stderr, debug, true)
}

// NewWithWriter creates a logger writing to w. Colour codes are only
// emitted when color is true.
func NewWithWriter(w io.Writer, debug, color bool) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{debug: debug, color: color, out: w}
}

// formatMessage wraps long lines at 80 columns
func formatMessage(msg string) string {
	width := 80
	lines := strings.Split(msg, "\n")
	var formatted []string

	for _, line := range lines {
		if len(line) <= width {
			formatted = append(formatted, line)
			continue
		}

		words := strings.Fields(line)
		current := ""
		for _, word := range words {
			if len(current)+len(word)+1 > width {
				formatted = append(formatted, current)
				current = word
			} else {
				if current == "" {
					current = word
				} else {
					current += " " + word
				}
			}
		}
		if current != "" {
			formatted = append(formatted, current)
		}
	}

	return strings.Join(formatted, "\n")
}

func (l *Logger) print(color, emoji, format string, args ...interface{}) {
	msg := formatMessage(fmt.Sprintf(format, args...))

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.color {
		fmt.Fprintf(l.out, "%s%s%s%s\n", color, emoji, msg, reset)
		return
	}
	fmt.Fprintf(l.out, "%s%s\n", emoji, msg)
}

// Info prints an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.print(blue, infoEmoji, format, args...)
}

// Success prints a success message
func (l *Logger) Success(format string, args ...interface{}) {
	l.print(boldGreen, successEmoji, format, args...)
}

// Error prints an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.print(boldRed, errorEmoji, format, args...)
}

// Warning prints a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.print(boldYellow, warnEmoji, format, args...)
}

// Debug prints a debug message if debug is enabled
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.debug {
		return
	}
	l.print(dim, debugEmoji, format, args...)
}

// Section announces the start of a tour section
func (l *Logger) Section(format string, args ...interface{}) {
	l.print(magenta, sectionEmoji, format, args...)
}

// Value prints an intermediate value, e.g. a shadow stage
func (l *Logger) Value(format string, args ...interface{}) {
	l.print(white, valueEmoji, format, args...)
}

// IsDebug returns whether debug logging is enabled
func (l *Logger) IsDebug() bool {
	return l.debug
}
