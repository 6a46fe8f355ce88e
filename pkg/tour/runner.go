package tour

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/time/rate"

	"github.com/saint0x/typetour/pkg/binding"
	"github.com/saint0x/typetour/pkg/log"
)

// StepError identifies the step that stopped a run.
type StepError struct {
	Section string
	Step    string
	Err     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s/%s: %v", e.Section, e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Result holds the lines a run produced.
type Result struct {
	Lines []string
}

// Transcript joins the produced lines.
func (r Result) Transcript() string {
	if len(r.Lines) == 0 {
		return ""
	}
	return strings.Join(r.Lines, "\n") + "\n"
}

// Runner executes tours sequentially.
type Runner struct {
	logger  *log.Logger
	out     io.Writer
	limiter *rate.Limiter
}

// NewRunner creates a runner writing step lines to out. limiter may be
// nil to run without pacing.
func NewRunner(logger *log.Logger, out io.Writer, limiter *rate.Limiter) *Runner {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = log.NewWithWriter(io.Discard, false, false)
	}
	return &Runner{logger: logger, out: out, limiter: limiter}
}

// NewLimiter returns a limiter allowing pace steps per second, or nil
// when pace is not positive.
func NewLimiter(pace float64) *rate.Limiter {
	if pace <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(pace), 1)
}

// Run executes every step of t in order. It stops at the first failing
// step and returns a *StepError; lines from steps before it are kept in
// the result.
func (r *Runner) Run(ctx context.Context, t *Tour) (Result, error) {
	var res Result
	root := binding.NewScope()

	for _, section := range t.Sections {
		if r.logger.IsDebug() {
			r.logger.Section("%s (%d steps)", section.Title, len(section.Steps))
		}

		st := &State{Scope: root.Child(), Logger: r.logger}
		for _, step := range section.Steps {
			if err := r.wait(ctx); err != nil {
				return res, err
			}

			r.logger.Debug("running %s/%s", section.Name, step.Name)
			line, err := step.Run(st)
			if err != nil {
				return res, &StepError{Section: section.Name, Step: step.Name, Err: err}
			}

			res.Lines = append(res.Lines, line)
			if _, err := fmt.Fprintln(r.out, line); err != nil {
				return res, fmt.Errorf("failed to write output: %w", err)
			}
		}
	}

	return res, nil
}

func (r *Runner) wait(ctx context.Context) error {
	if r.limiter == nil {
		return ctx.Err()
	}
	return r.limiter.Wait(ctx)
}
