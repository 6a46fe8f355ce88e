package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/saint0x/typetour/pkg/config"
	"github.com/saint0x/typetour/pkg/log"
	"github.com/saint0x/typetour/pkg/tour"
)

const (
	replPrompt = "parse> "
	replBanner = "Type text to trim and parse as an integer. Ctrl+C cancels input, Ctrl+D or :quit exits."
)

func runRepl(logger *log.Logger, env *config.Environment) error {
	fmt.Println(replBanner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(env.HistoryPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(env.HistoryPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		} else {
			logger.Debug("Could not save history: %v", err)
		}
	}()

	runner := tour.NewRunner(logger, os.Stdout, nil)
	for {
		line, err := ln.Prompt(replPrompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		quit, err := evalLine(context.Background(), runner, line)
		if quit {
			return nil
		}
		if err != nil {
			// parse failures are reported and the session goes on
			reportError(logger, err)
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
	}
}

// evalLine runs the parse pipeline on one line of input. quit is true
// for the :quit command.
func evalLine(ctx context.Context, runner *tour.Runner, line string) (quit bool, err error) {
	switch strings.TrimSpace(line) {
	case ":quit", ":q":
		return true, nil
	}

	t := &tour.Tour{Sections: []tour.Section{tour.ParseSection(line)}}
	_, err = runner.Run(ctx, t)
	return false, err
}
