package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/saint0x/typetour/pkg/binding"
	"github.com/saint0x/typetour/pkg/config"
	"github.com/saint0x/typetour/pkg/log"
	"github.com/saint0x/typetour/pkg/tour"
)

var (
	debug = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	// Bootstrap logger until the environment says otherwise
	bootstrap := log.New(*debug)
	env, err := config.Validate(bootstrap)
	if err != nil {
		bootstrap.Error("Environment validation failed: %v", err)
		os.Exit(1)
	}
	logger := log.NewWithWriter(os.Stderr, *debug || env.Debug, env.Color)

	// Parse command
	args := flag.Args()
	command := "run"
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Handle commands
	switch command {
	case "run":
		err = runTour(ctx, logger, env, args)

	case "list":
		listTour(tour.Default())

	case "parse":
		if len(args) != 1 {
			logger.Error("Usage: typetour parse <text>")
			os.Exit(1)
		}
		err = parseOnce(ctx, logger, args[0])

	case "repl":
		err = runRepl(logger, env)

	case "publish":
		err = publishTour(ctx, logger, env, args)

	case "fetch":
		err = fetchTour(ctx, logger, env, args)

	case "help":
		printUsage(logger)

	default:
		logger.Error("Unknown command: %s", command)
		printUsage(logger)
		os.Exit(1)
	}

	if err != nil {
		reportError(logger, err)
		os.Exit(1)
	}
}

func runTour(ctx context.Context, logger *log.Logger, env *config.Environment, sections []string) error {
	t, err := tour.Default().Select(sections...)
	if err != nil {
		return err
	}

	logger.Debug("Running %d sections, %d steps", len(t.Sections), t.StepCount())
	runner := tour.NewRunner(logger, os.Stdout, tour.NewLimiter(env.Pace))
	if _, err := runner.Run(ctx, t); err != nil {
		return err
	}
	logger.Debug("Tour complete")
	return nil
}

func parseOnce(ctx context.Context, logger *log.Logger, raw string) error {
	t := &tour.Tour{Sections: []tour.Section{tour.ParseSection(raw)}}
	_, err := tour.NewRunner(logger, os.Stdout, nil).Run(ctx, t)
	return err
}

func listTour(t *tour.Tour) {
	for _, s := range t.Sections {
		fmt.Printf("%s: %s\n", s.Name, s.Title)
		for _, step := range s.Steps {
			fmt.Printf("  %s\n", step.Name)
		}
	}
}

func reportError(logger *log.Logger, err error) {
	var se *tour.StepError
	switch {
	case errors.Is(err, context.Canceled):
		logger.Warning("Interrupted")
	case errors.As(err, &se) && errors.Is(err, binding.ErrParse):
		logger.Error("Step %s/%s failed to parse: %v", se.Section, se.Step, se.Err)
	case errors.As(err, &se):
		logger.Error("Step %s/%s failed: %v", se.Section, se.Step, se.Err)
	default:
		logger.Error("%v", err)
	}
}

func printUsage(logger *log.Logger) {
	names := strings.Join(tour.Default().Names(), ", ")

	logger.Info("Usage: typetour [--debug] <command>")
	logger.Info("")
	logger.Info("Commands:")
	logger.Info("  run [section...]   Run the tour (sections: %s)", names)
	logger.Info("  list               List sections and steps")
	logger.Info("  parse <text>       Trim and parse text as an integer")
	logger.Info("  repl               Parse lines interactively")
	logger.Info("  publish [-public]  Run the tour and publish it as a gist")
	logger.Info("  fetch <gist-url> [file]  Print a published transcript")
	logger.Info("")
	logger.Info("Flags:")
	logger.Info("  --debug   Enable debug logging")
}
