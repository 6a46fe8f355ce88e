package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/saint0x/typetour/pkg/config"
	"github.com/saint0x/typetour/pkg/gist"
	"github.com/saint0x/typetour/pkg/log"
	"github.com/saint0x/typetour/pkg/tour"
)

const transcriptFile = "typetour.txt"

// gistPublisher is the part of gist.Client the publish command needs
type gistPublisher interface {
	Publish(ctx context.Context, t gist.Transcript) (string, error)
}

// gistFetcher is the part of gist.Client the fetch command needs
type gistFetcher interface {
	Fetch(ctx context.Context, id, filename string) (string, error)
}

func publishTour(ctx context.Context, logger *log.Logger, env *config.Environment, args []string) error {
	fs := flag.NewFlagSet("publish", flag.ContinueOnError)
	public := fs.Bool("public", false, "Create a public gist")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := env.RequireGitHubToken(); err != nil {
		return err
	}
	client, err := gist.New(logger, env.GitHubToken)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	t, err := tour.Default().Select(fs.Args()...)
	if err != nil {
		return err
	}

	runner := tour.NewRunner(logger, os.Stdout, tour.NewLimiter(env.Pace))
	link, err := runAndPublish(ctx, runner, client, t, *public)
	if err != nil {
		return err
	}

	logger.Success("Published transcript: %s", link)
	return nil
}

// runAndPublish runs t and publishes the transcript. Nothing is
// published if the run fails.
func runAndPublish(ctx context.Context, runner *tour.Runner, pub gistPublisher, t *tour.Tour, public bool) (string, error) {
	res, err := runner.Run(ctx, t)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	return pub.Publish(ctx, gist.Transcript{
		Description: fmt.Sprintf("typetour: %d steps", len(res.Lines)),
		Files:       map[string]string{transcriptFile: res.Transcript()},
		Public:      public,
	})
}

func fetchTour(ctx context.Context, logger *log.Logger, env *config.Environment, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: typetour fetch <gist-url> [file]")
	}
	filename := transcriptFile
	if len(args) == 2 {
		filename = args[1]
	}

	var client *gist.Client
	if env.GitHubToken == "" {
		logger.Debug("No GITHUB_TOKEN, reading gist anonymously")
		client = gist.NewAnonymous(logger)
	} else {
		c, err := gist.New(logger, env.GitHubToken)
		if err != nil {
			return fmt.Errorf("failed to create GitHub client: %w", err)
		}
		client = c
	}

	content, err := fetchTranscript(ctx, client, args[0], filename)
	if err != nil {
		return err
	}

	fmt.Print(content)
	return nil
}

// fetchTranscript resolves a gist URL and reads one of its files
func fetchTranscript(ctx context.Context, f gistFetcher, gistURL, filename string) (string, error) {
	id, err := gist.ParseGistURL(gistURL)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	return f.Fetch(ctx, id, filename)
}
