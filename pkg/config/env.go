package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/saint0x/typetour/pkg/log"
)

const historyFile = ".typetour_history"

// Environment holds validated environment configuration
type Environment struct {
	Debug       bool
	Color       bool
	Pace        float64 // steps per second, 0 disables pacing
	HistoryPath string
	GitHubToken string
}

// Validate reads and validates the environment variables typetour uses
func Validate(logger *log.Logger) (*Environment, error) {
	return validate(logger, os.Getenv)
}

func validate(logger *log.Logger, getenv func(string) string) (*Environment, error) {
	env := &Environment{
		Debug:       getenv("DEBUG") == "true",
		Color:       getenv("TYPETOUR_COLOR") != "false",
		HistoryPath: getenv("TYPETOUR_HISTORY"),
		GitHubToken: getenv("GITHUB_TOKEN"),
	}

	if raw := getenv("TYPETOUR_PACE"); raw != "" {
		pace, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TYPETOUR_PACE %q: %w", raw, err)
		}
		if math.IsNaN(pace) || pace < 0 {
			return nil, fmt.Errorf("invalid TYPETOUR_PACE %q: must be a non-negative number", raw)
		}
		env.Pace = pace
	}

	if env.HistoryPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = os.TempDir()
		}
		env.HistoryPath = filepath.Join(home, historyFile)
	}

	if logger != nil && logger.IsDebug() {
		logger.Debug("pace: %v steps/s, history: %s", env.Pace, env.HistoryPath)
	}

	return env, nil
}

// RequireGitHubToken checks the token needed for publishing
func (e *Environment) RequireGitHubToken() error {
	if e.GitHubToken == "" {
		return fmt.Errorf("GITHUB_TOKEN not configured")
	}
	return nil
}
