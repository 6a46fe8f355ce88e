package config

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/saint0x/typetour/pkg/log"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		vars      map[string]string
		wantPace  float64
		wantDebug bool
		wantColor bool
		wantError bool
	}{
		{
			name:      "Defaults",
			vars:      map[string]string{"TYPETOUR_HISTORY": "/tmp/h"},
			wantColor: true,
		},
		{
			name: "All set",
			vars: map[string]string{
				"DEBUG":            "true",
				"TYPETOUR_COLOR":   "false",
				"TYPETOUR_PACE":    "2.5",
				"TYPETOUR_HISTORY": "/tmp/h",
			},
			wantPace:  2.5,
			wantDebug: true,
		},
		{
			name:      "Negative pace",
			vars:      map[string]string{"TYPETOUR_PACE": "-1"},
			wantError: true,
		},
		{
			name:      "NaN pace",
			vars:      map[string]string{"TYPETOUR_PACE": "NaN"},
			wantError: true,
		},
		{
			name:      "Non-numeric pace",
			vars:      map[string]string{"TYPETOUR_PACE": "fast"},
			wantError: true,
		},
	}

	logger := log.NewWithWriter(io.Discard, true, false)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := validate(logger, fakeEnv(tt.vars))

			if tt.wantError {
				if err == nil {
					t.Errorf("validate() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("validate() error = %v, want nil", err)
			}

			if env.Pace != tt.wantPace {
				t.Errorf("Pace = %v, want %v", env.Pace, tt.wantPace)
			}
			if env.Debug != tt.wantDebug {
				t.Errorf("Debug = %v, want %v", env.Debug, tt.wantDebug)
			}
			if env.Color != tt.wantColor {
				t.Errorf("Color = %v, want %v", env.Color, tt.wantColor)
			}
			if env.HistoryPath != "/tmp/h" {
				t.Errorf("HistoryPath = %q, want %q", env.HistoryPath, "/tmp/h")
			}
		})
	}
}

func TestDefaultHistoryPath(t *testing.T) {
	env, err := validate(nil, fakeEnv(nil))
	if err != nil {
		t.Fatalf("validate() error = %v", err)
	}
	if env.HistoryPath == "" {
		t.Error("HistoryPath is empty, want a default")
	}
}

func TestRequireGitHubToken(t *testing.T) {
	env := &Environment{}
	if err := env.RequireGitHubToken(); err == nil {
		t.Error("RequireGitHubToken() error = nil, want error")
	}

	env.GitHubToken = "token"
	if err := env.RequireGitHubToken(); err != nil {
		t.Errorf("RequireGitHubToken() error = %v, want nil", err)
	}
}

func TestValidateLogsWithDebugLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithWriter(&buf, true, false)

	if _, err := validate(logger, fakeEnv(map[string]string{"TYPETOUR_PACE": "3", "TYPETOUR_HISTORY": "/tmp/h"})); err != nil {
		t.Fatalf("validate() error = %v", err)
	}
	if !strings.Contains(buf.String(), "pace: 3 steps/s, history: /tmp/h") {
		t.Errorf("debug output = %q, want pace and history", buf.String())
	}
}
