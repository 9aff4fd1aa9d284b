// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got %q", cfg.Level)
	}

	if cfg.Format != FormatJSON {
		t.Errorf("expected default format 'json', got %q", cfg.Format)
	}

	if cfg.Output != os.Stderr {
		t.Errorf("expected default output to be os.Stderr")
	}
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name       string
		envVars    map[string]string
		wantLevel  string
		wantFormat Format
		wantSource bool
	}{
		{
			name:       "defaults when no env vars",
			envVars:    map[string]string{},
			wantLevel:  "info",
			wantFormat: FormatJSON,
		},
		{
			name:       "LOG_LEVEL=debug",
			envVars:    map[string]string{"LOG_LEVEL": "debug"},
			wantLevel:  "debug",
			wantFormat: FormatJSON,
		},
		{
			name:       "REDGREEN_LOG_LEVEL takes precedence",
			envVars:    map[string]string{"REDGREEN_LOG_LEVEL": "warn", "LOG_LEVEL": "debug"},
			wantLevel:  "warn",
			wantFormat: FormatJSON,
		},
		{
			name:       "REDGREEN_DEBUG enables debug and source",
			envVars:    map[string]string{"REDGREEN_DEBUG": "1", "LOG_LEVEL": "error"},
			wantLevel:  "debug",
			wantFormat: FormatJSON,
			wantSource: true,
		},
		{
			name:       "LOG_FORMAT=text",
			envVars:    map[string]string{"LOG_FORMAT": "TEXT"},
			wantLevel:  "info",
			wantFormat: FormatText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := FromEnv()
			if cfg.Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q", cfg.Level, tt.wantLevel)
			}
			if cfg.Format != tt.wantFormat {
				t.Errorf("Format = %q, want %q", cfg.Format, tt.wantFormat)
			}
			if cfg.AddSource != tt.wantSource {
				t.Errorf("AddSource = %v, want %v", cfg.AddSource, tt.wantSource)
			}
		})
	}
}

func TestNewJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "info", Format: FormatJSON, Output: &buf})

	logger.Info("validator installed", slog.String(ValidatorKey, "accuracy"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["msg"] != "validator installed" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry[ValidatorKey] != "accuracy" {
		t.Errorf("%s = %v, want accuracy", ValidatorKey, entry[ValidatorKey])
	}
}

func TestNewTextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "info", Format: FormatText, Output: &buf})

	logger.Info("phase complete", slog.String(PhaseKey, "red"))

	out := buf.String()
	if !strings.Contains(out, "phase complete") || !strings.Contains(out, "phase=red") {
		t.Errorf("unexpected text output: %q", out)
	}
}

func TestNewNilConfig(t *testing.T) {
	logger := New(nil)
	if logger == nil {
		t.Fatal("New(nil) should return a usable logger")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "warn", Format: FormatJSON, Output: &buf})

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")

	if strings.Contains(buf.String(), "dropped") {
		t.Error("debug/info entries should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Error("warn entry should be emitted")
	}
}

func TestWithHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "info", Format: FormatJSON, Output: &buf})

	WithValidator(WithRunContext(WithComponent(logger, "harness"), "run-1"), "safety").
		Info("validation complete")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["component"] != "harness" || entry[RunIDKey] != "run-1" || entry[ValidatorKey] != "safety" {
		t.Errorf("missing context fields in %v", entry)
	}
}
