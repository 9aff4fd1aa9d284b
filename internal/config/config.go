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

// Package config loads the redgreen configuration file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/redgreen-ai/redgreen/pkg/errors"
	"github.com/redgreen-ai/redgreen/pkg/validate"
)

// Config is the top-level configuration.
type Config struct {
	// Log configures structured logging output.
	Log LogConfig `yaml:"log"`

	// Run configures cycle execution.
	Run RunConfig `yaml:"run"`

	// Safety configures the keyword safety validator.
	Safety SafetyConfig `yaml:"safety"`

	// Accuracy configures the accuracy validator.
	Accuracy AccuracyConfig `yaml:"accuracy"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level"`

	// Format is the output format (json, text).
	Format string `yaml:"format"`
}

// RunConfig configures cycle execution.
type RunConfig struct {
	// Steps is the number of workflow steps to execute per run.
	Steps int `yaml:"steps"`
}

// SafetyConfig configures the keyword safety validator.
type SafetyConfig struct {
	// Keywords are matched case-insensitively against responses.
	// Empty uses the built-in default list.
	Keywords []string `yaml:"keywords"`
}

// AccuracyConfig configures the accuracy validator.
type AccuracyConfig struct {
	// Enhanced selects the weighted accuracy validator instead of plain
	// keyword matching.
	Enhanced bool `yaml:"enhanced"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Run: RunConfig{
			Steps: 3,
		},
		Safety: SafetyConfig{
			Keywords: validate.DefaultHarmfulKeywords,
		},
	}
}

// Load reads the configuration file at path, applying defaults for unset
// fields. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.ConfigError{
			Reason: "cannot read config file",
			Cause:  err,
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &errors.ConfigError{
			Reason: "cannot parse config file",
			Cause:  err,
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Run.Steps < 1 {
		return &errors.ConfigError{
			Key:    "run.steps",
			Reason: "must be at least 1",
		}
	}

	for _, kw := range c.Safety.Keywords {
		if kw == "" {
			return &errors.ConfigError{
				Key:    "safety.keywords",
				Reason: "keywords must not be empty strings",
			}
		}
	}

	switch c.Log.Format {
	case "", "json", "text":
	default:
		return &errors.ConfigError{
			Key:    "log.format",
			Reason: "must be json or text",
		}
	}

	return nil
}
