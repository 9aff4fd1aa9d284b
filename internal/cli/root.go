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

// Package cli implements the redgreen command-line interface.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/redgreen-ai/redgreen/internal/config"
	"github.com/redgreen-ai/redgreen/internal/log"
	"github.com/redgreen-ai/redgreen/pkg/errors"
)

// Version information (set via SetVersion from build-time ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// SetVersion records build-time version information for the version output.
func SetVersion(v, c, d string) {
	version, commit, buildDate = v, c, d
}

// rootOptions holds flags shared by all commands.
type rootOptions struct {
	configPath string
	verbose    bool
}

// NewRootCommand creates the root Cobra command for redgreen.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "redgreen",
		Short: "redgreen - red-green-refactor harness for LLM validation",
		Long: `redgreen drives a red-green-refactor workflow for validating
Large Language Model outputs. The run command steps the three-phase
workflow graph; the check command scores a response with the configured
validators.`,
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves for proper exit codes
		Version:       version,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("redgreen %s (commit %s, built %s)\n", version, commit, buildDate))

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newCheckCommand(opts))

	return cmd
}

// load builds the config and logger for a command invocation.
func (o *rootOptions) load() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "loading configuration")
	}

	logCfg := log.FromEnv()
	if cfg.Log.Level != "" {
		logCfg.Level = cfg.Log.Level
	}
	if cfg.Log.Format != "" {
		logCfg.Format = log.Format(cfg.Log.Format)
	}
	if o.verbose {
		logCfg.Level = "debug"
	}

	return cfg, log.New(logCfg), nil
}
