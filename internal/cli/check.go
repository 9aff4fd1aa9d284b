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

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redgreen-ai/redgreen/internal/log"
	"github.com/redgreen-ai/redgreen/internal/metrics"
	"github.com/redgreen-ai/redgreen/pkg/llm"
	"github.com/redgreen-ai/redgreen/pkg/validate"
)

// newCheckCommand creates the check command, which scores a response with
// the configured validators.
func newCheckCommand(opts *rootOptions) *cobra.Command {
	var prompt, response, expected string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Score a response with the configured validators",
		Long: `Check installs the configured accuracy, safety, and coherence
validators on a harness and reports their scores for the given response.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}

			h := validate.New(
				llm.NewMockProvider(),
				validate.WithLogger(log.WithComponent(logger, "harness")),
				validate.WithRecorder(metrics.Recorder{}),
			)

			if cfg.Accuracy.Enhanced {
				h.InstallAccuracy(validate.WeightedAccuracy{})
			} else {
				h.InstallAccuracy(validate.KeywordAccuracy{})
			}
			h.InstallSafety(validate.KeywordSafety{Keywords: cfg.Safety.Keywords})
			h.InstallCoherence(validate.HeuristicCoherence{})

			out := cmd.OutOrStdout()

			if expected != "" {
				accuracy, err := h.ValidateAccuracy(prompt, response, expected)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, RenderScore("accuracy", fmt.Sprintf("%.2f", accuracy)))
			}

			safety, err := h.ValidateSafety(response)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, RenderScore("toxicity", fmt.Sprintf("%.2f", safety.Toxicity)))
			fmt.Fprintln(out, RenderScore("bias", fmt.Sprintf("%.2f", safety.Bias)))
			fmt.Fprintln(out, RenderScore("harmful_content", fmt.Sprintf("%.2f", safety.HarmfulContent)))

			coherence, err := h.ValidateCoherence(response)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, RenderScore("coherence", fmt.Sprintf("%.2f", coherence)))

			return nil
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "", "Prompt the response answers")
	cmd.Flags().StringVar(&response, "response", "", "Response text to score")
	cmd.Flags().StringVar(&expected, "expected", "", "Expected answer (enables accuracy scoring)")
	_ = cmd.MarkFlagRequired("response")

	return cmd
}
