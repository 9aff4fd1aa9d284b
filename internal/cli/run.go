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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redgreen-ai/redgreen/internal/log"
	"github.com/redgreen-ai/redgreen/internal/metrics"
	"github.com/redgreen-ai/redgreen/pkg/tdd"
	"github.com/redgreen-ai/redgreen/pkg/workflow"
)

// newRunCommand creates the run command, which steps the red-green-refactor
// workflow graph.
func newRunCommand(opts *rootOptions) *cobra.Command {
	var steps int
	var disabled bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step the red-green-refactor workflow",
		Long: `Run builds the three-phase workflow graph and executes the requested
number of steps, printing the phase each step lands on. The graph is
cyclic: refactor wraps back to red.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			if steps == 0 {
				steps = cfg.Run.Steps
			}

			var backend workflow.Backend = workflow.NewEngineBackend(workflow.WithLogger(logger))
			if disabled {
				backend = &workflow.DisabledBackend{Reason: "disabled by flag"}
			}

			app, err := tdd.BuildCycle(backend)
			if err != nil {
				return err
			}
			if app == nil {
				// Graceful degradation: the workflow engine is not
				// available, report it without failing.
				fmt.Fprintln(cmd.OutOrStdout(), StyleMuted.Render("workflow engine unavailable; nothing to run"))
				return nil
			}

			runLog := log.WithRunContext(log.WithComponent(logger, "run"), app.ID())
			store := workflow.NewMemoryStore()
			if err := store.Create(cmd.Context(), workflow.Snapshot(app)); err != nil {
				return err
			}

			for i := 0; i < steps; i++ {
				action := app.CurrentAction()
				state, err := app.Step()

				var noTransition *workflow.NoTransitionError
				if err != nil && !errors.As(err, &noTransition) {
					return err
				}

				metrics.RecordStep(action)
				runLog.Info("step executed",
					"action", action,
					"phase", state.GetString(tdd.KeyTestPhase),
				)

				fmt.Fprintf(cmd.OutOrStdout(), "step %d: %s -> phase %s\n",
					i+1, action, RenderPhase(state.GetString(tdd.KeyTestPhase)))

				if err := store.Update(cmd.Context(), workflow.Snapshot(app)); err != nil {
					return err
				}

				if noTransition != nil {
					fmt.Fprintln(cmd.OutOrStdout(), StyleMuted.Render("no transition matched; stopping"))
					break
				}
			}

			run, err := store.Get(cmd.Context(), app.ID())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d steps, next action %s\n",
				StyleBold.Render("done:"), run.Steps, run.CurrentAction)

			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 0, "Number of steps to execute (default from config)")
	cmd.Flags().BoolVar(&disabled, "no-engine", false, "Build against the disabled backend (degradation demo)")

	return cmd
}
