// Package tdd defines the red-green-refactor workflow graph for LLM
// validation.
//
// The cycle is a three-node cyclic graph with no terminal state:
//
//	red -> green -> refactor -> red -> ...
//
// Each phase action is a pure function over the workflow state; transition
// guards inspect the state the phase just produced. The red phase records
// that failing tests exist, the green phase records a minimal implementation
// that passes them, and the refactor phase records a quality improvement
// before the cycle wraps back to red.
package tdd

import (
	"github.com/redgreen-ai/redgreen/pkg/workflow"
)

// Action names for the three phases.
const (
	ActionRed      = "red_phase"
	ActionGreen    = "green_phase"
	ActionRefactor = "refactor_phase"
)

// State keys written by the phase actions.
const (
	KeyTestPhase            = "test_phase"
	KeyPhaseStatus          = "phase_status"
	KeyTestResults          = "test_results"
	KeyImplementationStatus = "implementation_status"
	KeyCodeQuality          = "code_quality"
	KeyRefactorStatus       = "refactor_status"
	KeyValidationTarget     = "validation_target"
	KeyIteration            = "iteration"
)

// RedPhase records that failing tests have been written.
func RedPhase(state workflow.State) workflow.State {
	return state.Update(map[string]any{
		KeyTestPhase:   "red",
		KeyPhaseStatus: "tests_written",
		KeyTestResults: map[string]any{
			"tests_written": true,
			"tests_passing": false,
		},
	})
}

// GreenPhase records a minimal implementation that makes the tests pass.
func GreenPhase(state workflow.State) workflow.State {
	return state.Update(map[string]any{
		KeyTestPhase:            "green",
		KeyImplementationStatus: "minimal_implementation",
		KeyTestResults: map[string]any{
			"tests_written": true,
			"tests_passing": true,
		},
	})
}

// RefactorPhase records a quality improvement with tests still passing.
func RefactorPhase(state workflow.State) workflow.State {
	return state.Update(map[string]any{
		KeyTestPhase:      "refactor",
		KeyCodeQuality:    "improved",
		KeyRefactorStatus: "completed",
	})
}

// TestsPassing is the green -> refactor guard: true when the post-action
// state records passing tests.
func TestsPassing(state workflow.State) (bool, error) {
	results := state.GetMap(KeyTestResults)
	passing, _ := results["tests_passing"].(bool)
	return passing, nil
}

// InitialState returns the state the cycle starts from.
func InitialState() workflow.State {
	return workflow.NewState(map[string]any{
		KeyTestPhase:        "start",
		KeyValidationTarget: "llm_response_quality",
		KeyIteration:        1,
	})
}

// NewBuilder assembles the red-green-refactor graph. The entrypoint is the
// red phase and the graph loops from refactor back to red.
func NewBuilder() *workflow.Builder {
	return workflow.NewBuilder().
		WithActions(
			workflow.Action{
				Name:   ActionRed,
				Reads:  []string{KeyTestPhase, KeyValidationTarget},
				Writes: []string{KeyTestResults, KeyPhaseStatus},
				Fn:     RedPhase,
			},
			workflow.Action{
				Name:   ActionGreen,
				Reads:  []string{KeyTestPhase, KeyTestResults},
				Writes: []string{KeyImplementationStatus, KeyTestResults},
				Fn:     GreenPhase,
			},
			workflow.Action{
				Name:   ActionRefactor,
				Reads:  []string{KeyTestPhase, KeyImplementationStatus},
				Writes: []string{KeyCodeQuality, KeyRefactorStatus},
				Fn:     RefactorPhase,
			},
		).
		WithTransitions(
			workflow.Transition{
				From:  ActionRed,
				To:    ActionGreen,
				Guard: workflow.GuardExpr(`phase_status == "tests_written"`),
			},
			workflow.Transition{
				From:  ActionGreen,
				To:    ActionRefactor,
				Guard: TestsPassing,
			},
			workflow.Transition{
				From:  ActionRefactor,
				To:    ActionRed,
				Guard: workflow.GuardExpr(`refactor_status == "completed"`),
			},
		).
		WithEntrypoint(ActionRed).
		WithInitialState(InitialState())
}

// BuildCycle builds a runnable red-green-refactor app on the given backend.
// A nil backend uses the in-process engine. Against an unavailable backend
// the result is (nil, nil): the cycle is simply not supported there.
func BuildCycle(backend workflow.Backend) (*workflow.App, error) {
	return NewBuilder().Build(backend)
}
