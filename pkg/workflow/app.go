package workflow

import (
	"fmt"
	"log/slog"
)

// NoTransitionError indicates that an action executed but no outgoing
// transition guard matched the resulting state. The app stays on the action
// that produced the state; the caller decides whether that is terminal.
type NoTransitionError struct {
	// Action is the action whose outgoing guards all evaluated false.
	Action string
}

// Error implements the error interface.
func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("no transition matched after action %s", e.Action)
}

// App is a runnable workflow instance: a graph definition plus a cursor
// (current action) and the state threaded through the actions so far.
//
// Apps are single-threaded by design. Nothing in the engine blocks or
// suspends, so there is no cancellation or timeout surface.
type App struct {
	id      string
	def     *Definition
	current string
	state   State
	steps   int
	logger  *slog.Logger
}

// ID returns the unique identifier of this app instance.
func (a *App) ID() string {
	return a.id
}

// State returns the current state snapshot.
func (a *App) State() State {
	return a.state
}

// CurrentAction returns the name of the action the cursor is on.
func (a *App) CurrentAction() string {
	return a.current
}

// Steps returns the number of steps executed so far.
func (a *App) Steps() int {
	return a.steps
}

// Step applies the current action to the current state, advances the cursor
// to the first outgoing transition (in declaration order) whose guard holds
// against the post-action state, and returns the new state.
//
// If no guard matches, the state advances but the cursor does not, and Step
// returns the new state together with a NoTransitionError. A guard
// evaluation error aborts the step after the action has run; the returned
// state is the post-action state.
func (a *App) Step() (State, error) {
	action, ok := a.def.action(a.current)
	if !ok {
		// Unreachable for apps built through a Backend; guards against
		// a hand-constructed or corrupted app.
		return a.state, &NoTransitionError{Action: a.current}
	}

	next := action.Fn(a.state)
	a.state = next
	a.steps++

	if a.logger != nil {
		a.logger.Debug("action executed",
			slog.String("action", action.Name),
			slog.Int("step", a.steps),
		)
	}

	for _, t := range a.def.transitionsFrom(action.Name) {
		if t.Guard != nil {
			allowed, err := t.Guard(next)
			if err != nil {
				return next, fmt.Errorf("guard %s -> %s: %w", t.From, t.To, err)
			}
			if !allowed {
				continue
			}
		}

		a.current = t.To
		if a.logger != nil {
			a.logger.Debug("transition taken",
				slog.String("from", t.From),
				slog.String("to", t.To),
			)
		}
		return next, nil
	}

	return next, &NoTransitionError{Action: action.Name}
}
