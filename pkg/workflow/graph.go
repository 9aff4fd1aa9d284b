// Package workflow provides a small state-graph engine for phase-based
// automation.
//
// A graph is a set of named actions, each a pure function from an immutable
// State to a new State, chained by boolean guard predicates evaluated
// against the post-action state. Guards are either pure Go predicates or
// compiled expressions over the state snapshot.
//
// Graphs are assembled with a Builder and executed one action at a time by
// stepping an App. The engine is single-threaded and synchronous; actions
// must not perform external effects.
package workflow

import (
	"fmt"

	"github.com/redgreen-ai/redgreen/pkg/errors"
	"github.com/redgreen-ai/redgreen/pkg/workflow/expression"
)

// ActionFunc is a pure function from a state snapshot to a new state.
// Implementations must not mutate the input state and must be deterministic.
type ActionFunc func(State) State

// Action is a named node in the workflow graph.
// Reads and Writes declare the state keys the action touches. They are
// documentation for graph authors and are not enforced by the engine.
type Action struct {
	// Name uniquely identifies the action within a graph.
	Name string

	// Reads lists the state keys the action consumes.
	Reads []string

	// Writes lists the state keys the action produces.
	Writes []string

	// Fn is the action body.
	Fn ActionFunc
}

// Guard determines whether a transition may be taken.
// It receives the state produced by the transition's source action.
type Guard func(State) (bool, error)

// GuardExpr returns a Guard that evaluates a boolean expression against the
// post-action state snapshot. State keys are top-level variables:
//
//	GuardExpr(`phase_status == "tests_written"`)
//
// Compilation is deferred to first evaluation; compile errors surface as
// guard errors.
func GuardExpr(expr string) Guard {
	return func(s State) (bool, error) {
		return defaultEvaluator.Evaluate(expr, s.ToMap())
	}
}

// defaultEvaluator backs all GuardExpr guards so compiled programs are
// shared across graphs.
var defaultEvaluator = expression.New()

// Transition connects two actions. Guard is evaluated on the state produced
// by the From action; a nil Guard always allows the transition.
type Transition struct {
	From  string
	To    string
	Guard Guard
}

// Definition is a validated, immutable description of a workflow graph.
type Definition struct {
	actions      map[string]Action
	order        []string
	transitions  []Transition
	entrypoint   string
	initialState State
}

// Entrypoint returns the name of the graph's entry action.
func (d *Definition) Entrypoint() string {
	return d.entrypoint
}

// InitialState returns the state the graph starts from.
func (d *Definition) InitialState() State {
	return d.initialState
}

// Actions returns the action names in declaration order.
func (d *Definition) Actions() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// action looks up an action by name.
func (d *Definition) action(name string) (Action, bool) {
	a, ok := d.actions[name]
	return a, ok
}

// transitionsFrom returns the transitions out of the named action in
// declaration order. Declaration order matters: the engine takes the first
// transition whose guard holds.
func (d *Definition) transitionsFrom(name string) []Transition {
	var out []Transition
	for _, t := range d.transitions {
		if t.From == name {
			out = append(out, t)
		}
	}
	return out
}

// Builder assembles a workflow Definition.
// The zero value is not usable; start with NewBuilder.
type Builder struct {
	actions      []Action
	transitions  []Transition
	entrypoint   string
	initialState State
	hasInitial   bool
}

// NewBuilder creates an empty graph builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithActions adds actions to the graph. Later calls append.
func (b *Builder) WithActions(actions ...Action) *Builder {
	b.actions = append(b.actions, actions...)
	return b
}

// WithTransitions adds transitions to the graph. Declaration order is the
// evaluation order used when multiple guards could match.
func (b *Builder) WithTransitions(transitions ...Transition) *Builder {
	b.transitions = append(b.transitions, transitions...)
	return b
}

// WithEntrypoint sets the action the graph starts at.
func (b *Builder) WithEntrypoint(name string) *Builder {
	b.entrypoint = name
	return b
}

// WithInitialState sets the state the graph starts from.
func (b *Builder) WithInitialState(s State) *Builder {
	b.initialState = s
	b.hasInitial = true
	return b
}

// Definition validates the builder contents and returns the graph definition.
func (b *Builder) Definition() (*Definition, error) {
	if len(b.actions) == 0 {
		return nil, &errors.ValidationError{
			Field:   "actions",
			Message: "graph requires at least one action",
		}
	}

	actions := make(map[string]Action, len(b.actions))
	order := make([]string, 0, len(b.actions))
	for _, a := range b.actions {
		if a.Name == "" {
			return nil, &errors.ValidationError{
				Field:   "actions",
				Message: "action name cannot be empty",
			}
		}
		if a.Fn == nil {
			return nil, &errors.ValidationError{
				Field:      "actions",
				Message:    fmt.Sprintf("action %s has no function", a.Name),
				Suggestion: "set Action.Fn to a pure State -> State function",
			}
		}
		if _, exists := actions[a.Name]; exists {
			return nil, &errors.ValidationError{
				Field:      "actions",
				Message:    fmt.Sprintf("duplicate action name %s", a.Name),
				Suggestion: "action names must be unique within a graph",
			}
		}
		actions[a.Name] = a
		order = append(order, a.Name)
	}

	for _, t := range b.transitions {
		if _, ok := actions[t.From]; !ok {
			return nil, &errors.ValidationError{
				Field:   "transitions",
				Message: fmt.Sprintf("transition references unknown action %s", t.From),
			}
		}
		if _, ok := actions[t.To]; !ok {
			return nil, &errors.ValidationError{
				Field:   "transitions",
				Message: fmt.Sprintf("transition references unknown action %s", t.To),
			}
		}
	}

	entrypoint := b.entrypoint
	if entrypoint == "" {
		entrypoint = order[0]
	}
	if _, ok := actions[entrypoint]; !ok {
		return nil, &errors.ValidationError{
			Field:      "entrypoint",
			Message:    fmt.Sprintf("entrypoint %s is not a declared action", entrypoint),
			Suggestion: "pass one of the action names to WithEntrypoint",
		}
	}

	initial := b.initialState
	if !b.hasInitial {
		initial = NewState(nil)
	}

	return &Definition{
		actions:      actions,
		order:        order,
		transitions:  b.transitions,
		entrypoint:   entrypoint,
		initialState: initial,
	}, nil
}

// Build validates the graph and constructs an App on the given backend.
// When the backend reports itself unavailable, Build returns (nil, nil):
// an explicit "not built" result rather than an error, so callers can
// degrade gracefully when the engine is not supported in their environment.
func (b *Builder) Build(backend Backend) (*App, error) {
	if backend == nil {
		backend = NewEngineBackend()
	}
	if !backend.Available() {
		return nil, nil
	}

	def, err := b.Definition()
	if err != nil {
		return nil, err
	}

	return backend.Build(def)
}
