package expression

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/redgreen-ai/redgreen/pkg/errors"
)

// Evaluator evaluates guard expressions against a state snapshot.
// It caches compiled expressions for improved performance on repeated
// evaluations of the same guard (the common case for a cyclic graph).
type Evaluator struct {
	cache map[string]*vm.Program
	mu    sync.RWMutex
}

// New creates a new expression evaluator.
func New() *Evaluator {
	return &Evaluator{
		cache: make(map[string]*vm.Program),
	}
}

// Evaluate evaluates an expression against the given state snapshot.
// Returns the boolean result or an error if evaluation fails.
//
// The snapshot maps state keys directly to their values, so guards read
// state keys as top-level variables:
//
//	result, err := eval.Evaluate(`phase_status == "tests_written"`, state.ToMap())
func (e *Evaluator) Evaluate(expression string, snapshot map[string]any) (bool, error) {
	if expression == "" {
		return true, nil // Empty expression defaults to true
	}

	program, err := e.compile(expression)
	if err != nil {
		return false, &errors.ValidationError{
			Field:      "expression",
			Message:    fmt.Sprintf("failed to compile expression: %s", err.Error()),
			Suggestion: "check expression syntax and ensure all referenced state keys exist",
		}
	}

	// Merge custom functions into the snapshot for runtime
	// Note: "contains" is reserved in expr for string operations
	evalCtx := make(map[string]any, len(snapshot)+2)
	for k, v := range snapshot {
		evalCtx[k] = v
	}
	evalCtx["has"] = hasFunc
	evalCtx["length"] = lenFunc

	result, err := expr.Run(program, evalCtx)
	if err != nil {
		return false, &errors.ValidationError{
			Field:      "expression",
			Message:    fmt.Sprintf("expression evaluation failed: %s", err.Error()),
			Suggestion: "verify that all referenced keys exist in the state",
		}
	}

	boolResult, ok := result.(bool)
	if !ok {
		return false, &errors.ValidationError{
			Field:      "expression",
			Message:    fmt.Sprintf("expression must return boolean, got %T (%v)", result, result),
			Suggestion: "use comparison operators (==, !=, <, >, etc.) or boolean functions",
		}
	}

	return boolResult, nil
}

// compile compiles an expression and caches the result.
func (e *Evaluator) compile(expression string) (*vm.Program, error) {
	// Check cache first (read lock)
	e.mu.RLock()
	if prog, ok := e.cache[expression]; ok {
		e.mu.RUnlock()
		return prog, nil
	}
	e.mu.RUnlock()

	env := map[string]any{
		"has":    hasFunc,
		"length": lenFunc,
	}

	prog, err := expr.Compile(expression,
		expr.Env(env),
		// Allow any environment (the snapshot is passed at runtime)
		expr.AllowUndefinedVariables(),
		// Expression must return boolean
		expr.AsBool(),
	)
	if err != nil {
		return nil, err
	}

	// Cache the compiled program (write lock)
	e.mu.Lock()
	e.cache[expression] = prog
	e.mu.Unlock()

	return prog, nil
}

// ClearCache clears the expression cache.
// This is mainly useful for testing.
func (e *Evaluator) ClearCache() {
	e.mu.Lock()
	e.cache = make(map[string]*vm.Program)
	e.mu.Unlock()
}

// CacheSize returns the number of cached expressions.
func (e *Evaluator) CacheSize() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cache)
}
