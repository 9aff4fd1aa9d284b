package workflow

import (
	"log/slog"

	"github.com/google/uuid"
)

// Backend is the capability that turns a graph definition into a runnable
// App. The engine ships with an in-process backend; environments without
// engine support select DisabledBackend, under which building degrades to an
// explicit nil app instead of an error.
type Backend interface {
	// Available reports whether this backend can build apps.
	Available() bool

	// Build constructs an App from a validated definition.
	Build(def *Definition) (*App, error)
}

// EngineBackend is the in-process graph engine.
type EngineBackend struct {
	logger *slog.Logger
}

// EngineOption configures an EngineBackend.
type EngineOption func(*EngineBackend)

// WithLogger attaches a structured logger to apps built by this backend.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *EngineBackend) {
		e.logger = logger
	}
}

// NewEngineBackend creates the in-process backend.
func NewEngineBackend(opts ...EngineOption) *EngineBackend {
	e := &EngineBackend{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Available always reports true for the in-process engine.
func (e *EngineBackend) Available() bool {
	return true
}

// Build constructs a runnable App positioned at the definition's entrypoint.
func (e *EngineBackend) Build(def *Definition) (*App, error) {
	return &App{
		id:      uuid.New().String(),
		def:     def,
		current: def.Entrypoint(),
		state:   def.InitialState(),
		logger:  e.logger,
	}, nil
}

// DisabledBackend reports the engine as unavailable. Builder.Build returns
// (nil, nil) against it, which callers treat as "workflow not supported".
type DisabledBackend struct {
	// Reason optionally records why the engine is unavailable.
	Reason string
}

// Available always reports false.
func (d *DisabledBackend) Available() bool {
	return false
}

// Build never runs; it exists to satisfy the Backend interface.
func (d *DisabledBackend) Build(def *Definition) (*App, error) {
	return nil, nil
}
