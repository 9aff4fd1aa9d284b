package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redgreen-ai/redgreen/pkg/errors"
)

// Run records the progress of a workflow app: which action the cursor is on,
// the latest state snapshot, and how many steps have executed.
type Run struct {
	ID            string         `json:"id"`
	CurrentAction string         `json:"current_action"`
	State         map[string]any `json:"state"`
	Steps         int            `json:"steps"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Snapshot captures an app's current position as a Run record.
func Snapshot(app *App) *Run {
	return &Run{
		ID:            app.ID(),
		CurrentAction: app.CurrentAction(),
		State:         app.State().ToMap(),
		Steps:         app.Steps(),
	}
}

// Store defines the interface for run persistence.
type Store interface {
	// Create creates a new run record.
	Create(ctx context.Context, run *Run) error

	// Get retrieves a run by ID.
	Get(ctx context.Context, id string) (*Run, error)

	// Update updates an existing run record.
	Update(ctx context.Context, run *Run) error

	// Delete deletes a run by ID.
	Delete(ctx context.Context, id string) error

	// List returns all run records.
	List(ctx context.Context) ([]*Run, error)
}

// MemoryStore is an in-memory implementation of Store.
// It is thread-safe and suitable for testing or single-instance use.
type MemoryStore struct {
	mu   sync.RWMutex
	runs map[string]*Run
}

// NewMemoryStore creates a new in-memory run store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs: make(map[string]*Run),
	}
}

// Create creates a new run record.
func (s *MemoryStore) Create(ctx context.Context, run *Run) error {
	if run == nil {
		return &errors.ValidationError{
			Field:   "run",
			Message: "run cannot be nil",
		}
	}
	if run.ID == "" {
		return &errors.ValidationError{
			Field:   "id",
			Message: "run ID cannot be empty",
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[run.ID]; exists {
		return &errors.ValidationError{
			Field:      "id",
			Message:    fmt.Sprintf("run with ID %s already exists", run.ID),
			Suggestion: "use a unique run ID or call Update instead",
		}
	}

	now := time.Now()
	if run.CreatedAt.IsZero() {
		run.CreatedAt = now
	}
	if run.UpdatedAt.IsZero() {
		run.UpdatedAt = now
	}

	// Store a copy to prevent external modifications
	s.runs[run.ID] = copyRun(run)

	return nil
}

// Get retrieves a run by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Run, error) {
	if id == "" {
		return nil, &errors.ValidationError{
			Field:   "id",
			Message: "run ID cannot be empty",
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	run, exists := s.runs[id]
	if !exists {
		return nil, &errors.NotFoundError{
			Resource: "run",
			ID:       id,
		}
	}

	return copyRun(run), nil
}

// Update updates an existing run record.
func (s *MemoryStore) Update(ctx context.Context, run *Run) error {
	if run == nil {
		return &errors.ValidationError{
			Field:   "run",
			Message: "run cannot be nil",
		}
	}
	if run.ID == "" {
		return &errors.ValidationError{
			Field:   "id",
			Message: "run ID cannot be empty",
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[run.ID]; !exists {
		return &errors.NotFoundError{
			Resource: "run",
			ID:       run.ID,
		}
	}

	run.UpdatedAt = time.Now()
	s.runs[run.ID] = copyRun(run)

	return nil
}

// Delete deletes a run by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &errors.ValidationError{
			Field:   "id",
			Message: "run ID cannot be empty",
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[id]; !exists {
		return &errors.NotFoundError{
			Resource: "run",
			ID:       id,
		}
	}

	delete(s.runs, id)

	return nil
}

// List returns all run records.
func (s *MemoryStore) List(ctx context.Context) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*Run, 0, len(s.runs))
	for _, run := range s.runs {
		results = append(results, copyRun(run))
	}

	return results, nil
}

// copyRun creates a deep copy of a run record.
func copyRun(r *Run) *Run {
	if r == nil {
		return nil
	}

	copied := &Run{
		ID:            r.ID,
		CurrentAction: r.CurrentAction,
		Steps:         r.Steps,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}

	if r.State != nil {
		copied.State = make(map[string]any, len(r.State))
		for k, v := range r.State {
			copied.State[k] = v
		}
	}

	return copied
}
