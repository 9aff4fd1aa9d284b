package workflow

import (
	"context"
	"errors"
	"testing"

	rgerrors "github.com/redgreen-ai/redgreen/pkg/errors"
)

func TestMemoryStoreCreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	run := &Run{
		ID:            "run-1",
		CurrentAction: "red_phase",
		State:         map[string]any{"test_phase": "red"},
		Steps:         1,
	}

	if err := store.Create(ctx, run); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := store.Get(ctx, "run-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.CurrentAction != "red_phase" {
		t.Errorf("CurrentAction = %q, want %q", got.CurrentAction, "red_phase")
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps should be set on create")
	}
}

func TestMemoryStoreCreateValidation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Create(ctx, nil); err == nil {
		t.Error("Create(nil) should fail")
	}
	if err := store.Create(ctx, &Run{}); err == nil {
		t.Error("Create with empty ID should fail")
	}

	run := &Run{ID: "run-1"}
	if err := store.Create(ctx, run); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	err := store.Create(ctx, run)
	var valErr *rgerrors.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("duplicate Create should return ValidationError, got %v", err)
	}
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Create(ctx, &Run{ID: "run-1", State: map[string]any{"k": "v"}}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	first, _ := store.Get(ctx, "run-1")
	first.State["k"] = "mutated"
	first.CurrentAction = "mutated"

	second, _ := store.Get(ctx, "run-1")
	if second.State["k"] != "v" {
		t.Error("mutating a returned run should not affect the store")
	}
	if second.CurrentAction == "mutated" {
		t.Error("mutating a returned run should not affect the store")
	}
}

func TestMemoryStoreUpdate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Update(ctx, &Run{ID: "missing"}); err == nil {
		t.Error("Update of missing run should fail")
	}

	var notFound *rgerrors.NotFoundError
	err := store.Update(ctx, &Run{ID: "missing"})
	if !errors.As(err, &notFound) {
		t.Errorf("want NotFoundError, got %v", err)
	}

	if err := store.Create(ctx, &Run{ID: "run-1", Steps: 1}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.Update(ctx, &Run{ID: "run-1", Steps: 2}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, _ := store.Get(ctx, "run-1")
	if got.Steps != 2 {
		t.Errorf("Steps = %d, want 2", got.Steps)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Delete(ctx, "missing"); err == nil {
		t.Error("Delete of missing run should fail")
	}

	if err := store.Create(ctx, &Run{ID: "run-1"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.Delete(ctx, "run-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, err := store.Get(ctx, "run-1")
	var notFound *rgerrors.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("want NotFoundError after delete, got %v", err)
	}
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, id := range []string{"a", "b", "c"} {
		if err := store.Create(ctx, &Run{ID: id}); err != nil {
			t.Fatalf("Create(%s) error = %v", id, err)
		}
	}

	runs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("List() returned %d runs, want 3", len(runs))
	}
}

func TestSnapshot(t *testing.T) {
	app, err := NewBuilder().
		WithActions(phaseAction("a", "one")).
		WithInitialState(NewState(map[string]any{"seed": 1})).
		Build(nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	run := Snapshot(app)
	if run.ID != app.ID() {
		t.Errorf("run.ID = %q, want %q", run.ID, app.ID())
	}
	if run.CurrentAction != "a" {
		t.Errorf("run.CurrentAction = %q, want %q", run.CurrentAction, "a")
	}
	if run.State["seed"] != 1 {
		t.Errorf("run.State missing seed key: %v", run.State)
	}
}
