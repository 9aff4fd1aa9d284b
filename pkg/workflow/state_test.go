package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStateCopiesInput(t *testing.T) {
	data := map[string]any{"test_phase": "start"}
	s := NewState(data)

	data["test_phase"] = "mutated"
	assert.Equal(t, "start", s.GetString("test_phase"))
}

func TestStateGet(t *testing.T) {
	s := NewState(map[string]any{
		"test_phase": "start",
		"iteration":  1,
	})

	assert.Equal(t, "start", s.Get("test_phase"))
	assert.Equal(t, 1, s.Get("iteration"))
	assert.Nil(t, s.Get("missing"))
	assert.Equal(t, "fallback", s.GetOr("missing", "fallback"))
	assert.True(t, s.Has("iteration"))
	assert.False(t, s.Has("missing"))
	assert.Equal(t, 2, s.Len())
}

func TestStateGetMap(t *testing.T) {
	s := NewState(map[string]any{
		"test_results": map[string]any{"tests_passing": true},
		"test_phase":   "green",
	})

	results := s.GetMap("test_results")
	assert.Equal(t, true, results["tests_passing"])

	assert.Nil(t, s.GetMap("test_phase"), "non-map value yields nil")
	assert.Nil(t, s.GetMap("missing"))
}

func TestStateUpdateDoesNotMutateReceiver(t *testing.T) {
	original := NewState(map[string]any{
		"test_phase": "start",
		"iteration":  1,
	})

	updated := original.Update(map[string]any{
		"test_phase":   "red",
		"phase_status": "tests_written",
	})

	// Receiver is untouched.
	assert.Equal(t, "start", original.GetString("test_phase"))
	assert.False(t, original.Has("phase_status"))

	// Result is the merge, partial winning on collision.
	assert.Equal(t, "red", updated.GetString("test_phase"))
	assert.Equal(t, "tests_written", updated.GetString("phase_status"))
	assert.Equal(t, 1, updated.Get("iteration"), "unrelated keys preserved")
}

func TestStateUpdateEmptyPartial(t *testing.T) {
	s := NewState(map[string]any{"a": 1})
	updated := s.Update(nil)

	assert.Equal(t, 1, updated.Get("a"))
	assert.Equal(t, s.Len(), updated.Len())
}

func TestStateToMapIsACopy(t *testing.T) {
	s := NewState(map[string]any{"a": 1})

	m := s.ToMap()
	m["a"] = 2
	m["b"] = 3

	assert.Equal(t, 1, s.Get("a"))
	assert.False(t, s.Has("b"))
}
