package workflow

// State is an immutable snapshot of workflow data, keyed by string.
// Values are strings, numbers, or nested maps. A State is never mutated in
// place: Update returns a fresh State and every action produces a new value.
// There is no deletion operator.
type State struct {
	data map[string]any
}

// NewState creates a State from the given initial data.
// The map is copied, so later mutations of the argument do not leak in.
func NewState(data map[string]any) State {
	copied := make(map[string]any, len(data))
	for k, v := range data {
		copied[k] = v
	}
	return State{data: copied}
}

// Get returns the value for key, or nil if the key is absent.
func (s State) Get(key string) any {
	return s.data[key]
}

// GetOr returns the value for key, or defaultVal if the key is absent.
func (s State) GetOr(key string, defaultVal any) any {
	if v, ok := s.data[key]; ok {
		return v
	}
	return defaultVal
}

// GetString returns the string value for key, or "" if the key is absent
// or holds a non-string value.
func (s State) GetString(key string) string {
	str, _ := s.data[key].(string)
	return str
}

// GetMap returns the nested map value for key, or nil if the key is absent
// or holds a non-map value.
func (s State) GetMap(key string) map[string]any {
	m, _ := s.data[key].(map[string]any)
	return m
}

// Has reports whether key is present.
func (s State) Has(key string) bool {
	_, ok := s.data[key]
	return ok
}

// Len returns the number of keys in the state.
func (s State) Len() int {
	return len(s.data)
}

// Update returns a new State equal to s merged with partial.
// Partial wins on key collision; s is left untouched.
func (s State) Update(partial map[string]any) State {
	merged := make(map[string]any, len(s.data)+len(partial))
	for k, v := range s.data {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	return State{data: merged}
}

// ToMap returns a shallow copy of the state data as an untyped map.
// The expression layer uses this as the guard evaluation environment.
func (s State) ToMap() map[string]any {
	copied := make(map[string]any, len(s.data))
	for k, v := range s.data {
		copied[k] = v
	}
	return copied
}
