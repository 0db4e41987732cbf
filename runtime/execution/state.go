package execution

import (
	"sync"

	"github.com/viant/toolbox/data"
)

// State is the open-ended key/value store shared by every node holding the
// same Context. Lookups of an absent key return nil rather than an error -
// nodes use this deliberately for optional cross-node signalling with no
// pre-declared schema. Keys may be dotted paths addressing nested values.
//
// Concurrent Group children sharing a State interleave without engine-provided
// ordering; callers must avoid concurrent writes to the same key across
// parallel siblings.
type State struct {
	mu     sync.RWMutex
	values data.Map
}

// NewState returns an empty state store.
func NewState() *State {
	return &State{values: data.NewMap()}
}

// Get returns the value registered under key, or nil when absent.
func (s *State) Get(key string) any {
	value, _ := s.Lookup(key)
	return value
}

// Lookup returns the value registered under key and whether it was present.
func (s *State) Lookup(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.GetValue(key)
}

// Set registers value under key, replacing any previous value.
func (s *State) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values.SetValue(key, value)
}

// Delete removes key; deleting an absent key is a no-op.
func (s *State) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Keys returns the top-level keys currently present.
func (s *State) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	return keys
}
