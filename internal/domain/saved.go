package domain

import "slices"

// SavedSet is the user's shortlist of issue identifiers.
// Iteration order is insertion order.
type SavedSet struct {
	members map[string]struct{}
	order   []string
}

// NewSavedSet returns a set holding ids, ignoring duplicates.
func NewSavedSet(ids ...string) *SavedSet {
	s := &SavedSet{members: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Has reports whether id is saved.
func (s *SavedSet) Has(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[id]
	return ok
}

// Add saves id. It reports whether the set changed.
func (s *SavedSet) Add(id string) bool {
	if s.Has(id) {
		return false
	}
	s.members[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// Remove drops id. It reports whether the set changed.
func (s *SavedSet) Remove(id string) bool {
	if !s.Has(id) {
		return false
	}
	delete(s.members, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return true
}

// Toggle adds id if absent and removes it otherwise.
// It returns whether id is saved afterwards.
func (s *SavedSet) Toggle(id string) bool {
	if s.Remove(id) {
		return false
	}
	s.Add(id)
	return true
}

// Len returns the number of saved ids.
func (s *SavedSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// IDs returns the saved ids in insertion order.
func (s *SavedSet) IDs() []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Clear empties the set.
func (s *SavedSet) Clear() {
	s.members = make(map[string]struct{})
	s.order = nil
}
