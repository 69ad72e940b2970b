package wordlist

import "sort"

// Set is an insertion-ordered string set: the first occurrence of a
// value claims its position, later duplicates are ignored
type Set struct {
	seen  map[string]struct{}
	items []string
}

// NewSet creates an empty ordered set
func NewSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Add inserts a value, reporting whether it was new. Empty strings are
// never stored
func (s *Set) Add(v string) bool {
	if v == "" {
		return false
	}
	if _, ok := s.seen[v]; ok {
		return false
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

// AddAll inserts every value in order
func (s *Set) AddAll(values []string) {
	for _, v := range values {
		s.Add(v)
	}
}

// Contains reports whether the set holds v
func (s *Set) Contains(v string) bool {
	_, ok := s.seen[v]
	return ok
}

// Len returns the number of stored values
func (s *Set) Len() int {
	return len(s.items)
}

// Values returns the stored values in insertion order
func (s *Set) Values() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Sorted returns the stored values in lexicographic order
func (s *Set) Sorted() []string {
	out := s.Values()
	sort.Strings(out)
	return out
}
