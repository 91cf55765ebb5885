package util

import "golang.org/x/exp/maps"

// Set is an unordered collection of distinct values.
type Set[T comparable] struct {
	members map[T]struct{}
}

// NewSet returns a set containing items, with duplicates collapsed.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{members: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item and reports whether it was not already present.
func (s *Set[T]) Add(item T) bool {
	if _, ok := s.members[item]; ok {
		return false
	}
	s.members[item] = struct{}{}
	return true
}

// Contains reports whether item is in the set.
func (s *Set[T]) Contains(item T) bool {
	_, ok := s.members[item]
	return ok
}

// Len returns the number of distinct items.
func (s *Set[T]) Len() int {
	return len(s.members)
}

// Items returns the members in no particular order.
func (s *Set[T]) Items() []T {
	return maps.Keys(s.members)
}
