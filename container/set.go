package container

import (
	"iter"
	"reflect"
	"sort"
)

// equal compares two type-erased values without panicking on
// non-comparable dynamic types.
func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// LinkedSet is an insertion-ordered MutableSet.
type LinkedSet struct {
	items []any
}

// NewSet builds a LinkedSet holding the given items, duplicates dropped.
func NewSet(items ...any) *LinkedSet {
	s := &LinkedSet{}
	for _, v := range items {
		s.Add(v)
	}
	return s
}

// Len implements Collection.
func (s *LinkedSet) Len() int { return len(s.items) }

// All implements Collection. Iteration follows insertion order.
func (s *LinkedSet) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Has implements Set.
func (s *LinkedSet) Has(v any) bool {
	for _, item := range s.items {
		if equal(item, v) {
			return true
		}
	}
	return false
}

// Add implements MutableSet.
func (s *LinkedSet) Add(v any) {
	if !s.Has(v) {
		s.items = append(s.items, v)
	}
}

// Clear implements MutableSet.
func (s *LinkedSet) Clear() { s.items = s.items[:0] }

var _ MutableSet = (*LinkedSet)(nil)

// TreeSet is a comparator-ordered MutableSet.
type TreeSet struct {
	less  func(a, b any) bool
	items []any
}

// NewSortedSet builds a TreeSet ordered by less.
func NewSortedSet(less func(a, b any) bool, items ...any) *TreeSet {
	s := &TreeSet{less: less}
	for _, v := range items {
		s.Add(v)
	}
	return s
}

// Len implements Collection.
func (s *TreeSet) Len() int { return len(s.items) }

// All implements Collection. Iteration follows comparator order.
func (s *TreeSet) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Has implements Set.
func (s *TreeSet) Has(v any) bool {
	for _, item := range s.items {
		if equal(item, v) {
			return true
		}
	}
	return false
}

// Less implements SortedSet.
func (s *TreeSet) Less() func(a, b any) bool { return s.less }

// Add implements MutableSet, keeping the backing slice sorted.
func (s *TreeSet) Add(v any) {
	if s.Has(v) {
		return
	}
	i := sort.Search(len(s.items), func(i int) bool { return s.less(v, s.items[i]) })
	s.items = append(s.items, nil)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = v
}

// Clear implements MutableSet.
func (s *TreeSet) Clear() { s.items = s.items[:0] }

var (
	_ MutableSet = (*TreeSet)(nil)
	_ SortedSet  = (*TreeSet)(nil)
)
