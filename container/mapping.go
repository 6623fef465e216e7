package container

import (
	"iter"
	"sort"
)

// LinkedMap is an insertion-ordered MutableMap.
type LinkedMap struct {
	keys []any
	vals []any
}

// NewMap builds an empty LinkedMap.
func NewMap() *LinkedMap {
	return &LinkedMap{}
}

// Len implements Map.
func (m *LinkedMap) Len() int { return len(m.keys) }

// Get implements Map.
func (m *LinkedMap) Get(k any) (any, bool) {
	for i, key := range m.keys {
		if equal(key, k) {
			return m.vals[i], true
		}
	}
	return nil, false
}

// Entries implements Map. Iteration follows insertion order.
func (m *LinkedMap) Entries() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for i, key := range m.keys {
			if !yield(key, m.vals[i]) {
				return
			}
		}
	}
}

// Put implements MutableMap.
func (m *LinkedMap) Put(k, v any) {
	for i, key := range m.keys {
		if equal(key, k) {
			m.vals[i] = v
			return
		}
	}
	m.keys = append(m.keys, k)
	m.vals = append(m.vals, v)
}

// Clear implements MutableMap.
func (m *LinkedMap) Clear() {
	m.keys = m.keys[:0]
	m.vals = m.vals[:0]
}

var _ MutableMap = (*LinkedMap)(nil)

// TreeMap is a comparator-ordered MutableMap.
type TreeMap struct {
	less func(a, b any) bool
	keys []any
	vals []any
}

// NewSortedMap builds an empty TreeMap ordered by less over keys.
func NewSortedMap(less func(a, b any) bool) *TreeMap {
	return &TreeMap{less: less}
}

// Len implements Map.
func (m *TreeMap) Len() int { return len(m.keys) }

// Get implements Map.
func (m *TreeMap) Get(k any) (any, bool) {
	for i, key := range m.keys {
		if equal(key, k) {
			return m.vals[i], true
		}
	}
	return nil, false
}

// Entries implements Map. Iteration follows comparator order over keys.
func (m *TreeMap) Entries() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for i, key := range m.keys {
			if !yield(key, m.vals[i]) {
				return
			}
		}
	}
}

// Less implements SortedMap.
func (m *TreeMap) Less() func(a, b any) bool { return m.less }

// Put implements MutableMap, keeping keys sorted.
func (m *TreeMap) Put(k, v any) {
	for i, key := range m.keys {
		if equal(key, k) {
			m.vals[i] = v
			return
		}
	}
	i := sort.Search(len(m.keys), func(i int) bool { return m.less(k, m.keys[i]) })
	m.keys = append(m.keys, nil)
	m.vals = append(m.vals, nil)
	copy(m.keys[i+1:], m.keys[i:])
	copy(m.vals[i+1:], m.vals[i:])
	m.keys[i] = k
	m.vals[i] = v
}

// Clear implements MutableMap.
func (m *TreeMap) Clear() {
	m.keys = m.keys[:0]
	m.vals = m.vals[:0]
}

var (
	_ MutableMap = (*TreeMap)(nil)
	_ SortedMap  = (*TreeMap)(nil)
)
