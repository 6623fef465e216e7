package container

import "iter"

// The read-only wrappers narrow a value to its read capability so callers
// cannot rediscover mutability via type assertion. The proxy engine returns
// these from the copy fallback when a container rejects in-place mutation.

type readOnlyList struct{ l List }

func (r readOnlyList) Len() int           { return r.l.Len() }
func (r readOnlyList) At(i int) any       { return r.l.At(i) }
func (r readOnlyList) All() iter.Seq[any] { return r.l.All() }

// Unmodifiable wraps l in a read-only view.
func Unmodifiable(l List) List { return readOnlyList{l} }

type readOnlySet struct{ s Set }

func (r readOnlySet) Len() int           { return r.s.Len() }
func (r readOnlySet) Has(v any) bool     { return r.s.Has(v) }
func (r readOnlySet) All() iter.Seq[any] { return r.s.All() }

// UnmodifiableSet wraps s in a read-only view.
func UnmodifiableSet(s Set) Set { return readOnlySet{s} }

type readOnlySortedSet struct {
	readOnlySet
	less func(a, b any) bool
}

func (r readOnlySortedSet) Less() func(a, b any) bool { return r.less }

// UnmodifiableSortedSet wraps s in a read-only view preserving its comparator.
func UnmodifiableSortedSet(s SortedSet) SortedSet {
	return readOnlySortedSet{readOnlySet{s}, s.Less()}
}

type readOnlyMap struct{ m Map }

func (r readOnlyMap) Len() int                  { return r.m.Len() }
func (r readOnlyMap) Get(k any) (any, bool)     { return r.m.Get(k) }
func (r readOnlyMap) Entries() iter.Seq2[any, any] { return r.m.Entries() }

// UnmodifiableMap wraps m in a read-only view.
func UnmodifiableMap(m Map) Map { return readOnlyMap{m} }

type readOnlySortedMap struct {
	readOnlyMap
	less func(a, b any) bool
}

func (r readOnlySortedMap) Less() func(a, b any) bool { return r.less }

// UnmodifiableSortedMap wraps m in a read-only view preserving its comparator.
func UnmodifiableSortedMap(m SortedMap) SortedMap {
	return readOnlySortedMap{readOnlyMap{m}, m.Less()}
}
