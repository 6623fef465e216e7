package container

import "iter"

// Iterator is a pull-based cursor over a sequence of values.
type Iterator interface {
	// Next returns the next value, or false when the sequence is exhausted.
	Next() (any, bool)
}

// Iterable produces fresh iterators over its contents.
type Iterable interface {
	Iterate() Iterator
}

// Collection is the read capability shared by lists and sets.
type Collection interface {
	Len() int
	All() iter.Seq[any]
}

// List is an ordered sequence with positional access.
type List interface {
	Collection
	At(i int) any
}

// MutableList is a List that supports in-place replacement.
type MutableList interface {
	List
	Add(v any)
	Set(i int, v any)
	Clear()
}

// Set is a collection without duplicates. Implementations preserve
// insertion order unless they are sorted.
type Set interface {
	Collection
	Has(v any) bool
}

// MutableSet is a Set that supports in-place replacement.
type MutableSet interface {
	Set
	Add(v any)
	Clear()
}

// SortedSet is a Set ordered by a comparator.
type SortedSet interface {
	Set
	// Less returns the comparator ordering the set.
	Less() func(a, b any) bool
}

// Map holds key-value entries. Keys are opaque to the proxy engine and are
// never wrapped.
type Map interface {
	Len() int
	Get(k any) (any, bool)
	Entries() iter.Seq2[any, any]
}

// MutableMap is a Map that supports in-place replacement.
type MutableMap interface {
	Map
	Put(k, v any)
	Clear()
}

// SortedMap is a Map whose entries iterate in comparator order over keys.
type SortedMap interface {
	Map
	Less() func(a, b any) bool
}

// Queue is a FIFO sequence. Queues are mutable by contract.
type Queue interface {
	Collection
	Enqueue(v any)
	Dequeue() (any, bool)
	Clear()
}

// Optional holds zero or one value.
type Optional interface {
	Get() (any, bool)
}
