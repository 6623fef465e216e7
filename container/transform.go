package container

// Lazy mapping adapters. These never materialize the source: fn runs once
// per element at consumption time, which keeps unbounded iterators and
// deferred values cheap to wrap.

type mappedIterator struct {
	src Iterator
	fn  func(any) any
}

func (m mappedIterator) Next() (any, bool) {
	v, ok := m.src.Next()
	if !ok {
		return nil, false
	}
	return m.fn(v), true
}

// MapIterator returns an Iterator yielding fn(v) for each v in src.
func MapIterator(src Iterator, fn func(any) any) Iterator {
	return mappedIterator{src, fn}
}

type mappedIterable struct {
	src Iterable
	fn  func(any) any
}

func (m mappedIterable) Iterate() Iterator {
	return MapIterator(m.src.Iterate(), m.fn)
}

// MapIterable returns an Iterable whose iterators yield fn(v) for each v.
func MapIterable(src Iterable, fn func(any) any) Iterable {
	return mappedIterable{src, fn}
}

type mappedOptional struct {
	src Optional
	fn  func(any) any
}

func (m mappedOptional) Get() (any, bool) {
	v, ok := m.src.Get()
	if !ok {
		return nil, false
	}
	return m.fn(v), true
}

// MapOptional returns an Optional that yields fn(v) at Get time.
func MapOptional(src Optional, fn func(any) any) Optional {
	return mappedOptional{src, fn}
}

// SliceIterator returns an Iterator over the given values.
func SliceIterator(items ...any) Iterator {
	return &sliceIterator{items: items}
}

type sliceIterator struct {
	items []any
	next  int
}

func (s *sliceIterator) Next() (any, bool) {
	if s.next >= len(s.items) {
		return nil, false
	}
	v := s.items[s.next]
	s.next++
	return v, true
}
