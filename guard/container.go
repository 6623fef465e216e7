package guard

import (
	"iter"
	"reflect"

	"github.com/kbukum/guardkit/container"
)

var (
	seqType  = reflect.TypeOf((iter.Seq[any])(nil))
	seq2Type = reflect.TypeOf((iter.Seq2[any, any])(nil))
	anyType  = reflect.TypeOf((*any)(nil)).Elem()
)

// containerVisitor rebuilds container shapes with guarded contents instead
// of wrapping the container whole. Shapes are tried in a fixed precedence:
// iterators first (lazy, single-use), then eager collections from most to
// least specific, then lazy sequences, optionals, and suppliers. Mutable
// containers are refilled in place and returned as-is; immutable ones come
// back as an unmodifiable copy.
//
// Only any-typed channel and supplier shapes get container treatment;
// their typed equivalents fall through to whole-value wrapping, since a
// guarded element could not be sent back through the typed shape.
type containerVisitor struct{}

func (containerVisitor) Visit(f *Factory, target any) (any, bool) {
	if it, ok := target.(container.Iterator); ok {
		return container.MapIterator(it, f.Proxy), true
	}
	if q, ok := target.(container.Queue); ok {
		return proxyQueue(f, q), true
	}
	if l, ok := target.(container.List); ok {
		return proxyList(f, l), true
	}

	rv := reflect.ValueOf(target)
	if rv.Kind() == reflect.Slice {
		return proxySlice(f, rv), true
	}

	if s, ok := target.(container.SortedSet); ok {
		return proxySortedSet(f, s), true
	}
	if s, ok := target.(container.Set); ok {
		return proxySet(f, s), true
	}

	if rv.Kind() == reflect.Array {
		return proxyArray(f, rv), true
	}

	if m, ok := target.(container.SortedMap); ok {
		return proxySortedMap(f, m), true
	}
	if it, ok := target.(container.Iterable); ok {
		return container.MapIterable(it, f.Proxy), true
	}
	if m, ok := target.(container.Map); ok {
		return proxyMap(f, m), true
	}

	if rv.Kind() == reflect.Map {
		return proxyReflectMap(f, rv), true
	}

	if rv.Kind() == reflect.Func {
		if rv.Type().ConvertibleTo(seqType) {
			return proxySeq(f, rv.Convert(seqType).Interface().(iter.Seq[any])), true
		}
		if rv.Type().ConvertibleTo(seq2Type) {
			return proxySeq2(f, rv.Convert(seq2Type).Interface().(iter.Seq2[any, any])), true
		}
	}

	if o, ok := target.(container.Optional); ok {
		return container.MapOptional(o, f.Proxy), true
	}
	if sup, ok := target.(func() any); ok {
		return func() any { return f.Proxy(sup()) }, true
	}
	return nil, false
}

// proxyQueue drains and re-enqueues guarded elements; Queue mutators are
// part of the interface, so queues are always refilled in place.
func proxyQueue(f *Factory, q container.Queue) container.Queue {
	n := q.Len()
	for i := 0; i < n; i++ {
		v, ok := q.Dequeue()
		if !ok {
			break
		}
		q.Enqueue(f.Proxy(v))
	}
	return q
}

func proxyList(f *Factory, l container.List) container.List {
	if ml, ok := l.(container.MutableList); ok {
		for i := 0; i < l.Len(); i++ {
			ml.Set(i, f.Proxy(l.At(i)))
		}
		return l
	}
	cp := container.NewList()
	for v := range l.All() {
		cp.Add(f.Proxy(v))
	}
	return container.Unmodifiable(cp)
}

func proxySet(f *Factory, s container.Set) container.Set {
	if ms, ok := s.(container.MutableSet); ok {
		items := make([]any, 0, s.Len())
		for v := range s.All() {
			items = append(items, v)
		}
		ms.Clear()
		for _, v := range items {
			ms.Add(f.Proxy(v))
		}
		return s
	}
	cp := container.NewSet()
	for v := range s.All() {
		cp.Add(f.Proxy(v))
	}
	return container.UnmodifiableSet(cp)
}

func proxySortedSet(f *Factory, s container.SortedSet) container.SortedSet {
	if ms, ok := s.(container.MutableSet); ok {
		items := make([]any, 0, s.Len())
		for v := range s.All() {
			items = append(items, v)
		}
		ms.Clear()
		for _, v := range items {
			ms.Add(f.Proxy(v))
		}
		return s
	}
	cp := container.NewSortedSet(s.Less())
	for v := range s.All() {
		cp.Add(f.Proxy(v))
	}
	return container.UnmodifiableSortedSet(cp)
}

// proxyMap guards values only; keys identify entries and stay untouched.
func proxyMap(f *Factory, m container.Map) container.Map {
	if mm, ok := m.(container.MutableMap); ok {
		type entry struct{ k, v any }
		entries := make([]entry, 0, m.Len())
		for k, v := range m.Entries() {
			entries = append(entries, entry{k, v})
		}
		for _, e := range entries {
			mm.Put(e.k, f.Proxy(e.v))
		}
		return m
	}
	cp := container.NewMap()
	for k, v := range m.Entries() {
		cp.Put(k, f.Proxy(v))
	}
	return container.UnmodifiableMap(cp)
}

func proxySortedMap(f *Factory, m container.SortedMap) container.SortedMap {
	if mm, ok := m.(container.MutableMap); ok {
		type entry struct{ k, v any }
		entries := make([]entry, 0, m.Len())
		for k, v := range m.Entries() {
			entries = append(entries, entry{k, v})
		}
		for _, e := range entries {
			mm.Put(e.k, f.Proxy(e.v))
		}
		return m
	}
	cp := container.NewSortedMap(m.Less())
	for k, v := range m.Entries() {
		cp.Put(k, f.Proxy(v))
	}
	return container.UnmodifiableSortedMap(cp)
}

// proxySlice refills the slice in place when every guarded element still
// fits the element type. When wrapping changed an element's type, the
// original slice is left alone and an unmodifiable list copy is returned.
func proxySlice(f *Factory, rv reflect.Value) any {
	elem := rv.Type().Elem()
	n := rv.Len()
	guarded := make([]any, n)
	fits := true
	for i := 0; i < n; i++ {
		guarded[i] = f.Proxy(rv.Index(i).Interface())
		if fits && !assignableTo(guarded[i], elem) {
			fits = false
		}
	}
	if fits {
		for i := 0; i < n; i++ {
			rv.Index(i).Set(valueFor(guarded[i], elem))
		}
		return rv.Interface()
	}
	return container.Unmodifiable(container.NewList(guarded...))
}

// proxyArray rebuilds the array value; arrays travel by value, so the
// caller gets a new array either way. The element type is kept when every
// guarded element still fits, otherwise the result is a [N]any array of the
// same length.
func proxyArray(f *Factory, rv reflect.Value) any {
	elem := rv.Type().Elem()
	n := rv.Len()
	guarded := make([]any, n)
	fits := true
	for i := 0; i < n; i++ {
		guarded[i] = f.Proxy(rv.Index(i).Interface())
		if fits && !assignableTo(guarded[i], elem) {
			fits = false
		}
	}
	if !fits {
		elem = anyType
	}
	out := reflect.New(reflect.ArrayOf(n, elem)).Elem()
	for i := 0; i < n; i++ {
		out.Index(i).Set(valueFor(guarded[i], elem))
	}
	return out.Interface()
}

func proxyReflectMap(f *Factory, rv reflect.Value) any {
	elem := rv.Type().Elem()
	keys := rv.MapKeys()
	guarded := make(map[any]any, len(keys))
	fits := true
	for _, k := range keys {
		g := f.Proxy(rv.MapIndex(k).Interface())
		guarded[k.Interface()] = g
		if fits && !assignableTo(g, elem) {
			fits = false
		}
	}
	if fits {
		for _, k := range keys {
			rv.SetMapIndex(k, valueFor(guarded[k.Interface()], elem))
		}
		return rv.Interface()
	}
	cp := container.NewMap()
	for _, k := range keys {
		cp.Put(k.Interface(), guarded[k.Interface()])
	}
	return container.UnmodifiableMap(cp)
}

func proxySeq(f *Factory, src iter.Seq[any]) iter.Seq[any] {
	return func(yield func(any) bool) {
		for v := range src {
			if !yield(f.Proxy(v)) {
				return
			}
		}
	}
}

func proxySeq2(f *Factory, src iter.Seq2[any, any]) iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for k, v := range src {
			if !yield(k, f.Proxy(v)) {
				return
			}
		}
	}
}

func assignableTo(v any, t reflect.Type) bool {
	if v == nil {
		return canBeNil(t)
	}
	return reflect.TypeOf(v).AssignableTo(t)
}

func valueFor(v any, t reflect.Type) reflect.Value {
	if v == nil {
		return reflect.Zero(t)
	}
	return reflect.ValueOf(v)
}

func canBeNil(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	}
	return false
}
