package container

import "testing"

func collect(c Collection) []any {
	var out []any
	for v := range c.All() {
		out = append(out, v)
	}
	return out
}

func TestSliceListOrder(t *testing.T) {
	l := NewList("a", "b", "c")
	got := collect(l)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if l.At(1) != "b" {
		t.Errorf("At(1) = %v, want b", l.At(1))
	}
}

func TestSliceListMutation(t *testing.T) {
	l := NewList(1, 2)
	l.Set(0, 10)
	l.Add(3)
	if l.At(0) != 10 || l.Len() != 3 {
		t.Errorf("unexpected list state: %v", collect(l))
	}
	l.Clear()
	if l.Len() != 0 {
		t.Error("expected empty list after Clear")
	}
}

func TestLinkedSetInsertionOrderAndDedup(t *testing.T) {
	s := NewSet("x", "y", "x", "z")
	got := collect(s)
	want := []string{"x", "y", "z"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if !s.Has("y") || s.Has("missing") {
		t.Error("Has gave wrong answers")
	}
}

func TestTreeSetOrdering(t *testing.T) {
	less := func(a, b any) bool { return a.(int) < b.(int) }
	s := NewSortedSet(less, 5, 1, 3, 1)
	got := collect(s)
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if s.Less() == nil {
		t.Error("expected comparator to be preserved")
	}
}

func TestLinkedMap(t *testing.T) {
	m := NewMap()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("a", 10)
	if m.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", m.Len())
	}
	if v, ok := m.Get("a"); !ok || v != 10 {
		t.Errorf("Get(a) = %v, %v", v, ok)
	}
	var keys []any
	for k := range m.Entries() {
		keys = append(keys, k)
	}
	if keys[0] != "a" || keys[1] != "b" {
		t.Errorf("expected insertion order [a b], got %v", keys)
	}
}

func TestTreeMapOrdering(t *testing.T) {
	less := func(a, b any) bool { return a.(string) < b.(string) }
	m := NewSortedMap(less)
	m.Put("c", 3)
	m.Put("a", 1)
	m.Put("b", 2)
	var keys []any
	for k := range m.Entries() {
		keys = append(keys, k)
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected keys %v, got %v", want, keys)
		}
	}
}

func TestRingQueue(t *testing.T) {
	q := NewQueue(1, 2)
	q.Enqueue(3)
	for _, want := range []int{1, 2, 3} {
		v, ok := q.Dequeue()
		if !ok || v != want {
			t.Fatalf("Dequeue = %v, %v; want %d", v, ok, want)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Error("expected empty queue")
	}
}

func TestOptional(t *testing.T) {
	if v, ok := Some(42).Get(); !ok || v != 42 {
		t.Errorf("Some(42).Get() = %v, %v", v, ok)
	}
	if _, ok := None().Get(); ok {
		t.Error("None().Get() should be empty")
	}
}

func TestMapOptionalLazy(t *testing.T) {
	calls := 0
	mapped := MapOptional(Some(2), func(v any) any {
		calls++
		return v.(int) * 10
	})
	if calls != 0 {
		t.Fatal("mapping must be lazy")
	}
	if v, _ := mapped.Get(); v != 20 {
		t.Errorf("mapped Get = %v, want 20", v)
	}
	if calls != 1 {
		t.Errorf("expected one call, got %d", calls)
	}
}

func TestMapIterator(t *testing.T) {
	it := MapIterator(SliceIterator(1, 2, 3), func(v any) any { return v.(int) + 1 })
	var got []int
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, v.(int))
	}
	if len(got) != 3 || got[0] != 2 || got[2] != 4 {
		t.Errorf("unexpected mapped values: %v", got)
	}
}

func TestUnmodifiableHidesMutators(t *testing.T) {
	ro := Unmodifiable(NewList(1))
	if _, ok := ro.(MutableList); ok {
		t.Error("read-only list must not expose MutableList")
	}
	roSet := UnmodifiableSet(NewSet(1))
	if _, ok := roSet.(MutableSet); ok {
		t.Error("read-only set must not expose MutableSet")
	}
	roMap := UnmodifiableMap(NewMap())
	if _, ok := roMap.(MutableMap); ok {
		t.Error("read-only map must not expose MutableMap")
	}
}

func TestUnmodifiableSortedKeepsComparator(t *testing.T) {
	less := func(a, b any) bool { return a.(int) < b.(int) }
	ro := UnmodifiableSortedSet(NewSortedSet(less, 2, 1))
	if ro.Less() == nil {
		t.Error("expected comparator preserved")
	}
	if _, ok := ro.(MutableSet); ok {
		t.Error("read-only sorted set must not expose MutableSet")
	}
}

func TestEqualNonComparable(t *testing.T) {
	// Must not panic for non-comparable dynamic types.
	if equal([]int{1}, []int{1}) {
		t.Error("non-comparable values are never equal")
	}
	if !equal(nil, nil) {
		t.Error("nil equals nil")
	}
	if equal(nil, 1) {
		t.Error("nil does not equal a value")
	}
}
