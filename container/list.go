package container

import "iter"

// SliceList is a slice-backed MutableList.
type SliceList struct {
	items []any
}

// NewList builds a SliceList holding the given items.
func NewList(items ...any) *SliceList {
	return &SliceList{items: append([]any(nil), items...)}
}

// Len implements Collection.
func (l *SliceList) Len() int { return len(l.items) }

// At implements List.
func (l *SliceList) At(i int) any { return l.items[i] }

// All implements Collection.
func (l *SliceList) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Add implements MutableList.
func (l *SliceList) Add(v any) { l.items = append(l.items, v) }

// Set implements MutableList.
func (l *SliceList) Set(i int, v any) { l.items[i] = v }

// Clear implements MutableList.
func (l *SliceList) Clear() { l.items = l.items[:0] }

var _ MutableList = (*SliceList)(nil)

// RingQueue is a slice-backed FIFO Queue.
type RingQueue struct {
	items []any
}

// NewQueue builds a RingQueue holding the given items in order.
func NewQueue(items ...any) *RingQueue {
	return &RingQueue{items: append([]any(nil), items...)}
}

// Len implements Collection.
func (q *RingQueue) Len() int { return len(q.items) }

// All implements Collection. Iteration does not consume the queue.
func (q *RingQueue) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range q.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Enqueue implements Queue.
func (q *RingQueue) Enqueue(v any) { q.items = append(q.items, v) }

// Dequeue implements Queue.
func (q *RingQueue) Dequeue() (any, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	v := q.items[0]
	q.items = q.items[1:]
	return v, true
}

// Clear implements Queue.
func (q *RingQueue) Clear() { q.items = q.items[:0] }

var _ Queue = (*RingQueue)(nil)
