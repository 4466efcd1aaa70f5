package queue

import (
	"github.com/mgnsk/structures"
	"github.com/mgnsk/structures/internal/arena"
)

type node[T any] struct {
	value T
	next  arena.Handle
}

// Linked is an unbounded queue over a singly linked chain with a tail reference.
//
// The zero value is a ready to use empty queue.
type Linked[T any] struct {
	nodes      arena.Arena[node[T]]
	head, tail arena.Handle
	len        int
}

// Len returns the number of elements in the queue.
func (q *Linked[T]) Len() int {
	return q.len
}

// Empty reports whether the queue has no elements.
func (q *Linked[T]) Empty() bool {
	return q.len == 0
}

// Clear removes all elements from the queue.
func (q *Linked[T]) Clear() {
	q.nodes.Reset()
	q.head = arena.Nil
	q.tail = arena.Nil
	q.len = 0
}

// Enqueue adds a value at the back of the queue. It never fails.
func (q *Linked[T]) Enqueue(v T) error {
	h := q.nodes.Alloc(node[T]{value: v})

	if q.len == 0 {
		q.head = h
	} else {
		q.nodes.Get(q.tail).next = h
	}

	q.tail = h
	q.len++

	return nil
}

// Dequeue removes the front element and returns its value.
func (q *Linked[T]) Dequeue() (T, error) {
	if q.len == 0 {
		return *new(T), structures.ErrEmpty
	}

	n := q.nodes.Free(q.head)
	q.head = n.next
	q.len--

	if q.len == 0 {
		q.tail = arena.Nil
	}

	return n.value, nil
}

// Front returns a copy of the front element's value.
func (q *Linked[T]) Front() (T, error) {
	if q.len == 0 {
		return *new(T), structures.ErrEmpty
	}
	return q.nodes.Get(q.head).value, nil
}

// Back returns a copy of the back element's value.
func (q *Linked[T]) Back() (T, error) {
	if q.len == 0 {
		return *new(T), structures.ErrEmpty
	}
	return q.nodes.Get(q.tail).value, nil
}
