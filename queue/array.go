/*
Package queue implements FIFO queues over a fixed-capacity ring buffer and over a node chain.
*/
package queue

import "github.com/mgnsk/structures"

// Array is a fixed-capacity queue maintained over a ring buffer.
//
// The zero value has no capacity. Use NewArray to create a queue.
type Array[T any] struct {
	buffer []T
	head   int // the index of the front of the buffer
	len    int
}

// NewArray creates an empty queue. The capacity defaults to structures.DefaultCapacity.
func NewArray[T any](opts ...structures.Option) *Array[T] {
	o := structures.NewOptions(opts...)

	return &Array[T]{
		buffer: make([]T, o.Capacity),
	}
}

// Len returns the number of elements in the queue.
func (q *Array[T]) Len() int {
	return q.len
}

// Cap returns the capacity of the queue.
func (q *Array[T]) Cap() int {
	return len(q.buffer)
}

// Empty reports whether the queue has no elements.
func (q *Array[T]) Empty() bool {
	return q.len == 0
}

// Full reports whether the queue is at capacity.
func (q *Array[T]) Full() bool {
	return q.len == len(q.buffer)
}

// Clear removes all elements from the queue.
func (q *Array[T]) Clear() {
	clear(q.buffer)
	q.head = 0
	q.len = 0
}

// Enqueue adds a value at the back of the queue.
func (q *Array[T]) Enqueue(v T) error {
	if q.Full() {
		return structures.ErrFull
	}
	q.buffer[(q.head+q.len)%len(q.buffer)] = v
	q.len++
	return nil
}

// Dequeue removes the front element and returns its value.
func (q *Array[T]) Dequeue() (T, error) {
	if q.len == 0 {
		return *new(T), structures.ErrEmpty
	}

	v := q.buffer[q.head]
	q.buffer[q.head] = *new(T)
	q.head = (q.head + 1) % len(q.buffer)
	q.len--

	return v, nil
}

// Front returns a copy of the front element's value.
func (q *Array[T]) Front() (T, error) {
	if q.len == 0 {
		return *new(T), structures.ErrEmpty
	}
	return q.buffer[q.head], nil
}

// Back returns a copy of the back element's value.
func (q *Array[T]) Back() (T, error) {
	if q.len == 0 {
		return *new(T), structures.ErrEmpty
	}
	return q.buffer[(q.head+q.len-1)%len(q.buffer)], nil
}
