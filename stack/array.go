/*
Package stack implements LIFO stacks over a fixed-capacity buffer and over a node chain.
*/
package stack

import "github.com/mgnsk/structures"

// Array is a fixed-capacity stack.
//
// The zero value has no capacity. Use NewArray to create a stack.
type Array[T any] struct {
	items []T
}

// NewArray creates an empty stack. The capacity defaults to structures.DefaultCapacity.
func NewArray[T any](opts ...structures.Option) *Array[T] {
	o := structures.NewOptions(opts...)

	return &Array[T]{
		items: make([]T, 0, o.Capacity),
	}
}

// Len returns the number of elements in the stack.
func (s *Array[T]) Len() int {
	return len(s.items)
}

// Cap returns the capacity of the stack.
func (s *Array[T]) Cap() int {
	return cap(s.items)
}

// Empty reports whether the stack has no elements.
func (s *Array[T]) Empty() bool {
	return len(s.items) == 0
}

// Full reports whether the stack is at capacity.
func (s *Array[T]) Full() bool {
	return len(s.items) == cap(s.items)
}

// Clear removes all elements from the stack.
func (s *Array[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Push pushes a value on top of the stack.
func (s *Array[T]) Push(v T) error {
	if s.Full() {
		return structures.ErrFull
	}
	s.items = append(s.items, v)
	return nil
}

// Pop removes the top element and returns its value.
func (s *Array[T]) Pop() (T, error) {
	if len(s.items) == 0 {
		return *new(T), structures.ErrEmpty
	}

	n := len(s.items) - 1
	v := s.items[n]
	s.items[n] = *new(T)
	s.items = s.items[:n]

	return v, nil
}

// Top returns a copy of the top element's value.
func (s *Array[T]) Top() (T, error) {
	if len(s.items) == 0 {
		return *new(T), structures.ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}
