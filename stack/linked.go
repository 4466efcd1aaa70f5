package stack

import (
	"github.com/mgnsk/structures"
	"github.com/mgnsk/structures/internal/arena"
)

type node[T any] struct {
	value T
	next  arena.Handle
}

// Linked is an unbounded stack over a singly linked chain.
//
// The zero value is a ready to use empty stack.
type Linked[T any] struct {
	nodes arena.Arena[node[T]]
	top   arena.Handle
	len   int
}

// Len returns the number of elements in the stack.
func (s *Linked[T]) Len() int {
	return s.len
}

// Empty reports whether the stack has no elements.
func (s *Linked[T]) Empty() bool {
	return s.len == 0
}

// Clear removes all elements from the stack.
func (s *Linked[T]) Clear() {
	s.nodes.Reset()
	s.top = arena.Nil
	s.len = 0
}

// Push pushes a value on top of the stack. It never fails.
func (s *Linked[T]) Push(v T) error {
	s.top = s.nodes.Alloc(node[T]{value: v, next: s.top})
	s.len++
	return nil
}

// Pop removes the top element and returns its value.
func (s *Linked[T]) Pop() (T, error) {
	if s.len == 0 {
		return *new(T), structures.ErrEmpty
	}

	n := s.nodes.Free(s.top)
	s.top = n.next
	s.len--

	return n.value, nil
}

// Top returns a copy of the top element's value.
func (s *Linked[T]) Top() (T, error) {
	if s.len == 0 {
		return *new(T), structures.ErrEmpty
	}
	return s.nodes.Get(s.top).value, nil
}
