/*
Package arraylist implements a fixed-capacity list over a contiguous buffer.
*/
package arraylist

import (
	"cmp"
	"slices"

	"github.com/mgnsk/structures"
)

// List is a fixed-capacity list.
//
// The zero value has no capacity. Use New to create a list.
type List[T cmp.Ordered] struct {
	items []T
}

// New creates an empty list. The capacity defaults to structures.DefaultCapacity.
func New[T cmp.Ordered](opts ...structures.Option) *List[T] {
	o := structures.NewOptions(opts...)

	return &List[T]{
		items: make([]T, 0, o.Capacity),
	}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Cap returns the capacity of the list.
func (l *List[T]) Cap() int {
	return cap(l.items)
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return len(l.items) == 0
}

// Full reports whether the list is at capacity.
func (l *List[T]) Full() bool {
	return len(l.items) == cap(l.items)
}

// Clear removes all elements from the list.
func (l *List[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

// PushFront inserts a value at the front of the list.
func (l *List[T]) PushFront(v T) error {
	return l.Insert(v, 0)
}

// PushBack inserts a value at the back of the list.
func (l *List[T]) PushBack(v T) error {
	return l.Insert(v, len(l.items))
}

// Insert inserts a value before the element at index i.
func (l *List[T]) Insert(v T, i int) error {
	if i < 0 || i > len(l.items) {
		return structures.IndexError(i, len(l.items))
	}

	if l.Full() {
		return structures.ErrFull
	}

	l.items = slices.Insert(l.items, i, v)

	return nil
}

// InsertSorted inserts a value before the first element greater than it.
func (l *List[T]) InsertSorted(v T) error {
	if len(l.items) == 0 || cmp.Less(v, l.items[0]) {
		return l.Insert(v, 0)
	}

	i := 1
	for i < len(l.items) && !cmp.Less(v, l.items[i]) {
		i++
	}

	return l.Insert(v, i)
}

// Pop removes the element at index i and returns its value.
func (l *List[T]) Pop(i int) (T, error) {
	if len(l.items) == 0 {
		return *new(T), structures.ErrEmpty
	}

	if i < 0 || i >= len(l.items) {
		return *new(T), structures.IndexError(i, len(l.items))
	}

	v := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)

	return v, nil
}

// PopFront removes the front element and returns its value.
func (l *List[T]) PopFront() (T, error) {
	return l.Pop(0)
}

// PopBack removes the back element and returns its value.
func (l *List[T]) PopBack() (T, error) {
	return l.Pop(len(l.items) - 1)
}

// Remove removes the first element equal to v.
// It does nothing if no element is equal to v.
func (l *List[T]) Remove(v T) error {
	if len(l.items) == 0 {
		return structures.ErrEmpty
	}

	if i := slices.Index(l.items, v); i >= 0 {
		l.items = slices.Delete(l.items, i, i+1)
	}

	return nil
}

// At returns a pointer to the value at index i.
// The pointer is invalidated by the next change of the list.
func (l *List[T]) At(i int) (*T, error) {
	if len(l.items) == 0 {
		return nil, structures.ErrEmpty
	}

	if i < 0 || i >= len(l.items) {
		return nil, structures.IndexError(i, len(l.items))
	}

	return &l.items[i], nil
}

// Get returns the value at index i.
func (l *List[T]) Get(i int) (T, error) {
	p, err := l.At(i)
	if err != nil {
		return *new(T), err
	}
	return *p, nil
}

// Contains reports whether an element equal to v is in the list.
func (l *List[T]) Contains(v T) bool {
	return slices.Contains(l.items, v)
}

// Find returns the index of the first element equal to v or Len() if there is none.
func (l *List[T]) Find(v T) (int, error) {
	if len(l.items) == 0 {
		return 0, structures.ErrEmpty
	}

	if i := slices.Index(l.items, v); i >= 0 {
		return i, nil
	}

	return len(l.items), nil
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[T]) Do(f func(v T) bool) {
	for _, v := range l.items {
		if !f(v) {
			return
		}
	}
}

// Values returns the values of the list in forward order.
func (l *List[T]) Values() []T {
	return slices.Clone(l.items)
}
