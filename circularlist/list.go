/*
Package circularlist implements a circular singly linked list.
*/
package circularlist

import (
	"cmp"

	"github.com/mgnsk/structures"
	"github.com/mgnsk/structures/internal/arena"
	"github.com/pkg/errors"
)

type node[T any] struct {
	value T
	next  arena.Handle
}

// List is a circular singly linked list. The last element links back to the front element.
// Every traversal is bounded by the length of the list.
//
// The zero value is a ready to use empty list.
type List[T cmp.Ordered] struct {
	nodes arena.Arena[node[T]]
	head  arena.Handle
	len   int
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.len == 0
}

// Clear removes all elements from the list.
func (l *List[T]) Clear() {
	l.nodes.Reset()
	l.head = arena.Nil
	l.len = 0
}

// PushFront inserts a value at the front of the list.
func (l *List[T]) PushFront(v T) {
	if l.len == 0 {
		l.head = l.nodes.Alloc(node[T]{value: v})
		l.nodes.Get(l.head).next = l.head
		l.len++
		return
	}
	l.head = l.linkAfter(l.walk(l.len-1), v)
}

// PushBack inserts a value at the back of the list.
func (l *List[T]) PushBack(v T) {
	if l.len == 0 {
		l.PushFront(v)
		return
	}
	l.linkAfter(l.walk(l.len-1), v)
}

// Insert inserts a value before the element at index i.
// Inserting at index Len() appends the value.
func (l *List[T]) Insert(v T, i int) error {
	if i < 0 || i > l.len {
		return structures.IndexError(i, l.len)
	}

	if i == 0 {
		l.PushFront(v)
	} else {
		l.linkAfter(l.walk(i-1), v)
	}

	return nil
}

// InsertSorted inserts a value before the first element greater than it.
func (l *List[T]) InsertSorted(v T) {
	if l.len == 0 || cmp.Less(v, l.nodes.Get(l.head).value) {
		l.PushFront(v)
		return
	}

	prev := l.head
	for i := 1; i < l.len; i++ {
		next := l.nodes.Get(prev).next
		if cmp.Less(v, l.nodes.Get(next).value) {
			break
		}
		prev = next
	}

	l.linkAfter(prev, v)
}

// Pop removes the element at index i and returns its value.
func (l *List[T]) Pop(i int) (T, error) {
	if l.len == 0 {
		return *new(T), structures.ErrEmpty
	}

	if i < 0 || i >= l.len {
		return *new(T), structures.IndexError(i, l.len)
	}

	if i == 0 {
		return l.unlinkFront(), nil
	}

	return l.unlinkAfter(l.walk(i - 1)), nil
}

// PopFront removes the front element and returns its value.
func (l *List[T]) PopFront() (T, error) {
	if l.len == 0 {
		return *new(T), structures.ErrEmpty
	}
	return l.unlinkFront(), nil
}

// PopBack removes the back element and returns its value.
func (l *List[T]) PopBack() (T, error) {
	return l.Pop(l.len - 1)
}

// Remove removes the first element equal to v.
// It does nothing if no element is equal to v.
func (l *List[T]) Remove(v T) error {
	if l.len == 0 {
		return structures.ErrEmpty
	}

	if l.nodes.Get(l.head).value == v {
		l.unlinkFront()
		return nil
	}

	prev := l.head
	for i := 1; i < l.len; i++ {
		next := l.nodes.Get(prev).next
		if l.nodes.Get(next).value == v {
			l.unlinkAfter(prev)
			return nil
		}
		prev = next
	}

	return nil
}

// At returns a pointer to the value at index i.
// The pointer is invalidated by the next change of the list.
func (l *List[T]) At(i int) (*T, error) {
	if l.len == 0 {
		return nil, structures.ErrEmpty
	}

	if i < 0 || i >= l.len {
		return nil, structures.IndexError(i, l.len)
	}

	return &l.nodes.Get(l.walk(i)).value, nil
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
	i, err := l.Find(v)
	return err == nil && i < l.len
}

// Find returns the index of the first element equal to v or Len() if there is none.
func (l *List[T]) Find(v T) (int, error) {
	if l.len == 0 {
		return 0, structures.ErrEmpty
	}

	h := l.head
	for i := 0; i < l.len; i++ {
		n := l.nodes.Get(h)
		if n.value == v {
			return i, nil
		}
		h = n.next
	}

	return l.len, nil
}

// Do calls function f on each element of the list, in forward order
// starting from the front element.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[T]) Do(f func(v T) bool) {
	h := l.head
	for i := 0; i < l.len; i++ {
		n := l.nodes.Get(h)
		if !f(n.value) {
			return
		}
		h = n.next
	}
}

// Values returns the values of the list in forward order.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.len)
	l.Do(func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

// walk returns the node at index i.
func (l *List[T]) walk(i int) arena.Handle {
	h := l.head
	for ; i > 0; i-- {
		h = l.nodes.Get(h).next
	}
	return h
}

// linkAfter inserts a value after node prev and returns the new node.
func (l *List[T]) linkAfter(prev arena.Handle, v T) arena.Handle {
	h := l.nodes.Alloc(node[T]{value: v, next: l.nodes.Get(prev).next})
	l.nodes.Get(prev).next = h
	l.len++
	return h
}

// unlinkFront removes the front node and links the back node to the new front.
func (l *List[T]) unlinkFront() T {
	if l.len == 1 {
		n := l.nodes.Free(l.head)
		l.head = arena.Nil
		l.len = 0
		return n.value
	}

	return l.unlinkAfter(l.walk(l.len - 1))
}

// unlinkAfter removes the node after prev.
func (l *List[T]) unlinkAfter(prev arena.Handle) T {
	p := l.nodes.Get(prev)
	h := p.next
	n := l.nodes.Free(h)
	p.next = n.next
	if h == l.head {
		l.head = n.next
	}
	l.len--
	return n.value
}

func (l *List[T]) check() error {
	if l.nodes.Len() != l.len {
		return errors.Errorf("circularlist: %d nodes allocated, expected %d", l.nodes.Len(), l.len)
	}

	if (l.head == arena.Nil) != (l.len == 0) {
		return errors.Errorf("circularlist: head %d with length %d", l.head, l.len)
	}

	reached := make(map[arena.Handle]bool, l.len)

	h := l.head
	for i := 0; i < l.len; i++ {
		reached[h] = true
		h = l.nodes.Get(h).next
		if h == l.head && i < l.len-1 {
			return errors.Errorf("circularlist: ring closes after %d of %d nodes", i+1, l.len)
		}
	}

	if h != l.head {
		return errors.Errorf("circularlist: ring does not close after %d nodes", l.len)
	}

	var err error
	l.nodes.Do(func(h arena.Handle, _ *node[T]) bool {
		if !reached[h] {
			err = errors.Errorf("circularlist: node %d is not reachable from head", h)
			return false
		}
		return true
	})

	return err
}
