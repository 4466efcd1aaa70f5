/*
Package doublycircularlist implements a circular doubly linked list.
*/
package doublycircularlist

import (
	"cmp"

	"github.com/mgnsk/structures"
	"github.com/mgnsk/structures/internal/arena"
	"github.com/pkg/errors"
)

type node[T any] struct {
	value      T
	next, prev arena.Handle
}

// List is a circular doubly linked list.
// The front element's prev is the back element and the back element's next is the front element.
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
	l.PushBack(v)
	l.head = l.nodes.Get(l.head).prev
}

// PushBack inserts a value at the back of the list.
func (l *List[T]) PushBack(v T) {
	if l.len == 0 {
		h := l.nodes.Alloc(node[T]{value: v})
		n := l.nodes.Get(h)
		n.next = h
		n.prev = h
		l.head = h
		l.len++
		return
	}
	l.link(l.nodes.Get(l.head).prev, v)
}

// Insert inserts a value before the element at index i.
// Inserting at index Len() appends the value.
func (l *List[T]) Insert(v T, i int) error {
	if i < 0 || i > l.len {
		return structures.IndexError(i, l.len)
	}

	switch i {
	case 0:
		l.PushFront(v)
	case l.len:
		l.PushBack(v)
	default:
		l.link(l.nodes.Get(l.walk(i)).prev, v)
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

	l.link(prev, v)
}

// Pop removes the element at index i and returns its value.
func (l *List[T]) Pop(i int) (T, error) {
	if l.len == 0 {
		return *new(T), structures.ErrEmpty
	}

	if i < 0 || i >= l.len {
		return *new(T), structures.IndexError(i, l.len)
	}

	return l.unlink(l.walk(i)), nil
}

// PopFront removes the front element and returns its value.
func (l *List[T]) PopFront() (T, error) {
	return l.Pop(0)
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

	h := l.head
	for i := 0; i < l.len; i++ {
		n := l.nodes.Get(h)
		if n.value == v {
			l.unlink(h)
			return nil
		}
		h = n.next
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

// Do calls function f on each element of the list, in forward order.
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

// DoReverse calls function f on each element of the list, in backward order.
// If f returns false, DoReverse stops the iteration.
// f must not change l.
func (l *List[T]) DoReverse(f func(v T) bool) {
	if l.len == 0 {
		return
	}

	h := l.nodes.Get(l.head).prev
	for i := 0; i < l.len; i++ {
		n := l.nodes.Get(h)
		if !f(n.value) {
			return
		}
		h = n.prev
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

// walk returns the node at index i, walking backward from the back for the back half.
func (l *List[T]) walk(i int) arena.Handle {
	h := l.head

	if i <= l.len/2 {
		for ; i > 0; i-- {
			h = l.nodes.Get(h).next
		}
		return h
	}

	for i = l.len - i; i > 0; i-- {
		h = l.nodes.Get(h).prev
	}

	return h
}

// link inserts a value after node prev.
func (l *List[T]) link(prev arena.Handle, v T) {
	next := l.nodes.Get(prev).next
	h := l.nodes.Alloc(node[T]{value: v, next: next, prev: prev})
	l.nodes.Get(prev).next = h
	l.nodes.Get(next).prev = h
	l.len++
}

// unlink removes node h.
func (l *List[T]) unlink(h arena.Handle) T {
	n := l.nodes.Free(h)
	l.len--

	if l.len == 0 {
		l.head = arena.Nil
		return n.value
	}

	l.nodes.Get(n.prev).next = n.next
	l.nodes.Get(n.next).prev = n.prev

	if h == l.head {
		l.head = n.next
	}

	return n.value
}

func (l *List[T]) check() error {
	if l.nodes.Len() != l.len {
		return errors.Errorf("doublycircularlist: %d nodes allocated, expected %d", l.nodes.Len(), l.len)
	}

	if (l.head == arena.Nil) != (l.len == 0) {
		return errors.Errorf("doublycircularlist: head %d with length %d", l.head, l.len)
	}

	reached := make(map[arena.Handle]bool, l.len)

	h := l.head
	for i := 0; i < l.len; i++ {
		reached[h] = true
		n := l.nodes.Get(h)
		if l.nodes.Get(n.next).prev != h {
			return errors.Errorf("doublycircularlist: node %d: next.prev is %d", i, l.nodes.Get(n.next).prev)
		}
		if l.nodes.Get(n.prev).next != h {
			return errors.Errorf("doublycircularlist: node %d: prev.next is %d", i, l.nodes.Get(n.prev).next)
		}
		h = n.next
		if h == l.head && i < l.len-1 {
			return errors.Errorf("doublycircularlist: ring closes after %d of %d nodes", i+1, l.len)
		}
	}

	if h != l.head {
		return errors.Errorf("doublycircularlist: ring does not close after %d nodes", l.len)
	}

	var err error
	l.nodes.Do(func(h arena.Handle, _ *node[T]) bool {
		if !reached[h] {
			err = errors.Errorf("doublycircularlist: node %d is not reachable from head", h)
			return false
		}
		return true
	})

	return err
}
