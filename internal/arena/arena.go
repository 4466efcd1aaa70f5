/*
Package arena implements a slot allocator for linked container nodes.
*/
package arena

import "strconv"

// Handle references a slot in an Arena. The zero Handle is Nil.
type Handle uint32

// Nil is the handle that references no slot.
const Nil Handle = 0

type slot[T any] struct {
	value T
	used  bool
}

// Arena stores values in a slice of slots and hands out stable handles to them.
// Freed slots are reused by later allocations.
//
// The zero value is a ready to use empty arena.
type Arena[T any] struct {
	slots []slot[T]
	free  []Handle
	len   int
}

// Len returns the number of allocated slots.
func (a *Arena[T]) Len() int {
	return a.len
}

// Alloc stores v in a free slot and returns its handle.
//
// Pointers returned by Get before the call may be invalidated.
func (a *Arena[T]) Alloc(v T) Handle {
	a.len++

	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]

		s := &a.slots[h-1]
		s.value = v
		s.used = true

		return h
	}

	a.slots = append(a.slots, slot[T]{value: v, used: true})

	return Handle(len(a.slots))
}

// Free releases the slot of h and returns the value it held.
func (a *Arena[T]) Free(h Handle) T {
	s := a.slot(h)

	v := s.value
	*s = slot[T]{}

	a.free = append(a.free, h)
	a.len--

	return v
}

// Get returns a pointer to the value stored at h.
// The pointer is valid until the next Alloc or Reset.
func (a *Arena[T]) Get(h Handle) *T {
	return &a.slot(h).value
}

// Reset releases every slot.
func (a *Arena[T]) Reset() {
	clear(a.slots)
	a.slots = a.slots[:0]
	a.free = a.free[:0]
	a.len = 0
}

// Do calls function f on each allocated slot in slot order.
// If f returns false, Do stops the iteration.
// f must not change a.
func (a *Arena[T]) Do(f func(h Handle, v *T) bool) {
	for i := range a.slots {
		if s := &a.slots[i]; s.used {
			if !f(Handle(i+1), &s.value) {
				return
			}
		}
	}
}

func (a *Arena[T]) slot(h Handle) *slot[T] {
	if h == Nil || int(h) > len(a.slots) || !a.slots[h-1].used {
		panic("arena: invalid handle " + strconv.FormatUint(uint64(h), 10))
	}
	return &a.slots[h-1]
}
