/*
Package structures implements generic sequence containers over two storage strategies:
node chains stored in slot arenas (linkedlist, circularlist, doublycircularlist, stack.Linked,
queue.Linked) and fixed-capacity buffers (arraylist, stack.Array, queue.Array).

No container is safe for concurrent use.
*/
package structures

// Container is the part of the API every container implements.
type Container interface {
	Len() int
	Empty() bool
	Clear()
}

// Bounded is a fixed-capacity container.
type Bounded interface {
	Container
	Cap() int
	Full() bool
}

// List is the API of the node chains.
type List[T any] interface {
	Container
	PushFront(v T)
	PushBack(v T)
	Insert(v T, i int) error
	InsertSorted(v T)
	Pop(i int) (T, error)
	PopFront() (T, error)
	PopBack() (T, error)
	Remove(v T) error
	At(i int) (*T, error)
	Get(i int) (T, error)
	Contains(v T) bool
	Find(v T) (int, error)
	Do(f func(v T) bool)
	Values() []T
}

// Stack is a LIFO container.
type Stack[T any] interface {
	Container
	Push(v T) error
	Pop() (T, error)
	Top() (T, error)
}

// Queue is a FIFO container.
type Queue[T any] interface {
	Container
	Enqueue(v T) error
	Dequeue() (T, error)
	Front() (T, error)
	Back() (T, error)
}
