package structures

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrEmpty indicates an operation that needs at least one element was called on an empty container.
	ErrEmpty = errors.New("container is empty")

	// ErrIndexOutOfRange indicates an index outside the valid range of the operation.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrFull indicates a push into a bounded container at capacity.
	ErrFull = errors.New("container is full")
)

// IndexError returns ErrIndexOutOfRange annotated with the offending index and the container size.
func IndexError(index, size int) error {
	return pkgerrors.Wrapf(ErrIndexOutOfRange, "index %d with size %d", index, size)
}
