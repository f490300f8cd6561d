package vector

import (
	"errors"
	"fmt"
)

// Errors returned by Vector and Vec operations.
var (
	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrEmpty indicates an operation on the last element of an empty vector.
	ErrEmpty = errors.New("vector: empty vector")

	// ErrElemSize indicates an element whose length differs from ElemSize().
	ErrElemSize = errors.New("vector: element size mismatch")

	// ErrOutOfMemory indicates the backing buffer could not be allocated.
	ErrOutOfMemory = errors.New("vector: out of memory")
)

// IndexError records the failing operation together with the offending index.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vector: %s: index %d out of range [0:%d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func outOfMemory(size int, err error) error {
	return fmt.Errorf("%w: %d bytes: %w", ErrOutOfMemory, size, err)
}
