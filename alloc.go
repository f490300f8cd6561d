package vector

import (
	"fmt"
	"math"

	"modernc.org/memory"
)

// Allocator supplies the backing memory of a Vector.
//
// The contract follows malloc/realloc/free: Realloc preserves the contents up
// to the smaller of the old and new sizes, and a buffer handed out by an
// Allocator must be released through the same Allocator.
type Allocator interface {
	// Malloc returns a buffer of size bytes. Contents are undefined.
	Malloc(size int) ([]byte, error)
	// Realloc resizes b to size bytes, possibly moving it.
	// Realloc(nil, n) behaves like Malloc(n); Realloc(b, 0) frees b and returns nil.
	Realloc(b []byte, size int) ([]byte, error)
	// Free releases b. Freeing a nil or empty buffer is a no-op.
	Free(b []byte) error
}

// HeapAllocator allocates from the Go heap. Free is a no-op and memory is
// reclaimed by the garbage collector once unreferenced.
type HeapAllocator struct{}

// Malloc returns a zeroed slice of size bytes. Returns nil if size <= 0.
func (HeapAllocator) Malloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}
	return makeBytes(size)
}

// Realloc copies b into a new slice of exactly size bytes.
func (HeapAllocator) Realloc(b []byte, size int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}
	nb, err := makeBytes(size)
	if err != nil {
		return nil, err
	}
	copy(nb, b)
	return nb, nil
}

// Free drops nothing; the slice is collected by the GC.
func (HeapAllocator) Free([]byte) error {
	return nil
}

// makeBytes converts the runtime panic raised for sizes beyond the heap limit
// into ErrOutOfMemory.
func makeBytes(size int) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, outOfMemory(size, fmt.Errorf("%v", r))
		}
	}()
	return make([]byte, size), nil
}

// ManualAllocator hands out memory mapped outside the Go heap.
//
// Buffers are not tracked by the garbage collector: they must be freed
// explicitly, and slices into freed memory must not be used. Storing Go
// pointers in a ManualAllocator buffer hides them from the GC.
//
// The zero value is ready to use. Not goroutine-safe.
type ManualAllocator struct {
	a memory.Allocator
}

// NewManualAllocator creates a ManualAllocator.
func NewManualAllocator() *ManualAllocator {
	return &ManualAllocator{}
}

// Malloc returns size bytes of uninitialized memory. Returns nil if size <= 0.
func (m *ManualAllocator) Malloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}
	b, err := m.a.Malloc(size)
	if err != nil {
		return nil, outOfMemory(size, err)
	}
	return b[:size:size], nil
}

// Realloc resizes b, moving its contents when the mapping cannot be reused.
func (m *ManualAllocator) Realloc(b []byte, size int) ([]byte, error) {
	if size <= 0 {
		return nil, m.Free(b)
	}
	nb, err := m.a.Realloc(b, size)
	if err != nil {
		return nil, outOfMemory(size, err)
	}
	return nb[:size:size], nil
}

// Free returns b to the underlying allocator.
func (m *ManualAllocator) Free(b []byte) error {
	if cap(b) == 0 {
		return nil
	}
	return m.a.Free(b)
}

// Close releases all memory still held by the allocator. Every buffer
// previously returned becomes invalid.
func (m *ManualAllocator) Close() error {
	return m.a.Close()
}

// byteSize returns n*elemSize, or false if the product overflows an int.
func byteSize(n, elemSize int) (int, bool) {
	if n < 0 || elemSize < 0 {
		return 0, false
	}
	if elemSize != 0 && n > math.MaxInt/elemSize {
		return 0, false
	}
	return n * elemSize, true
}
