// Package vector implements a growable contiguous buffer of fixed-size elements.
// Typical usage: create a vector for one element size, PushBack elements by copy,
// read them back as byte views and Steal the buffer once the vector is complete.
package vector

import (
	"bytes"
	"fmt"
	"iter"

	"go.uber.org/zap"
)

// Vector is a type-erased dynamic array over elements of ElemSize() bytes.
// Not goroutine-safe.
type Vector struct {
	elemSize int
	length   int
	capacity int
	data     []byte // capacity*elemSize bytes, nil when capacity == 0

	growth   float64
	alloc    Allocator
	log      *zap.Logger
	reallocs int
	released bool
}

// New creates an empty Vector holding elements of elemSize bytes.
// No memory is allocated until the first PushBack. A zero elemSize is
// accepted and yields a vector of empty elements; a negative one panics.
func New(elemSize int, opts ...Option) *Vector {
	if elemSize < 0 {
		panic("vector: negative element size")
	}
	o := buildOptions(opts)
	return &Vector{
		elemSize: elemSize,
		growth:   o.growth,
		alloc:    o.alloc,
		log:      o.log,
	}
}

// Len returns the number of stored elements.
func (v *Vector) Len() int {
	return v.length
}

// ElemSize returns the byte size of one element.
func (v *Vector) ElemSize() int {
	return v.elemSize
}

// Cap returns the number of element slots backed by the buffer.
func (v *Vector) Cap() int {
	return v.capacity
}

// GrowthFactor returns the capacity multiplier used on growth.
func (v *Vector) GrowthFactor() float64 {
	return v.growth
}

// Allocator returns the allocator owning the backing buffer. Buffers obtained
// from Steal, PopAt and PopBack are released through it.
func (v *Vector) Allocator() Allocator {
	return v.alloc
}

// Data returns the backing buffer without transferring ownership.
// Its length covers the stored elements and its capacity the allocated slots.
// The slice is invalidated by the next call that may reallocate.
func (v *Vector) Data() []byte {
	v.panicIfReleased()
	return v.data[:v.length*v.elemSize : v.capacity*v.elemSize]
}

// Reset frees the backing buffer and empties the vector. The vector stays usable.
func (v *Vector) Reset() error {
	v.panicIfReleased()
	err := v.alloc.Free(v.data)
	v.data = nil
	v.length = 0
	v.capacity = 0
	return err
}

// Steal hands the backing buffer to the caller and empties the vector.
// The returned slice holds Len()*ElemSize() bytes; the caller releases it
// with Allocator().Free. The vector stays usable.
func (v *Vector) Steal() []byte {
	v.panicIfReleased()
	b := v.data[:v.length*v.elemSize : v.capacity*v.elemSize]
	if ce := v.log.Check(zap.DebugLevel, "vector steal"); ce != nil {
		ce.Write(zap.Int("len", v.length), zap.Int("cap", v.capacity), zap.Int("elem_size", v.elemSize))
	}
	v.data = nil
	v.length = 0
	v.capacity = 0
	return b
}

// Release frees the backing buffer and makes the vector unusable.
// Any subsequent operation panics. Releasing twice is a no-op.
func (v *Vector) Release() error {
	if v.released {
		return nil
	}
	err := v.alloc.Free(v.data)
	v.data = nil
	v.length = 0
	v.capacity = 0
	v.released = true
	return err
}

// At returns a view of the element at index i.
// The view aliases the buffer and is invalidated by the next call that may reallocate.
func (v *Vector) At(i int) ([]byte, error) {
	if err := v.checkIndex("at", i); err != nil {
		return nil, err
	}
	return v.UnsafeAt(i), nil
}

// UnsafeAt is At without the bounds check against Len.
// Indexes in [Len(), Cap()) return uninitialized slots.
func (v *Vector) UnsafeAt(i int) []byte {
	off := i * v.elemSize
	return v.data[off : off+v.elemSize : off+v.elemSize]
}

// Set overwrites the element at index i with a copy of elem.
func (v *Vector) Set(i int, elem []byte) error {
	if err := v.checkIndex("set", i); err != nil {
		return err
	}
	if len(elem) != v.elemSize {
		return ErrElemSize
	}
	copy(v.UnsafeAt(i), elem)
	return nil
}

// PopAt removes the element at index i and returns a copy of it.
// Following elements shift left by one slot; capacity is unchanged.
// The returned buffer is owned by the caller and released with Allocator().Free.
func (v *Vector) PopAt(i int) ([]byte, error) {
	if err := v.checkIndex("pop", i); err != nil {
		return nil, err
	}
	elem, err := v.alloc.Malloc(v.elemSize)
	if err != nil {
		return nil, err
	}
	copy(elem, v.UnsafeAt(i))
	off := i * v.elemSize
	end := v.length * v.elemSize
	copy(v.data[off:end], v.data[off+v.elemSize:end])
	v.length--
	return elem, nil
}

// Back returns a view of the last element.
func (v *Vector) Back() ([]byte, error) {
	v.panicIfReleased()
	if v.length == 0 {
		return nil, ErrEmpty
	}
	return v.UnsafeAt(v.length - 1), nil
}

// PopBack removes the last element and returns a copy of it. No elements move.
func (v *Vector) PopBack() ([]byte, error) {
	v.panicIfReleased()
	if v.length == 0 {
		return nil, ErrEmpty
	}
	return v.PopAt(v.length - 1)
}

// PushBack appends a copy of elem, growing the buffer first when it is full.
// Growth may move the buffer and invalidates every view previously returned.
// elem may itself be a view into this vector.
func (v *Vector) PushBack(elem []byte) error {
	v.panicIfReleased()
	if len(elem) != v.elemSize {
		return ErrElemSize
	}
	if v.length == v.capacity {
		// elem may alias the buffer that resize frees.
		elem = bytes.Clone(elem)
		if err := v.resize(NextCap(v.capacity, v.growth)); err != nil {
			return err
		}
	}
	copy(v.UnsafeAt(v.length), elem)
	v.length++
	return nil
}

// ShrinkToFit reallocates the buffer down to Len() slots.
// An empty vector releases its buffer entirely.
func (v *Vector) ShrinkToFit() error {
	v.panicIfReleased()
	if v.capacity == v.length {
		return nil
	}
	return v.resize(v.length)
}

// ForEach calls fn on every element in ascending index order.
// fn must not change the vector's length.
func (v *Vector) ForEach(fn func(elem []byte)) {
	v.panicIfReleased()
	for i := 0; i < v.length; i++ {
		fn(v.UnsafeAt(i))
	}
}

// FindIf returns a view of the first element satisfying pred, or nil.
func (v *Vector) FindIf(pred func(elem []byte) bool) []byte {
	v.panicIfReleased()
	for i := 0; i < v.length; i++ {
		if e := v.UnsafeAt(i); pred(e) {
			return e
		}
	}
	return nil
}

// All returns an iterator over index and element view pairs in ascending order.
// The sequence can be ranged over repeatedly.
func (v *Vector) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		v.panicIfReleased()
		for i := 0; i < v.length; i++ {
			if !yield(i, v.UnsafeAt(i)) {
				return
			}
		}
	}
}

// resize moves the buffer to n slots. n must be >= v.length.
func (v *Vector) resize(n int) error {
	size, ok := byteSize(n, v.elemSize)
	if !ok {
		return fmt.Errorf("%w: %d slots of %d bytes", ErrOutOfMemory, n, v.elemSize)
	}
	data, err := v.alloc.Realloc(v.data, size)
	if err != nil {
		return err
	}
	if ce := v.log.Check(zap.DebugLevel, "vector realloc"); ce != nil {
		ce.Write(zap.Int("old_cap", v.capacity), zap.Int("new_cap", n), zap.Int("len", v.length), zap.Int("elem_size", v.elemSize))
	}
	v.data = data
	v.capacity = n
	v.reallocs++
	return nil
}

func (v *Vector) checkIndex(op string, i int) error {
	v.panicIfReleased()
	if i < 0 || i >= v.length {
		return &IndexError{Op: op, Index: i, Len: v.length}
	}
	return nil
}

// panicIfReleased panics if the vector has been released.
func (v *Vector) panicIfReleased() {
	if v.released {
		panic("vector: use after Release()")
	}
}
