// Package vector implements a growable contiguous buffer (dynamic array) for Go.
//
// # Overview
//
// A Vector stores a variable number of fixed-size elements back to back in a
// single buffer. The vector knows nothing about its elements beyond their
// byte size: every element goes in and comes out as a []byte of exactly
// ElemSize() bytes. This is useful for:
//
//   - Building binary records of a size known only at run time
//   - Handing a finished, contiguous buffer to foreign code
//   - Keeping large element sets outside the Go heap (see ManualAllocator)
//
// Vec[T] offers the same container over a Go type parameter.
//
// # Basic Usage
//
//	v := vector.New(4) // 4-byte elements
//	defer v.Release()
//
//	var elem [4]byte
//	binary.NativeEndian.PutUint32(elem[:], 42)
//	_ = v.PushBack(elem[:])
//
//	b, err := v.At(0) // view into the buffer
//	x, err := v.PopAt(0) // copy owned by the caller
//
//	buf := v.Steal() // take the whole buffer, v is empty again
//
// # Growth
//
// When a PushBack finds the vector full, capacity grows from 0 to 1 and from
// c to ceil(c*φ) afterwards, φ being the golden ratio. Use WithGrowthFactor
// to pick another factor. ShrinkToFit trims capacity back to Len().
//
// # Aliasing
//
// At, UnsafeAt, Back, FindIf, Data, ForEach and All return views that alias
// the buffer. A view stays valid only until the next call that may
// reallocate: PushBack past capacity, ShrinkToFit, Reset, Steal or Release.
// With the default HeapAllocator a stale view silently reads the old buffer;
// with ManualAllocator the old buffer has been freed and reading it may fault.
//
// A view may be passed back to PushBack or Set on the same vector: pushing
// the view returned by Back appends a copy of the last element even when
// the append grows the buffer.
//
// # Ownership
//
// The vector owns its buffer. Steal moves the buffer to the caller, and
// PopAt and PopBack return an element copy the caller owns. Owned buffers are
// released with the vector's Allocator().Free.
//
// # Thread Safety
//
// Vector and Vec are not thread-safe. Callers serialize access themselves.
//
// # Errors
//
// Index and size violations are reported as ErrIndexOutOfRange (wrapped in
// *IndexError), ErrEmpty and ErrElemSize; allocation failures as
// ErrOutOfMemory. Using a vector after Release panics.
package vector
