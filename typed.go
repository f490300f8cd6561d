package vector

import (
	"iter"
	"unsafe"

	"go.uber.org/zap"
)

// Vec is the typed counterpart of Vector. Storage is a Go slice, so T may
// contain pointers. Growth follows the same policy as Vector.
// Not goroutine-safe.
type Vec[T any] struct {
	data   []T // len(data) is the capacity
	length int

	growth   float64
	log      *zap.Logger
	reallocs int
}

// NewOf creates an empty Vec. WithAllocator is ignored.
func NewOf[T any](opts ...Option) *Vec[T] {
	o := buildOptions(opts)
	return &Vec[T]{growth: o.growth, log: o.log}
}

// Len returns the number of stored elements.
func (v *Vec[T]) Len() int { return v.length }

// Cap returns the number of allocated slots.
func (v *Vec[T]) Cap() int { return len(v.data) }

// ElemSize returns unsafe.Sizeof a T.
func (v *Vec[T]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Reallocs returns how many times the backing slice was replaced.
func (v *Vec[T]) Reallocs() int { return v.reallocs }

// Data returns the stored elements without copying.
// The slice is invalidated by the next call that may reallocate.
func (v *Vec[T]) Data() []T {
	return v.data[:v.length:len(v.data)]
}

// Reset drops the backing slice and empties the vector.
func (v *Vec[T]) Reset() {
	v.data = nil
	v.length = 0
}

// Steal hands the stored elements to the caller and empties the vector.
func (v *Vec[T]) Steal() []T {
	s := v.data[:v.length:len(v.data)]
	v.data = nil
	v.length = 0
	return s
}

// At returns a pointer to the element at index i, valid until the next
// call that may reallocate.
func (v *Vec[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.length {
		return nil, &IndexError{Op: "at", Index: i, Len: v.length}
	}
	return &v.data[i], nil
}

// Set overwrites the element at index i.
func (v *Vec[T]) Set(i int, x T) error {
	p, err := v.At(i)
	if err != nil {
		return err
	}
	*p = x
	return nil
}

// PopAt removes and returns the element at index i, shifting the tail left.
func (v *Vec[T]) PopAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.length {
		return zero, &IndexError{Op: "pop", Index: i, Len: v.length}
	}
	x := v.data[i]
	copy(v.data[i:v.length], v.data[i+1:v.length])
	v.length--
	v.data[v.length] = zero
	return x, nil
}

// Back returns a pointer to the last element.
func (v *Vec[T]) Back() (*T, error) {
	if v.length == 0 {
		return nil, ErrEmpty
	}
	return &v.data[v.length-1], nil
}

// PopBack removes and returns the last element.
func (v *Vec[T]) PopBack() (T, error) {
	if v.length == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.PopAt(v.length - 1)
}

// PushBack appends x, growing the backing slice first when it is full.
func (v *Vec[T]) PushBack(x T) {
	if v.length == len(v.data) {
		v.resize(NextCap(len(v.data), v.growth))
	}
	v.data[v.length] = x
	v.length++
}

// ShrinkToFit reallocates the backing slice down to Len() slots.
func (v *Vec[T]) ShrinkToFit() {
	if len(v.data) != v.length {
		v.resize(v.length)
	}
}

// ForEach calls fn on a pointer to every element in ascending index order.
func (v *Vec[T]) ForEach(fn func(x *T)) {
	for i := 0; i < v.length; i++ {
		fn(&v.data[i])
	}
}

// FindIf returns a pointer to the first element satisfying pred, or nil.
func (v *Vec[T]) FindIf(pred func(x *T) bool) *T {
	for i := 0; i < v.length; i++ {
		if pred(&v.data[i]) {
			return &v.data[i]
		}
	}
	return nil
}

// All returns an iterator over index and element pointer pairs.
func (v *Vec[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, &v.data[i]) {
				return
			}
		}
	}
}

func (v *Vec[T]) resize(n int) {
	var data []T
	if n > 0 {
		data = make([]T, n)
		copy(data, v.data[:v.length])
	}
	if ce := v.log.Check(zap.DebugLevel, "vec realloc"); ce != nil {
		ce.Write(zap.Int("old_cap", len(v.data)), zap.Int("new_cap", n), zap.Int("len", v.length))
	}
	v.data = data
	v.reallocs++
}
