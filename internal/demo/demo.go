// Package demo walks a 4-byte vector through the full operation set and
// reports what it sees.
package demo

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pavanmanishd/vector"
)

// ElemSize is the byte size of the int32 elements used by the demo.
const ElemSize = 4

// Report is what Run observed.
type Report struct {
	Removed int32   // value returned by PopAt(2)
	Stolen  []int32 // contents of the stolen buffer
	Caps    []int   // capacity at every status line
	Len     int     // length after Steal
	Cap     int     // capacity after Steal
}

// Run performs the demo scenario on a fresh vector built with opts and writes
// a transcript to w. heading decorates section titles; nil leaves them plain.
func Run(w io.Writer, heading func(string) string, opts ...vector.Option) (rep *Report, err error) {
	if heading == nil {
		heading = func(s string) string { return s }
	}
	v := vector.New(ElemSize, opts...)
	defer func() {
		err = errors.Join(err, v.Release())
	}()

	rep = &Report{}
	status := func() {
		rep.Caps = append(rep.Caps, v.Cap())
		fmt.Fprintf(w, "Length: %4d, capacity: %4d\n", v.Len(), v.Cap())
	}
	title := func(s string) {
		fmt.Fprintln(w, heading(s))
	}

	for _, x := range []int32{1, 2, 4, 8} {
		if err := v.PushBack(encode(x)); err != nil {
			return nil, err
		}
	}
	status()
	fmt.Fprintln(w, Format(v))

	title("Removing [2]")
	removed, err := v.PopAt(2)
	if err != nil {
		return nil, err
	}
	rep.Removed = decode(removed)
	if err := v.Allocator().Free(removed); err != nil {
		return nil, err
	}
	status()
	fmt.Fprintln(w, Format(v))

	title("Shrinking to fit")
	if err := v.ShrinkToFit(); err != nil {
		return nil, err
	}
	status()

	title("Changing [2] to 3 and appending {4, 5, 6}")
	if err := v.Set(2, encode(3)); err != nil {
		return nil, err
	}
	for x := int32(4); x <= 6; x++ {
		if err := v.PushBack(encode(x)); err != nil {
			return nil, err
		}
	}
	status()
	fmt.Fprintln(w, Format(v))

	title("Shrinking to fit")
	if err := v.ShrinkToFit(); err != nil {
		return nil, err
	}
	status()

	title("Stealing the vector's data")
	stolen := v.Steal()
	rep.Len, rep.Cap = v.Len(), v.Cap()
	for off := 0; off+ElemSize <= len(stolen); off += ElemSize {
		rep.Stolen = append(rep.Stolen, decode(stolen[off:off+ElemSize]))
	}
	if err := v.Allocator().Free(stolen); err != nil {
		return nil, err
	}
	title("Stolen data:")
	fmt.Fprintln(w, join(rep.Stolen))

	title("Done.")
	return rep, nil
}

// GrowthSeries returns the capacity of a 4-byte vector after each of n appends.
func GrowthSeries(n int, opts ...vector.Option) (caps []float64, err error) {
	v := vector.New(ElemSize, opts...)
	defer func() {
		err = errors.Join(err, v.Release())
	}()
	caps = make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if err := v.PushBack(encode(int32(i))); err != nil {
			return nil, err
		}
		caps = append(caps, float64(v.Cap()))
	}
	return caps, nil
}

// Format renders the int32 elements of v separated by spaces.
func Format(v *vector.Vector) string {
	var xs []int32
	v.ForEach(func(elem []byte) {
		xs = append(xs, decode(elem))
	})
	return join(xs)
}

func join(xs []int32) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatInt(int64(x), 10)
	}
	return strings.Join(parts, " ")
}

func encode(x int32) []byte {
	return binary.NativeEndian.AppendUint32(nil, uint32(x))
}

func decode(b []byte) int32 {
	return int32(binary.NativeEndian.Uint32(b))
}
