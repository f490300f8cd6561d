package vector

// SizeInUse returns the number of bytes occupied by stored elements.
func (v *Vector) SizeInUse() int {
	return v.length * v.elemSize
}

// Capacity returns the size of the backing buffer in bytes.
func (v *Vector) Capacity() int {
	return v.capacity * v.elemSize
}

// Utilization returns the ratio of stored elements to allocated slots (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.length) / float64(v.capacity)
}

// Reallocs returns how many times the backing buffer was resized.
func (v *Vector) Reallocs() int {
	return v.reallocs
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:         v.length,
		Cap:         v.capacity,
		ElemSize:    v.elemSize,
		SizeInUse:   v.SizeInUse(),
		Capacity:    v.Capacity(),
		Reallocs:    v.reallocs,
		Utilization: v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len         int     // Stored elements
	Cap         int     // Allocated slots
	ElemSize    int     // Bytes per element
	SizeInUse   int     // Bytes occupied by elements
	Capacity    int     // Bytes allocated
	Reallocs    int     // Buffer resizes so far
	Utilization float64 // Ratio of Len to Cap (0.0-1.0)
}
