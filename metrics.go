package vector

// Unused returns the number of dead slots: allocated storage not holding
// a live element.
func (v *Vector[T]) Unused() int {
	return v.buf.cap() - v.size
}

// Utilization returns the ratio of live elements to allocated slots
// (0.0 to 1.0). Returns 0.0 when the vector owns no storage.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.buf.cap()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Grows returns how many times the vector has allocated a larger buffer,
// including the initial allocation on first growth.
func (v *Vector[T]) Grows() int {
	return v.grows
}

// Shrinks returns how many times the vector has moved to a smaller
// buffer after removals.
func (v *Vector[T]) Shrinks() int {
	return v.shrinks
}

// Generation returns the buffer snapshot counter. It increments on every
// reallocation and on Clear; iterators stamped with an older generation
// are invalid.
func (v *Vector[T]) Generation() uint64 {
	return v.gen
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:         v.size,
		Cap:         v.buf.cap(),
		Unused:      v.Unused(),
		ElemSize:    elemSize[T](),
		Utilization: v.Utilization(),
		Grows:       v.grows,
		Shrinks:     v.shrinks,
		Generation:  v.gen,
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len         int     // live elements
	Cap         int     // allocated slots
	Unused      int     // dead slots
	ElemSize    int     // bytes per slot
	Utilization float64 // ratio of live to allocated (0.0-1.0)
	Grows       int     // buffer growths since creation
	Shrinks     int     // buffer shrinks since creation
	Generation  uint64  // reallocation/clear counter
}
