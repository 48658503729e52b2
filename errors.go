package vector

import "fmt"

// AllocationError reports a storage request the platform cannot satisfy:
// a negative slot count, or a slot count whose byte size overflows int.
// Allocation failure is not recoverable mid-operation; internal growth
// panics with an *AllocationError rather than leaving the vector in a
// partially reallocated state.
type AllocationError struct {
	Slots    int // requested capacity in slots
	ElemSize int // size of one slot in bytes
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("vector: cannot allocate %d slots of %d bytes", e.Slots, e.ElemSize)
}

// RangeError reports an indexed access or iterator movement outside the
// valid bound. Index is the offending position, Len the number of live
// elements (for iterators, the snapshot length).
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vector: index %d out of range [0, %d)", e.Index, e.Len)
}

// EmptyError reports an operation that needs at least one live element
// being called on an empty vector.
type EmptyError struct {
	Op string
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("vector: %s on empty vector", e.Op)
}

// DerefError reports a dereference through an iterator that does not
// address a live element. Stale is set when the iterator's snapshot no
// longer matches the vector's buffer, i.e. the vector reallocated or was
// cleared after the iterator was created.
type DerefError struct {
	Index int
	Len   int
	Stale bool
}

func (e *DerefError) Error() string {
	if e.Stale {
		return "vector: dereference through invalidated iterator"
	}
	return fmt.Sprintf("vector: dereference at %d outside live range [0, %d)", e.Index, e.Len)
}
