package vector

import "iter"

// Iterator is a random-access cursor over one buffer snapshot of a
// Vector. It references the buffer, it never owns it: any reallocation
// (growth, shrink) or Clear on the vector invalidates the iterator. A
// checked vector detects stale iterators on every movement and
// dereference; an unchecked vector does not, and using a stale iterator
// is undefined behavior.
//
// The snapshot's lower bound is slot 0 and its upper bound end is one
// past the last element live at creation time.
type Iterator[T any] struct {
	vec *Vector[T]
	buf *buffer[T]
	idx int
	end int
	gen uint64
}

// Begin returns an iterator positioned at the first live element (or at
// the end sentinel when the vector is empty).
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{vec: v, buf: v.buf, idx: 0, end: v.size, gen: v.gen}
}

// End returns the one-past-last sentinel for the current snapshot.
// Iterate with:
//
//	for it := v.Begin(); !it.Equal(v.End()); it.Next() { ... }
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{vec: v, buf: v.buf, idx: v.size, end: v.size, gen: v.gen}
}

// stale reports whether the vector reallocated or cleared since this
// iterator was created.
func (it Iterator[T]) stale() bool {
	return it.buf != it.vec.buf || it.gen != it.vec.gen
}

// Next moves the cursor one position forward. Fails with a *RangeError
// when the cursor is already at the end sentinel or the snapshot is
// stale; on failure the cursor does not move.
func (it *Iterator[T]) Next() error {
	if !it.vec.unchecked {
		if it.stale() || it.idx >= it.end {
			return &RangeError{Index: it.idx + 1, Len: it.end}
		}
	}
	it.idx++
	return nil
}

// Prev moves the cursor one position backward. Fails with a *RangeError
// when the cursor is already at the first slot or the snapshot is stale;
// on failure the cursor does not move.
func (it *Iterator[T]) Prev() error {
	if !it.vec.unchecked {
		if it.stale() || it.idx <= 0 {
			return &RangeError{Index: it.idx - 1, Len: it.end}
		}
	}
	it.idx--
	return nil
}

// Advance moves the cursor n positions forward, or backward when n is
// negative, one step at a time. On a boundary hit it fails with a
// *RangeError and the cursor stays at the last position it validly
// reached; it does not roll back to where it started.
func (it *Iterator[T]) Advance(n int) error {
	if n >= 0 {
		for moved := 0; moved < n; moved++ {
			if err := it.Next(); err != nil {
				return err
			}
		}
		return nil
	}
	for moved := 0; moved > n; moved-- {
		if err := it.Prev(); err != nil {
			return err
		}
	}
	return nil
}

// Value returns the element under the cursor. Fails with a *DerefError
// when the cursor sits on the end sentinel or the snapshot is stale.
func (it Iterator[T]) Value() (T, error) {
	if !it.vec.unchecked {
		if it.stale() {
			var zero T
			return zero, &DerefError{Index: it.idx, Len: it.end, Stale: true}
		}
		if it.idx < 0 || it.idx >= it.end {
			var zero T
			return zero, &DerefError{Index: it.idx, Len: it.end}
		}
	}
	return it.buf.slots[it.idx], nil
}

// Set overwrites the element under the cursor; iterators are read/write
// views. Validity rules follow Value.
func (it Iterator[T]) Set(value T) error {
	if !it.vec.unchecked {
		if it.stale() {
			return &DerefError{Index: it.idx, Len: it.end, Stale: true}
		}
		if it.idx < 0 || it.idx >= it.end {
			return &DerefError{Index: it.idx, Len: it.end}
		}
	}
	it.buf.slots[it.idx] = value
	return nil
}

// Equal reports whether both iterators address the same position in the
// same buffer snapshot. Iterators over different snapshots of the same
// vector are never equal, including snapshots separated only by Clear.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.buf == other.buf && it.gen == other.gen && it.idx == other.idx
}

// All returns a range-over-func sequence of (index, element) over the
// elements live when All is called. The vector must not be mutated
// during the walk.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.slots[i]) {
				return
			}
		}
	}
}

// Values returns a range-over-func sequence of the live elements in
// insertion order. The vector must not be mutated during the walk.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf.slots[i]) {
				return
			}
		}
	}
}
