package vector

import (
	"math"
	"unsafe"
)

// buffer is one owned, contiguous block of capacity slots. A slot is
// storage for one T; it is either dead (zero-valued, never read through
// the public API) or live (constructed by constructAt and not yet
// destroyed). The owning Vector tracks which prefix is live.
//
// The block is backed by []T rather than raw bytes so the garbage
// collector sees any pointers held by live elements. A byte-backed block
// cast with unsafe.Slice is invisible to the pointer scan and would let
// referenced objects be collected while the container still holds them.
type buffer[T any] struct {
	slots []T // len(slots) == capacity
}

// elemSize returns the size of one slot in bytes.
func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// newBuffer reserves storage for capacity slots, all dead. It reports an
// *AllocationError for a negative capacity or when the block's byte size
// would overflow; it never truncates the request.
func newBuffer[T any](capacity int) (*buffer[T], error) {
	es := elemSize[T]()
	if capacity < 0 {
		return nil, &AllocationError{Slots: capacity, ElemSize: es}
	}
	if es > 0 && capacity > math.MaxInt/es {
		return nil, &AllocationError{Slots: capacity, ElemSize: es}
	}
	return &buffer[T]{slots: make([]T, capacity)}, nil
}

// mustNewBuffer is newBuffer for internal reallocation, where a failed
// request cannot be surfaced without exposing a half-moved vector.
func mustNewBuffer[T any](capacity int) *buffer[T] {
	b, err := newBuffer[T](capacity)
	if err != nil {
		panic(err)
	}
	return b
}

// cap returns the number of slots, live or dead.
func (b *buffer[T]) cap() int {
	if b == nil {
		return 0
	}
	return len(b.slots)
}

// constructAt places v into slot i. The slot must be dead.
func (b *buffer[T]) constructAt(i int, v T) {
	b.slots[i] = v
}

// destroyAt ends the lifetime of the element in slot i, which must be
// live. Zeroing the slot releases anything the element referenced; it is
// the closest Go has to running a destructor.
func (b *buffer[T]) destroyAt(i int) {
	var zero T
	b.slots[i] = zero
}

// release drops the block. The owner must have destroyed every live
// element first; release does not check. Releasing a never-allocated
// buffer is a no-op.
func (b *buffer[T]) release() {
	if b == nil {
		return
	}
	b.slots = nil
}
