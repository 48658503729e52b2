package vector

// DefaultCapacity is the capacity adopted on the first growth of a
// vector that was created without storage.
const DefaultCapacity = 10

// Vector is a generic dynamic array: a resizable, random-access sequence
// backed by exactly one owned contiguous buffer at a time. Slots [0, size)
// hold live elements; slots [size, capacity) are dead and never read.
// Not goroutine-safe; callers needing concurrent access must lock
// externally.
type Vector[T any] struct {
	buf       *buffer[T]
	size      int
	gen       uint64 // bumped on every reallocation and on Clear
	unchecked bool
	grows     int
	shrinks   int
}

// New creates an empty vector. Without options it owns no storage until
// the first append. New panics with an *AllocationError if WithCapacity
// names a capacity that cannot be allocated.
func New[T any](opts ...Option) *Vector[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	v := &Vector[T]{unchecked: cfg.unchecked}
	if cfg.capacity != 0 {
		b, err := newBuffer[T](cfg.capacity)
		if err != nil {
			panic(err)
		}
		v.buf = b
	}
	return v
}

// Of creates a vector holding values in order. Capacity is one and a
// half times the element count, with a floor of DefaultCapacity.
func Of[T any](values ...T) *Vector[T] {
	n := len(values)
	capacity := n + n/2
	if capacity < DefaultCapacity {
		capacity = DefaultCapacity
	}
	v := &Vector[T]{buf: mustNewBuffer[T](capacity)}
	for i, val := range values {
		v.buf.constructAt(i, val)
	}
	v.size = n
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots, live or dead.
func (v *Vector[T]) Cap() int {
	return v.buf.cap()
}

// Empty reports whether the vector holds no live elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Allocated reports whether the vector currently owns storage, i.e. its
// capacity is nonzero.
func (v *Vector[T]) Allocated() bool {
	return v.buf.cap() != 0
}

// Append adds value after the last live element, growing the buffer
// first when it is full. Amortized O(1); O(n) when growth runs. Panics
// with an *AllocationError only if the grown capacity is unallocatable.
func (v *Vector[T]) Append(value T) {
	if v.size == v.buf.cap() {
		v.grow()
	}
	v.buf.constructAt(v.size, value)
	v.size++
}

// AppendAll adds values in order, growing at most once for the whole
// batch. When growth is needed the new capacity is one and a half times
// the combined length, exactly as a single oversized append would size
// it; no DefaultCapacity floor applies.
func (v *Vector[T]) AppendAll(values ...T) {
	n := len(values)
	if n == 0 {
		return
	}
	needed := v.size + n
	if needed >= v.buf.cap() {
		v.growTo(needed + needed/2)
	}
	for _, val := range values {
		v.buf.constructAt(v.size, val)
		v.size++
	}
}

// Emplace constructs the next element in place: it claims the slot at
// the end, hands its address to construct, and only then counts the
// element as live. No temporary copy of T is made. A nil construct
// leaves the slot at the zero value. The returned pointer aims into the
// buffer and is valid only until the next reallocation.
func (v *Vector[T]) Emplace(construct func(*T)) *T {
	if v.size == v.buf.cap() {
		v.grow()
	}
	p := &v.buf.slots[v.size]
	if construct != nil {
		construct(p)
	}
	v.size++
	return p
}

// Pop destroys the last live element and returns its value. Fails with
// an *EmptyError on an empty vector. When the remaining size drops below
// half the capacity, the buffer shrinks to capacity minus half of
// capacity. The shrink threshold mirrors the growth threshold with no
// hysteresis, so every downward crossing of the half boundary pays a
// reallocation; workloads that hover there should pre-size with
// WithCapacity.
func (v *Vector[T]) Pop() (T, error) {
	if !v.unchecked && v.size == 0 {
		var zero T
		return zero, &EmptyError{Op: "Pop"}
	}
	v.size--
	value := v.buf.slots[v.size]
	v.buf.destroyAt(v.size)
	if v.size < v.buf.cap()/2 {
		v.shrink()
	}
	return value, nil
}

// At returns the element at index i. Indexing is bounded by Len, not
// Cap: dead slots are unreachable even though storage for them exists.
// Fails with a *RangeError when i is outside [0, Len).
func (v *Vector[T]) At(i int) (T, error) {
	if !v.unchecked && (i < 0 || i >= v.size) {
		var zero T
		return zero, &RangeError{Index: i, Len: v.size}
	}
	return v.buf.slots[i], nil
}

// Set overwrites the live element at index i. Bounds follow At.
func (v *Vector[T]) Set(i int, value T) error {
	if !v.unchecked && (i < 0 || i >= v.size) {
		return &RangeError{Index: i, Len: v.size}
	}
	v.buf.slots[i] = value
	return nil
}

// Front returns the first live element, failing with an *EmptyError on
// an empty vector.
func (v *Vector[T]) Front() (T, error) {
	if !v.unchecked && v.size == 0 {
		var zero T
		return zero, &EmptyError{Op: "Front"}
	}
	return v.buf.slots[0], nil
}

// Back returns the last live element, failing with an *EmptyError on an
// empty vector.
func (v *Vector[T]) Back() (T, error) {
	if !v.unchecked && v.size == 0 {
		var zero T
		return zero, &EmptyError{Op: "Back"}
	}
	return v.buf.slots[v.size-1], nil
}

// Clear destroys every live element without releasing the buffer:
// size drops to zero, capacity is unchanged. Iterators created before
// Clear are invalidated.
func (v *Vector[T]) Clear() {
	for i := 0; i < v.size; i++ {
		v.buf.destroyAt(i)
	}
	v.size = 0
	v.gen++
}

// Clone returns a deep copy with the same elements, capacity, and mode.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{
		buf:       mustNewBuffer[T](v.buf.cap()),
		size:      v.size,
		unchecked: v.unchecked,
	}
	for i := 0; i < v.size; i++ {
		c.buf.constructAt(i, v.buf.slots[i])
	}
	return c
}

// Equal reports whether a and b hold the same elements in the same
// order. Capacity and mode are not compared.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.buf.slots[i] != b.buf.slots[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element comparison, for
// element types that are not comparable.
func EqualFunc[T any](a, b *Vector[T], eq func(a, b T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.buf.slots[i], b.buf.slots[i]) {
			return false
		}
	}
	return true
}

// Concat returns a new vector holding a's elements followed by b's.
// Neither operand is mutated. The result is allocated once.
func Concat[T any](a, b *Vector[T]) *Vector[T] {
	n := a.size + b.size
	res := New[T]()
	if n == 0 {
		return res
	}
	res.growTo(n + n/2)
	for i := 0; i < a.size; i++ {
		res.buf.constructAt(res.size, a.buf.slots[i])
		res.size++
	}
	for i := 0; i < b.size; i++ {
		res.buf.constructAt(res.size, b.buf.slots[i])
		res.size++
	}
	return res
}

// grow handles the size == capacity case before a single append. An
// unallocated vector adopts DefaultCapacity; otherwise capacity becomes
// one and a half times the old capacity (integer division truncates).
func (v *Vector[T]) grow() {
	capacity := v.buf.cap()
	if capacity == 0 {
		v.reallocate(DefaultCapacity)
	} else {
		v.reallocate(capacity + capacity/2)
	}
	v.grows++
}

// growTo reallocates to exactly capacity slots, bypassing the 1.5x step
// for batch appends that already know their target.
func (v *Vector[T]) growTo(capacity int) {
	v.reallocate(capacity)
	v.grows++
}

// shrink halves the footprint after a pop left size below half the
// capacity: new capacity = capacity - capacity/2.
func (v *Vector[T]) shrink() {
	capacity := v.buf.cap()
	v.reallocate(capacity - capacity/2)
	v.shrinks++
}

// reallocate transfers the live prefix into a fresh buffer of the given
// capacity: move each element in index order, destroy its old slot,
// release the old block, adopt the new one. The vector's state is
// updated only after the new buffer is fully built, so no partially
// moved state is observable through the API. The generation bump
// invalidates outstanding iterator snapshots.
func (v *Vector[T]) reallocate(capacity int) {
	next := mustNewBuffer[T](capacity)
	old := v.buf
	for i := 0; i < v.size; i++ {
		next.constructAt(i, old.slots[i])
		old.destroyAt(i)
	}
	old.release()
	v.buf = next
	v.gen++
}
