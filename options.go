package vector

// config collects construction-time settings. Growth factor (1.5x) and
// shrink threshold (half of capacity) are fixed policy, not configurable.
type config struct {
	capacity  int
	unchecked bool
}

// Option configures a Vector at construction.
type Option func(*config)

// WithCapacity pre-allocates storage for n slots. The vector is still
// empty; capacity only bounds how many appends run before the first
// growth. New panics with an *AllocationError if n is not allocatable.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// Unchecked disables every precondition check on the vector and on
// iterators obtained from it: index bounds, empty-vector checks, and
// iterator snapshot validation. Behavior is identical to the checked
// default whenever all preconditions hold; violating a precondition on
// an unchecked vector is undefined behavior (in practice usually a
// runtime panic from Go's own bounds checking).
//
// The mode is fixed at construction and cannot be changed afterwards.
func Unchecked() Option {
	return func(c *config) {
		c.unchecked = true
	}
}
