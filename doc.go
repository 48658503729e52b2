// Package vector implements a generic dynamic array: a resizable,
// random-access sequence backed by one owned contiguous buffer, with a
// bounds-aware random-access iterator.
//
// # Overview
//
// A Vector separates storage allocation from element lifetime. Its
// buffer holds capacity slots of which only the first Len are live;
// dead slots are never readable through the API. Appends are amortized
// O(1): a full buffer grows to one and a half times its capacity, the
// live elements move across, and the old block is released. Removals
// from the end shrink the buffer once fewer than half its slots are
// live. This is useful for:
//
//   - Sequence workloads with unpredictable final length
//   - Batch building followed by indexed or iterator reads
//   - Keeping memory proportional to live data under heavy removal
//
// # Basic Usage
//
//	v := vector.New[int]()
//	v.Append(10)
//	v.AppendAll(20, 30)
//
//	for it := v.Begin(); !it.Equal(v.End()); it.Next() {
//		val, _ := it.Value()
//		fmt.Println(val)
//	}
//
//	last, err := v.Pop()
//
// # Growth Policy
//
// A vector created without storage allocates DefaultCapacity (10) slots
// on its first append. After that, growth multiplies capacity by 1.5
// (integer division, so capacity 10 grows to 15). Of sets the initial
// capacity to max(10, n + n/2) for n initial values. AppendAll grows at
// most once per call, straight to 1.5 times the combined length. After
// Pop, when fewer than half the slots are live, capacity drops to
// capacity minus half of capacity.
//
// The shrink threshold exactly mirrors the growth threshold, with no
// hysteresis band between them. Every downward crossing of the
// half-capacity boundary pays a full reallocation; pre-size with
// WithCapacity if your workload hovers there.
//
// # Iterators
//
// Begin and End return cursors over the current buffer snapshot.
// Iterators reference the buffer without owning it: any growth, shrink,
// or Clear invalidates them. The checked default stamps each iterator
// with the vector's generation and re-validates it on every movement and
// dereference, so a stale iterator fails with a typed error instead of
// reading freed state. Range-over-func traversal is available through
// All and Values.
//
// # Checked and Unchecked Modes
//
// By default every precondition is validated and violations come back as
// typed errors: *AllocationError, *RangeError, *EmptyError, *DerefError.
// Constructing with Unchecked() skips all validation for speed; the two
// modes behave identically as long as preconditions hold. Indexing is
// bounded by Len, not Cap — dead slots are unreachable in both modes'
// contracts.
//
// # Important Notes
//
//   - A Vector is not goroutine-safe; external locking is the caller's job
//   - Pointers returned by Emplace are valid only until the next reallocation
//   - Allocation failure (overflow, negative capacity) panics with a
//     typed *AllocationError; every other failure is a returned error
package vector
