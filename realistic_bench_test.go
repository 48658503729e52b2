package vector

import "testing"

// BenchmarkRealisticUsage tests mixed workloads resembling real callers
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: build up, read everything, tear down
	b.Run("BuildReadDrain", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[int]()
			for j := 0; j < 500; j++ {
				v.Append(j)
			}
			sum := 0
			for val := range v.Values() {
				sum += val
			}
			for !v.Empty() {
				if _, err := v.Pop(); err != nil {
					b.Fatal(err)
				}
			}
			_ = sum
		}
	})

	// Test 2: reuse one vector across rounds via Clear
	b.Run("ClearAndReuse", func(b *testing.B) {
		v := New[int](WithCapacity(512))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < 500; j++ {
				v.Append(j)
			}
			v.Clear()
		}
	})

	// Test 3: struct elements built in place
	b.Run("EmplaceStructs", func(b *testing.B) {
		type event struct {
			id      int
			payload [4]int64
		}
		for i := 0; i < b.N; i++ {
			v := New[event]()
			for j := 0; j < 200; j++ {
				v.Emplace(func(e *event) {
					e.id = j
				})
			}
		}
	})
}
