package vec

import "testing"

// BenchmarkGrowth compares the vector's explicit growth policy against the
// builtin slice idiom for the same access patterns.
func BenchmarkGrowth(b *testing.B) {
	const n = 1024

	b.Run("PushBack/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[int]()
			for j := 0; j < n; j++ {
				v.PushBack(j)
			}
		}
	})

	b.Run("PushBack/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < n; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	b.Run("PushBackReserved/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := NewHint[int](WithCapacity(n))
			for j := 0; j < n; j++ {
				v.PushBack(j)
			}
		}
	})

	b.Run("PushBackReserved/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, n)
			for j := 0; j < n; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})
}

// BenchmarkInsertFront measures the worst-case shift path.
func BenchmarkInsertFront(b *testing.B) {
	const n = 256

	b.Run("Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := NewHint[int](WithCapacity(n))
			for j := 0; j < n; j++ {
				v.Insert(0, j)
			}
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, n)
			for j := 0; j < n; j++ {
				s = append(s[:0], append([]int{j}, s...)...)
			}
			_ = s
		}
	})
}

// BenchmarkErase shows the cost of the rebuild-on-erase contract next to
// in-place slice deletion.
func BenchmarkErase(b *testing.B) {
	const n = 256

	b.Run("Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			v := New[int]()
			for j := 0; j < n; j++ {
				v.PushBack(j)
			}
			b.StartTimer()
			for v.Len() > 0 {
				v.Erase(0)
			}
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			s := make([]int, n)
			b.StartTimer()
			for len(s) > 0 {
				s = append(s[:0], s[1:]...)
			}
		}
	})
}
