package lazy

import "testing"

// Benchmark reads of an initialized cell (the steady-state hot path)
func BenchmarkCellGet(b *testing.B) {
	cell := New[int]()
	if err := cell.Set(1); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cell.Get(); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark repeated loads of an already-computed value
func BenchmarkValueLoad(b *testing.B) {
	v := NewValue(func() int { return 1 })
	v.Load()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Load()
	}
}

func BenchmarkCellGetParallel(b *testing.B) {
	cell := New[int]()
	if err := cell.Set(1); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = cell.Get()
		}
	})
}
