package kernel

import "testing"

var benchSink float64

// BenchmarkCompute10M is the cross-implementation regression benchmark: ten
// million iterations must complete and return a finite double.
func BenchmarkCompute10M(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = Compute(10_000_000, 1.5)
	}
}

func BenchmarkCompute1K(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = Compute(1000, 1.0)
	}
}
