package kernel

import (
	"math"
	"testing"
)

func TestComputeZeroIterations(t *testing.T) {
	for _, param := range []float64{0, 1, -2.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		got := Compute(0, param)
		if math.Float64bits(got) != 0 {
			t.Errorf("Compute(0, %v) = %v, want exactly +0.0", param, got)
		}
	}
}

// TestComputeReference checks Compute against a literal re-statement of the
// summation: ascending i, single accumulator, same angle grouping. Any change
// to the loop that alters result bits shows up here.
func TestComputeReference(t *testing.T) {
	const iterations = 1000
	const param = 1.0

	want := 0.0
	for i := 0; i < iterations; i++ {
		angle := (float64(i) * math.Pi / 180) * param
		want += float64(math.Sin(angle) * math.Cos(angle))
	}

	got := Compute(iterations, param)
	if math.Float64bits(got) != math.Float64bits(want) {
		t.Fatalf("Compute(%d, %v) = %x, reference sum = %x",
			iterations, param, math.Float64bits(got), math.Float64bits(want))
	}
}

func TestComputeDeterminism(t *testing.T) {
	cases := []struct {
		iterations uint64
		param      float64
	}{
		{1, 0},
		{1, 1},
		{360, 1},
		{1000, 1.5},
		{12345, -0.75},
		{100000, 3.14159},
	}
	for _, tc := range cases {
		first := math.Float64bits(Compute(tc.iterations, tc.param))
		for run := 0; run < 3; run++ {
			again := math.Float64bits(Compute(tc.iterations, tc.param))
			if again != first {
				t.Errorf("Compute(%d, %v) not deterministic: %x then %x",
					tc.iterations, tc.param, first, again)
			}
		}
	}
}

func TestComputeNaNPropagation(t *testing.T) {
	for _, n := range []uint64{1, 10, 1000} {
		if got := Compute(n, math.NaN()); !math.IsNaN(got) {
			t.Errorf("Compute(%d, NaN) = %v, want NaN", n, got)
		}
	}
	// Inf param: angle is ±Inf for i >= 1, sin/cos of Inf are NaN.
	if got := Compute(2, math.Inf(1)); !math.IsNaN(got) {
		t.Errorf("Compute(2, +Inf) = %v, want NaN", got)
	}
}

// Zero param keeps every angle at zero, so every term is sin(0)*cos(0) = 0.
func TestComputeZeroParam(t *testing.T) {
	if got := Compute(5000, 0); got != 0 {
		t.Errorf("Compute(5000, 0) = %v, want 0", got)
	}
}

func TestComputeFiniteLargeCount(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large-count run in short mode")
	}
	got := Compute(1_000_000, 1.5)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("Compute(1e6, 1.5) = %v, want finite", got)
	}
	// Each |term| <= 0.5, so the sum is bounded by iterations/2.
	if math.Abs(got) > 500000 {
		t.Fatalf("Compute(1e6, 1.5) = %v, outside summand bound", got)
	}
}
