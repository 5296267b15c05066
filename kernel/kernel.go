package kernel

import "math"

// MaxVMSafeIterations is the largest iteration count exactly representable in
// an IEEE-754 double (2^53 - 1). Hosts whose native numbers are doubles cannot
// pass a larger count without precision loss, so both bindings reject counts
// above this bound instead of truncating them.
const MaxVMSafeIterations uint64 = 1<<53 - 1

// Compute sums sin(angle)*cos(angle) for angle = (i*π/180)*param over
// i in [0, iterations), using a single running accumulator in ascending
// order. Neither the accumulation order nor the grouping of the angle
// expression may change: float64 arithmetic is not associative, and any
// reordering breaks bit-exact agreement between bindings.
//
// Compute never fails. NaN or ±Inf param yields a NaN or ±Inf result.
// Compute(0, x) is exactly 0.
func Compute(iterations uint64, param float64) float64 {
	acc := 0.0
	for i := uint64(0); i < iterations; i++ {
		angle := (float64(i) * math.Pi / 180) * param
		// The explicit conversion pins a rounding point so the
		// multiply-add cannot be contracted into an FMA, which would
		// produce different bits on arm64 vs amd64.
		acc += float64(math.Sin(angle) * math.Cos(angle))
	}
	return acc
}
