package vmhost

import (
	"math"

	"github.com/wippyai/kernel-bridge/errors"
)

// maxExact is 2^53, the first float64 value whose integer neighborhood is no
// longer exactly representable. Counts at or above it are rejected.
const maxExact = float64(1 << 53)

// IterationsFromNumber converts a VM-native number to a kernel iteration
// count. The conversion is exact or it fails: non-finite and negative values
// are invalid arguments, fractional values are conversion loss, and values at
// or above 2^53 are out of the host's safe-integer range.
func IterationsFromNumber(n float64) (uint64, error) {
	switch {
	case math.IsNaN(n) || math.IsInf(n, 0):
		return 0, errors.New(errors.PhaseMarshal, errors.KindInvalidArgument).
			Binding(Name).
			Value(n).
			Detail("iteration count must be finite").
			Build()
	case n < 0:
		return 0, errors.New(errors.PhaseMarshal, errors.KindInvalidArgument).
			Binding(Name).
			Value(n).
			Detail("iteration count must be non-negative").
			Build()
	case math.Trunc(n) != n:
		return 0, errors.New(errors.PhaseMarshal, errors.KindConversionLoss).
			Binding(Name).
			Value(n).
			Detail("iteration count must be integral").
			Build()
	case n >= maxExact:
		return 0, errors.New(errors.PhaseMarshal, errors.KindOutOfRange).
			Binding(Name).
			Value(n).
			Detail("iteration count exceeds the safe-integer range (2^53-1)").
			Build()
	}
	return uint64(n), nil
}
