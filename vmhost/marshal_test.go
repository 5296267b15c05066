package vmhost

import (
	"errors"
	"math"
	"testing"

	kberrors "github.com/wippyai/kernel-bridge/errors"
)

func TestIterationsFromNumber(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint64
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"thousand", 1000, 1000},
		{"ten_million", 10_000_000, 10_000_000},
		{"max_safe", float64(1<<53 - 1), 1<<53 - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IterationsFromNumber(tt.in)
			if err != nil {
				t.Fatalf("IterationsFromNumber(%v) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("IterationsFromNumber(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestIterationsFromNumber_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		kind kberrors.Kind
	}{
		{"nan", math.NaN(), kberrors.KindInvalidArgument},
		{"pos_inf", math.Inf(1), kberrors.KindInvalidArgument},
		{"neg_inf", math.Inf(-1), kberrors.KindInvalidArgument},
		{"negative", -1, kberrors.KindInvalidArgument},
		{"negative_fraction", -0.5, kberrors.KindInvalidArgument},
		{"fraction", 1.5, kberrors.KindConversionLoss},
		{"tiny_fraction", 1000.0000000001, kberrors.KindConversionLoss},
		{"two_pow_53", float64(uint64(1) << 53), kberrors.KindOutOfRange},
		{"huge", 1e300, kberrors.KindOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IterationsFromNumber(tt.in)
			if err == nil {
				t.Fatalf("IterationsFromNumber(%v) succeeded, want %s", tt.in, tt.kind)
			}
			var structured *kberrors.Error
			if !errors.As(err, &structured) {
				t.Fatalf("error %T is not a structured error", err)
			}
			if structured.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", structured.Kind, tt.kind)
			}
			if structured.Phase != kberrors.PhaseMarshal {
				t.Errorf("phase = %s, want marshal", structured.Phase)
			}
			if structured.Binding != Name {
				t.Errorf("binding = %q, want %q", structured.Binding, Name)
			}
		})
	}
}

// Negative zero is a valid zero count: it compares equal to 0 and converts
// exactly.
func TestIterationsFromNumber_NegativeZero(t *testing.T) {
	got, err := IterationsFromNumber(math.Copysign(0, -1))
	if err != nil {
		t.Fatalf("IterationsFromNumber(-0) error: %v", err)
	}
	if got != 0 {
		t.Errorf("IterationsFromNumber(-0) = %d, want 0", got)
	}
}
