package acqopt

import (
	"math"

	"golang.org/x/exp/constraints"
)

//////
// Helper functions.
//////

// normalCDF computes the cumulative distribution function of the standard
// normal distribution. Used by the expected-improvement acquisition.
func normalCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}

// normalPDF computes the probability density function of the standard normal
// distribution. Used by the expected-improvement acquisition.
func normalPDF(x float64) float64 {
	return math.Exp(-x*x/2.0) / math.Sqrt(2.0*math.Pi)
}

// cloneVector returns an independent copy of a parameter vector.
func cloneVector(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	return out
}

// argmax returns the index of the largest element. The slice must be
// non-empty; on ties the first occurrence wins.
func argmax[T constraints.Ordered](s []T) int {
	best := 0
	for i, v := range s {
		if v > s[best] {
			best = i
		}
	}
	return best
}

// clamp confines v to [lo, hi].
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
