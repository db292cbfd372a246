package acqopt

import (
	"math"
	"math/rand/v2"
)

//////
// Search-space description.
//////

// ScaleType classifies how a raw parameter value maps into the normalized
// [0, 1] domain the optimizer works in.
type ScaleType int

const (
	// ScaleLinear maps raw values linearly into [0, 1].
	ScaleLinear ScaleType = iota

	// ScaleLog maps raw values logarithmically into [0, 1]. Bounds must be
	// strictly positive.
	ScaleLog

	// ScaleCategorical treats the parameter as an unordered finite set of
	// category codes 0 .. n-1. The normalized value is the code itself.
	ScaleCategorical
)

// SearchSpace describes a mixed parameter space: for each of Dim() indices a
// scale type, raw bounds, and a step size. A step of 0 marks a continuous
// parameter; a positive step restricts the parameter to the raw grid
// low, low+step, low+2*step, ... up to high.
//
// For categorical parameters the convention follows the normalized encoding:
// Bounds[i] is (0, numberOfCategories) and Steps[i] is 1.
//
// A SearchSpace is immutable for the duration of an optimization call and
// safe to share between concurrent searches.
type SearchSpace struct {
	// ScaleTypes holds the per-index scale classification.
	ScaleTypes []ScaleType

	// Bounds holds the per-index raw (low, high) bounds.
	Bounds [][2]float64

	// Steps holds the per-index raw step size; 0 means continuous.
	Steps []float64
}

// Dim returns the number of parameters in the space.
func (s *SearchSpace) Dim() int {
	return len(s.ScaleTypes)
}

// NormalizeOneParam maps a raw parameter value into the normalized domain
// given its scale type, raw bounds, and step.
//
// For stepped parameters the bounds are widened by half a step on each side
// before the linear (or log-linear) map, so that grid points sit strictly
// inside (0, 1) and the grid's cells have equal normalized width. Categorical
// values pass through unchanged (the category code is the normalized value).
func NormalizeOneParam(value float64, scale ScaleType, bounds [2]float64, step float64) float64 {
	if scale == ScaleCategorical {
		return value
	}

	low, high := bounds[0], bounds[1]
	if step > 0 {
		low -= step / 2
		high += step / 2
	}

	if scale == ScaleLog {
		low, high = math.Log(low), math.Log(high)
		value = math.Log(value)
	}

	if high == low {
		return 0.5
	}

	return (value - low) / (high - low)
}

// DenormalizeOneParam is the inverse of NormalizeOneParam. The result is the
// raw value corresponding to the normalized coordinate; it is not snapped to
// the step grid.
func DenormalizeOneParam(norm float64, scale ScaleType, bounds [2]float64, step float64) float64 {
	if scale == ScaleCategorical {
		return norm
	}

	low, high := bounds[0], bounds[1]
	if step > 0 {
		low -= step / 2
		high += step / 2
	}

	if scale == ScaleLog {
		low, high = math.Log(low), math.Log(high)
		return math.Exp(low + norm*(high-low))
	}

	return low + norm*(high-low)
}

// SampleNormalized draws n points uniformly from the normalized space.
// Continuous coordinates are uniform on [0, 1]; stepped and categorical
// coordinates are drawn uniformly from their admissible choice set, so every
// sampled point is reachable from the raw grid.
func (s *SearchSpace) SampleNormalized(n int, rng *rand.Rand) [][]float64 {
	dim := s.Dim()

	grids := make([][]float64, dim)
	for i := 0; i < dim; i++ {
		if s.Steps[i] > 0 {
			grids[i] = s.choiceGrid(i)
		}
	}

	points := make([][]float64, n)
	for k := range points {
		x := make([]float64, dim)
		for i := 0; i < dim; i++ {
			if grids[i] == nil {
				x[i] = rng.Float64()
			} else {
				x[i] = grids[i][rng.IntN(len(grids[i]))]
			}
		}
		points[k] = x
	}

	return points
}

// choiceGrid returns the admissible normalized values for a non-continuous
// index, ascending. Categorical indices yield the category codes; ordered
// indices yield every raw grid point mapped through NormalizeOneParam. The
// upper bound is included with a half-step tolerance so floating-point drift
// in the raw grid cannot drop the last choice.
func (s *SearchSpace) choiceGrid(i int) []float64 {
	if s.ScaleTypes[i] == ScaleCategorical {
		n := int(s.Bounds[i][1])
		choices := make([]float64, n)
		for c := range choices {
			choices[c] = float64(c)
		}
		return choices
	}

	low, high, step := s.Bounds[i][0], s.Bounds[i][1], s.Steps[i]

	var choices []float64
	for raw := low; raw <= high+step/2; raw += step {
		choices = append(choices, NormalizeOneParam(raw, s.ScaleTypes[i], s.Bounds[i], step))
	}

	return choices
}
