package acqopt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyParamsPartition(t *testing.T) {
	space := &SearchSpace{
		ScaleTypes: []ScaleType{ScaleLinear, ScaleLinear, ScaleCategorical, ScaleLinear},
		Bounds:     [][2]float64{{0, 1}, {0, 10}, {0, 3}, {-1, 1}},
		Steps:      []float64{0, 1, 1, 0},
	}

	continuous, discrete := classifyParams(space)

	assert.Equal(t, []int{0, 3}, continuous)
	require.Len(t, discrete, 2)

	assert.Equal(t, 1, discrete[0].index)
	assert.False(t, discrete[0].categorical)
	assert.Len(t, discrete[0].choices, 11)

	assert.Equal(t, 2, discrete[1].index)
	assert.True(t, discrete[1].categorical)
	assert.Equal(t, []float64{0, 1, 2}, discrete[1].choices)
}

func TestClassifyParamsAllContinuous(t *testing.T) {
	space := &SearchSpace{
		ScaleTypes: []ScaleType{ScaleLinear, ScaleLinear},
		Bounds:     [][2]float64{{0, 1}, {0, 1}},
		Steps:      []float64{0, 0},
	}

	continuous, discrete := classifyParams(space)
	assert.Equal(t, []int{0, 1}, continuous)
	assert.Empty(t, discrete)
}

func TestClassifyParamsLineSearchTolerance(t *testing.T) {
	// The per-index tolerance is a quarter of the smallest adjacent gap.
	space := &SearchSpace{
		ScaleTypes: []ScaleType{ScaleLinear},
		Bounds:     [][2]float64{{0, 10}},
		Steps:      []float64{1},
	}

	_, discrete := classifyParams(space)
	require.Len(t, discrete, 1)

	gap := discrete[0].choices[1] - discrete[0].choices[0]
	assert.InDelta(t, gap/4, discrete[0].xtol, 1e-12)
}

func TestClassifyParamsSingletonGrid(t *testing.T) {
	// A single-choice parameter has no adjacent gap; its tolerance stays
	// infinite and the optimizers treat it as a no-op.
	space := &SearchSpace{
		ScaleTypes: []ScaleType{ScaleLinear},
		Bounds:     [][2]float64{{3, 3}},
		Steps:      []float64{1},
	}

	_, discrete := classifyParams(space)
	require.Len(t, discrete, 1)
	assert.Len(t, discrete[0].choices, 1)
	assert.True(t, math.IsInf(discrete[0].xtol, 1))
}

func TestContinuousLengthscales(t *testing.T) {
	acqf := &AcquisitionParams{
		InverseSquaredLengthscales: []float64{4, 100, 0.25},
	}

	ls := continuousLengthscales(acqf, []int{0, 2})
	require.Len(t, ls, 2)
	assert.InDelta(t, 0.5, ls[0], 1e-12)
	assert.InDelta(t, 2.0, ls[1], 1e-12)
}
