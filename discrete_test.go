package acqopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExhaustiveSearchFindsArgmax(t *testing.T) {
	space := orderedSpace1D(0, 8, 1) // 9 choices
	_, discrete := classifyParams(space)
	require.Len(t, discrete, 1)
	p := &discrete[0]

	target := p.choices[6]
	acqf := funcAcqf(space, nil, func(x []float64) float64 {
		d := x[0] - target
		return -d * d
	}, nil)

	x := []float64{p.choices[1]}
	fval := acqf.evalOne(x)

	got, gotFval, improved := exhaustiveSearch(acqf, x, fval, 0, p.choices)

	assert.True(t, improved)
	assert.Equal(t, target, got[0])
	assert.InDelta(t, 0, gotFval, 1e-12)
}

func TestExhaustiveSearchKeepsCurrentAtOptimum(t *testing.T) {
	space := orderedSpace1D(0, 8, 1)
	_, discrete := classifyParams(space)
	p := &discrete[0]

	target := p.choices[3]
	acqf := funcAcqf(space, nil, func(x []float64) float64 {
		d := x[0] - target
		return -d * d
	}, nil)

	x := []float64{target}
	fval := acqf.evalOne(x)

	got, gotFval, improved := exhaustiveSearch(acqf, x, fval, 0, p.choices)

	assert.False(t, improved)
	assert.Equal(t, x, got)
	assert.Equal(t, fval, gotFval)
}

func TestDiscreteLineSearchMatchesExhaustive(t *testing.T) {
	// Force a small ordered grid through the line-search path and compare
	// with brute force over all grid points.
	space := orderedSpace1D(0, 12, 1) // 13 choices, below the default threshold
	_, discrete := classifyParams(space)
	p := &discrete[0]

	target := p.choices[9]
	acqf := funcAcqf(space, nil, func(x []float64) float64 {
		d := x[0] - target
		return -d * d
	}, nil)

	x := []float64{p.choices[2]}
	fval := acqf.evalOne(x)

	viaLine, lineFval, lineImproved := optimizeDiscrete(acqf, x, fval, p, 2)
	viaExhaustive, exhFval, exhImproved := optimizeDiscrete(acqf, x, fval, p, 16)

	assert.True(t, lineImproved)
	assert.True(t, exhImproved)
	assert.Equal(t, viaExhaustive[0], viaLine[0])
	assert.Equal(t, exhFval, lineFval)
}

func TestDiscreteLineSearchCachesEvaluations(t *testing.T) {
	space := orderedSpace1D(0, 63, 1) // 64 choices, line-search territory
	_, discrete := classifyParams(space)
	p := &discrete[0]

	evals := 0
	target := p.choices[40]
	acqf := funcAcqf(space, nil, func(x []float64) float64 {
		evals++
		d := x[0] - target
		return -d * d
	}, nil)

	x := []float64{p.choices[10]}
	fval := acqf.evalOne(x)
	evals = 0

	got, _, improved := discreteLineSearch(acqf, x, fval, p)

	assert.True(t, improved)
	assert.Equal(t, target, got[0])
	assert.Less(t, evals, len(p.choices), "memoized line search must beat exhaustive evaluation")
}

func TestDiscreteLineSearchSingletonNoOp(t *testing.T) {
	space := orderedSpace1D(5, 5, 1)
	_, discrete := classifyParams(space)
	p := &discrete[0]
	require.Len(t, p.choices, 1)

	acqf := funcAcqf(space, nil, func(x []float64) float64 { return x[0] }, nil)

	x := []float64{p.choices[0]}
	got, gotFval, improved := optimizeDiscrete(acqf, x, 0.25, p, 0)

	assert.False(t, improved)
	assert.Equal(t, x, got)
	assert.Equal(t, 0.25, gotFval)
}

func TestCategoricalAlwaysExhaustive(t *testing.T) {
	// Categorical sets go through exhaustive search no matter the
	// threshold: there is no order to line-search along.
	space := &SearchSpace{
		ScaleTypes: []ScaleType{ScaleCategorical},
		Bounds:     [][2]float64{{0, 30}},
		Steps:      []float64{1},
	}
	_, discrete := classifyParams(space)
	p := &discrete[0]
	require.True(t, p.categorical)
	require.Len(t, p.choices, 30)

	acqf := funcAcqf(space, nil, func(x []float64) float64 {
		if x[0] == 17 {
			return 1
		}
		return 0
	}, nil)

	x := []float64{3}
	got, gotFval, improved := optimizeDiscrete(acqf, x, 0, p, 2)

	assert.True(t, improved)
	assert.Equal(t, 17.0, got[0])
	assert.Equal(t, 1.0, gotFval)
}

func TestNearestGridIndex(t *testing.T) {
	grids := []float64{0.1, 0.3, 0.5, 0.9}

	assert.Equal(t, 0, nearestGridIndex(grids, -5))
	assert.Equal(t, 0, nearestGridIndex(grids, 0.15))
	assert.Equal(t, 1, nearestGridIndex(grids, 0.31))
	assert.Equal(t, 3, nearestGridIndex(grids, 5))

	// Equidistant ties resolve to the lower index. Binary-exact values
	// only: decimal midpoints like 0.2 between 0.1 and 0.3 are not
	// equidistant in float64.
	exact := []float64{1, 3, 4, 8}
	assert.Equal(t, 0, nearestGridIndex(exact, 2))
	assert.Equal(t, 1, nearestGridIndex(exact, 3.5))
	assert.Equal(t, 2, nearestGridIndex(exact, 6))
}
