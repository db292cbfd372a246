package acqopt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrentMinQuadratic(t *testing.T) {
	f := func(x float64) float64 { return (x - 0.3) * (x - 0.3) }

	x := brentMin(f, 0, 0.5, 1, 1e-8)
	assert.InDelta(t, 0.3, x, 1e-6)
}

func TestBrentMinAsymmetricBracket(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(x) }

	// Minimum of cos on (2, 4) is at pi.
	x := brentMin(f, 2, 3, 4, 1e-10)
	assert.InDelta(t, math.Pi, x, 1e-6)
}

func TestBrentMinInfiniteOutsideBracket(t *testing.T) {
	// Mirrors the line-search usage: +inf just outside the grid, finite
	// piecewise-linear inside. Brent must stay inside and find the kink.
	f := func(x float64) float64 {
		if x < 0 || x > 1 {
			return math.Inf(1)
		}
		return math.Abs(x - 0.625)
	}

	x := brentMin(f, -1e-12, 0.25, 1+1e-12, 1e-7)
	assert.InDelta(t, 0.625, x, 1e-4)
}

func TestBrentMinRespectsTolerance(t *testing.T) {
	evals := 0
	f := func(x float64) float64 {
		evals++
		return x * x
	}

	brentMin(f, -1, 0.5, 1, 1e-2)
	coarse := evals

	evals = 0
	brentMin(f, -1, 0.5, 1, 1e-10)
	fine := evals

	assert.LessOrEqual(t, coarse, fine, "a coarse tolerance must not need more evaluations")
}
