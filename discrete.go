package acqopt

import (
	"math"
	"sort"
)

// bracketEps pads the line-search bracket ends just outside the grid, where
// the interpolant is +inf. Any finite value at the middle point then makes
// the bracket trivially valid.
const bracketEps = 1e-12

// optimizeDiscrete maximizes the acquisition along one discrete coordinate,
// holding every other coordinate fixed. Categorical coordinates and small
// ordered choice sets are searched exhaustively, which is both faster and
// exact; large ordered sets go through the cached interpolated line search.
func optimizeDiscrete(
	acqf *AcquisitionParams,
	x []float64,
	fval float64,
	p *discreteParam,
	exhaustiveThreshold int,
) ([]float64, float64, bool) {
	if p.categorical || len(p.choices) <= exhaustiveThreshold {
		return exhaustiveSearch(acqf, x, fval, p.index, p.choices)
	}
	return discreteLineSearch(acqf, x, fval, p)
}

// exhaustiveSearch evaluates every admissible choice except the current one
// in a single batched call and keeps the argmax if it strictly improves.
func exhaustiveSearch(
	acqf *AcquisitionParams,
	x []float64,
	fval float64,
	index int,
	choices []float64,
) ([]float64, float64, bool) {
	batch := make([][]float64, 0, len(choices)-1)
	for _, c := range choices {
		if c == x[index] {
			continue
		}
		candidate := cloneVector(x)
		candidate[index] = c
		batch = append(batch, candidate)
	}

	if len(batch) == 0 {
		return x, fval, false
	}

	fvals := acqf.Eval(batch)
	best := argmax(fvals)

	if fvals[best] > fval {
		return batch[best], fvals[best], true
	}

	return x, fval, false
}

// discreteLineSearch maximizes the acquisition along one large ordered choice
// grid. Acquisition values are memoized per grid position, a piecewise-linear
// interpolation extends them to real queries inside the grid (+inf outside),
// and a bracketed Brent minimization of the negated interpolant proposes a
// real optimum that is snapped back to the nearest grid position.
//
// The memo cache is only valid for this call: it is keyed by grid position
// with every other coordinate of x held fixed, so it must not outlive the
// current candidate vector.
func discreteLineSearch(
	acqf *AcquisitionParams,
	x []float64,
	fval float64,
	p *discreteParam,
) ([]float64, float64, bool) {
	grids := p.choices
	if len(grids) == 1 {
		// Nothing to move to.
		return x, fval, false
	}

	current := nearestGridIndex(grids, x[p.index])

	negCache := map[int]float64{current: -fval}
	scratch := cloneVector(x)

	negAt := func(i int) float64 {
		if v, ok := negCache[i]; ok {
			return v
		}
		scratch[p.index] = grids[i]
		v := -acqf.evalOne(scratch)
		negCache[i] = v
		return v
	}

	interpolated := func(q float64) float64 {
		if q < grids[0] || q > grids[len(grids)-1] {
			return math.Inf(1)
		}
		right := clamp(sort.SearchFloat64s(grids, q), 1, len(grids)-1)
		left := right - 1
		wLeft := (grids[right] - q) / (grids[right] - grids[left])
		return wLeft*negAt(left) + (1-wLeft)*negAt(right)
	}

	xOpt := brentMin(
		interpolated,
		grids[0]-bracketEps,
		grids[current],
		grids[len(grids)-1]+bracketEps,
		p.xtol,
	)

	optIdx := nearestGridIndex(grids, xOpt)
	fvalOpt := -negAt(optIdx)

	// Both checks guard against floating-point noise: the snapped position
	// must actually move and the value must strictly improve.
	if optIdx != current && fvalOpt > fval {
		improved := cloneVector(x)
		improved[p.index] = grids[optIdx]
		return improved, fvalOpt, true
	}

	return x, fval, false
}

// nearestGridIndex returns the index of the grid value closest to q, with
// equidistant ties broken toward the lower index. grids is ascending.
func nearestGridIndex(grids []float64, q float64) int {
	i := clamp(sort.SearchFloat64s(grids, q), 1, len(grids)-1)
	if math.Abs(q-grids[i-1]) <= math.Abs(q-grids[i]) {
		return i - 1
	}
	return i
}
