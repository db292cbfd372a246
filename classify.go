package acqopt

import (
	"math"
)

// discreteParam describes one non-continuous coordinate of the search space:
// its index, whether it is categorical (unordered), its admissible normalized
// choices, and the line-search tolerance derived from the grid resolution.
type discreteParam struct {
	index       int
	categorical bool

	// choices holds the admissible normalized values; strictly ascending
	// for ordered parameters, category codes 0..n-1 for categorical ones.
	choices []float64

	// xtol is one quarter of the smallest gap between adjacent choices.
	// Refining the line search below the grid's own resolution is useless.
	xtol float64
}

// classifyParams partitions the space's indices into continuous coordinates
// (step 0) and discrete coordinates (step > 0), both in ascending index
// order, and derives each discrete coordinate's choice set once. A space with
// no continuous or no discrete indices is valid; the corresponding optimizer
// becomes a no-op.
func classifyParams(space *SearchSpace) (continuous []int, discrete []discreteParam) {
	for i := 0; i < space.Dim(); i++ {
		if space.Steps[i] == 0 {
			continuous = append(continuous, i)
			continue
		}

		choices := space.choiceGrid(i)

		minGap := math.Inf(1)
		for k := 1; k < len(choices); k++ {
			if gap := choices[k] - choices[k-1]; gap < minGap {
				minGap = gap
			}
		}

		discrete = append(discrete, discreteParam{
			index:       i,
			categorical: space.ScaleTypes[i] == ScaleCategorical,
			choices:     choices,
			xtol:        minGap / 4,
		})
	}

	return continuous, discrete
}

// continuousLengthscales extracts the kernel lengthscales of the continuous
// coordinates, aligned with the continuous index slice. The kernel carries
// inverse squared lengthscales, so l = 1/sqrt(invSq).
func continuousLengthscales(acqf *AcquisitionParams, continuous []int) []float64 {
	ls := make([]float64, len(continuous))
	for k, i := range continuous {
		ls[k] = 1 / math.Sqrt(acqf.InverseSquaredLengthscales[i])
	}
	return ls
}
