package acqopt

// Shared test fixtures: toy acquisition bundles with known optima.

// funcAcqf wraps a plain function (and optionally its gradient) into an
// acquisition bundle over the given space, with unit lengthscales unless
// overridden.
func funcAcqf(
	space *SearchSpace,
	invSq []float64,
	f func(x []float64) float64,
	grad func(x []float64) []float64,
) *AcquisitionParams {
	if invSq == nil {
		invSq = make([]float64, space.Dim())
		for i := range invSq {
			invSq[i] = 1
		}
	}

	acqf := &AcquisitionParams{
		Space:                      space,
		InverseSquaredLengthscales: invSq,
		Eval: func(points [][]float64) []float64 {
			out := make([]float64, len(points))
			for i, x := range points {
				out[i] = f(x)
			}
			return out
		},
	}
	if grad != nil {
		acqf.EvalGrad = func(x []float64) (float64, []float64) {
			return f(x), grad(x)
		}
	}
	return acqf
}

// orderedSpace1D builds a one-dimensional ordered stepped space with the
// given raw bounds and step.
func orderedSpace1D(low, high, step float64) *SearchSpace {
	return &SearchSpace{
		ScaleTypes: []ScaleType{ScaleLinear},
		Bounds:     [][2]float64{{low, high}},
		Steps:      []float64{step},
	}
}
