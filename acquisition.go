package acqopt

import (
	"math"
)

//////
// Ready-made acquisition bundles.
//////
// Each constructor wraps a fitted GaussianProcess into an AcquisitionParams
// bundle the optimizer can consume directly. Both acquisitions are written
// for maximization: higher values mark more promising points.

// sigmaFloor avoids dividing by a vanishing posterior deviation at observed
// points.
const sigmaFloor = 1e-12

// UCB builds an upper-confidence-bound acquisition over the space:
//
//	a(x) = mean(x) + beta * sqrt(variance(x))
//
// Beta controls the exploration-exploitation trade-off; higher values favor
// uncertain regions.
func UCB(gp *GaussianProcess, space *SearchSpace, beta float64) *AcquisitionParams {
	return &AcquisitionParams{
		Space:                      space,
		InverseSquaredLengthscales: gp.InverseSquaredLengthscales(),
		Eval: func(points [][]float64) []float64 {
			out := make([]float64, len(points))
			for i, x := range points {
				mean, variance := gp.Predict(x)
				out[i] = mean + beta*math.Sqrt(variance)
			}
			return out
		},
		EvalGrad: func(x []float64) (float64, []float64) {
			mean, variance, dMean, dVariance := gp.PredictGrad(x)
			sigma := math.Sqrt(variance)

			grad := make([]float64, len(x))
			for d := range grad {
				grad[d] = dMean[d]
				if sigma > sigmaFloor {
					grad[d] += beta * dVariance[d] / (2 * sigma)
				}
			}
			return mean + beta*sigma, grad
		},
	}
}

// ExpectedImprovement builds an expected-improvement acquisition over the
// space, measuring the expected amount by which a point improves on bestF:
//
//	a(x) = u*CDF(z) + sigma*PDF(z), u = mean(x) - bestF - xi, z = u/sigma
//
// Xi adds a minimum-improvement margin; small values (0.01) focus the search,
// larger ones explore.
func ExpectedImprovement(gp *GaussianProcess, space *SearchSpace, bestF, xi float64) *AcquisitionParams {
	ei := func(mean, sigma float64) float64 {
		u := mean - bestF - xi
		if sigma <= sigmaFloor {
			return math.Max(u, 0)
		}
		z := u / sigma
		return u*normalCDF(z) + sigma*normalPDF(z)
	}

	return &AcquisitionParams{
		Space:                      space,
		InverseSquaredLengthscales: gp.InverseSquaredLengthscales(),
		Eval: func(points [][]float64) []float64 {
			out := make([]float64, len(points))
			for i, x := range points {
				mean, variance := gp.Predict(x)
				out[i] = ei(mean, math.Sqrt(variance))
			}
			return out
		},
		EvalGrad: func(x []float64) (float64, []float64) {
			mean, variance, dMean, dVariance := gp.PredictGrad(x)
			sigma := math.Sqrt(variance)

			grad := make([]float64, len(x))
			if sigma <= sigmaFloor {
				if mean-bestF-xi > 0 {
					copy(grad, dMean)
				}
				return ei(mean, sigma), grad
			}

			// dEI = CDF(z)*dMean + PDF(z)*dSigma, with the z terms
			// cancelling exactly.
			z := (mean - bestF - xi) / sigma
			for d := range grad {
				dSigma := dVariance[d] / (2 * sigma)
				grad[d] = normalCDF(z)*dMean[d] + normalPDF(z)*dSigma
			}
			return ei(mean, sigma), grad
		},
	}
}
