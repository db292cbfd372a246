package acqopt

import (
	"math"

	"github.com/curioloop/optimizer/lbfgsb"
)

// lbfgsbCorrections is the history size of the limited-memory Hessian
// approximation, matching the solver's usual default.
const lbfgsbCorrections = 10

// maxAscentIterations caps one L-BFGS-B run inside a coordinate-descent
// sweep.
const maxAscentIterations = 200

// lbfgsbEpsFactor is the machine-epsilon multiple bounding the relative
// function decrease between iterations, the solver's factr analogue; 1e7 is
// the customary moderate-accuracy setting.
const lbfgsbEpsFactor = 1e7

// newAscentSolver constructs the bounded quasi-Newton solver for one ascent
// run. Variable so tests can fault the construction.
var newAscentSolver = func(problem lbfgsb.Problem) (*lbfgsb.Optimizer, error) {
	return problem.New(nil)
}

// gradientAscent maximizes the acquisition over the continuous coordinates of
// x, holding every other coordinate fixed, and returns the updated vector,
// its value, and whether it strictly improved on fval.
//
// The ascent runs in a preconditioned coordinate system. The acquisition is a
// function of coordinate/lengthscale, so dimensions with small lengthscales
// dominate the curvature and make the problem ill-conditioned. Substituting
// z = coordinate/lengthscale equalizes the curvature across dimensions; the
// box [0, 1] becomes [0, 1/lengthscale] and the chain rule multiplies the
// gradient by the lengthscale.
//
// The result is accepted only when the recovered value strictly exceeds fval
// and the solver completed at least one iteration; otherwise the input is
// returned unchanged.
func gradientAscent(
	acqf *AcquisitionParams,
	x []float64,
	fval float64,
	continuous []int,
	lengthscale []float64,
	tol float64,
) ([]float64, float64, bool) {
	n := len(continuous)
	if n == 0 {
		return x, fval, false
	}

	scratch := cloneVector(x)

	// The solver minimizes, so the objective is the negated acquisition in
	// the rescaled coordinates.
	objective := func(z, grad []float64) float64 {
		for k, i := range continuous {
			scratch[i] = z[k] * lengthscale[k]
		}
		val, g := acqf.EvalGrad(scratch)
		for k, i := range continuous {
			grad[k] = -g[i] * lengthscale[k]
		}
		return -val
	}

	bounds := make([]lbfgsb.Bound, n)
	for k := range bounds {
		bounds[k] = lbfgsb.Bound{Lower: 0, Upper: 1 / lengthscale[k]}
	}

	problem := lbfgsb.Problem{
		N:      n,
		M:      lbfgsbCorrections,
		Eval:   objective,
		Bounds: bounds,
		Stop: lbfgsb.Termination{
			MaxIterations:     maxAscentIterations,
			ProjGradTolerance: math.Sqrt(tol),
			EpsAccuracyFactor: lbfgsbEpsFactor,
		},
	}

	solver, err := newAscentSolver(problem)
	if err != nil {
		logger.Warn().Err(err).Msg("acqopt: continuous ascent solver rejected the problem")

		return x, fval, false
	}

	z0 := make([]float64, n)
	for k, i := range continuous {
		z0[k] = x[i] / lengthscale[k]
	}

	result := solver.Fit(z0, solver.Init())

	if -result.F > fval && result.NumIter > 0 {
		improved := cloneVector(x)
		for k, i := range continuous {
			improved[i] = result.X[k] * lengthscale[k]
		}
		return improved, -result.F, true
	}

	return x, fval, false
}
