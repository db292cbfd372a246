package acqopt

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

//////
// Gaussian Process surrogate.
//////

// GaussianProcess is a fitted Gaussian Process regression model with an
// anisotropic RBF kernel. It supplies the surrogate predictions behind the
// ready-made acquisition bundles; the optimizer core itself never depends on
// it and works against any AcquisitionParams.
//
// The model is immutable after construction and safe to share between
// concurrent searches.
type GaussianProcess struct {
	// x holds the observed input points, each of the same dimension.
	x [][]float64

	// invSqLengthscales holds 1/l² per input dimension.
	invSqLengthscales []float64

	// signalVar scales the kernel; noiseVar is added to the diagonal.
	signalVar float64
	noiseVar  float64

	// chol is the factorization of K + noiseVar*I; alpha solves
	// (K + noiseVar*I) alpha = y.
	chol  mat.Cholesky
	alpha *mat.VecDense
}

// NewGaussianProcess fits a GP to the observed points and values.
//
// Parameters:
// - x: observed input points (normalized parameter vectors)
// - y: observed values at each point, same length as x
// - invSqLengthscales: per-dimension inverse squared kernel lengthscales
// - signalVar: kernel output variance (must be positive)
// - noiseVar: observation noise variance added to the kernel diagonal
func NewGaussianProcess(
	x [][]float64,
	y []float64,
	invSqLengthscales []float64,
	signalVar, noiseVar float64,
) (*GaussianProcess, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, errors.Errorf(
			"acqopt: need matching non-empty observations, got %d points and %d values",
			len(x), len(y),
		)
	}
	if signalVar <= 0 {
		return nil, errors.New("acqopt: signal variance must be positive")
	}

	gp := &GaussianProcess{
		x:                 x,
		invSqLengthscales: invSqLengthscales,
		signalVar:         signalVar,
		noiseVar:          noiseVar,
	}

	n := len(x)
	gram := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := gp.kernel(x[i], x[j])
			if i == j {
				v += noiseVar
			}
			gram.SetSym(i, j, v)
		}
	}

	if ok := gp.chol.Factorize(gram); !ok {
		return nil, errors.New("acqopt: kernel matrix is not positive definite; increase the noise variance")
	}

	gp.alpha = mat.NewVecDense(n, nil)
	if err := gp.chol.SolveVecTo(gp.alpha, mat.NewVecDense(n, cloneVector(y))); err != nil {
		return nil, errors.Wrap(err, "acqopt: kernel solve failed")
	}

	return gp, nil
}

// kernel evaluates the anisotropic RBF kernel between two points:
//
//	k(a, b) = signalVar * exp(-0.5 * sum_d invSq_d * (a_d - b_d)^2)
func (gp *GaussianProcess) kernel(a, b []float64) float64 {
	var sum float64
	for d := range a {
		diff := a[d] - b[d]
		sum += gp.invSqLengthscales[d] * diff * diff
	}
	return gp.signalVar * math.Exp(-0.5*sum)
}

// kernelVec evaluates the kernel between x and every observed point.
func (gp *GaussianProcess) kernelVec(x []float64) []float64 {
	k := make([]float64, len(gp.x))
	for i := range gp.x {
		k[i] = gp.kernel(x, gp.x[i])
	}
	return k
}

// Predict returns the posterior mean and variance at a point.
func (gp *GaussianProcess) Predict(x []float64) (mean, variance float64) {
	k := gp.kernelVec(x)
	kv := mat.NewVecDense(len(k), k)

	mean = mat.Dot(kv, gp.alpha)

	u := mat.NewVecDense(len(k), nil)
	if err := gp.chol.SolveVecTo(u, kv); err != nil {
		return mean, gp.signalVar
	}
	variance = gp.signalVar - mat.Dot(kv, u)

	// Guard against negative variance from round-off.
	if variance < 0 {
		variance = 0
	}

	return mean, variance
}

// PredictGrad returns the posterior mean and variance at a point together
// with their gradients with respect to the point.
func (gp *GaussianProcess) PredictGrad(x []float64) (mean, variance float64, dMean, dVariance []float64) {
	dim := len(x)
	k := gp.kernelVec(x)
	kv := mat.NewVecDense(len(k), k)

	mean = mat.Dot(kv, gp.alpha)

	u := mat.NewVecDense(len(k), nil)
	solved := gp.chol.SolveVecTo(u, kv) == nil
	if solved {
		variance = gp.signalVar - mat.Dot(kv, u)
		if variance < 0 {
			variance = 0
		}
	} else {
		variance = gp.signalVar
	}

	dMean = make([]float64, dim)
	dVariance = make([]float64, dim)
	for i, xi := range gp.x {
		// dk_i/dx_d = -invSq_d * (x_d - xi_d) * k_i
		for d := 0; d < dim; d++ {
			dk := -gp.invSqLengthscales[d] * (x[d] - xi[d]) * k[i]
			dMean[d] += gp.alpha.AtVec(i) * dk
			if solved {
				dVariance[d] -= 2 * u.AtVec(i) * dk
			}
		}
	}

	return mean, variance, dMean, dVariance
}

// InverseSquaredLengthscales exposes the kernel's per-dimension inverse
// squared lengthscales, as consumed by AcquisitionParams.
func (gp *GaussianProcess) InverseSquaredLengthscales() []float64 {
	return gp.invSqLengthscales
}
