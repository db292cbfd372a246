package acqopt

import (
	"math/rand/v2"
)

//////
// Contracts consumed by the optimizer.
//////

// BatchEvalFunc evaluates the acquisition function at a batch of normalized
// points and returns one value per point, in order. Higher is better.
//
// The function must be pure: the memoization inside the discrete line search
// assumes that evaluating the same point twice yields the same value.
type BatchEvalFunc func(points [][]float64) []float64

// GradEvalFunc evaluates the acquisition function and its gradient at a
// single normalized point. The gradient has the same length as the point.
//
// Only the entries at continuous indices are consumed; the remaining entries
// may hold anything.
type GradEvalFunc func(point []float64) (value float64, grad []float64)

// AcquisitionParams bundles everything needed to evaluate the acquisition
// function over a search space: the space itself, the surrogate kernel's
// per-dimension inverse squared lengthscales, and the evaluator callbacks.
//
// The bundle is read-only for the duration of an optimization call and may be
// shared between concurrent searches as long as the evaluators are reentrant.
type AcquisitionParams struct {
	// Space describes the mixed parameter domain.
	Space *SearchSpace

	// InverseSquaredLengthscales holds 1/l² per dimension, where l is the
	// kernel lengthscale. Used to precondition the continuous ascent.
	InverseSquaredLengthscales []float64

	// Eval evaluates the acquisition on a batch of points.
	Eval BatchEvalFunc

	// EvalGrad evaluates the acquisition and its gradient at one point.
	// May be nil when the space has no continuous parameters.
	EvalGrad GradEvalFunc
}

// evalOne evaluates the acquisition at a single point through the batched
// evaluator.
func (p *AcquisitionParams) evalOne(x []float64) float64 {
	return p.Eval([][]float64{x})[0]
}

//////
// Configuration.
//////

// Config controls the multi-start mixed optimization process.
type Config struct {
	// SamplePoolSize is the number of uniform random points drawn and
	// evaluated to seed the local searches.
	SamplePoolSize int

	// LocalSearches is the number of local searches to run. Start points
	// are the pool maximizer, a softmax-weighted random subset of the
	// remaining pool, and any caller-supplied seed points.
	LocalSearches int

	// Tol is the convergence tolerance of the continuous ascent. The
	// projected-gradient stopping threshold is sqrt(Tol).
	Tol float64

	// MaxSweeps caps the outer coordinate-descent iterations of one local
	// search. Reaching the cap is logged as a warning, not an error.
	MaxSweeps int

	// ExhaustiveThreshold is the largest ordered choice-set size optimized
	// exhaustively; larger sets go through the interpolated line search.
	ExhaustiveThreshold int

	// Rand is the random source. If nil, a freshly seeded PCG source is
	// used; supply your own for reproducible runs.
	Rand *rand.Rand
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		SamplePoolSize:      2048,
		LocalSearches:       10,
		Tol:                 1e-4,
		MaxSweeps:           100,
		ExhaustiveThreshold: 16,
		Rand:                nil,
	}
}

// rng returns the configured random source, or a freshly seeded one. The
// top-level rand functions draw from the runtime-seeded global source, so
// the default differs between runs.
func (c *Config) rng() *rand.Rand {
	if c.Rand != nil {
		return c.Rand
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
