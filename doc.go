// Package acqopt is a mixed-variable local-search optimizer for acquisition
// functions inside a Bayesian-optimization loop. Given a trained surrogate's
// acquisition function over a space of continuous, integer-stepped, and
// categorical parameters, it finds the normalized configuration maximizing
// the expected value of sampling there.
//
// # How it works
//
// The search alternates two coordinate-wise sub-optimizers until a full sweep
// produces no improvement:
//
//   - Continuous coordinates are optimized together with a box-constrained
//     quasi-Newton ascent, preconditioned by the surrogate kernel's
//     lengthscales so the curvature is comparable across dimensions.
//   - Each discrete or categorical coordinate is optimized alone, either
//     exhaustively (categorical, or small choice sets) or with a memoized
//     piecewise-linear Brent line search over the choice grid.
//
// A multi-start driver seeds these local searches from the best of a large
// uniform sample pool, a softmax-weighted random subset of the rest, and any
// caller-supplied start points, and returns the global best.
//
// # Usage
//
//	space := &acqopt.SearchSpace{
//	    ScaleTypes: []acqopt.ScaleType{acqopt.ScaleLinear, acqopt.ScaleCategorical},
//	    Bounds:     [][2]float64{{0, 1}, {0, 3}},
//	    Steps:      []float64{0, 1},
//	}
//
//	gp, err := acqopt.NewGaussianProcess(observedXs, observedYs, invSqLengthscales, 1.0, 1e-6)
//	if err != nil { ... }
//
//	acqf := acqopt.ExpectedImprovement(gp, space, bestObserved, 0.01)
//
//	x, fval, err := acqopt.OptimizeMixed(acqopt.DefaultConfig(), acqf, nil)
//
// Any acquisition can be plugged in by filling AcquisitionParams directly;
// the GP-backed constructors are a convenience, not a requirement.
//
// # Concurrency
//
// One optimization call is purely sequential. Independent calls may run
// concurrently: the search space, the acquisition bundle, and a fitted
// GaussianProcess are read-only, and every search keeps its own scratch
// state. Supply a distinct Config.Rand per concurrent run.
package acqopt
