package acqopt

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/sampleuv"
)

//////
// Exported functionalities.
//////

// OptimizeMixed finds a normalized point maximizing the acquisition function
// over a mixed continuous/discrete search space and returns it with its
// value. It is the entry point called once per Bayesian-optimization
// iteration to propose the next candidate configuration.
//
// The driver samples cfg.SamplePoolSize uniform points, evaluates them in one
// batched call, then runs cfg.LocalSearches mixed coordinate-descent searches
// seeded from the pool maximizer, a softmax-weighted random subset of the
// remaining pool, and the caller-supplied seed points. The returned value is
// never below the best value among the sampled pool.
//
// seeds may be nil. At most cfg.LocalSearches-1 seeds are allowed: one search
// is always reserved for the pool maximizer. Violating this precondition is a
// caller bug and returns an error before any evaluation happens.
func OptimizeMixed(cfg Config, acqf *AcquisitionParams, seeds [][]float64) ([]float64, float64, error) {
	if len(seeds) > cfg.LocalSearches-1 {
		return nil, 0, errors.Errorf(
			"acqopt: %d seed points leave no room for the pool maximizer (at most %d allowed for %d local searches)",
			len(seeds), cfg.LocalSearches-1, cfg.LocalSearches,
		)
	}

	rng := cfg.rng()

	pool := acqf.Space.SampleNormalized(cfg.SamplePoolSize, rng)

	fvals := acqf.Eval(pool)
	if len(fvals) != len(pool) {
		return nil, 0, errors.Errorf(
			"acqopt: evaluator returned %d values for %d points", len(fvals), len(pool),
		)
	}

	maxI := argmax(fvals)

	nDraws := cfg.LocalSearches - len(seeds) - 1
	drawn, err := softmaxDraw(fvals, maxI, nDraws, rng)
	if err != nil {
		return nil, 0, err
	}

	starts := make([][]float64, 0, 1+len(drawn)+len(seeds))
	starts = append(starts, pool[maxI])
	for _, i := range drawn {
		starts = append(starts, pool[i])
	}
	starts = append(starts, seeds...)

	bestX := cloneVector(pool[maxI])
	bestFval := fvals[maxI]

	for _, start := range starts {
		x, fval := LocalSearchMixed(cfg, acqf, start)
		if fval > bestFval {
			bestX = x
			bestFval = fval
		}
	}

	return bestX, bestFval, nil
}

// softmaxDraw draws n distinct pool indices, excluding the maximizer, with
// probability proportional to exp(fval - fval[maxI]). The max subtraction
// keeps the exponentials finite; the maximizer's own weight is forced to zero
// so it cannot be drawn twice.
//
// On a fully degenerate surface every remaining weight underflows to zero; in
// that case the draw falls back to a uniform distribution over the
// non-maximizer points rather than failing.
func softmaxDraw(fvals []float64, maxI, n int, src rand.Source) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}
	if n > len(fvals)-1 {
		return nil, errors.Errorf(
			"acqopt: cannot draw %d distinct points from a pool of %d", n, len(fvals),
		)
	}

	weights := make([]float64, len(fvals))
	for i, f := range fvals {
		weights[i] = math.Exp(f - fvals[maxI])
	}
	weights[maxI] = 0

	if floats.Sum(weights) == 0 {
		for i := range weights {
			weights[i] = 1
		}
		weights[maxI] = 0
	}

	sampler := sampleuv.NewWeighted(weights, src)

	drawn := make([]int, 0, n)
	for len(drawn) < n {
		i, ok := sampler.Take()
		if !ok {
			return nil, errors.New("acqopt: weighted pool sampler exhausted")
		}
		drawn = append(drawn, i)
	}

	return drawn, nil
}
