package acqopt

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logger is the package logger; only non-convergence warnings are emitted.
var logger = log.Logger

// SetLogger replaces the package logger.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Sentinel states for the last coordinate group that improved. Discrete
// groups are identified by their parameter index, which is never negative.
const (
	changedNone       = -2
	changedContinuous = -1
)

// LocalSearchMixed runs one mixed coordinate-descent search from the given
// normalized start point and returns a coordinate-wise local maximum of the
// acquisition together with its value. The returned value is never below the
// start point's value.
//
// Each sweep optimizes the continuous coordinate group as a whole, then every
// discrete coordinate in ascending index order. The search remembers which
// group last produced a strict improvement; arriving back at that group means
// a full cycle passed with no other group improving, so the point is a
// coordinate-wise local optimum and the search stops. A first sweep with no
// improvement anywhere stops immediately. If cfg.MaxSweeps elapses without
// convergence a warning is logged and the incumbent is returned.
func LocalSearchMixed(cfg Config, acqf *AcquisitionParams, initial []float64) ([]float64, float64) {
	continuous, discrete := classifyParams(acqf.Space)
	lengthscale := continuousLengthscales(acqf, continuous)

	best := cloneVector(initial)
	bestFval := acqf.evalOne(best)

	lastChanged := changedNone
	improved := false

	for sweep := 0; sweep < cfg.MaxSweeps; sweep++ {
		if lastChanged == changedContinuous {
			return best, bestFval
		}
		best, bestFval, improved = gradientAscent(acqf, best, bestFval, continuous, lengthscale, cfg.Tol)
		if improved {
			lastChanged = changedContinuous
		}

		for k := range discrete {
			p := &discrete[k]
			if lastChanged == p.index {
				return best, bestFval
			}
			best, bestFval, improved = optimizeDiscrete(acqf, best, bestFval, p, cfg.ExhaustiveThreshold)
			if improved {
				lastChanged = p.index
			}
		}

		if lastChanged == changedNone {
			// Nothing moved from the start point.
			return best, bestFval
		}
	}

	logger.Warn().
		Int("max_sweeps", cfg.MaxSweeps).
		Msg("acqopt: local search did not converge")

	return best, bestFval
}
