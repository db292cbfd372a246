package acqopt

import (
	"math"
)

const (
	// brentGolden is 1 - 1/phi, the golden-section step fraction.
	brentGolden = 0.3819660

	// brentMinTol floors the per-iteration tolerance so a relative
	// tolerance still terminates near x = 0.
	brentMinTol = 1e-11

	brentMaxIter = 500
)

// brentMin minimizes a scalar function over the bracket (xa, xb, xc), where
// f(xb) is finite and no larger than f(xa) and f(xc), using Brent's
// derivative-free combination of golden-section and parabolic steps. It
// returns the minimizing abscissa; tol is the relative x tolerance.
//
// This is the bracketed scalar minimizer consumed by the discrete line
// search. The caller guarantees a valid bracket; in particular an interpolant
// that is +inf outside the grid makes any in-grid midpoint valid.
func brentMin(f func(float64) float64, xa, xb, xc, tol float64) float64 {
	a, b := xa, xc
	if a > b {
		a, b = b, a
	}

	x, w, v := xb, xb, xb
	fx := f(x)
	fw, fv := fx, fx

	var deltax, rat float64

	for iter := 0; iter < brentMaxIter; iter++ {
		tol1 := tol*math.Abs(x) + brentMinTol
		tol2 := 2 * tol1
		xmid := 0.5 * (a + b)

		if math.Abs(x-xmid) < tol2-0.5*(b-a) {
			break
		}

		if math.Abs(deltax) <= tol1 {
			// Golden-section step into the larger subinterval.
			if x >= xmid {
				deltax = a - x
			} else {
				deltax = b - x
			}
			rat = brentGolden * deltax
		} else {
			// Try a parabolic step through (v, w, x).
			tmp1 := (x - w) * (fx - fv)
			tmp2 := (x - v) * (fx - fw)
			p := (x-v)*tmp2 - (x-w)*tmp1
			tmp2 = 2 * (tmp2 - tmp1)
			if tmp2 > 0 {
				p = -p
			}
			tmp2 = math.Abs(tmp2)
			dxTemp := deltax
			deltax = rat

			// Accept the parabolic step only if it falls inside the
			// bracket and improves on the previous-but-one step.
			if p > tmp2*(a-x) && p < tmp2*(b-x) && math.Abs(p) < math.Abs(0.5*tmp2*dxTemp) {
				rat = p / tmp2
				u := x + rat
				if u-a < tol2 || b-u < tol2 {
					rat = math.Copysign(tol1, xmid-x)
				}
			} else {
				if x >= xmid {
					deltax = a - x
				} else {
					deltax = b - x
				}
				rat = brentGolden * deltax
			}
		}

		var u float64
		if math.Abs(rat) >= tol1 {
			u = x + rat
		} else {
			u = x + math.Copysign(tol1, rat)
		}

		fu := f(u)

		if fu > fx {
			if u < x {
				a = u
			} else {
				b = u
			}
			if fu <= fw || w == x {
				v, w = w, u
				fv, fw = fw, fu
			} else if fu <= fv || v == x || v == w {
				v, fv = u, fu
			}
		} else {
			if u >= x {
				a = x
			} else {
				b = x
			}
			v, w, x = w, x, u
			fv, fw, fx = fw, fx, fu
		}
	}

	return x
}
