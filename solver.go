package pricer

import "math"

// maxIterations bounds the root-finder so a valuation run always terminates.
const maxIterations = 100

// solveTol is the absolute tolerance on the root.
const solveTol = 1e-9

// machEps is the double precision machine epsilon.
const machEps = 2.220446049250313e-16

// ImpliedStrike finds the strike K such that the closed-form price of the
// option (spot, K, rate, years, sigma, div, kind) equals target.
//
// The search bracket is [max(ε, S·e^(−qT) − S·e^(−rT)), S·e^(−qT) + S·e^(−rT)],
// which bounds the root for typical parameter ranges. When the target price
// is not attainable inside that bracket, or the iteration budget runs out,
// an *ImpliedSolveError carrying the attempted bracket is returned; the
// solver does not widen the bracket on its own.
func ImpliedStrike(target, spot, rate, years, sigma, div float64, kind Kind) (float64, error) {
	if kind != Call && kind != Put {
		return 0, ErrInvalidKind
	}
	const epsilon = 1e-6
	lo := math.Max(epsilon, spot*math.Exp(-div*years)-spot*math.Exp(-rate*years))
	hi := spot*math.Exp(-div*years) + spot*math.Exp(-rate*years)

	f := func(strike float64) float64 {
		q, _ := BlackScholes(spot, strike, rate, years, sigma, div, kind)
		return q.Price - target
	}
	return solve(f, lo, hi, target)
}

// ImpliedVolatility finds the volatility sigma such that the closed-form
// price of the option (spot, strike, rate, years, sigma, div, kind) equals
// target. The search bracket is [1e-9, 10], i.e. up to 1000% volatility.
func ImpliedVolatility(target, spot, strike, rate, years, div float64, kind Kind) (float64, error) {
	if kind != Call && kind != Put {
		return 0, ErrInvalidKind
	}
	const lo, hi = 1e-9, 10.0

	f := func(sigma float64) float64 {
		q, _ := BlackScholes(spot, strike, rate, years, sigma, div, kind)
		return q.Price - target
	}
	return solve(f, lo, hi, target)
}

// solve runs brent over [lo, hi] and converts failures into the exported
// error type with full diagnostics.
func solve(f func(float64) float64, lo, hi, target float64) (float64, error) {
	root, reason := brent(f, lo, hi)
	if reason != "" {
		return 0, &ImpliedSolveError{
			Target: target,
			Lo:     lo, Hi: hi,
			FLo: f(lo), FHi: f(hi),
			Reason: reason,
		}
	}
	return root, nil
}

// brent finds a root of f on [a, b] using Brent's method: bisection,
// secant and inverse quadratic interpolation, keeping the root bracketed.
// It returns the root and an empty reason, or a non-empty failure reason.
func brent(f func(float64) float64, a, b float64) (root float64, reason string) {
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, ""
	}
	if fb == 0 {
		return b, ""
	}
	if (fa > 0) == (fb > 0) {
		return 0, "no sign change over bracket"
	}

	// c is the previous iterate; [b, c] always brackets the root and b is
	// the best estimate so far.
	c, fc := a, fa
	d := b - a // step taken
	e := d     // step before that, to judge interpolation progress

	for i := 0; i < maxIterations; i++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 2*machEps*math.Abs(b) + solveTol/2
		m := (c - b) / 2
		if math.Abs(m) <= tol || fb == 0 {
			return b, ""
		}

		if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
			// Interpolation is not making progress, bisect.
			d = m
			e = m
		} else {
			s := fb / fa
			var p, q float64
			if a == c {
				// Two distinct points only: secant step.
				p = 2 * m * s
				q = 1 - s
			} else {
				// Inverse quadratic interpolation.
				r := fb / fc
				t := fa / fc
				p = s * (2*m*t*(t-r) - (b-a)*(r-1))
				q = (t - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				// Interpolated step rejected, bisect.
				d = m
				e = m
			}
		}

		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else if m > 0 {
			b += tol
		} else {
			b -= tol
		}
		fb = f(b)
	}
	return 0, "iteration budget exceeded"
}
