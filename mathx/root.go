// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// DefaultRootEpsilon is the tolerance root finders are usually
// called with.
const DefaultRootEpsilon = 1e-10

// MaxRootIterations caps the iterative root finders. Well-posed
// problems converge long before this; reaching it is reported as
// failure.
const MaxRootIterations = 100000

// FindRootNewton finds a root of f by Newton's method starting at x0,
// using df as the derivative of f. It iterates x ← x - f(x)/f'(x)
// until |f(x)| < epsilon.
//
// FindRootNewton reports false if the step, the iterate, or the value
// of f become non-finite (which includes a vanishing derivative), or
// if it does not converge within MaxRootIterations.
func FindRootNewton(f, df func(float64) float64, x0, epsilon float64) (float64, bool) {
	x := x0
	fx := f(x)
	for i := 0; i < MaxRootIterations; i++ {
		if !isFinite(fx) {
			return x, false
		}
		if math.Abs(fx) < epsilon {
			return x, true
		}
		step := fx / df(x)
		if !isFinite(step) {
			return x, false
		}
		x -= step
		if !isFinite(x) {
			return x, false
		}
		fx = f(x)
	}
	return x, false
}

// FindRootSecant finds a root of f without a derivative, starting at
// x0. The first step uses a finite-difference slope; subsequent steps
// are secant steps through the last two iterates.
//
// The failure conditions are the same as FindRootNewton's, plus a
// flat secant (two iterates with equal function values).
func FindRootSecant(f func(float64) float64, x0, epsilon float64) (float64, bool) {
	h := 1e-4 * math.Max(1, math.Abs(x0))
	x1 := x0 + h
	f0, f1 := f(x0), f(x1)
	if isFinite(f0) && math.Abs(f0) < epsilon {
		return x0, true
	}
	for i := 0; i < MaxRootIterations; i++ {
		if !isFinite(f1) {
			return x1, false
		}
		if math.Abs(f1) < epsilon {
			return x1, true
		}
		denom := f1 - f0
		if denom == 0 {
			return x1, false
		}
		x2 := x1 - f1*(x1-x0)/denom
		if !isFinite(x2) {
			return x1, false
		}
		x0, f0 = x1, f1
		x1, f1 = x2, f(x2)
	}
	return x1, false
}

// FindRootBrent finds a root of f in the bracket [a, b] using Brent's
// method, which combines bisection, secant and inverse quadratic
// interpolation steps.
//
// f(a) and f(b) must have opposite signs (or one of them must be
// zero); otherwise FindRootBrent reports false. Given a valid
// bracket, the returned root is within epsilon of a true root.
func FindRootBrent(f func(float64) float64, a, b, epsilon float64) (float64, bool) {
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, true
	}
	if fb == 0 {
		return b, true
	}
	if math.IsNaN(fa) || math.IsNaN(fb) || (fa > 0) == (fb > 0) {
		return nan, false
	}

	c, fc := b, fb
	d := b - a
	e := d
	for i := 0; i < MaxRootIterations; i++ {
		if (fb > 0) == (fc > 0) {
			// Keep the root bracketed by [b, c].
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		// The root lies between b and c, so stopping when half
		// the bracket is within tol keeps |b - root| < epsilon.
		tol := 2*machEps*math.Abs(b) + 0.25*epsilon
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol || fb == 0 {
			return b, true
		}
		if math.Abs(e) >= tol && math.Abs(fa) > math.Abs(fb) {
			// Attempt interpolation.
			var p, q float64
			s := fb / fa
			if a == c {
				// Secant.
				p = 2 * xm * s
				q = 1 - s
			} else {
				// Inverse quadratic.
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				// Interpolation failed; bisect.
				d = xm
				e = d
			}
		} else {
			// Bounds decreasing too slowly; bisect.
			d = xm
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else {
			b += math.Copysign(tol, xm)
		}
		fb = f(b)
		if math.IsNaN(fb) {
			return b, false
		}
	}
	return b, false
}

// Bisect returns an x in [low, high] such that |f(x)| <= tolerance
// using the bisection method.
//
// f(low) and f(high) must have opposite signs.
//
// If f does not have a root in this interval (e.g., it is
// discontiguous), this returns the X of the apparent discontinuity
// and false.
func Bisect(f func(float64) float64, low, high, tolerance float64) (float64, bool) {
	flow, fhigh := f(low), f(high)
	if -tolerance <= flow && flow <= tolerance {
		return low, true
	}
	if -tolerance <= fhigh && fhigh <= tolerance {
		return high, true
	}
	if Sign(flow) == Sign(fhigh) {
		return nan, false
	}
	for {
		mid := (high + low) / 2
		fmid := f(mid)
		if -tolerance <= fmid && fmid <= tolerance {
			return mid, true
		}
		if Sign(flow) == Sign(fmid) {
			low, flow = mid, fmid
		} else {
			high, fhigh = mid, fmid
		}
		if mid == low || mid == high {
			// Out of floating point precision.
			return mid, false
		}
	}
}

// BisectBool implements the bisection method on a boolean function.
// It returns x1, x2 ∈ [low, high], x1 < x2 such that f(x1) != f(x2)
// and x2 - x1 <= xtol.
//
// If f(low) == f(high), it returns low, high.
func BisectBool(f func(float64) bool, low, high, xtol float64) (x1, x2 float64) {
	flow, fhigh := f(low), f(high)
	if flow == fhigh {
		return low, high
	}
	for {
		if high-low <= xtol {
			return low, high
		}
		mid := (high + low) / 2
		if mid == low || mid == high {
			return low, high
		}
		if f(mid) == flow {
			low = mid
		} else {
			high = mid
		}
	}
}
