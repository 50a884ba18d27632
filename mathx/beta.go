// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Beta returns the value of the complete beta function B(a, b).
func Beta(a, b float64) float64 {
	// B(x,y) = Γ(x)Γ(y) / Γ(x+y)
	return math.Exp(Lbeta(a, b))
}

// Lbeta returns log B(a, b).
func Lbeta(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return nan
	}
	return Lgamma(a) + Lgamma(b) - Lgamma(a+b)
}

// BetaInc returns the value of the regularized incomplete beta
// function Iₓ(a, b).
//
// This is not to be confused with the "incomplete beta function",
// which can be computed as BetaInc(x, a, b)*Beta(a, b) or with
// IncompleteBeta.
//
// If x < 0 or x > 1, or a or b is not positive, returns NaN.
func BetaInc(x, a, b float64) float64 {
	// Based on Numerical Recipes in C, section 6.4. This uses the
	// continued fraction definition of I:
	//
	//  (xᵃ*(1-x)ᵇ)/(a*B(a,b)) * (1/(1+(d₁/(1+(d₂/(1+...))))))
	//
	// where B(a,b) is the beta function and
	//
	//  d_{2m+1} = -(a+m)(a+b+m)x/((a+2m)(a+2m+1))
	//  d_{2m}   = m(b-m)x/((a+2m-1)(a+2m))
	if x < 0 || x > 1 || !(a > 0) || !(b > 0) {
		return nan
	}
	bt := 0.0
	if 0 < x && x < 1 {
		// Compute the coefficient before the continued
		// fraction.
		bt = math.Exp(-Lbeta(a, b) + a*math.Log(x) + b*math.Log1p(-x))
	}
	if x < (a+1)/(a+b+2) {
		// Compute continued fraction directly.
		cf, ok := betacf(x, a, b)
		if !ok {
			return nan
		}
		return bt * cf / a
	}
	// Compute continued fraction after symmetry transform.
	cf, ok := betacf(1-x, b, a)
	if !ok {
		return nan
	}
	return 1 - bt*cf/b
}

// IncompleteBeta returns the (unregularized) incomplete beta function
// B(x; a, b) = ∫₀ˣ tᵃ⁻¹ (1-t)ᵇ⁻¹ dt.
func IncompleteBeta(x, a, b float64) float64 {
	return BetaInc(x, a, b) * Beta(a, b)
}

// betacf is the continued fraction component of the regularized
// incomplete beta function Iₓ(a, b). It reports false if the fraction
// did not converge.
func betacf(x, a, b float64) (float64, bool) {
	// The number of terms needed grows like √max(a, b).
	maxIterations := 200 + int(10*math.Sqrt(math.Max(a, b)))
	const epsilon = 3e-14

	raiseZero := func(z float64) float64 {
		if math.Abs(z) < fpMin {
			return fpMin
		}
		return z
	}

	c := 1.0
	d := 1 / raiseZero(1-(a+b)*x/(a+1))
	h := d
	for m := 1; m <= maxIterations; m++ {
		mf := float64(m)

		// Even step of the recurrence.
		numer := mf * (b - mf) * x / ((a + 2*mf - 1) * (a + 2*mf))
		d = 1 / raiseZero(1+numer*d)
		c = raiseZero(1 + numer/c)
		h *= d * c

		// Odd step of the recurrence.
		numer = -(a + mf) * (a + b + mf) * x / ((a + 2*mf) * (a + 2*mf + 1))
		d = 1 / raiseZero(1+numer*d)
		c = raiseZero(1 + numer/c)
		hfac := d * c
		h *= hfac

		if math.Abs(hfac-1) < epsilon {
			return h, true
		}
	}
	return h, false
}
