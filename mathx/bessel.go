// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// ModifiedBesselFirstKind returns Iᵥ(x), the modified Bessel function
// of the first kind of order nu.
//
// Negative x is only defined for integral nu, where
// Iₙ(-x) = (-1)ⁿ Iₙ(x); otherwise ModifiedBesselFirstKind returns
// NaN.
func ModifiedBesselFirstKind(x, nu float64) float64 {
	if math.IsNaN(x) || math.IsNaN(nu) {
		return nan
	}
	integral := nu == math.Floor(nu)
	if integral && nu < 0 {
		// I₋ₙ = Iₙ for integral n.
		nu = -nu
	}
	if x < 0 {
		if !integral {
			return nan
		}
		y := ModifiedBesselFirstKind(-x, nu)
		if math.Mod(nu, 2) != 0 {
			y = -y
		}
		return y
	}
	if x == 0 {
		if nu == 0 {
			return 1
		}
		if nu > 0 {
			return 0
		}
		return inf
	}
	if math.IsInf(x, 1) {
		return inf
	}
	if x > 50 && x > nu*nu {
		return besselIAsymptotic(x, nu)
	}
	return besselISeries(x, nu)
}

// besselISeries sums
//
//	Iᵥ(x) = Σₖ (x/2)²ᵏ⁺ᵛ / (k! Γ(k+ν+1))
func besselISeries(x, nu float64) float64 {
	const maxTerms = 10000
	half := x / 2
	var t float64
	if nu > -1 {
		t = math.Exp(nu*math.Log(half) - Lgamma(nu+1))
	} else {
		t = math.Pow(half, nu) / math.Gamma(nu+1)
	}
	sum := t
	q := half * half
	for k := 1; k < maxTerms; k++ {
		t *= q / (float64(k) * (float64(k) + nu))
		sum += t
		if math.Abs(t) < math.Abs(sum)*machEps {
			break
		}
	}
	return sum
}

// besselIAsymptotic evaluates the large-x expansion
//
//	Iᵥ(x) ~ eˣ/√(2πx) (1 - (μ-1)/(8x) + (μ-1)(μ-9)/(2!(8x)²) - ...)
//
// with μ = 4ν².
func besselIAsymptotic(x, nu float64) float64 {
	mu := 4 * nu * nu
	term, sum := 1.0, 1.0
	for k := 1; k < 30; k++ {
		odd := float64(2*k - 1)
		next := -term * (mu - odd*odd) / (float64(k) * 8 * x)
		if math.Abs(next) >= math.Abs(term) {
			// The series is asymptotic; stop once terms grow.
			break
		}
		term = next
		sum += term
		if math.Abs(term) < machEps*math.Abs(sum) {
			break
		}
	}
	if x > 700 {
		// Avoid overflowing eˣ before dividing.
		return math.Exp(x-0.5*math.Log(2*math.Pi*x)) * sum
	}
	return math.Exp(x) / math.Sqrt(2*math.Pi*x) * sum
}
