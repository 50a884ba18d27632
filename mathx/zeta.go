// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// evenBernoulli holds the Bernoulli numbers B₂, B₄, ..., B₁₄.
var evenBernoulli = [...]float64{
	1.0 / 6,
	-1.0 / 30,
	1.0 / 42,
	-1.0 / 30,
	5.0 / 66,
	-691.0 / 2730,
	7.0 / 6,
}

// ZetaRiemann returns the Riemann zeta function ζ(s).
//
// For s >= 0 this uses Euler-Maclaurin summation; for s < 0 it applies
// the functional equation. ζ(1) is +Inf.
func ZetaRiemann(s float64) float64 {
	switch {
	case math.IsNaN(s):
		return nan
	case s == 1:
		return inf
	case math.IsInf(s, 1):
		return 1
	case math.IsInf(s, -1):
		return nan
	case s < 0:
		if s/2 == math.Floor(s/2) {
			// Trivial zeros.
			return 0
		}
		// ζ(s) = 2ˢ πˢ⁻¹ sin(πs/2) Γ(1-s) ζ(1-s)
		lg, sign := math.Lgamma(1 - s)
		y := math.Exp(s*math.Ln2 + (s-1)*math.Log(math.Pi) + lg)
		return float64(sign) * y * math.Sin(math.Pi*s/2) * ZetaRiemann(1-s)
	}
	if s > 60 {
		// 2⁻ˢ is below rounding.
		return 1 + math.Pow(2, -s)
	}

	const n = 10
	N := float64(n)
	sum := 0.0
	for k := 1; k < n; k++ {
		sum += math.Pow(float64(k), -s)
	}
	sum += math.Pow(N, 1-s)/(s-1) + 0.5*math.Pow(N, -s)

	// Σⱼ B₂ⱼ/(2j)! · s(s+1)···(s+2j-2) · N^(1-s-2j)
	term := s * math.Pow(N, -s-1)
	fact := 2.0
	for j, b := range evenBernoulli {
		sum += b / fact * term
		jf := float64(j + 1)
		term *= (s + 2*jf - 1) * (s + 2*jf) / (N * N)
		fact *= (2*jf + 1) * (2*jf + 2)
	}
	return sum
}

// HarmonicNumber returns the generalized harmonic number
// Σᵢ₌₁ⁿ i⁻ˢ.
func HarmonicNumber(s float64, n int) float64 {
	if n < 1 {
		return 0
	}
	if s == 1 {
		y := 0.0
		for i := n; i >= 1; i-- {
			y += 1 / float64(i)
		}
		return y
	}
	// Sum smallest terms first.
	y := 0.0
	for i := n; i >= 1; i-- {
		y += math.Pow(float64(i), -s)
	}
	return y
}

// BernoulliNumber returns the Bernoulli number Bₙ (with B₁ = +1/2),
// computed by the Akiyama-Tanigawa algorithm.
//
// The algorithm loses precision quickly; results for n beyond about 30
// should not be trusted.
func BernoulliNumber(n int) float64 {
	if n < 0 {
		return nan
	}
	if n == 1 {
		return 0.5
	}
	if n > 1 && n%2 == 1 {
		return 0
	}
	a := make([]float64, n+1)
	for m := 0; m <= n; m++ {
		a[m] = 1 / float64(m+1)
		for j := m; j >= 1; j-- {
			a[j-1] = float64(j) * (a[j-1] - a[j])
		}
	}
	return a[0]
}
