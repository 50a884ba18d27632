// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

const (
	// DefaultIntegralEpsilon is the usual absolute tolerance
	// passed to Integral.
	DefaultIntegralEpsilon = 1e-11

	// DefaultIntegralDepth is the usual recursion depth passed to
	// Integral.
	DefaultIntegralDepth = 10
)

// Integral returns ∫ₐᵇ f(x) dx computed by adaptive Simpson
// quadrature.
//
// The interval is recursively bisected. A subinterval is accepted
// when the difference between its Simpson estimate and the sum of the
// estimates of its halves is within 15·epsilon, where epsilon is
// halved at every level. Beyond maxDepth levels the finer estimate is
// accepted as is, so sharply peaked or oscillatory integrands may be
// integrated inaccurately without any indication.
//
// If a > b, the result is negated. Non-finite bounds give NaN.
func Integral(f func(float64) float64, a, b, epsilon float64, maxDepth int) float64 {
	if !isFinite(a) || !isFinite(b) {
		return nan
	}
	if a == b {
		return 0
	}
	if a > b {
		return -Integral(f, b, a, epsilon, maxDepth)
	}
	c := (a + b) / 2
	fa, fb, fc := f(a), f(b), f(c)
	whole := (b - a) / 6 * (fa + 4*fc + fb)
	return adaptiveSimpson(f, a, b, epsilon, whole, fa, fb, fc, maxDepth)
}

func adaptiveSimpson(f func(float64) float64, a, b, epsilon, whole, fa, fb, fc float64, depth int) float64 {
	c := (a + b) / 2
	h := b - a
	fd, fe := f((a+c)/2), f((c+b)/2)
	left := h / 12 * (fa + 4*fd + fc)
	right := h / 12 * (fc + 4*fe + fb)
	delta := left + right - whole
	if depth <= 0 || math.Abs(delta) <= 15*epsilon {
		// Richardson extrapolation.
		return left + right + delta/15
	}
	return adaptiveSimpson(f, a, c, epsilon/2, left, fa, fc, fd, depth-1) +
		adaptiveSimpson(f, c, b, epsilon/2, right, fc, fb, fe, depth-1)
}
