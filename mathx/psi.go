// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Digamma returns ψ(x) = d/dx log Γ(x).
//
// Digamma returns NaN at the poles x = 0, -1, -2, ....
func Digamma(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, -1) {
		return nan
	}
	if x <= 0 {
		if x == math.Floor(x) {
			return nan
		}
		// Reflection: ψ(1-x) - ψ(x) = π cot(πx).
		return Digamma(1-x) - math.Pi/math.Tan(math.Pi*x)
	}
	if math.IsInf(x, 1) {
		return inf
	}

	// Shift x up with ψ(x) = ψ(x+1) - 1/x until the asymptotic
	// expansion is accurate.
	y := 0.0
	for x < 10 {
		y -= 1 / x
		x++
	}
	f := 1 / (x * x)
	t := f * (-1.0/12 + f*(1.0/120+f*(-1.0/252+f*(1.0/240+f*(-1.0/132+f*(691.0/32760))))))
	return y + math.Log(x) - 0.5/x + t
}

// Trigamma returns ψ'(x), the derivative of the digamma function.
//
// Trigamma returns NaN at the poles x = 0, -1, -2, ....
func Trigamma(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, -1) {
		return nan
	}
	if x <= 0 {
		if x == math.Floor(x) {
			return nan
		}
		// Reflection: ψ'(1-x) + ψ'(x) = π² / sin²(πx).
		s := math.Sin(math.Pi * x)
		return -Trigamma(1-x) + math.Pi*math.Pi/(s*s)
	}
	if math.IsInf(x, 1) {
		return 0
	}

	y := 0.0
	for x < 10 {
		y += 1 / (x * x)
		x++
	}
	f := 1 / (x * x)
	t := 1 + 1/(2*x) + f*(1.0/6+f*(-1.0/30+f*(1.0/42+f*(-1.0/30+f*(5.0/66+f*(-691.0/2730))))))
	return y + t/x
}
