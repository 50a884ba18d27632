// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Sign returns the sign of x: -1 if x < 0, 0 if x == 0, 1 if x > 0.
// If x is NaN, it returns NaN.
func Sign(x float64) float64 {
	if x == 0 {
		return 0
	} else if x < 0 {
		return -1
	} else if x > 0 {
		return 1
	}
	return nan
}

// AreClose reports whether a and b agree to within a relative
// tolerance of eps, that is |a - b| <= eps * max(|a|, |b|).
//
// Identical values (including infinities of the same sign) are always
// close. NaN is never close to anything.
func AreClose(a, b, eps float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= eps*math.Max(math.Abs(a), math.Abs(b))
}

// LinearInterpolation returns the value at x of the line through
// (a, fa) and (b, fb).
func LinearInterpolation(a, b, fa, fb, x float64) float64 {
	if a == b {
		return fa
	}
	return fa + (fb-fa)*(x-a)/(b-a)
}
