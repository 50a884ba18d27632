// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// FindMinBrent finds a local minimum of f in [a, b] using Brent's
// method: golden-section steps, replaced by parabolic interpolation
// when the parabola is well behaved.
//
// The achievable accuracy is limited to about √machEps relative to
// the location of the minimum; epsilon is added on top of that as an
// absolute tolerance. FindMinBrent reports false if it does not
// converge within MaxRootIterations.
func FindMinBrent(f func(float64) float64, a, b, epsilon float64) (float64, bool) {
	const cgold = 0.3819660112501051 // (3 - √5) / 2
	sqrtEps := math.Sqrt(machEps)

	if a > b {
		a, b = b, a
	}
	x := a + cgold*(b-a)
	w, v := x, x
	fx := f(x)
	fw, fv := fx, fx
	var d, e float64

	for i := 0; i < MaxRootIterations; i++ {
		xm := 0.5 * (a + b)
		tol1 := sqrtEps*math.Abs(x) + epsilon/3
		tol2 := 2 * tol1
		if math.Abs(x-xm) <= tol2-0.5*(b-a) {
			return x, true
		}

		golden := true
		if math.Abs(e) > tol1 {
			// Fit a parabola through x, v, w.
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			etemp := e
			e = d
			if !(math.Abs(p) >= math.Abs(0.5*q*etemp) || p <= q*(a-x) || p >= q*(b-x)) {
				// Take the parabolic step.
				d = p / q
				u := x + d
				if u-a < tol2 || b-u < tol2 {
					d = math.Copysign(tol1, xm-x)
				}
				golden = false
			}
		}
		if golden {
			if x >= xm {
				e = a - x
			} else {
				e = b - x
			}
			d = cgold * e
		}

		var u float64
		if math.Abs(d) >= tol1 {
			u = x + d
		} else {
			u = x + math.Copysign(tol1, d)
		}
		fu := f(u)

		if fu <= fx {
			if u >= x {
				a = x
			} else {
				b = x
			}
			v, w, x = w, x, u
			fv, fw, fx = fw, fx, fu
		} else {
			if u < x {
				a = u
			} else {
				b = u
			}
			if fu <= fw || w == x {
				v, w = w, u
				fv, fw = fw, fu
			} else if fu <= fv || v == x || v == w {
				v = u
				fv = fu
			}
		}
	}
	return x, false
}
