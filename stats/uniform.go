// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// UniformDist is a continuous uniform distribution on [A, B].
type UniformDist struct {
	A, B float64
}

// StdUniform is the uniform distribution on [0, 1].
var StdUniform = UniformDist{0, 1}

func (u UniformDist) PDF(x float64) float64 {
	if x < u.A || x > u.B {
		return 0
	}
	return 1 / (u.B - u.A)
}

func (u UniformDist) CDF(x float64) float64 {
	if x <= u.A {
		return 0
	} else if x >= u.B {
		return 1
	}
	return (x - u.A) / (u.B - u.A)
}

func (u UniformDist) InvCDF(p float64) float64 {
	if !(p >= 0 && p <= 1) {
		return nan
	}
	return u.A + p*(u.B-u.A)
}

func (u UniformDist) Quantile(p float64) float64 {
	return u.InvCDF(p)
}

func (u UniformDist) Rand(r Source) float64 {
	return u.A + source(r).Float64()*(u.B-u.A)
}

func (u UniformDist) Support() (float64, float64) {
	return u.A, u.B
}

func (u UniformDist) Mean() float64 {
	return (u.A + u.B) / 2
}

func (u UniformDist) Variance() float64 {
	w := u.B - u.A
	return w * w / 12
}
