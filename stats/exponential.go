// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// ExponentialDist is an exponential distribution with rate Rate (mean
// 1/Rate).
type ExponentialDist struct {
	Rate float64
}

func (e ExponentialDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return e.Rate * math.Exp(-e.Rate*x)
}

func (e ExponentialDist) LogPDF(x float64) float64 {
	if x < 0 {
		return -inf
	}
	return math.Log(e.Rate) - e.Rate*x
}

func (e ExponentialDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-e.Rate * x)
}

func (e ExponentialDist) SF(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Exp(-e.Rate * x)
}

func (e ExponentialDist) InvCDF(p float64) float64 {
	if !(p >= 0 && p <= 1) {
		return nan
	}
	return -math.Log1p(-p) / e.Rate
}

func (e ExponentialDist) Quantile(p float64) float64 {
	return e.InvCDF(p)
}

func (e ExponentialDist) Rand(r Source) float64 {
	return source(r).ExpFloat64() / e.Rate
}

// Sample fills buf with independent draws.
func (e ExponentialDist) Sample(r Source, buf []float64) {
	r = source(r)
	for i := range buf {
		buf[i] = r.ExpFloat64() / e.Rate
	}
}

func (e ExponentialDist) Support() (float64, float64) {
	return 0, inf
}

func (e ExponentialDist) Mean() float64 {
	return 1 / e.Rate
}

func (e ExponentialDist) Median() float64 {
	return math.Ln2 / e.Rate
}

func (e ExponentialDist) Mode() float64 {
	return 0
}

func (e ExponentialDist) Variance() float64 {
	return 1 / (e.Rate * e.Rate)
}
