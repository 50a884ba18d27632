// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// GeometricDist is the distribution of the number of failures before
// the first success in a Bernoulli process with success probability
// P. Its support is 0, 1, 2, ....
type GeometricDist struct {
	P float64
}

func (d GeometricDist) PMF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	return math.Pow(1-d.P, k) * d.P
}

func (d GeometricDist) CDF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	return -math.Expm1((k + 1) * math.Log1p(-d.P))
}

func (d GeometricDist) SF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 1
	}
	return math.Exp((k + 1) * math.Log1p(-d.P))
}

func (d GeometricDist) InvCDF(y float64) float64 {
	if !(y >= 0 && y <= 1) {
		return nan
	}
	if d.P == 1 || y == 0 {
		return 0
	}
	return math.Max(0, math.Ceil(math.Log1p(-y)/math.Log1p(-d.P)-1))
}

func (d GeometricDist) Step() float64 {
	return 1
}

func (d GeometricDist) Support() (float64, float64) {
	return 0, inf
}

// Rand draws by thresholding an exponential variate:
// Pr[⌊E/λ⌋ >= k] = e^(-kλ) = (1-P)ᵏ for λ = -log(1-P).
func (d GeometricDist) Rand(r Source) float64 {
	return d.draw(source(r))
}

func (d GeometricDist) draw(r Source) float64 {
	if d.P >= 1 {
		return 0
	}
	return math.Floor(r.ExpFloat64() / -math.Log1p(-d.P))
}

func (d GeometricDist) Mean() float64 {
	return (1 - d.P) / d.P
}

func (d GeometricDist) Variance() float64 {
	return (1 - d.P) / (d.P * d.P)
}
