// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-randlib/mathx"
)

// BetaDist is a beta distribution on [0, 1] with shape parameters
// Alpha and Beta. It is the conjugate prior of the binomial success
// probability.
type BetaDist struct {
	Alpha, Beta float64
}

func (b BetaDist) PDF(x float64) float64 {
	switch {
	case x < 0 || x > 1:
		return 0
	case x == 0:
		return b.edgeDensity(b.Alpha, b.Beta)
	case x == 1:
		return b.edgeDensity(b.Beta, b.Alpha)
	}
	return math.Exp(b.LogPDF(x))
}

// edgeDensity is the density at the end of [0, 1] where the exponent
// is a-1.
func (b BetaDist) edgeDensity(a, other float64) float64 {
	switch {
	case a < 1:
		return inf
	case a == 1:
		return 1 / mathx.Beta(1, other)
	}
	return 0
}

func (b BetaDist) LogPDF(x float64) float64 {
	if x <= 0 || x >= 1 {
		return math.Log(b.PDF(x))
	}
	return (b.Alpha-1)*math.Log(x) + (b.Beta-1)*math.Log1p(-x) - mathx.Lbeta(b.Alpha, b.Beta)
}

func (b BetaDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	} else if x >= 1 {
		return 1
	}
	return mathx.BetaInc(x, b.Alpha, b.Beta)
}

// Quantile inverts the CDF by bisection.
func (b BetaDist) Quantile(p float64) float64 {
	return InvCDF(b)(p)
}

func (b BetaDist) Support() (float64, float64) {
	return 0, 1
}

// Rand draws X/(X+Y) for independent X ~ Gamma(Alpha, 1) and
// Y ~ Gamma(Beta, 1).
func (b BetaDist) Rand(r Source) float64 {
	r = source(r)
	x := NewGammaDist(b.Alpha, 1).Rand(r)
	y := NewGammaDist(b.Beta, 1).Rand(r)
	return x / (x + y)
}

func (b BetaDist) Mean() float64 {
	return b.Alpha / (b.Alpha + b.Beta)
}

func (b BetaDist) Variance() float64 {
	s := b.Alpha + b.Beta
	return b.Alpha * b.Beta / (s * s * (s + 1))
}

// Mode returns the mode for Alpha, Beta > 1, and NaN otherwise.
func (b BetaDist) Mode() float64 {
	if b.Alpha <= 1 || b.Beta <= 1 {
		return nan
	}
	return (b.Alpha - 1) / (b.Alpha + b.Beta - 2)
}
