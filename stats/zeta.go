// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-randlib/mathx"
)

// ZetaDist is the zeta (discrete Zipf) distribution with exponent s:
//
//	Pr[X = k] = k⁻ˢ / ζ(s),  k = 1, 2, ...
type ZetaDist struct {
	s float64

	zetaS float64 // ζ(s)
	b     float64 // 2^(s-1)
}

// NewZetaDist returns a zeta distribution. See SetExponent.
func NewZetaDist(s float64) *ZetaDist {
	d := new(ZetaDist)
	d.SetExponent(s)
	return d
}

// SetExponent sets the exponent. Values that are not greater than 1
// are replaced by 2.
func (d *ZetaDist) SetExponent(s float64) {
	if !(s > 1) || math.IsInf(s, 1) {
		s = 2
	}
	d.s = s
	d.zetaS = mathx.ZetaRiemann(s)
	d.b = math.Exp2(s - 1)
}

// Exponent returns s.
func (d *ZetaDist) Exponent() float64 { return d.s }

func (d *ZetaDist) PMF(k float64) float64 {
	k = math.Floor(k)
	if k < 1 {
		return 0
	}
	return math.Pow(k, -d.s) / d.zetaS
}

func (d *ZetaDist) LogPMF(k float64) float64 {
	k = math.Floor(k)
	if k < 1 {
		return -inf
	}
	return -d.s*math.Log(k) - math.Log(d.zetaS)
}

// CDF returns H(k, s)/ζ(s), where H is the generalized harmonic
// number. Beyond k = 1000 the tail Σ_{i>k} i⁻ˢ is taken from the
// Euler-Maclaurin formula instead.
func (d *ZetaDist) CDF(k float64) float64 {
	k = math.Floor(k)
	if k < 1 {
		return 0
	}
	if k <= 1000 {
		return math.Min(1, mathx.HarmonicNumber(d.s, int(k))/d.zetaS)
	}
	m := k + 1
	tail := math.Pow(m, 1-d.s)/(d.s-1) + math.Pow(m, -d.s)/2 + d.s*math.Pow(m, -d.s-1)/12
	return math.Max(0, 1-tail/d.zetaS)
}

func (d *ZetaDist) Step() float64 {
	return 1
}

func (d *ZetaDist) Support() (float64, float64) {
	return 1, inf
}

// Rand uses the rejection algorithm of Devroye (1986), p. 551.
func (d *ZetaDist) Rand(r Source) float64 {
	r = source(r)
	sm1 := d.s - 1
	for i := 0; i < maxRejectionIterations; i++ {
		u := uniformOpen(r)
		v := r.Float64()
		x := math.Floor(math.Pow(u, -1/sm1))
		if math.IsInf(x, 1) || x < 1 {
			continue
		}
		t := math.Pow(1+1/x, sm1)
		if v*x*(t-1)/(d.b-1) <= t/d.b {
			return x
		}
	}
	return rejectionExhausted("zeta")
}

// Mean returns ζ(s-1)/ζ(s) for s > 2 and +Inf otherwise.
func (d *ZetaDist) Mean() float64 {
	if d.s <= 2 {
		return inf
	}
	return mathx.ZetaRiemann(d.s-1) / d.zetaS
}

// Variance is finite only for s > 3.
func (d *ZetaDist) Variance() float64 {
	if d.s <= 3 {
		return inf
	}
	z1 := mathx.ZetaRiemann(d.s - 1)
	z2 := mathx.ZetaRiemann(d.s - 2)
	return (d.zetaS*z2 - z1*z1) / (d.zetaS * d.zetaS)
}

func (d *ZetaDist) Mode() float64 {
	return 1
}
