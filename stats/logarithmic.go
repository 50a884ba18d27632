// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// LogarithmicDist is the logarithmic series distribution with
// parameter p:
//
//	Pr[X = k] = -pᵏ / (k log(1-p)),  k = 1, 2, ...
type LogarithmicDist struct {
	p float64

	// logQ is log(1-p).
	logQ float64
}

// NewLogarithmicDist returns a logarithmic distribution. See
// SetProbability.
func NewLogarithmicDist(p float64) *LogarithmicDist {
	d := new(LogarithmicDist)
	d.SetProbability(p)
	return d
}

// SetProbability sets p. Values outside (0, 1) are replaced by 0.5.
func (d *LogarithmicDist) SetProbability(p float64) {
	if !(p > 0 && p < 1) {
		p = 0.5
	}
	d.p = p
	d.logQ = math.Log1p(-p)
}

// P returns the parameter p.
func (d *LogarithmicDist) P() float64 { return d.p }

func (d *LogarithmicDist) PMF(k float64) float64 {
	k = math.Floor(k)
	if k < 1 {
		return 0
	}
	return -math.Exp(k*math.Log(d.p)) / (k * d.logQ)
}

// CDF sums the PMF. Terms past the point where they stop changing
// the sum are skipped.
func (d *LogarithmicDist) CDF(k float64) float64 {
	k = math.Floor(k)
	if k < 1 {
		return 0
	}
	sum := 0.0
	pk := 1.0
	for i := 1.0; i <= k; i++ {
		pk *= d.p
		term := pk / i
		sum += term
		if term < sum*machEpsilon {
			break
		}
	}
	return math.Min(1, -sum/d.logQ)
}

const machEpsilon = 0x1p-52

func (d *LogarithmicDist) Step() float64 {
	return 1
}

func (d *LogarithmicDist) Support() (float64, float64) {
	return 1, inf
}

// Rand uses Kemp's (1981) algorithm LK.
func (d *LogarithmicDist) Rand(r Source) float64 {
	r = source(r)
	for i := 0; i < maxRejectionIterations; i++ {
		v := r.Float64()
		if v >= d.p {
			return 1
		}
		q := -math.Expm1(d.logQ * r.Float64())
		if v <= q*q {
			x := math.Floor(1 + math.Log(v)/math.Log(q))
			if x < 1 || math.IsInf(x, 0) || math.IsNaN(x) {
				continue
			}
			return x
		}
		if v >= q {
			return 1
		}
		return 2
	}
	return rejectionExhausted("logarithmic")
}

func (d *LogarithmicDist) Mean() float64 {
	return -d.p / ((1 - d.p) * d.logQ)
}

func (d *LogarithmicDist) Variance() float64 {
	q := 1 - d.p
	return -d.p * (d.p + d.logQ) / (q * q * d.logQ * d.logQ)
}

func (d *LogarithmicDist) Mode() float64 {
	return 1
}
