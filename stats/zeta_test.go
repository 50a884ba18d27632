// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"

	"github.com/aclements/go-randlib/mathx"
)

func TestZetaDist(t *testing.T) {
	d := NewZetaDist(2)
	z2 := math.Pi * math.Pi / 6
	testFunc(t, "Zeta(2).PMF", d.PMF, map[float64]float64{
		0:   0,
		1:   1 / z2,
		2:   0.25 / z2,
		2.9: 0.25 / z2,
		10:  0.01 / z2,
	})
	testDiscreteCDF(t, "Zeta(2).CDF", d)
	checkNear(t, math.Log(d.PMF(7)), d.LogPMF(7), 1e-14, "d.LogPMF(7)")
	checkEqual(t, math.Inf(-1), d.LogPMF(0), "d.LogPMF(0)")

	for _, s := range []float64{1, 0.5, -3, nan, inf} {
		checkEqual(t, 2.0, NewZetaDist(s).Exponent(), "s = %v", s)
	}
	if x := d.Mean(); !math.IsInf(x, 1) {
		t.Errorf("d.Mean() = %v; want +Inf", x)
	}
	if x := NewZetaDist(3).Variance(); !math.IsInf(x, 1) {
		t.Errorf("NewZetaDist(3).Variance() = %v; want +Inf", x)
	}
	checkEqual(t, 1.0, d.Mode(), "d.Mode()")
}

func TestZetaCDFTail(t *testing.T) {
	for _, s := range []float64{1.1, 2, 3.5} {
		d := NewZetaDist(s)
		name := fmt.Sprintf("Zeta(%v)", s)

		// The summed and asymptotic forms agree at the switch.
		lo, hi := d.CDF(1000), d.CDF(1001)
		checkNear(t, d.PMF(1001), hi-lo, 1e-12, "%s: CDF step at 1001", name)

		prev := 0.0
		for _, k := range []float64{1, 10, 999, 1000, 1001, 1e4, 1e6, 1e12} {
			c := d.CDF(k)
			if c < prev || c > 1 {
				t.Errorf("%s.CDF(%v) = %v, previous %v", name, k, c, prev)
			}
			prev = c
		}

		// The tail mass beyond k behaves as k^(1-s)/((s-1)ζ(s)).
		k := 1e4
		want := math.Pow(k, 1-s) / ((s - 1) * mathx.ZetaRiemann(s))
		checkNear(t, want, 1-d.CDF(k), 1e-3*math.Abs(want), "%s: tail", name)
	}
}

func TestZetaSample(t *testing.T) {
	// Moments of the zeta distribution are ratios of zeta values.
	const s = 6.5
	d := NewZetaDist(s)
	z := func(j float64) float64 { return mathx.ZetaRiemann(s-j) / mathx.ZetaRiemann(s) }
	mean, m2, m3, m4 := z(1), z(2), z(3), z(4)
	variance := m2 - mean*mean
	checkNear(t, variance, d.Variance(), 1e-12*math.Abs(variance), "d.Variance()")
	checkNear(t, mean, d.Mean(), 1e-12*math.Abs(mean), "d.Mean()")
	c4 := m4 - 4*mean*m3 + 6*mean*mean*m2 - 3*mean*mean*mean*mean
	kurtosis := c4/(variance*variance) - 3

	const n = 100000
	xs := make([]float64, n)
	r := NewSource(31)
	for i := range xs {
		xs[i] = d.Rand(r)
	}
	checkSampleMoments(t, "Zeta(6.5)", xs, mean, variance, kurtosis)

	// Heavy tails have no moments; check frequencies instead.
	d = NewZetaDist(1.5)
	counts := make(map[float64]int)
	for i := 0; i < n; i++ {
		x := d.Rand(r)
		if x < 1 || x != math.Floor(x) {
			t.Fatalf("Zeta(1.5): draw %v outside the support", x)
		}
		counts[math.Min(x, 4)]++
	}
	for k := 1.0; k <= 3; k++ {
		want := d.PMF(k)
		tol := momentTolerance * math.Sqrt(want*(1-want)/n)
		checkNear(t, want, float64(counts[k])/n, tol, "Zeta(1.5): Pr[X = %v]", k)
	}
}
