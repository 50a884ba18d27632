// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestMannWhitneyUTest(t *testing.T) {
	check := func(x1, x2 []float64, u, p float64) {
		t.Helper()
		r, err := MannWhitneyUTest(x1, x2)
		if err != nil {
			t.Errorf("MannWhitneyUTest: unexpected error %v", err)
			return
		}
		if !aeq(u, r.U) || !aeq(p, r.P) {
			t.Errorf("want U=%v P=%v, got %+v", u, p, r)
		}
		if r.N1 != len(x1) || r.N2 != len(x2) {
			t.Errorf("want N1=%d N2=%d, got %+v", len(x1), len(x2), r)
		}
	}

	// Large samples.
	l1 := make([]float64, 500)
	for i := range l1 {
		l1[i] = float64(i * 2)
	}
	l2 := make([]float64, 600)
	for i := range l2 {
		l2[i] = float64(i*2 - 41)
	}
	l3 := append([]float64{}, l2...)
	for i := 0; i < 30; i++ {
		l3[i] = l1[i]
	}
	// For comparing with R's wilcox.test:
	// l1 <- seq(0, 499)*2
	// l2 <- seq(0,599)*2-41
	// l3 <- l2; for (i in 1:30) { l3[i] = l1[i] }

	check(l1, l2, 135250, 0.0049335360814172224)
	check(l2, l1, 135250, 0.0049335360814172224)
	check(l1, l1, 125000, 1)
	check(l1, l3, 134845, 0.0038703814239617884)

	// Small samples use the same approximation.
	s1 := []float64{2, 1, 3, 5}
	s2 := []float64{12, 11, 13, 15}
	check(s1, s1, 8, 1)
	check(s1, s2, 0, 2*StdNormal.CDF(-7.5/math.Sqrt(12)))

	if _, err := MannWhitneyUTest(nil, s1); !errors.Is(err, ErrSampleSize) {
		t.Errorf("empty sample: got %v; want ErrSampleSize", err)
	}
	if _, err := MannWhitneyUTest([]float64{2, 2}, []float64{2, 2, 2}); !errors.Is(err, ErrSamplesEqual) {
		t.Errorf("equal samples: got %v; want ErrSamplesEqual", err)
	}
}

// TestRegimeBoundaryRanks checks that the samplers on either side of
// a regime boundary draw from the same distribution.
func TestRegimeBoundaryRanks(t *testing.T) {
	draw := func(d interface{ Sample(Source, []float64) }, n int, seed uint64) []float64 {
		xs := make([]float64, n)
		d.Sample(NewSource(seed), xs)
		return xs
	}

	gammas := [][2]float64{{1, 1 + 1e-9}, {3, 3 + 1e-9}, {2.5, 2.5 + 1e-9}, {1 - 1e-9, 1}}
	for i, pair := range gammas {
		lo, hi := NewGammaDist(pair[0], 1), NewGammaDist(pair[1], 1)
		if lo.Regime().String() == hi.Regime().String() {
			t.Fatalf("Gamma(%v) and Gamma(%v) share regime %s", pair[0], pair[1], lo.Regime())
		}
		r, err := MannWhitneyUTest(draw(lo, 20000, uint64(400+2*i)), draw(hi, 20000, uint64(401+2*i)))
		if err != nil {
			t.Fatal(err)
		}
		if r.P < 1e-4 {
			t.Errorf("Gamma(%v) %s vs %s: %+v", pair[0], lo.Regime(), hi.Regime(), r)
		}
	}

	if testing.Short() {
		return
	}
	// n·p = 16 exactly takes the rejection sampler; any residue
	// sends it to the waiting-time sampler. A shift of a hundredth
	// in the mean needs millions of draws to show.
	const n = 2000000
	rej, wait := NewBinomialDist(1000, 0.016), NewBinomialDist(1000, 0.016+1e-10)
	if rej.Regime().String() != "rejection" || wait.Regime().String() != "waiting" {
		t.Fatalf("regimes %s and %s; want rejection and waiting", rej.Regime(), wait.Regime())
	}
	r, err := MannWhitneyUTest(draw(rej, n, 410), draw(wait, n, 411))
	if err != nil {
		t.Fatal(err)
	}
	if r.P < 1e-4 {
		t.Errorf("binomial rejection vs waiting: %+v", r)
	}
}
