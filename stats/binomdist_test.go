// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"go.uber.org/mock/gomock"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestBinomialDist(t *testing.T) {
	dist := NewBinomialDist(5, 0.2)
	testFunc(t, "Binomial(5, 0.2).PMF", dist.PMF,
		map[float64]float64{
			-1000: 0,
			-1:    0,
			0:     0.32768,
			1:     0.4096,
			2:     0.2048,
			3:     0.0512,
			4:     0.0064,
			5:     math.Pow(dist.P(), 5),
			6:     0,
			1000:  0,
		})
	testDiscreteCDF(t, "Binomial(5, 0.2).CDF", dist)

	dist = NewBinomialDist(30, 0.5)
	norm := dist.NormalApprox()
	for k := 10; k <= 20; k++ {
		b := dist.PMF(float64(k))
		n := norm.CDF(float64(k)+0.5) - norm.CDF(float64(k)-0.5)

		// The normal approximation isn't actually very close,
		// even with high N and P near 0.5, so we only check
		// the center of the distribution and we're pretty
		// lax.
		err := math.Abs(b/n - 1)
		if err > 0.01 {
			t.Errorf("want %v ≅ %v at %d", b, n, k)
		}
	}
}

func TestBinomialSetParameters(t *testing.T) {
	d := NewBinomialDist(0, 0.3)
	if d.N() != 1 {
		t.Errorf("NewBinomialDist(0, 0.3).N() = %d; want 1", d.N())
	}
	d.SetParameters(-5, 0.3)
	if d.N() != 1 {
		t.Errorf("SetParameters(-5, 0.3): N() = %d; want 1", d.N())
	}

	for _, tc := range []struct{ p, want float64 }{
		{nan, 0.5}, {-0.1, 0}, {1.5, 1},
	} {
		d.SetParameters(10, tc.p)
		if d.P() != tc.want {
			t.Errorf("SetParameters(10, %v): P() = %v; want %v", tc.p, d.P(), tc.want)
		}
	}
}

func TestBinomialRegime(t *testing.T) {
	testCases := []struct {
		n    int
		p    float64
		want string
	}{
		{1, 0.3, "bernoulli-sum"},
		{3, 0.01, "bernoulli-sum"},
		{5, 0.5, "bernoulli-sum"},
		{10, 0.45, "bernoulli-sum"},
		{150, 0.5 + 1e-9, "bernoulli-sum"},
		{12, 0.4, "waiting"},
		{1000, 0.001, "waiting"},
		{1000, 0.999, "waiting"},
		{200, 0.0537, "waiting"},
		// npFloor = 15 with a residue.
		{1000, 0.0155, "waiting"},
		{1000, 0.013, "rejection"},
		{1000, 0.02, "rejection"},
		{1000, 0.3, "rejection"},
		{1000, 0.7, "rejection"},
		{1000, 0.3037, "rejection"},
		{300, 0.5, "rejection"},
	}
	for _, tc := range testCases {
		d := NewBinomialDist(tc.n, tc.p)
		if got := d.Regime().String(); got != tc.want {
			t.Errorf("Binomial(%d, %v).Regime() = %s; want %s", tc.n, tc.p, got, tc.want)
		}
	}
	if got := binomialRegime(7).String(); got != "binomialRegime(7)" {
		t.Errorf("binomialRegime(7).String() = %s", got)
	}
}

func TestBinomialReference(t *testing.T) {
	for _, tc := range []struct {
		n int
		p float64
	}{{5, 0.2}, {40, 0.9}, {1000, 0.3037}, {5000, 0.01}} {
		d := NewBinomialDist(tc.n, tc.p)
		ref := distuv.Binomial{N: float64(tc.n), P: tc.p}
		name := fmt.Sprintf("Binomial(%d, %v)", tc.n, tc.p)

		sum := 0.0
		for k := 0; k <= tc.n; k++ {
			x := float64(k)
			pmf := d.PMF(x)
			sum += pmf
			if want := ref.Prob(x); math.Abs(want-pmf) > 1e-12 {
				t.Errorf("%s.PMF(%d) = %v; want %v", name, k, pmf, want)
			}
			if want, got := ref.CDF(x), d.CDF(x); math.Abs(want-got) > 1e-10 {
				t.Errorf("%s.CDF(%d) = %v; want %v", name, k, got, want)
			}
			if got := d.CDF(x) + d.SF(x); math.Abs(got-1) > 1e-10 {
				t.Errorf("%s: CDF+SF at %d = %v", name, k, got)
			}
			if pmf > 1e-300 {
				if got := d.LogPMF(x); math.Abs(got-math.Log(pmf)) > 1e-9 {
					t.Errorf("%s.LogPMF(%d) = %v; want %v", name, k, got, math.Log(pmf))
				}
			}
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("%s: PMF sums to %v", name, sum)
		}
		for _, m := range []struct {
			what      string
			want, got float64
		}{
			{"Mean", ref.Mean(), d.Mean()},
			{"Variance", ref.Variance(), d.Variance()},
			{"Skewness", ref.Skewness(), d.Skewness()},
			{"ExcessKurtosis", ref.ExKurtosis(), d.ExcessKurtosis()},
		} {
			if !aeq(m.want, m.got) {
				t.Errorf("%s.%s() = %v; want %v", name, m.what, m.got, m.want)
			}
		}
	}
}

func TestBinomialSummaries(t *testing.T) {
	d := NewBinomialDist(10, 0.3)
	lo, hi := d.Support()
	one, zero := NewBinomialDist(7, 1), NewBinomialDist(7, 0)
	for _, tc := range []struct {
		name      string
		got, want float64
	}{
		{"Median", d.Median(), 3},
		{"Mode", d.Mode(), 3},
		{"Binomial(10, 1).Mode", NewBinomialDist(10, 1).Mode(), 10},
		{"Quantile(0.5)", d.Quantile(0.5), 3},
		{"Quantile(0)", d.Quantile(0), 0},
		{"Quantile(1)", d.Quantile(1), 10},
		{"Support lo", lo, 0},
		{"Support hi", hi, 10},

		// The degenerate cases.
		{"Binomial(7, 0).PMF(0)", zero.PMF(0), 1},
		{"Binomial(7, 0).PMF(1)", zero.PMF(1), 0},
		{"Binomial(7, 0).CDF(0)", zero.CDF(0), 1},
		{"Binomial(7, 0).SF(0)", zero.SF(0), 0},
		{"Binomial(7, 0).LogPMF(3)", zero.LogPMF(3), math.Inf(-1)},
		{"Binomial(7, 1).PMF(7)", one.PMF(7), 1},
		{"Binomial(7, 1).CDF(6)", one.CDF(6), 0},
		{"Binomial(7, 1).SF(6)", one.SF(6), 1},
	} {
		if tc.got != tc.want {
			t.Errorf("%s = %v; want %v", tc.name, tc.got, tc.want)
		}
	}
}

// binomialCases are the parameters whose samplers are checked
// against the population. The rejection cases at npFloor 17, 24 and
// 30, with and without a rounding residue, are where an envelope that
// fails to cover the mass function near the mode shows up as a shifted
// mean.
var binomialCases = []struct {
	n int
	p float64
}{
	{5, 0.5},
	{12, 0.4},
	{1000, 0.001},
	{1000, 0.999},
	{200, 0.0537},
	{1000, 0.013},
	{1000, 0.017},
	{1000, 0.0245},
	{1000, 0.03},
	{3000, 0.01005},
	{300, 0.94},
	{1000, 0.3},
	{1000, 0.7},
	{1000, 0.3037},
	{50000, 0.6123},
}

func TestBinomialSampleMoments(t *testing.T) {
	const n = 100000
	for i, tc := range binomialCases {
		d := NewBinomialDist(tc.n, tc.p)
		xs := make([]float64, n)
		d.Sample(NewSource(uint64(200+i)), xs)
		name := fmt.Sprintf("Binomial(%d, %v) %s", tc.n, tc.p, d.Regime())
		checkSampleMoments(t, name, xs, d.Mean(), d.Variance(), d.ExcessKurtosis())

		// The empirical CDF tracks the CDF near the center.
		mu, sd := d.Mean(), math.Sqrt(d.Variance())
		for _, z := range []float64{-1, 0, 1} {
			k := math.Floor(mu + z*sd)
			want := d.CDF(k)
			count := 0
			for _, x := range xs {
				if x <= k {
					count++
				}
			}
			got := float64(count) / n
			tol := momentTolerance * math.Sqrt(want*(1-want)/n)
			if math.Abs(got-want) > tol {
				t.Errorf("%s: Pr[X <= %v] = %v, want %v ± %v", name, k, got, want, tol)
			}
		}

		for _, x := range xs {
			if x < 0 || x > float64(tc.n) || x != math.Floor(x) {
				t.Fatalf("%s: draw %v outside the support", name, x)
			}
		}
	}
}

// TestBinomialRejectionHistogram draws enough variates at moderate
// n·p for a bias of a few hundredths in the mean to stand out, and
// compares the histogram with the mass function.
func TestBinomialRejectionHistogram(t *testing.T) {
	if testing.Short() {
		t.Skip("long sampling test")
	}
	const n = 4000000
	for i, tc := range []struct {
		n int
		p float64
	}{
		{1000, 0.016},
		{1000, 0.017},
		{1000, 0.0245},
		{1000, 0.03},
		{300, 0.06},
		{2000, 0.0123},
	} {
		d := NewBinomialDist(tc.n, tc.p)
		name := fmt.Sprintf("Binomial(%d, %v)", tc.n, tc.p)
		if d.Regime().String() != "rejection" {
			t.Fatalf("%s: regime %s; want rejection", name, d.Regime())
		}
		counts := make([]int, tc.n+1)
		ks := make([]int, n)
		d.SampleInts(NewSource(uint64(300+i)), ks)
		sum := 0.0
		for _, k := range ks {
			counts[k]++
			sum += float64(k)
		}

		mean, se := sum/n, math.Sqrt(d.Variance()/n)
		if math.Abs(mean-d.Mean()) > momentTolerance*se {
			t.Errorf("%s: sample mean %v, want %v ± %v", name, mean, d.Mean(), momentTolerance*se)
		}

		// Pearson's χ² over the cells expecting at least 20 draws,
		// with the rest pooled into one cell.
		chi2, df := 0.0, -1
		restObs, restExp := 0.0, 0.0
		for k, c := range counts {
			e := n * d.PMF(float64(k))
			if e < 20 {
				restObs += float64(c)
				restExp += e
				continue
			}
			chi2 += (float64(c) - e) * (float64(c) - e) / e
			df++
		}
		if restExp > 0 {
			chi2 += (restObs - restExp) * (restObs - restExp) / restExp
			df++
		}
		if limit := float64(df) + momentTolerance*math.Sqrt(2*float64(df)); chi2 > limit {
			t.Errorf("%s: χ² = %v on %d degrees of freedom, want < %v", name, chi2, df, limit)
		}
	}
}

// TestBinomialRejectionEnvelope checks that the rejection envelope
// lies above the mass function of Binomial(n, pFloor) over the whole
// support, and that its triangle, which is accepted without a test,
// lies below it.
func TestBinomialRejectionEnvelope(t *testing.T) {
	params := [][2]float64{
		{40, 0.35}, {201, 0.5}, {300, 0.5}, {300, 0.06},
		{1000, 0.3}, {20000, 0.001}, {50000, 0.3877},
	}
	for m := 13; m <= 80; m++ {
		params = append(params, [2]float64{1000, float64(m) / 1000})
	}
	for _, pp := range params {
		d := NewBinomialDist(int(pp[0]), pp[1])
		if d.Regime().String() != "rejection" {
			continue
		}
		for k := 0; k <= d.n; k++ {
			x := float64(k)
			mass := math.Exp(d.logProbFloor(x) - d.logPeak)
			hatLo, triLo := d.envelope(x)
			hatHi, triHi := d.envelope(x + 1)
			tri := math.Max(triLo, triHi)
			if x <= d.xm && d.xm <= x+1 {
				tri = 1
			}
			if mass > math.Min(hatLo, hatHi)*(1+1e-9) {
				t.Errorf("Binomial(%v, %v): mass %v at %d above the envelope %v", pp[0], pp[1], mass, k, math.Min(hatLo, hatHi))
			}
			if tri > mass*(1+1e-9) {
				t.Errorf("Binomial(%v, %v): triangle %v at %d above the mass %v", pp[0], pp[1], tri, k, mass)
			}
		}
	}
}

func TestBinomialSampleInts(t *testing.T) {
	d := NewBinomialDist(1000, 0.3037)
	xs := make([]float64, 100)
	ks := make([]int, 100)
	d.Sample(NewSource(21), xs)
	d.SampleInts(NewSource(21), ks)
	r := NewSource(21)
	for i := range xs {
		if xs[i] != float64(ks[i]) {
			t.Fatalf("draw %d: Sample gave %v, SampleInts gave %d", i, xs[i], ks[i])
		}
		if got := d.Rand(r); got != xs[i] {
			t.Fatalf("draw %d: Rand gave %v, Sample gave %v", i, got, xs[i])
		}
	}
}

func TestBinomialScriptedDraws(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("bernoulli-sum", func(t *testing.T) {
		src := NewMockSource(ctrl)
		var calls []any
		for _, u := range []float64{0.1, 0.7, 0.2, 0.9, 0.3} {
			calls = append(calls, src.EXPECT().Float64().Return(u))
		}
		gomock.InOrder(calls...)
		if got := NewBinomialDist(5, 0.5).Rand(src); got != 3 {
			t.Errorf("got %v; want 3", got)
		}
	})

	// Waiting times of 200, 300 and 600 trials: two successes fit
	// in 1000.
	waits := func(src *MockSource) {
		gomock.InOrder(
			src.EXPECT().ExpFloat64().Return(0.2),
			src.EXPECT().ExpFloat64().Return(0.3),
			src.EXPECT().ExpFloat64().Return(0.6),
		)
	}

	t.Run("waiting", func(t *testing.T) {
		src := NewMockSource(ctrl)
		waits(src)
		if got := NewBinomialDist(1000, 0.001).Rand(src); got != 2 {
			t.Errorf("got %v; want 2", got)
		}
	})

	t.Run("waiting-reflected", func(t *testing.T) {
		src := NewMockSource(ctrl)
		waits(src)
		if got := NewBinomialDist(1000, 0.999).Rand(src); got != 998 {
			t.Errorf("got %v; want 998", got)
		}
	})

	t.Run("degenerate", func(t *testing.T) {
		// No expectations: any draw fails the test.
		src := NewMockSource(ctrl)
		if got := NewBinomialDist(20, 0).Rand(src); got != 0 {
			t.Errorf("Binomial(20, 0) drew %v", got)
		}
		if got := NewBinomialDist(20, 1).Rand(src); got != 20 {
			t.Errorf("Binomial(20, 1) drew %v", got)
		}
		ks := make([]int, 3)
		NewBinomialDist(20, 1).SampleInts(src, ks)
		for _, k := range ks {
			if k != 20 {
				t.Errorf("Binomial(20, 1).SampleInts drew %v", ks)
				break
			}
		}
	})
}

func TestBinomialEstimators(t *testing.T) {
	d := NewBinomialDist(10, 0.5)
	if err := d.FitProbabilityMLE([]float64{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if !aeq(0.2, d.P()) || d.N() != 10 {
		t.Errorf("MLE of {1, 2, 3}: N, P = %d, %v; want 10, 0.2", d.N(), d.P())
	}

	if err := d.FitProbabilityMM([]float64{5, 5}); err != nil {
		t.Fatal(err)
	}
	if d.P() != 0.5 {
		t.Errorf("MM of {5, 5}: P = %v; want 0.5", d.P())
	}

	post, err := d.FitProbabilityBayes([]float64{2, 3}, BetaDist{Alpha: 1, Beta: 1})
	if err != nil {
		t.Fatal(err)
	}
	if want := (BetaDist{Alpha: 6, Beta: 16}); post != want {
		t.Errorf("posterior %+v; want %+v", post, want)
	}
	if !aeq(6.0/22, d.P()) {
		t.Errorf("Bayes P = %v; want %v", d.P(), 6.0/22)
	}

	for _, xs := range [][]float64{nil, {11}, {1.5}, {-1}, {2, nan}} {
		d.SetParameters(10, 0.4)
		if err := d.FitProbabilityMLE(xs); !errors.Is(err, ErrInvalidSample) {
			t.Errorf("FitProbabilityMLE(%v) = %v; want ErrInvalidSample", xs, err)
		}
		if d.P() != 0.4 {
			t.Errorf("FitProbabilityMLE(%v) changed P to %v", xs, d.P())
		}

		prior := BetaDist{Alpha: 2, Beta: 3}
		post, err := d.FitProbabilityBayes(xs, prior)
		if !errors.Is(err, ErrInvalidSample) {
			t.Errorf("FitProbabilityBayes(%v) = %v; want ErrInvalidSample", xs, err)
		}
		if post != prior || d.P() != 0.4 {
			t.Errorf("FitProbabilityBayes(%v) gave %+v, P %v; want the prior and P 0.4", xs, post, d.P())
		}
	}

	// A large sample recovers the parameter.
	truth := NewBinomialDist(1000, 0.3037)
	xs := make([]float64, 10000)
	truth.Sample(NewSource(22), xs)
	d.SetParameters(1000, 0.5)
	if err := d.FitProbabilityMLE(xs); err != nil {
		t.Fatal(err)
	}
	if tol := 5 * math.Sqrt(0.3037*0.6963/1e7); math.Abs(d.P()-0.3037) > tol {
		t.Errorf("MLE P = %v; want 0.3037 ± %v", d.P(), tol)
	}
}
