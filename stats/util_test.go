// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	if expect < 0 && got < 0 {
		expect, got = -expect, -got
	}
	return expect*0.99999999 <= got && got*0.99999999 <= expect ||
		math.Abs(expect-got) < 1e-10
}

// naneq is == that also equates NaNs.
func naneq(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// testFunc checks f against the expected values in vals, in
// increasing order of x.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if naneq(want, got) || aeq(want, got) {
			continue
		}
		t.Errorf("%s(%v) = %v; want %v", name, x, got, want)
	}
}

// testDiscreteCDF checks that dist.CDF is the running sum of
// dist.PMF, both on and between the points of the support. Unbounded
// supports are checked over their first maxSteps points.
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist) {
	t.Helper()
	const maxSteps = 200
	lo, hi := dist.Support()
	step := dist.Step()

	want := map[float64]float64{lo - step/2: 0}
	if !math.IsInf(hi, 1) {
		want[hi] = 1
		want[hi+step/2] = 1
	}
	sum := 0.0
	for i, x := 0, lo; i < maxSteps && x <= hi; i, x = i+1, x+step {
		sum += dist.PMF(x)
		want[x] = sum
		want[x+step/2] = sum
	}
	testFunc(t, name, dist.CDF, want)
}

// momentTolerance is the number of standard errors a sample moment
// may stray from the population moment.
const momentTolerance = 5

// checkSampleMoments compares the mean and variance of xs with the
// population mean and variance, given the population excess kurtosis
// for the standard error of the variance.
func checkSampleMoments(t *testing.T, name string, xs []float64, mean, variance, kurtosis float64) {
	t.Helper()
	n := float64(len(xs))
	s := Sample{Xs: xs}
	gotMean := s.Mean()
	gotVar := s.Variance()

	seMean := math.Sqrt(variance / n)
	if math.Abs(gotMean-mean) > momentTolerance*seMean {
		t.Errorf("%s: sample mean %v, want %v ± %v", name, gotMean, mean, momentTolerance*seMean)
	}
	seVar := variance * math.Sqrt((kurtosis+2)/n)
	if math.Abs(gotVar-variance) > momentTolerance*seVar {
		t.Errorf("%s: sample variance %v, want %v ± %v", name, gotVar, variance, momentTolerance*seVar)
	}
}

// checkNear reports whether got is within tol of want, and records
// an error if not. Equal infinities and NaNs are near.
func checkNear(t *testing.T, want, got, tol float64, format string, args ...any) bool {
	t.Helper()
	if want == got || naneq(want, got) || math.Abs(want-got) <= tol {
		return true
	}
	t.Errorf("%s = %v; want %v ± %v", fmt.Sprintf(format, args...), got, want, tol)
	return false
}

// checkEqual reports whether got == want, and records an error if
// not.
func checkEqual[T comparable](t *testing.T, want, got T, format string, args ...any) bool {
	t.Helper()
	if got == want {
		return true
	}
	t.Errorf("%s = %v; want %v", fmt.Sprintf(format, args...), got, want)
	return false
}
