// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/cockroachdb/errors"
)

// QuantileCIResult is a distribution-free confidence interval for a
// population quantile, expressed as a pair of order statistics.
type QuantileCIResult struct {
	// Quantile is the quantile the interval bounds.
	Quantile float64

	// N is the sample size.
	N int

	// Confidence is the achieved confidence level, which is at
	// least the requested level.
	Confidence float64

	// LoOrder and HiOrder are 1-based order statistics. An order
	// below 1 stands for -Inf and an order above N stands for
	// +Inf.
	LoOrder, HiOrder int

	// Ambiguous reports that shifting both orders right by one
	// gives an interval of equal confidence.
	Ambiguous bool
}

// FromSample maps the interval onto the values of s. s must be an
// unweighted sample of size q.N.
func (q QuantileCIResult) FromSample(s Sample) (lo, hi float64, err error) {
	if s.Weights != nil {
		return nan, nan, errors.Wrap(ErrInvalidSample, "quantile CI of a weighted sample")
	}
	if len(s.Xs) != q.N {
		return nan, nan, errors.Wrapf(ErrInvalidSample, "sample has %d values, interval was computed for %d", len(s.Xs), q.N)
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	lo, hi = math.Inf(-1), math.Inf(1)
	if q.LoOrder >= 1 {
		lo = s.Xs[q.LoOrder-1]
	}
	if q.HiOrder <= len(s.Xs) {
		hi = s.Xs[q.HiOrder-1]
	}
	return lo, hi, nil
}

// quantileCIApproxThreshold is the sample size above which QuantileCI
// switches to the normal approximation of the binomial.
var quantileCIApproxThreshold = 30

// QuantileCI returns the confidence interval of the q'th quantile of
// a population, given a sample of size n drawn from it.
//
// The number of sample values that fall below the population quantile
// is Binomial(n, q), so the interval is the smallest run of binomial
// outcomes whose mass reaches confidence.
func QuantileCI(n int, q, confidence float64) QuantileCIResult {
	res := QuantileCIResult{Quantile: q, N: n}
	if confidence >= 1 {
		res.Confidence, res.LoOrder, res.HiOrder = 1, 0, n+1
		return res
	}

	var l, r int
	if n <= quantileCIApproxThreshold {
		l, r = quantileCIExact(&res, n, q, confidence)
	} else {
		l, r = quantileCINormal(&res, n, q, confidence)
	}
	if l < 0 {
		l = 0
	}
	if r > n+1 {
		r = n + 1
	}
	res.LoOrder, res.HiOrder = l, r
	log.Debugf("QuantileCI(%d, %v, %v) = [%d,%d] at %v", n, q, confidence, l, r, res.Confidence)
	return res
}

// quantileCIExact grows the half-open outcome interval [l, r) out from
// the lower mode of Binomial(n, q), always taking the heavier
// neighbor and preferring the left one on ties.
func quantileCIExact(res *QuantileCIResult, n int, q, confidence float64) (l, r int) {
	dist := NewBinomialDist(n, q)
	pmf := func(k int) float64 { return dist.PMF(float64(k)) }

	mode := int(math.Ceil(float64(n+1)*q) - 1)
	if q <= 0 {
		mode = 0
	}
	mass := pmf(mode)
	l, r = mode, mode+1
	left, right := pmf(l-1), pmf(r)
	res.Ambiguous = right == mass

	for mass < confidence && (left > 0 || right > 0) {
		res.Ambiguous = left == right
		if left >= right {
			mass += left
			l--
			left = pmf(l - 1)
		} else {
			mass += right
			r++
			right = pmf(r)
		}
	}
	res.Confidence = mass
	return l, r
}

// quantileCINormal approximates the interval with the continuity
// corrected normal approximation to Binomial(n, q).
func quantileCINormal(res *QuantileCIResult, n int, q, confidence float64) (l, r int) {
	norm := NewBinomialDist(n, q).NormalApprox()

	// Central interval of the normal, symmetric about the mean.
	lx := norm.InvCDF((1 - confidence) / 2)
	rx := 2*norm.Mu - lx

	// Outcome k covers [k-0.5, k+0.5]; round out to those bands.
	l = int(math.Floor(math.Floor(lx-0.5)+0.5)) + 1
	r = int(math.Floor(math.Ceil(rx-0.5)+0.5)) + 1

	// Pr[l <= X < r] under the continuity correction.
	mass := func(l, r int) float64 {
		return norm.CDF(float64(r)-0.5) - norm.CDF(float64(l)-0.5)
	}
	res.Confidence = mass(l, r)

	// A left-biased interval one outcome shorter may still be
	// enough.
	if biased := mass(l, r-1); biased >= confidence && biased < res.Confidence {
		res.Confidence, res.Ambiguous = biased, true
		r--
	}
	if l <= 0 && r >= n+1 {
		// Everything is covered, but the normal tails keep
		// the computed mass just below 1.
		res.Confidence, res.Ambiguous = 1, false
	}
	return l, r
}
