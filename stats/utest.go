// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"github.com/aclements/go-randlib/mathx"
	"github.com/cockroachdb/errors"
)

var (
	// ErrSampleSize is returned by two-sample tests when either
	// sample is empty.
	ErrSampleSize = errors.New("sample is too small")

	// ErrSamplesEqual is returned by rank tests when every value
	// of both samples is the same.
	ErrSamplesEqual = errors.New("all samples are equal")
)

// A RankSumResult is the outcome of a Mann-Whitney U rank-sum test.
type RankSumResult struct {
	// N1 and N2 are the sizes of the two samples.
	N1, N2 int

	// U is the smaller of the two U statistics.
	U float64

	// Z is the standardized U statistic, continuity corrected.
	Z float64

	// P is the two-sided p-value of the null hypothesis that a
	// draw from the first population is as likely to exceed a
	// draw from the second as the reverse.
	P float64
}

// MannWhitneyUTest performs a two-sided Mann-Whitney U rank-sum test
// of x1 against x2, using the normal approximation with a correction
// for ties. The approximation is accurate once both samples have more
// than about 20 values; the samplers are compared with many thousands.
func MannWhitneyUTest(x1, x2 []float64) (*RankSumResult, error) {
	n1, n2 := len(x1), len(x2)
	if n1 == 0 || n2 == 0 {
		return nil, errors.Wrapf(ErrSampleSize, "sizes %d and %d", n1, n2)
	}

	type obs struct {
		x     float64
		first bool
	}
	all := make([]obs, 0, n1+n2)
	for _, x := range x1 {
		all = append(all, obs{x, true})
	}
	for _, x := range x2 {
		all = append(all, obs{x, false})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].x < all[j].x })

	// Sum the ranks of x1, giving tied runs their mid-rank.
	r1, ties := 0.0, 0.0
	for i := 0; i < len(all); {
		j := i
		in1 := 0
		for ; j < len(all) && all[j].x == all[i].x; j++ {
			if all[j].first {
				in1++
			}
		}
		run := float64(j - i)
		r1 += float64(in1) * float64(i+j+1) / 2
		ties += run*run*run - run
		i = j
	}

	nf1, nf2 := float64(n1), float64(n2)
	n := nf1 + nf2
	u := r1 - nf1*(nf1+1)/2
	u = math.Min(u, nf1*nf2-u)

	sigma := math.Sqrt(nf1 * nf2 / 12 * ((n + 1) - ties/(n*(n-1))))
	if !(sigma > 0) {
		return nil, ErrSamplesEqual
	}
	d := u - nf1*nf2/2
	d -= mathx.Sign(d) * 0.5
	z := d / sigma
	p := math.Min(1, 2*StdNormal.CDF(-math.Abs(z)))
	return &RankSumResult{N1: n1, N2: n2, U: u, Z: z, P: p}, nil
}
