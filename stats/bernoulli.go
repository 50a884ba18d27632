// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// BernoulliDist is the distribution of a single trial that succeeds
// (1) with probability P and fails (0) otherwise.
type BernoulliDist struct {
	P float64
}

func (b BernoulliDist) PMF(k float64) float64 {
	switch math.Floor(k) {
	case 0:
		return 1 - b.P
	case 1:
		return b.P
	}
	return 0
}

func (b BernoulliDist) CDF(k float64) float64 {
	if k < 0 {
		return 0
	} else if k < 1 {
		return 1 - b.P
	}
	return 1
}

func (b BernoulliDist) Step() float64 {
	return 1
}

func (b BernoulliDist) Support() (float64, float64) {
	return 0, 1
}

func (b BernoulliDist) Rand(r Source) float64 {
	if source(r).Float64() < b.P {
		return 1
	}
	return 0
}

func (b BernoulliDist) Mean() float64 {
	return b.P
}

func (b BernoulliDist) Variance() float64 {
	return b.P * (1 - b.P)
}
