// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A DistCommon is a statistical distribution. DistCommon is a base
// interface provided by both continuous and discrete distributions.
type DistCommon interface {
	// CDF returns the cumulative probability Pr[X <= x].
	//
	// The CDF is non-decreasing, CDF(-inf) == 0 and
	// CDF(inf) == 1. For discrete distributions it is defined on
	// the whole real line and steps at every point of the
	// support.
	CDF(x float64) float64

	// Support returns the smallest and largest values the
	// distribution can take. Either may be infinite.
	Support() (lo, hi float64)
}

// A Dist is a continuous statistical distribution.
type Dist interface {
	DistCommon

	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64
}

// A DiscreteDist is a discrete statistical distribution.
//
// The random variable is passed as a float64. The probability mass
// function rounds x down to the nearest defined point, so
// integer-valued distributions must round with int(math.Floor(x)),
// not int(x).
type DiscreteDist interface {
	DistCommon

	// PMF returns Pr[X = x'], where x' is x rounded down to the
	// nearest defined point on the distribution.
	PMF(x float64) float64

	// Step returns s, where the distribution is defined for sℕ.
	Step() float64
}

// Moments is implemented by distributions whose mean and variance
// have closed forms. The generic algorithms use them as starting
// points and step sizes.
type Moments interface {
	Mean() float64
	Variance() float64
}
