// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements probability distributions: densities,
// cumulative probabilities, quantiles, moments, random variate
// generation and parameter estimation.
//
// Distributions expose their capabilities through the DistCommon,
// Dist and DiscreteDist interfaces. Operations a distribution cannot
// express in closed form are available as generic functions built on
// those interfaces (Quantile, Mode, ExpectedValue, ...).
//
// The Gamma and Binomial families choose among several sampling
// algorithms depending on their parameters. The choice is made once,
// when the parameters are set.
//
// Invalid parameters are clamped to the nearest valid value rather
// than rejected; each setter documents its clamp. Numerical failures
// are reported as NaN or ±Inf. Estimators report invalid samples and
// non-convergence as errors and leave the distribution unchanged.
package stats // import "github.com/aclements/go-randlib/stats"

import (
	"math"

	"github.com/cockroachdb/errors"
	logging "github.com/op/go-logging"
)

var inf = math.Inf(1)
var nan = math.NaN()

var log = logging.MustGetLogger("randlib/stats")

var (
	// ErrInvalidSample is returned by estimators when the sample
	// is empty or contains values outside the support the
	// estimator requires.
	ErrInvalidSample = errors.New("invalid sample for estimator")

	// ErrNoConvergence is returned by estimators whose numerical
	// solver failed to converge.
	ErrNoConvergence = errors.New("estimator did not converge")
)

// maxRejectionIterations caps every rejection loop. Reaching it
// should never happen for valid parameters.
const maxRejectionIterations = 1e9

// rejectionExhausted logs that a rejection sampler gave up and
// returns the sentinel draw.
func rejectionExhausted(what string) float64 {
	log.Warningf("%s: no variate accepted after %g iterations", what, float64(maxRejectionIterations))
	return nan
}
