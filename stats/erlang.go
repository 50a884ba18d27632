// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// ErlangDist is the distribution of the sum of k independent
// exponential variates with rate β: a Gamma distribution with integer
// shape k.
//
// Only the rate can be estimated from data; the shape changes only
// through SetParameters.
type ErlangDist struct {
	gammaCore
}

// NewErlangDist returns an Erlang distribution. See SetParameters.
func NewErlangDist(k int, rate float64) *ErlangDist {
	d := new(ErlangDist)
	d.SetParameters(k, rate)
	return d
}

// SetParameters sets the shape and rate. k < 1 is replaced by 1 and a
// rate that is not positive and finite by 1.
func (d *ErlangDist) SetParameters(k int, rate float64) {
	if k < 1 {
		k = 1
	}
	d.set(float64(k), rate)
}

// K returns the shape.
func (d *ErlangDist) K() int {
	return int(d.shape)
}

// FitRateMLE sets the rate to k/x̄.
func (d *ErlangDist) FitRateMLE(xs []float64) error {
	return d.fitRateMLE(xs)
}

// FitRateMM is the same as FitRateMLE.
func (d *ErlangDist) FitRateMM(xs []float64) error {
	return d.fitRateMLE(xs)
}

// FitRateUMVU sets the rate to (kn - 1)/Σx.
func (d *ErlangDist) FitRateUMVU(xs []float64) error {
	return d.fitRateUMVU(xs)
}

// FitRateBayes updates the conjugate Gamma prior on the rate with xs,
// sets the rate to the posterior mean and returns the posterior.
func (d *ErlangDist) FitRateBayes(xs []float64, prior *GammaDist) (*GammaDist, error) {
	return d.fitRateBayes(xs, prior)
}
