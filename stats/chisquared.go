// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// ChiSquaredDist is a chi-squared distribution with k degrees of
// freedom, that is, a Gamma distribution with shape k/2 and rate 1/2.
//
// The shape and rate can only change through SetDegree.
type ChiSquaredDist struct {
	gammaCore
	k int
}

// NewChiSquaredDist returns a chi-squared distribution with k degrees
// of freedom. See SetDegree.
func NewChiSquaredDist(k int) *ChiSquaredDist {
	d := new(ChiSquaredDist)
	d.SetDegree(k)
	return d
}

// SetDegree sets the degrees of freedom. k < 1 is replaced by 1.
func (d *ChiSquaredDist) SetDegree(k int) {
	if k < 1 {
		k = 1
	}
	d.k = k
	d.set(float64(k)/2, 0.5)
}

// Degree returns the degrees of freedom.
func (d *ChiSquaredDist) Degree() int {
	return d.k
}
