// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/cockroachdb/errors"
)

// KDE represents options for constructing a Gaussian kernel density
// estimate ƒ̂(x) of the unknown distribution ƒ(x) a sample was drawn
// from.
//
// The default (zero) value of KDE is a reasonable default
// configuration.
type KDE struct {
	// Bandwidth is the standard deviation of the kernel. If this
	// is zero, it is computed with BandwidthScott.
	Bandwidth float64

	// If Reflect is set, the support is [BoundaryMin, ∞) and the
	// estimate is reflected at BoundaryMin: ƒ̂ᵣ(x) = ƒ̂(x) +
	// ƒ̂(2·BoundaryMin - x). This suits samples of non-negative
	// distributions such as the Gamma family.
	Reflect     bool
	BoundaryMin float64
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(s Sample) float64 {
	return 1.06 * s.StdDev() * math.Pow(s.Weight(), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// It uses the smaller of the sample's standard deviation and IQR/1.349
// as the spread, which keeps it robust to outliers.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(s Sample) float64 {
	iqr := s.Percentile(0.75) - s.Percentile(0.25)
	spread := math.Min(s.StdDev(), iqr/1.349)
	if !(spread > 0) {
		spread = s.StdDev()
	}
	return 1.06 * spread * math.Pow(s.Weight(), -1.0/5)
}

// From returns the kernel density estimate of s as a continuous
// distribution. It fails with ErrSampleSize if s is empty and with
// ErrInvalidSample if its weights don't match its values or the
// bandwidth is not positive.
func (k KDE) From(s Sample) (Dist, error) {
	if len(s.Xs) == 0 {
		return nil, errors.Wrap(ErrSampleSize, "empty sample")
	}
	if s.Weights != nil && len(s.Weights) != len(s.Xs) {
		return nil, errors.Wrapf(ErrInvalidSample, "%d values but %d weights", len(s.Xs), len(s.Weights))
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(s)
	}
	if !(h > 0) || math.IsInf(h, 1) {
		return nil, errors.Wrapf(ErrInvalidSample, "bandwidth %v", h)
	}
	d := &kdeDist{s: s, h: h, min: -inf}
	if k.Reflect {
		d.min = k.BoundaryMin
	}
	log.Debugf("KDE of %d values, bandwidth %v", len(s.Xs), h)
	return d, nil
}

type kdeDist struct {
	s   Sample
	h   float64
	min float64 // -inf if unbounded
}

// sum returns the weighted mean of f over the sample points.
func (d *kdeDist) sum(f func(xi float64) float64) float64 {
	total := 0.0
	for i, xi := range d.s.Xs {
		w := 1.0
		if d.s.Weights != nil {
			w = d.s.Weights[i]
		}
		total += w * f(xi)
	}
	return total / d.s.Weight()
}

func (d *kdeDist) PDF(x float64) float64 {
	if x < d.min {
		return 0
	}
	bounded := !math.IsInf(d.min, -1)
	return d.sum(func(xi float64) float64 {
		y := StdNormal.PDF((x - xi) / d.h)
		if bounded {
			y += StdNormal.PDF((x - (2*d.min - xi)) / d.h)
		}
		return y / d.h
	})
}

func (d *kdeDist) CDF(x float64) float64 {
	if x < d.min {
		return 0
	}
	if math.IsInf(d.min, -1) {
		return d.sum(func(xi float64) float64 {
			return StdNormal.CDF((x - xi) / d.h)
		})
	}
	return d.sum(func(xi float64) float64 {
		return StdNormal.CDF((x-xi)/d.h) + StdNormal.CDF((x-(2*d.min-xi))/d.h) - 1
	})
}

func (d *kdeDist) Support() (float64, float64) {
	return d.min, inf
}

// Bounds returns a range covering the sample and three bandwidths of
// kernel on either side, clipped to the support.
func (d *kdeDist) Bounds() (float64, float64) {
	lo, hi := d.s.Bounds()
	return math.Max(d.min, lo-3*d.h), hi + 3*d.h
}
