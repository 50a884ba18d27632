// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of possibly weighted data points.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i]. If Weights is
	// nil, all Xs have weight 1. Weights must have the same
	// length of Xs and all values must be non-negative.
	Weights []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Bounds returns the minimum and maximum values of xs.
func Bounds(xs []float64) (min float64, max float64) {
	if len(xs) == 0 {
		return nan, nan
	}
	return floats.Min(xs), floats.Max(xs)
}

// Bounds returns the minimum and maximum values of the Sample.
//
// If the Sample is weighted, this ignores samples with zero weight.
//
// This is constant time if s.Sorted and there are no zero-weighted
// values.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 || (!s.Sorted && s.Weights == nil) {
		return Bounds(s.Xs)
	}

	if s.Sorted {
		if s.Weights == nil {
			return s.Xs[0], s.Xs[len(s.Xs)-1]
		}
		min, max = nan, nan
		for i, w := range s.Weights {
			if w != 0 {
				min = s.Xs[i]
				break
			}
		}
		if math.IsNaN(min) {
			return
		}
		for i := range s.Weights {
			if s.Weights[len(s.Weights)-i-1] != 0 {
				max = s.Xs[len(s.Weights)-i-1]
				break
			}
		}
		return
	}

	min, max = inf, -inf
	for i, x := range s.Xs {
		w := s.Weights[i]
		if x < min && w != 0 {
			min = x
		}
		if x > max && w != 0 {
			max = x
		}
	}
	if math.IsInf(min, 0) {
		min, max = nan, nan
	}
	return
}

// Sum returns the (possibly weighted) sum of the Sample.
func (s Sample) Sum() float64 {
	if s.Weights == nil {
		return floats.Sum(s.Xs)
	}
	return floats.Dot(s.Xs, s.Weights)
}

// Weight returns the total weight of the Sample.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	return floats.Sum(s.Weights)
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return nan
	}
	return stat.Mean(xs, nil)
}

// Mean returns the arithmetic mean of the Sample.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 || s.Weights == nil {
		return Mean(s.Xs)
	}
	return stat.Mean(s.Xs, s.Weights)
}

// LogMean returns the mean of log(x) over the Sample. This is the
// sufficient statistic of the Gamma shape parameter.
//
// LogMean returns NaN if the sample is empty or contains negative
// values, and -Inf if it contains zero.
func (s Sample) LogMean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	logs := make([]float64, len(s.Xs))
	for i, x := range s.Xs {
		logs[i] = math.Log(x)
	}
	return stat.Mean(logs, s.Weights)
}

// GeoMean returns the geometric mean of the Sample. All samples
// values must be positive.
func (s Sample) GeoMean() float64 {
	return math.Exp(s.LogMean())
}

// Variance returns the population variance of xs, that is, its
// second central moment.
func Variance(xs []float64) float64 {
	if len(xs) == 0 {
		return nan
	}
	return stat.PopVariance(xs, nil)
}

// Variance returns the population variance of the Sample.
func (s Sample) Variance() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.PopVariance(s.Xs, s.Weights)
}

// VarianceAround returns the second moment of the Sample about mean.
// Callers that already know the mean save a pass over the data.
func (s Sample) VarianceAround(mean float64) float64 {
	return s.CentralMomentAround(2, mean)
}

// StdDev returns the population standard deviation of xs.
func StdDev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}

// StdDev returns the population standard deviation of the Sample.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Skewness returns the population skewness of the Sample,
// μ₃/σ³.
func (s Sample) Skewness() float64 {
	mean := s.Mean()
	v := s.VarianceAround(mean)
	return s.CentralMomentAround(3, mean) / (v * math.Sqrt(v))
}

// RawMoment returns the k'th raw moment E[Xᵏ] of the Sample.
func (s Sample) RawMoment(k float64) float64 {
	return s.CentralMomentAround(k, 0)
}

// CentralMoment returns the k'th central moment E[(X - μ)ᵏ] of the
// Sample.
func (s Sample) CentralMoment(k float64) float64 {
	return s.CentralMomentAround(k, s.Mean())
}

// CentralMomentAround returns the k'th moment of the Sample about
// mean.
func (s Sample) CentralMomentAround(k, mean float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.MomentAbout(k, s.Xs, mean, s.Weights)
}

// NormalizedMoment returns the k'th standardized moment
// E[(X - μ)ᵏ] / σᵏ of the Sample.
func (s Sample) NormalizedMoment(k float64) float64 {
	mean := s.Mean()
	sd := math.Sqrt(s.VarianceAround(mean))
	return s.CentralMomentAround(k, mean) / math.Pow(sd, k)
}

// Quantile returns the sample value X at which q*weight of the sample
// is <= X. This uses interpolation method R8 from Hyndman and Fan
// (1996).
//
// q will be capped to the range [0, 1]. If len(xs) == 0 or all
// weights are 0, returns NaN.
//
// Quantile(0.5) is the median. Quantile(0.25) and Quantile(0.75) are
// the first and third quartiles, respectively. Quantile(0.95) is the
// 95th percentile.
//
// This is constant time if s.Sorted and s.Weights == nil.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	if q <= 0 {
		min, _ := s.Bounds()
		return min
	} else if q >= 1 {
		_, max := s.Bounds()
		return max
	}

	if s.Weights != nil {
		if s.Weight() == 0 {
			return nan
		}
		return stat.Quantile(q, stat.LinInterp, s.Xs, s.Weights)
	}

	// R8 places the k'th order statistic at (k - 1/3)/(N + 1/3).
	N := float64(len(s.Xs))
	h := (N+1.0/3.0)*q + 1.0/3.0
	if h <= 1 {
		return s.Xs[0]
	} else if h >= N {
		return s.Xs[len(s.Xs)-1]
	}
	k := math.Floor(h)
	lo := s.Xs[int(k)-1]
	return lo + (h-k)*(s.Xs[int(k)]-lo)
}

// Percentile is the same as Quantile.
func (s Sample) Percentile(pctile float64) float64 {
	return s.Quantile(pctile)
}

// Sort sorts the samples in place in s and returns s.
//
// A sorted sample improves the performance of some algorithms.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		// All set
	} else {
		stat.SortWeighted(s.Xs, s.Weights)
	}
	s.Sorted = true
	return s
}

// Copy returns a copy of the Sample.
//
// The returned Sample shares no data with the original, so they can
// be modified (for example, sorted) independently.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)

	weights := []float64(nil)
	if s.Weights != nil {
		weights = make([]float64, len(s.Weights))
		copy(weights, s.Weights)
	}

	return &Sample{xs, weights, s.Sorted}
}
