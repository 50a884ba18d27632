// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-randlib/mathx"
)

const (
	// quantileEpsilon is the tolerance on |CDF(x) - p| for the
	// Newton quantile.
	quantileEpsilon = 1e-12

	// modeEpsilon is the absolute tolerance of the numerical
	// mode, on top of the √ε relative limit of the minimizer.
	modeEpsilon = 1e-10

	// modeBracketSteps caps the outward search for a bracket
	// around the mode.
	modeBracketSteps = 1000

	// expectedValueEpsilon is both the magnitude below which the
	// integrand of ExpectedValue is considered negligible and the
	// tolerance of the integration.
	expectedValueEpsilon = 1e-10

	// expectedValueSteps caps the bound search of ExpectedValue
	// in each direction.
	expectedValueSteps = 1000

	expectedValueDepth = 20
)

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Quantile returns x such that dist.CDF(x) == p, for p in [0, 1]. It
// returns NaN for any other p.
//
// If dist implements Quantile(float64) float64, Quantile uses it.
// Discrete distributions are inverted by DiscreteQuantile. For
// continuous distributions, Quantile runs Newton's method on
// CDF(x) - p using the PDF as the derivative, starting at the mean
// (or 0 if the mean is unavailable or not finite). If Newton's method
// fails, Quantile returns +Inf: in practice this almost always means
// p is 1 up to rounding.
func Quantile(dist DistCommon, p float64) float64 {
	type quantiler interface {
		Quantile(float64) float64
	}
	if dist, ok := dist.(quantiler); ok {
		return dist.Quantile(p)
	}
	switch dist := dist.(type) {
	case Dist:
		return newtonQuantile(dist, p)
	case DiscreteDist:
		return DiscreteQuantile(dist, p)
	}
	return InvCDF(dist)(p)
}

func newtonQuantile(dist Dist, p float64) float64 {
	if !(p >= 0 && p <= 1) {
		return nan
	}
	lo, hi := dist.Support()
	if p == 0 {
		return lo
	} else if p == 1 {
		return hi
	}
	x0 := 0.0
	if m, ok := dist.(Moments); ok {
		if mean := m.Mean(); isFinite(mean) {
			x0 = mean
		}
	}
	x, ok := mathx.FindRootNewton(func(x float64) float64 {
		return dist.CDF(x) - p
	}, dist.PDF, x0, quantileEpsilon)
	if !ok {
		return inf
	}
	return x
}

// DiscreteQuantile returns the smallest point x of the support of
// dist such that dist.CDF(x) >= p. It returns NaN if p is outside
// [0, 1].
//
// The search gallops outward from the mean (if dist implements
// Moments) or the lower end of the support, then bisects, so it takes
// logarithmic time in the distance from the starting point.
func DiscreteQuantile(dist DiscreteDist, p float64) float64 {
	if !(p >= 0 && p <= 1) {
		return nan
	}
	lo, hi := dist.Support()
	if p == 0 {
		return lo
	}
	step := dist.Step()
	loK, hiK := lo/step, hi/step
	cdf := func(k float64) float64 {
		return dist.CDF(k * step)
	}

	k := loK
	if m, ok := dist.(Moments); ok {
		if mean := m.Mean(); isFinite(mean) {
			k = math.Floor(mean / step)
		}
	}
	if !isFinite(k) {
		k = 0
	}
	k = math.Max(loK, math.Min(hiK, k))

	// Establish down < answer <= up.
	var down, up float64
	const maxGallop = 1100
	if cdf(k) >= p {
		up = k
		for w := 1.0; ; w *= 2 {
			down = up - w
			if down < loK {
				down = loK - 1
				break
			}
			if cdf(down) < p {
				break
			}
			up = down
		}
	} else {
		down = k
		w := 1.0
		for i := 0; ; i++ {
			if i == maxGallop {
				return inf
			}
			up = down + w
			if up >= hiK {
				up = hiK
				if cdf(up) < p {
					// p is only reached by rounding.
					return hi
				}
				break
			}
			if cdf(up) >= p {
				break
			}
			down = up
			w *= 2
		}
	}
	for up-down > 1 {
		mid := math.Floor((up + down) / 2)
		if mid == up || mid == down {
			break
		}
		if cdf(mid) >= p {
			up = mid
		} else {
			down = mid
		}
	}
	return up * step
}

// Median returns the median of dist. If dist implements
// Median() float64, Median uses it; otherwise it is Quantile(dist, 0.5).
func Median(dist DistCommon) float64 {
	type medianer interface {
		Median() float64
	}
	if dist, ok := dist.(medianer); ok {
		return dist.Median()
	}
	return Quantile(dist, 0.5)
}

// Mode returns the point at which the density of dist is largest. If
// dist implements Mode() float64, Mode uses it.
//
// Otherwise dist must be unimodal; this is not checked. Mode brackets
// the peak by stepping outward from the mean (or the median) in
// increments of 10*Variance() (or 100 if the variance is unavailable)
// until the density at both ends of the bracket is below the density
// at the center, then minimizes -PDF over the bracket.
func Mode(dist Dist) float64 {
	type moder interface {
		Mode() float64
	}
	if dist, ok := dist.(moder); ok {
		return dist.Mode()
	}

	lo, hi := dist.Support()
	guess, step := nan, nan
	if m, ok := dist.(Moments); ok {
		guess, step = m.Mean(), 10*m.Variance()
	}
	if !isFinite(guess) {
		guess = Median(dist)
	}
	if !isFinite(guess) {
		guess = math.Max(lo, math.Min(hi, 0))
	}
	if !(step > 0 && isFinite(step)) {
		step = 100
	}

	center := dist.PDF(guess)
	a := math.Max(guess-step, lo)
	for i := 0; i < modeBracketSteps && a > lo && dist.PDF(a) > center; i++ {
		a = math.Max(a-step, lo)
	}
	b := math.Min(guess+step, hi)
	for i := 0; i < modeBracketSteps && b < hi && dist.PDF(b) > center; i++ {
		b = math.Min(b+step, hi)
	}

	x, ok := mathx.FindMinBrent(func(x float64) float64 {
		return -dist.PDF(x)
	}, a, b, modeEpsilon)
	if !ok {
		return nan
	}
	return x
}

// Hazard returns the hazard rate of dist at x: the density at x
// conditioned on X >= x.
//
// For continuous distributions this is PDF(x) / (1 - CDF(x)). For
// discrete distributions it is PMF(x) / Pr[X >= x].
func Hazard(dist DistCommon, x float64) float64 {
	type survivor interface {
		SF(float64) float64
	}
	sf := func(x float64) float64 {
		return 1 - dist.CDF(x)
	}
	if dist, ok := dist.(survivor); ok {
		sf = dist.SF
	}
	switch dist := dist.(type) {
	case Dist:
		return dist.PDF(x) / sf(x)
	case DiscreteDist:
		return dist.PMF(x) / sf(x-dist.Step())
	}
	return nan
}

// ExpectedValue returns E[g(X)] for X distributed as dist, computed by
// numerically integrating g(x)*PDF(x).
//
// Unbounded ends of the support are replaced by a point found by
// stepping outward from start by Variance() until |g(x)*PDF(x)| drops
// below 1e-10. If that takes more than 1000 steps in either
// direction, the integrand decays too slowly to bound and
// ExpectedValue returns NaN. It also returns NaN if the variance is
// not finite and positive.
//
// dist.Variance must not itself be computed with ExpectedValue.
func ExpectedValue(dist interface {
	Dist
	Moments
}, g func(x float64) float64, start float64) float64 {
	step := dist.Variance()
	if !(step > 0 && isFinite(step)) {
		return nan
	}
	integrand := func(x float64) float64 {
		return g(x) * dist.PDF(x)
	}
	lo, hi := dist.Support()
	lower, ok := integrationBound(integrand, start, -step, lo)
	if !ok {
		return nan
	}
	upper, ok := integrationBound(integrand, start, step, hi)
	if !ok {
		return nan
	}
	return mathx.Integral(integrand, lower, upper, expectedValueEpsilon, expectedValueDepth)
}

func integrationBound(f func(float64) float64, start, step, limit float64) (float64, bool) {
	if isFinite(limit) {
		return limit, true
	}
	x := start
	for i := 0; i < expectedValueSteps; i++ {
		x += step
		if math.Abs(f(x)) < expectedValueEpsilon {
			return x, true
		}
	}
	return nan, false
}

// density returns the PDF or PMF of dist.
func density(dist DistCommon) func(float64) float64 {
	switch dist := dist.(type) {
	case Dist:
		return dist.PDF
	case DiscreteDist:
		return dist.PMF
	}
	return func(float64) float64 { return nan }
}

// logDensity returns the log PDF or PMF of dist, using LogPDF or
// LogPMF if dist provides it.
func logDensity(dist DistCommon) func(float64) float64 {
	switch dist := dist.(type) {
	case interface{ LogPDF(float64) float64 }:
		return dist.LogPDF
	case interface{ LogPMF(float64) float64 }:
		return dist.LogPMF
	}
	f := density(dist)
	return func(x float64) float64 {
		return math.Log(f(x))
	}
}

// Likelihood returns the product of the density (or mass) of dist at
// each point of xs.
func Likelihood(dist DistCommon, xs []float64) float64 {
	f := density(dist)
	l := 1.0
	for _, x := range xs {
		l *= f(x)
	}
	return l
}

// LogLikelihood returns the sum of the log density (or mass) of dist
// at each point of xs.
func LogLikelihood(dist DistCommon, xs []float64) float64 {
	f := logDensity(dist)
	l := 0.0
	for _, x := range xs {
		l += f(x)
	}
	return l
}

// PDFInto sets ys[i] = dist.PDF(xs[i]). It does nothing if ys is
// shorter than xs.
func PDFInto(dist Dist, xs, ys []float64) {
	if len(ys) < len(xs) {
		return
	}
	for i, x := range xs {
		ys[i] = dist.PDF(x)
	}
}

// PMFInto sets ys[i] = dist.PMF(xs[i]). It does nothing if ys is
// shorter than xs.
func PMFInto(dist DiscreteDist, xs, ys []float64) {
	if len(ys) < len(xs) {
		return
	}
	for i, x := range xs {
		ys[i] = dist.PMF(x)
	}
}

// CDFInto sets ys[i] = dist.CDF(xs[i]). It does nothing if ys is
// shorter than xs.
func CDFInto(dist DistCommon, xs, ys []float64) {
	if len(ys) < len(xs) {
		return
	}
	for i, x := range xs {
		ys[i] = dist.CDF(x)
	}
}

// InvCDF returns the inverse CDF function of the given distribution
// (also known as the quantile function or the percent point
// function). This is a function f such that f(dist.CDF(x)) == x. If
// dist.CDF is only weakly monotonic (that it, there are intervals
// over which it is constant) and y > 0, f returns the smallest x that
// satisfies this condition. f(0) and f(1) return the ends of the
// support.
//
// If y < 0 or y > 1, f returns NaN.
//
// If dist implements InvCDF(float64) float64, this returns that
// method. Otherwise, it returns a function that brackets y by
// doubling steps from 0 and bisects the bracket. Unlike Quantile,
// this needs no density, so it works for discontinuous CDFs.
func InvCDF(dist DistCommon) func(y float64) (x float64) {
	type invCDF interface {
		InvCDF(float64) float64
	}
	if dist, ok := dist.(invCDF); ok {
		return dist.InvCDF
	}

	return func(y float64) (x float64) {
		const xtol = 1e-16
		lo, hi := dist.Support()
		if !(y >= 0 && y <= 1) {
			return nan
		} else if y == 0 {
			return lo
		} else if y == 1 {
			return hi
		}

		// Find loX, hiX for which cdf(loX) < y <= cdf(hiX).
		var loX, loY, hiX, hiY float64
		x1 := math.Max(lo, math.Min(hi, 0))
		y1 := dist.CDF(x1)
		xdelta := 1.0
		if y1 < y {
			hiX, hiY = x1, y1
			for hiY < y && hiX != inf {
				loX, loY, hiX = hiX, hiY, hiX+xdelta
				hiY = dist.CDF(hiX)
				xdelta *= 2
			}
		} else {
			loX, loY = x1, y1
			for y <= loY && loX != -inf {
				hiX, hiY, loX = loX, loY, loX-xdelta
				loY = dist.CDF(loX)
				xdelta *= 2
			}
		}
		if loX == -inf {
			return loX
		} else if hiX == inf {
			return hiX
		}

		// Bisect for the smallest x at which cdf(x) >= y.
		_, x = mathx.BisectBool(func(x float64) bool {
			return dist.CDF(x) < y
		}, loX, hiX, xtol)
		return
	}
}

// Rand returns a random number generator that draws from the given
// distribution. The returned generator takes an optional Source; if
// this is nil, it uses the global source.
//
// If dist implements Rand(Source) float64, Rand returns that method.
// Otherwise, it returns a generator that inverts a uniform variate
// through InvCDF.
func Rand(dist DistCommon) func(Source) float64 {
	type distRand interface {
		Rand(Source) float64
	}
	if dist, ok := dist.(distRand); ok {
		return dist.Rand
	}
	inv := InvCDF(dist)
	return func(r Source) float64 {
		return inv(uniformOpen(source(r)))
	}
}
