// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"github.com/aclements/go-randlib/mathx"
	"github.com/cockroachdb/errors"
	logging "github.com/op/go-logging"
)

// gammaRegime identifies the algorithm used to draw Gamma variates.
type gammaRegime int

const (
	// Sum of shape standard exponentials. Shape is an integer
	// below gammaSmallIntegralShape.
	gammaIntegerShape gammaRegime = iota

	// Sum of ⌊shape⌋ standard exponentials plus half a squared
	// standard normal. Shape is a half-integer below
	// gammaSmallIntegralShape.
	gammaHalfIntegerShape

	// Ahrens and Dieter's GS algorithm, shape <= 1.
	gammaSmallShape

	// Fishman's two-exponential rejection, 1 < shape <= 3.
	gammaMediumShape

	// Marsaglia and Tsang's squeeze method, everything else.
	gammaLargeShape
)

var gammaRegimeNames = [...]string{
	gammaIntegerShape:     "integer-shape",
	gammaHalfIntegerShape: "half-integer-shape",
	gammaSmallShape:       "small-shape",
	gammaMediumShape:      "medium-shape",
	gammaLargeShape:       "large-shape",
}

func (r gammaRegime) String() string {
	if r < 0 || int(r) >= len(gammaRegimeNames) {
		return fmt.Sprintf("gammaRegime(%d)", int(r))
	}
	return gammaRegimeNames[r]
}

const (
	// Integral and half-integral shapes below this are drawn as
	// sums of standard variates.
	gammaSmallIntegralShape = 5

	// Shapes this close (relatively) to an integer or
	// half-integer below gammaSmallIntegralShape are snapped to
	// it.
	gammaShapeSnapEpsilon = 1e-12

	// gammaFitEpsilon is the tolerance of the shape MLE root
	// finder.
	gammaFitEpsilon = 1e-12
)

// classifyGamma returns the sampling regime for a (clamped and
// snapped) shape.
func classifyGamma(shape float64) gammaRegime {
	if shape < gammaSmallIntegralShape {
		if shape == math.Floor(shape) {
			return gammaIntegerShape
		}
		if shape-0.5 == math.Floor(shape-0.5) {
			return gammaHalfIntegerShape
		}
	}
	if shape <= 1 {
		return gammaSmallShape
	}
	if shape <= 3 {
		return gammaMediumShape
	}
	return gammaLargeShape
}

func snapGammaShape(shape float64) float64 {
	if shape >= gammaSmallIntegralShape {
		return shape
	}
	if r := math.Round(shape); mathx.AreClose(shape, r, gammaShapeSnapEpsilon) {
		return r
	}
	if h := math.Round(shape-0.5) + 0.5; mathx.AreClose(shape, h, gammaShapeSnapEpsilon) {
		return h
	}
	return shape
}

// gammaCore is the read-only part of the Gamma family shared by
// GammaDist and its constrained forms. Only set mutates it, and set
// recomputes every derived field.
type gammaCore struct {
	shape, rate, scale float64

	// logNorm is α log β - log Γ(α).
	logNorm float64

	regime gammaRegime

	// gsCoef is 1/α + 1/e (small-shape regime).
	gsCoef float64

	// mtD = α - 1/3 and mtC = 1/√(9 mtD) (large-shape regime).
	mtD, mtC float64
}

// set clamps and stores the parameters. Non-positive or non-finite
// shapes and rates become 1.
func (g *gammaCore) set(shape, rate float64) {
	if !(shape > 0) || math.IsInf(shape, 1) {
		shape = 1
	}
	if !(rate > 0) || math.IsInf(rate, 1) {
		rate = 1
	}
	shape = snapGammaShape(shape)

	*g = gammaCore{
		shape:   shape,
		rate:    rate,
		scale:   1 / rate,
		logNorm: shape*math.Log(rate) - mathx.Lgamma(shape),
		regime:  classifyGamma(shape),
	}
	switch g.regime {
	case gammaSmallShape:
		g.gsCoef = 1/shape + 1/math.E
	case gammaLargeShape:
		g.mtD = shape - 1.0/3
		g.mtC = 1 / math.Sqrt(9*g.mtD)
	}
}

// Shape returns the shape parameter α.
func (g *gammaCore) Shape() float64 { return g.shape }

// Rate returns the rate parameter β.
func (g *gammaCore) Rate() float64 { return g.rate }

// Scale returns the scale parameter θ = 1/β.
func (g *gammaCore) Scale() float64 { return g.scale }

// Regime returns the name of the algorithm Rand and Sample use for
// the current shape.
func (g *gammaCore) Regime() fmt.Stringer { return g.regime }

func (g *gammaCore) PDF(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x == 0:
		if g.shape < 1 {
			return inf
		} else if g.shape == 1 {
			return g.rate
		}
		return 0
	}
	return math.Exp(g.LogPDF(x))
}

func (g *gammaCore) LogPDF(x float64) float64 {
	if x < 0 {
		return -inf
	} else if x == 0 {
		return math.Log(g.PDF(0))
	}
	return g.logNorm + (g.shape-1)*math.Log(x) - g.rate*x
}

func (g *gammaCore) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathx.GammaIncReg(g.shape, g.rate*x)
}

// SF returns the survival function 1 - CDF(x), computed directly from
// the upper incomplete gamma function.
func (g *gammaCore) SF(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return mathx.GammaIncRegComp(g.shape, g.rate*x)
}

func (g *gammaCore) Support() (float64, float64) {
	return 0, inf
}

// Quantile returns x such that CDF(x) == p.
//
// For shapes of at least 1 it runs Newton's method from the
// Wilson-Hilferty approximation. If that is unusable or fails, it
// falls back to Brent's method on log x, which also handles the very
// small quantiles of small shapes.
func (g *gammaCore) Quantile(p float64) float64 {
	switch {
	case !(p >= 0 && p <= 1):
		return nan
	case p == 0:
		return 0
	case p == 1:
		return inf
	}

	if g.shape >= 1 {
		h := 1 / (9 * g.shape)
		z := StdNormal.InvCDF(p)
		x0 := g.shape * math.Pow(1-h+z*math.Sqrt(h), 3) / g.rate
		if x0 > 0 {
			x, ok := mathx.FindRootNewton(func(x float64) float64 {
				return g.CDF(x) - p
			}, g.PDF, x0, quantileEpsilon)
			if ok && x > 0 {
				return x
			}
		}
	}

	f := func(y float64) float64 {
		return g.CDF(math.Exp(y)) - p
	}
	const maxSteps = 1100
	hi := math.Log(g.Mean())
	for i := 0; i < maxSteps && f(hi) < 0; i++ {
		hi++
	}
	lo := hi
	for i := 0; i < maxSteps && f(lo) > 0; i++ {
		lo--
	}
	y, ok := mathx.FindRootBrent(f, lo, hi, quantileEpsilon)
	if !ok {
		return inf
	}
	return math.Exp(y)
}

func (g *gammaCore) Median() float64 {
	return g.Quantile(0.5)
}

func (g *gammaCore) Mean() float64 {
	return g.shape * g.scale
}

func (g *gammaCore) Variance() float64 {
	return g.shape * g.scale * g.scale
}

func (g *gammaCore) Mode() float64 {
	if g.shape < 1 {
		return 0
	}
	return (g.shape - 1) * g.scale
}

func (g *gammaCore) Skewness() float64 {
	return 2 / math.Sqrt(g.shape)
}

func (g *gammaCore) ExcessKurtosis() float64 {
	return 6 / g.shape
}

// GeometricMean returns E[log X] = ψ(α) - log β.
func (g *gammaCore) GeometricMean() float64 {
	return mathx.Digamma(g.shape) - math.Log(g.rate)
}

// GeometricVariance returns Var[log X] = ψ'(α).
func (g *gammaCore) GeometricVariance() float64 {
	return mathx.Trigamma(g.shape)
}

// Rand returns a single draw. If r is nil, it uses the global
// source.
func (g *gammaCore) Rand(r Source) float64 {
	return g.unitDraw()(source(r)) * g.scale
}

// Sample fills buf with independent draws. The sampling algorithm is
// selected once for the whole buffer.
func (g *gammaCore) Sample(r Source, buf []float64) {
	r = source(r)
	draw := g.unitDraw()
	for i := range buf {
		buf[i] = draw(r) * g.scale
	}
}

// unitDraw returns the unit-rate sampler of the current regime.
func (g *gammaCore) unitDraw() func(Source) float64 {
	switch g.regime {
	case gammaIntegerShape:
		return g.drawIntegerShape
	case gammaHalfIntegerShape:
		return g.drawHalfIntegerShape
	case gammaSmallShape:
		return g.drawSmallShape
	case gammaMediumShape:
		return g.drawMediumShape
	}
	return g.drawLargeShape
}

func (g *gammaCore) drawIntegerShape(r Source) float64 {
	x := 0.0
	for i := int(g.shape); i > 0; i-- {
		x += r.ExpFloat64()
	}
	return x
}

func (g *gammaCore) drawHalfIntegerShape(r Source) float64 {
	x := 0.0
	for i := int(g.shape); i > 0; i-- {
		x += r.ExpFloat64()
	}
	n := r.NormFloat64()
	return x + 0.5*n*n
}

// drawSmallShape is algorithm GS of Ahrens and Dieter (1974): a
// power-law proposal on [0, 1] mixed with an exponential tail on
// (1, ∞), each accepted against an exponential variate.
func (g *gammaCore) drawSmallShape(r Source) float64 {
	for i := 0; i < maxRejectionIterations; i++ {
		u := r.Float64()
		p := g.shape * g.gsCoef * u
		w := r.ExpFloat64()
		if p <= 1 {
			x := math.Pow(p, 1/g.shape)
			if x <= w {
				return x
			}
		} else {
			x := -math.Log(g.gsCoef * (1 - u))
			if (1-g.shape)*math.Log(x) <= w {
				return x
			}
		}
	}
	return rejectionExhausted("gamma " + g.regime.String())
}

// drawMediumShape is Fishman's (1976) rejection from an exponential
// with the same mean.
func (g *gammaCore) drawMediumShape(r Source) float64 {
	for i := 0; i < maxRejectionIterations; i++ {
		w1 := r.ExpFloat64()
		w2 := r.ExpFloat64()
		if w2 >= (g.shape-1)*(w1-math.Log(w1)-1) {
			return g.shape * w1
		}
	}
	return rejectionExhausted("gamma " + g.regime.String())
}

// drawLargeShape is Marsaglia and Tsang (2000), "A simple method for
// generating gamma variables".
func (g *gammaCore) drawLargeShape(r Source) float64 {
	for i := 0; i < maxRejectionIterations; i++ {
		n := r.NormFloat64()
		v := 1 + g.mtC*n
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := r.Float64()
		n2 := n * n
		if u < 1-0.0331*n2*n2 {
			return g.mtD * v
		}
		if math.Log(u) < 0.5*n2+g.mtD*(1-v+math.Log(v)) {
			return g.mtD * v
		}
	}
	return rejectionExhausted("gamma " + g.regime.String())
}

// gammaSample checks that xs is a usable sample for the Gamma
// estimators. If positive is set, zero values are rejected too.
func gammaSample(xs []float64, positive bool) (Sample, error) {
	if len(xs) == 0 {
		return Sample{}, errors.Wrap(ErrInvalidSample, "empty sample")
	}
	for _, x := range xs {
		if !(x >= 0) || math.IsInf(x, 1) || (positive && x == 0) {
			return Sample{}, errors.Wrapf(ErrInvalidSample, "value %v outside the gamma support", x)
		}
	}
	return Sample{Xs: xs}, nil
}

func (g *gammaCore) fitRateMLE(xs []float64) error {
	s, err := gammaSample(xs, false)
	if err != nil {
		return err
	}
	mean := s.Mean()
	if mean == 0 {
		return errors.Wrap(ErrInvalidSample, "sample mean is zero")
	}
	g.set(g.shape, g.shape/mean)
	return nil
}

func (g *gammaCore) fitRateUMVU(xs []float64) error {
	s, err := gammaSample(xs, false)
	if err != nil {
		return err
	}
	sum := s.Sum()
	k := g.shape*float64(len(xs)) - 1
	if !(k > 0) || sum == 0 {
		return errors.Wrapf(ErrInvalidSample, "UMVU needs shape*n > 1 and a positive sum, have %v and %v", k+1, sum)
	}
	g.set(g.shape, k/sum)
	return nil
}

func (g *gammaCore) fitRateBayes(xs []float64, prior *GammaDist) (*GammaDist, error) {
	s, err := gammaSample(xs, false)
	if err != nil {
		return nil, err
	}
	posterior := NewGammaDist(prior.shape+g.shape*float64(len(xs)), prior.rate+s.Sum())
	g.set(g.shape, posterior.Mean())
	return posterior, nil
}

// GammaDist is a Gamma distribution with shape α and rate β (scale
// θ = 1/β):
//
//	f(x) = βᵅ/Γ(α) xᵅ⁻¹ e^(-βx)
//
// Create it with NewGammaDist and change it only through
// SetParameters or the Fit methods.
type GammaDist struct {
	gammaCore
}

// NewGammaDist returns a Gamma distribution with the given shape and
// rate. See SetParameters for the treatment of invalid values.
func NewGammaDist(shape, rate float64) *GammaDist {
	d := new(GammaDist)
	d.SetParameters(shape, rate)
	return d
}

// SetParameters sets the shape and rate. A shape or rate that is not
// positive and finite is replaced by 1. A shape below 5 within a
// relative 1e-12 of an integer or half-integer is rounded to it.
func (d *GammaDist) SetParameters(shape, rate float64) {
	d.set(shape, rate)
}

// FitRateMLE sets the rate to its maximum likelihood estimate α/x̄,
// keeping the shape.
func (d *GammaDist) FitRateMLE(xs []float64) error {
	return d.fitRateMLE(xs)
}

// FitRateMM sets the rate by the method of moments. For a known shape
// this coincides with FitRateMLE.
func (d *GammaDist) FitRateMM(xs []float64) error {
	return d.fitRateMLE(xs)
}

// FitRateUMVU sets the rate to its uniformly minimum variance unbiased
// estimate (αn - 1)/Σx.
func (d *GammaDist) FitRateUMVU(xs []float64) error {
	return d.fitRateUMVU(xs)
}

// FitRateBayes updates the conjugate Gamma prior on the rate with xs
// and sets the rate to the posterior mean. It returns the posterior;
// prior is not modified.
func (d *GammaDist) FitRateBayes(xs []float64, prior *GammaDist) (*GammaDist, error) {
	return d.fitRateBayes(xs, prior)
}

// FitShapeMM sets the shape to x̄β, keeping the rate.
func (d *GammaDist) FitShapeMM(xs []float64) error {
	s, err := gammaSample(xs, false)
	if err != nil {
		return err
	}
	mean := s.Mean()
	if mean == 0 {
		return errors.Wrap(ErrInvalidSample, "sample mean is zero")
	}
	d.set(mean*d.rate, d.rate)
	return nil
}

// FitShapeAndRateMM sets α = x̄²/s² and β = x̄/s², where s² is the
// second central moment of xs.
func (d *GammaDist) FitShapeAndRateMM(xs []float64) error {
	s, err := gammaSample(xs, false)
	if err != nil {
		return err
	}
	mean := s.Mean()
	v := s.VarianceAround(mean)
	if !(v > 0) || mean == 0 {
		return errors.Wrapf(ErrInvalidSample, "moments need a positive mean and variance, have %v and %v", mean, v)
	}
	d.set(mean*mean/v, mean/v)
	return nil
}

// FitShapeAndRateMLE sets shape and rate to their joint maximum
// likelihood estimate. All values of xs must be positive.
//
// The shape solves log α - ψ(α) = log x̄ - mean(log x), found with
// Newton's method from Minka's closed-form approximation. If Newton's
// method fails, FitShapeAndRateMLE returns an error wrapping
// ErrNoConvergence and leaves d unchanged.
func (d *GammaDist) FitShapeAndRateMLE(xs []float64) error {
	smp, err := gammaSample(xs, true)
	if err != nil {
		return err
	}
	mean := smp.Mean()
	s := math.Log(mean) - smp.LogMean()
	if !(s > 0) {
		return errors.Wrap(ErrInvalidSample, "sample has no spread")
	}

	x0 := (3 - s + math.Sqrt((s-3)*(s-3)+24*s)) / (12 * s)
	shape, ok := mathx.FindRootNewton(func(a float64) float64 {
		return math.Log(a) - mathx.Digamma(a) - s
	}, func(a float64) float64 {
		return 1/a - mathx.Trigamma(a)
	}, x0, gammaFitEpsilon)
	if !ok || !(shape > 0) {
		log.Warningf("gamma shape MLE failed to converge (s=%v, start %v)", s, x0)
		return errors.Wrapf(ErrNoConvergence, "gamma shape MLE with s=%v", s)
	}
	if log.IsEnabledFor(logging.DEBUG) {
		log.Debugf("gamma shape MLE: s=%v start=%v shape=%v", s, x0, shape)
	}
	d.set(shape, shape/mean)
	return nil
}
