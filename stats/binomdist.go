// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"github.com/aclements/go-randlib/mathx"
	"github.com/cockroachdb/errors"
)

// binomialRegime identifies the algorithm used to draw binomial
// variates.
type binomialRegime int

const (
	// Sum of n Bernoulli trials.
	binomialBernoulliSum binomialRegime = iota

	// Count of geometric waiting times that fit in n trials.
	binomialWaiting

	// Kachitvichyanukul and Schmeiser's BTPE rejection from a
	// triangle, parallelogram and exponential-tail envelope,
	// plus a waiting-time correction for the rounding residue of
	// n·p.
	binomialRejection
)

var binomialRegimeNames = [...]string{
	binomialBernoulliSum: "bernoulli-sum",
	binomialWaiting:      "waiting",
	binomialRejection:    "rejection",
}

func (r binomialRegime) String() string {
	if r < 0 || int(r) >= len(binomialRegimeNames) {
		return fmt.Sprintf("binomialRegime(%d)", int(r))
	}
	return binomialRegimeNames[r]
}

// classifyBinomial returns the sampling regime for n trials with
// success probability p, minority probability minpq = min(p, 1-p),
// npFloor = ⌊n·minpq⌋ and rounding residue pRes.
func classifyBinomial(n int, p, minpq, npFloor, pRes float64) binomialRegime {
	nf := float64(n)
	if n <= 3 || (n <= 13 && minpq > 0.025*(nf+6)) || (n <= 200 && mathx.AreClose(p, 0.5, 1e-6)) {
		return binomialBernoulliSum
	}
	if npFloor <= 12 || (pRes > 0 && npFloor <= 16) {
		return binomialWaiting
	}
	return binomialRejection
}

// BinomialDist is a binomial distribution: the number of successes in
// N independent Bernoulli trials with success probability P.
//
// Create it with NewBinomialDist and change it only through
// SetParameters or the Fit methods.
type BinomialDist struct {
	n    int
	p, q float64

	regime binomialRegime

	// Generator constants are derived from the minority
	// probability minpq = min(p, q) rounded down to a multiple of
	// 1/n; pRes is the part rounded off.
	minpq          float64
	npFloor        float64
	pFloor, qFloor float64
	pRes             float64
	logPFloor        float64
	logQFloor        float64

	// waits draws the geometric waiting times: with probability
	// minpq in the waiting regime and pRes/qFloor for the
	// residual correction of the rejection regime.
	waits GeometricDist

	// Rejection envelope around the mode of Binomial(n, pFloor):
	// a triangle of half-width p1 centered on xm over [xl, xr],
	// parallelograms of height c on either side of it, and
	// exponential tails with rates lamL and lamR. p1..p4 are the
	// cumulative areas of the regions.
	mode           float64
	xm, xl, xr     float64
	c              float64
	lamL, lamR     float64
	p1, p2, p3, p4 float64

	// logPeak is the log mass of Binomial(n, pFloor) at mode.
	logPeak float64
}

// NewBinomialDist returns a binomial distribution. See SetParameters.
func NewBinomialDist(n int, p float64) *BinomialDist {
	d := new(BinomialDist)
	d.SetParameters(n, p)
	return d
}

// SetParameters sets the number of trials and the success
// probability. n < 1 is replaced by 1. p is clamped to [0, 1], and
// NaN is replaced by 0.5.
func (d *BinomialDist) SetParameters(n int, p float64) {
	if n < 1 {
		n = 1
	}
	if math.IsNaN(p) {
		p = 0.5
	}
	p = math.Max(0, math.Min(1, p))

	*d = BinomialDist{n: n, p: p, q: 1 - p}
	nf := float64(n)

	d.minpq = math.Min(d.p, d.q)
	d.npFloor = math.Floor(nf * d.minpq)
	d.pFloor = d.npFloor / nf
	if !mathx.AreClose(d.npFloor, nf*d.minpq, 1e-12) {
		d.pRes = d.minpq - d.pFloor
	}
	d.regime = classifyBinomial(n, d.p, d.minpq, d.npFloor, d.pRes)

	switch d.regime {
	case binomialWaiting:
		d.waits = GeometricDist{P: d.minpq}
	case binomialRejection:
		d.setRejectionConstants()
	}
}

func (d *BinomialDist) setRejectionConstants() {
	nf := float64(d.n)
	d.qFloor = 1 - d.pFloor
	if d.pRes > 0 {
		d.waits = GeometricDist{P: d.pRes / d.qFloor}
	}

	r, q := d.pFloor, d.qFloor
	fm := nf*r + r
	d.mode = math.Floor(fm)
	d.p1 = math.Floor(2.195*math.Sqrt(nf*r*q)-4.6*q) + 0.5
	d.xm = d.mode + 0.5
	d.xl = d.xm - d.p1
	d.xr = d.xm + d.p1
	d.c = 0.134 + 20.5/(15.3+d.mode)
	a := (fm - d.xl) / (fm - d.xl*r)
	d.lamL = a * (1 + a/2)
	a = (d.xr - fm) / (d.xr * q)
	d.lamR = a * (1 + a/2)
	d.p2 = d.p1 * (1 + 2*d.c)
	d.p3 = d.p2 + d.c/d.lamL
	d.p4 = d.p3 + d.c/d.lamR

	d.logPFloor = math.Log(r)
	d.logQFloor = math.Log(q)
	d.logPeak = d.logProbFloor(d.mode)
}

// logProbFloor returns the log mass of Binomial(n, pFloor) at k.
func (d *BinomialDist) logProbFloor(k float64) float64 {
	return mathx.Lchoose(d.n, int(k)) + k*d.logPFloor + (float64(d.n)-k)*d.logQFloor
}

// N returns the number of trials.
func (d *BinomialDist) N() int { return d.n }

// P returns the success probability.
func (d *BinomialDist) P() float64 { return d.p }

// Regime returns the name of the algorithm Rand and Sample use for
// the current parameters.
func (d *BinomialDist) Regime() fmt.Stringer { return d.regime }

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d *BinomialDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.n {
		return 0
	}
	switch d.p {
	case 0:
		return b2f(ki == 0)
	case 1:
		return b2f(ki == d.n)
	}
	if d.n <= 1000 {
		return mathx.Choose(d.n, ki) * math.Pow(d.p, float64(ki)) * math.Pow(d.q, float64(d.n-ki))
	}
	return math.Exp(d.LogPMF(k))
}

// LogPMF returns log PMF(k), computed in log space so it stays finite
// for large n.
func (d *BinomialDist) LogPMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.n || d.p == 0 || d.p == 1 {
		return math.Log(d.PMF(k))
	}
	kf := float64(ki)
	return mathx.Lchoose(d.n, ki) + kf*math.Log(d.p) + (float64(d.n)-kf)*math.Log1p(-d.p)
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d *BinomialDist) CDF(k float64) float64 {
	k = math.Floor(k)
	ki := int(k)
	if ki < 0 {
		return 0
	} else if ki >= d.n {
		return 1
	}
	switch d.p {
	case 0:
		return 1
	case 1:
		return 0
	}
	return mathx.BetaInc(d.q, float64(d.n-ki), k+1)
}

// SF is the probability of getting more than k successes.
func (d *BinomialDist) SF(k float64) float64 {
	k = math.Floor(k)
	ki := int(k)
	if ki < 0 {
		return 1
	} else if ki >= d.n {
		return 0
	}
	switch d.p {
	case 0:
		return 0
	case 1:
		return 1
	}
	return mathx.BetaInc(d.p, k+1, float64(d.n-ki))
}

func (d *BinomialDist) Support() (float64, float64) {
	return 0, float64(d.n)
}

func (d *BinomialDist) Step() float64 {
	return 1
}

// Quantile returns the smallest k with CDF(k) >= p.
func (d *BinomialDist) Quantile(p float64) float64 {
	return DiscreteQuantile(d, p)
}

func (d *BinomialDist) Mean() float64 {
	return float64(d.n) * d.p
}

func (d *BinomialDist) Variance() float64 {
	return float64(d.n) * d.p * d.q
}

// Median returns round(N·P), which is a median whenever N·P is not
// exactly halfway between integers.
func (d *BinomialDist) Median() float64 {
	return math.Round(float64(d.n) * d.p)
}

// Mode returns ⌊(N+1)P⌋, capped at N.
func (d *BinomialDist) Mode() float64 {
	return math.Min(math.Floor(float64(d.n+1)*d.p), float64(d.n))
}

func (d *BinomialDist) Skewness() float64 {
	return (d.q - d.p) / math.Sqrt(d.Variance())
}

func (d *BinomialDist) ExcessKurtosis() float64 {
	return (1/(d.p*d.q) - 6) / float64(d.n)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d *BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}

// Rand returns a single draw. If r is nil, it uses the global
// source.
func (d *BinomialDist) Rand(r Source) float64 {
	return drawToFloat(d.drawer()(source(r)))
}

// Sample fills buf with independent draws. The sampling algorithm is
// selected once for the whole buffer.
func (d *BinomialDist) Sample(r Source, buf []float64) {
	r = source(r)
	draw := d.drawer()
	for i := range buf {
		buf[i] = drawToFloat(draw(r))
	}
}

func drawToFloat(x int) float64 {
	if x < 0 {
		return nan
	}
	return float64(x)
}

// SampleInts is like Sample, but fills an int slice. An exhausted
// rejection loop, which should never happen, yields -1.
func (d *BinomialDist) SampleInts(r Source, buf []int) {
	r = source(r)
	draw := d.drawer()
	for i := range buf {
		buf[i] = draw(r)
	}
}

// drawer returns the sampler for the current parameters. A draw of -1
// signals an exhausted rejection loop.
func (d *BinomialDist) drawer() func(Source) int {
	switch d.p {
	case 0:
		return func(Source) int { return 0 }
	case 1:
		return func(Source) int { return d.n }
	}

	switch d.regime {
	case binomialBernoulliSum:
		return d.drawBernoulliSum
	case binomialWaiting:
		return func(r Source) int {
			return d.reflect(d.drawWaiting(r, d.n))
		}
	}
	return func(r Source) int {
		x, ok := d.drawRejection(r)
		if !ok {
			rejectionExhausted("binomial " + d.regime.String())
			return -1
		}
		// If X ~ Bin(n, pFloor) and Y ~ Bin(n - X, pRes/qFloor),
		// then X + Y ~ Bin(n, minpq).
		if d.pRes > 0 {
			x += d.drawWaiting(r, d.n-x)
		}
		return d.reflect(x)
	}
}

// reflect maps a draw for the minority probability back to p.
func (d *BinomialDist) reflect(x int) int {
	if d.p > 0.5 {
		return d.n - x
	}
	return x
}

func (d *BinomialDist) drawBernoulliSum(r Source) int {
	x := 0
	for i := 0; i < d.n; i++ {
		if r.Float64() < d.p {
			x++
		}
	}
	return x
}

// drawWaiting counts the successes in n trials by adding up geometric
// waiting times until they overflow n.
func (d *BinomialDist) drawWaiting(r Source, n int) int {
	x, sum := -1, 0.0
	for sum <= float64(n) {
		sum += d.waits.draw(r) + 1
		x++
	}
	return x
}

// drawRejection draws from Binomial(n, pFloor) with algorithm BTPE
// of Kachitvichyanukul and Schmeiser, "Binomial random variate
// generation" (1988). Points under the triangle are accepted
// outright. Everywhere else acceptance compares against the exact
// log mass ratio to the mode rather than the paper's Stirling
// squeeze.
func (d *BinomialDist) drawRejection(r Source) (int, bool) {
	nf := float64(d.n)
	for i := 0; i < maxRejectionIterations; i++ {
		u := r.Float64() * d.p4
		v := r.Float64()
		var y float64
		switch {
		case u <= d.p1:
			return int(math.Floor(d.xm - d.p1*v + u)), true
		case u <= d.p2:
			x := d.xl + (u-d.p1)/d.c
			v = v*d.c + 1 - math.Abs(x-d.xm)/d.p1
			if v > 1 {
				continue
			}
			y = math.Floor(x)
		case u <= d.p3:
			if v == 0 {
				continue
			}
			y = math.Floor(d.xl + math.Log(v)/d.lamL)
			if y < 0 {
				continue
			}
			v *= (u - d.p2) * d.lamL
		default:
			if v == 0 {
				continue
			}
			y = math.Floor(d.xr - math.Log(v)/d.lamR)
			if y > nf {
				continue
			}
			v *= (u - d.p3) * d.lamR
		}
		if math.Log(v) <= d.logProbFloor(y)-d.logPeak {
			return int(y), true
		}
	}
	return 0, false
}

// envelope returns the height of the rejection envelope and of its
// triangle at x, relative to the mass at the mode.
func (d *BinomialDist) envelope(x float64) (hat, triangle float64) {
	switch {
	case x < d.xl:
		return d.c * math.Exp(d.lamL*(x-d.xl)), 0
	case x > d.xr:
		return d.c * math.Exp(-d.lamR*(x-d.xr)), 0
	}
	triangle = 1 - math.Abs(x-d.xm)/d.p1
	return triangle + d.c, triangle
}

// binomialSample checks that every value of xs is a possible outcome
// of d.
func (d *BinomialDist) binomialSample(xs []float64) (Sample, error) {
	if len(xs) == 0 {
		return Sample{}, errors.Wrap(ErrInvalidSample, "empty sample")
	}
	for _, x := range xs {
		if !(x >= 0 && x <= float64(d.n)) || x != math.Floor(x) {
			return Sample{}, errors.Wrapf(ErrInvalidSample, "value %v is not an outcome of %d trials", x, d.n)
		}
	}
	return Sample{Xs: xs}, nil
}

// FitProbabilityMLE sets P to x̄/N. If any value of xs is not an
// integer in [0, N], it returns an error wrapping ErrInvalidSample
// and leaves d unchanged.
func (d *BinomialDist) FitProbabilityMLE(xs []float64) error {
	s, err := d.binomialSample(xs)
	if err != nil {
		return err
	}
	d.SetParameters(d.n, s.Mean()/float64(d.n))
	return nil
}

// FitProbabilityMM is the same as FitProbabilityMLE.
func (d *BinomialDist) FitProbabilityMM(xs []float64) error {
	return d.FitProbabilityMLE(xs)
}

// FitProbabilityBayes updates the conjugate Beta prior on P with xs,
// sets P to the posterior mean and returns the posterior.
func (d *BinomialDist) FitProbabilityBayes(xs []float64, prior BetaDist) (BetaDist, error) {
	s, err := d.binomialSample(xs)
	if err != nil {
		return prior, err
	}
	sum := s.Sum()
	trials := float64(len(xs) * d.n)
	posterior := BetaDist{Alpha: prior.Alpha + sum, Beta: prior.Beta + trials - sum}
	d.SetParameters(d.n, posterior.Mean())
	return posterior, nil
}
