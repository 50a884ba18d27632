// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-randlib/internal/logger"
	"github.com/aclements/go-randlib/stats"
	"github.com/cockroachdb/errors"
	logging "github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

var log = logging.MustGetLogger("randlib")

var distNames = []string{
	"gamma", "chisq", "erlang", "binomial", "exponential", "normal",
	"uniform", "bernoulli", "geometric", "logarithmic", "zeta",
}

var (
	distFlag = cli.StringFlag{
		Name:    "dist",
		Aliases: []string{"d"},
		Usage:   "distribution family: " + strings.Join(distNames, ", "),
		Value:   "normal",
	}
	shapeFlag = cli.Float64Flag{
		Name:  "shape",
		Usage: "gamma shape α",
		Value: 1,
	}
	rateFlag = cli.Float64Flag{
		Name:  "rate",
		Usage: "rate β of the gamma, erlang and exponential families",
		Value: 1,
	}
	probFlag = cli.Float64Flag{
		Name:    "prob",
		Aliases: []string{"p"},
		Usage:   "success probability (binomial, bernoulli, geometric) or logarithmic parameter",
		Value:   0.5,
	}
	trialsFlag = cli.IntFlag{
		Name:  "trials",
		Usage: "number of binomial trials",
		Value: 1,
	}
	degreeFlag = cli.IntFlag{
		Name:  "k",
		Usage: "degrees of freedom (chisq) or number of stages (erlang)",
		Value: 1,
	}
	muFlag = cli.Float64Flag{
		Name:  "mu",
		Usage: "normal mean",
	}
	sigmaFlag = cli.Float64Flag{
		Name:  "sigma",
		Usage: "normal standard deviation",
		Value: 1,
	}
	minFlag = cli.Float64Flag{
		Name:  "min",
		Usage: "uniform lower bound",
	}
	maxFlag = cli.Float64Flag{
		Name:  "max",
		Usage: "uniform upper bound",
		Value: 1,
	}
	exponentFlag = cli.Float64Flag{
		Name:  "exponent",
		Usage: "zeta exponent s",
		Value: 2,
	}
	countFlag = cli.IntFlag{
		Name:    "count",
		Aliases: []string{"n"},
		Usage:   "number of variates to draw",
		Value:   10,
	}
	seedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "seed of the random source; 0 draws from the global source",
	}
	confidenceFlag = cli.Float64Flag{
		Name:  "confidence",
		Usage: "confidence level of quantile intervals",
		Value: 0.95,
	}
	positiveFlag = cli.BoolFlag{
		Name:  "positive",
		Usage: "reflect the density estimate at 0",
	}
)

// distFlags returns the parameter flags of every family, followed by
// extra.
func distFlags(extra ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		&distFlag, &shapeFlag, &rateFlag, &probFlag, &trialsFlag, &degreeFlag,
		&muFlag, &sigmaFlag, &minFlag, &maxFlag, &exponentFlag,
	}, extra...)
}

// config is the validated flag state of one command.
type config struct {
	dist               string
	shape, rate, prob  float64
	trials, degree     int
	mu, sigma          float64
	min, max, exponent float64
	count              int
	seed               uint64
	confidence         float64
	positive           bool
	shapeSet           bool
	trialsSet          bool
}

func newConfig(ctx *cli.Context) (*config, error) {
	cfg := &config{
		dist:       strings.ToLower(ctx.String(distFlag.Name)),
		shape:      ctx.Float64(shapeFlag.Name),
		rate:       ctx.Float64(rateFlag.Name),
		prob:       ctx.Float64(probFlag.Name),
		trials:     ctx.Int(trialsFlag.Name),
		degree:     ctx.Int(degreeFlag.Name),
		mu:         ctx.Float64(muFlag.Name),
		sigma:      ctx.Float64(sigmaFlag.Name),
		min:        ctx.Float64(minFlag.Name),
		max:        ctx.Float64(maxFlag.Name),
		exponent:   ctx.Float64(exponentFlag.Name),
		count:      ctx.Int(countFlag.Name),
		seed:       ctx.Uint64(seedFlag.Name),
		confidence: ctx.Float64(confidenceFlag.Name),
		positive:   ctx.Bool(positiveFlag.Name),
		shapeSet:   ctx.IsSet(shapeFlag.Name),
		trialsSet:  ctx.IsSet(trialsFlag.Name),
	}
	if cfg.count < 0 {
		return nil, errors.Newf("--%s must not be negative, have %d", countFlag.Name, cfg.count)
	}
	if ctx.IsSet(confidenceFlag.Name) && !(cfg.confidence > 0 && cfg.confidence < 1) {
		return nil, errors.Newf("--%s must be in (0, 1), have %v", confidenceFlag.Name, cfg.confidence)
	}
	if lvl := ctx.String(logger.LogLevelFlag.Name); lvl != "" {
		if _, ok := logger.ParseLevel(lvl); !ok {
			log.Warningf("unknown log level %q, using INFO", lvl)
		}
	}
	return cfg, nil
}

// source returns the random source selected by --seed.
func (cfg *config) source() stats.Source {
	if cfg.seed == 0 {
		return nil
	}
	return stats.NewSource(cfg.seed)
}

// makeDist builds the distribution named by --dist. Parameters the
// library clamps are reported as warnings.
func (cfg *config) makeDist() (stats.DistCommon, error) {
	var d stats.DistCommon
	switch cfg.dist {
	case "gamma":
		g := stats.NewGammaDist(cfg.shape, cfg.rate)
		cfg.warnClamped("shape", cfg.shape, g.Shape(), positive(cfg.shape))
		cfg.warnClamped("rate", cfg.rate, g.Rate(), positive(cfg.rate))
		d = g
	case "chisq":
		c := stats.NewChiSquaredDist(cfg.degree)
		cfg.warnClamped("k", float64(cfg.degree), float64(c.Degree()), cfg.degree >= 1)
		d = c
	case "erlang":
		e := stats.NewErlangDist(cfg.degree, cfg.rate)
		cfg.warnClamped("k", float64(cfg.degree), float64(e.K()), cfg.degree >= 1)
		cfg.warnClamped("rate", cfg.rate, e.Rate(), positive(cfg.rate))
		d = e
	case "binomial":
		b := stats.NewBinomialDist(cfg.trials, cfg.prob)
		cfg.warnClamped("trials", float64(cfg.trials), float64(b.N()), cfg.trials >= 1)
		cfg.warnClamped("prob", cfg.prob, b.P(), cfg.prob >= 0 && cfg.prob <= 1)
		d = b
	case "exponential":
		d = stats.ExponentialDist{Rate: cfg.rate}
	case "normal":
		d = stats.NormalDist{Mu: cfg.mu, Sigma: cfg.sigma}
	case "uniform":
		d = stats.UniformDist{A: cfg.min, B: cfg.max}
	case "bernoulli":
		d = stats.BernoulliDist{P: cfg.prob}
	case "geometric":
		d = stats.GeometricDist{P: cfg.prob}
	case "logarithmic":
		l := stats.NewLogarithmicDist(cfg.prob)
		cfg.warnClamped("prob", cfg.prob, l.P(), cfg.prob > 0 && cfg.prob < 1)
		d = l
	case "zeta":
		z := stats.NewZetaDist(cfg.exponent)
		cfg.warnClamped("exponent", cfg.exponent, z.Exponent(), cfg.exponent > 1 && !math.IsInf(cfg.exponent, 1))
		d = z
	default:
		return nil, errors.Newf("unknown distribution %q (want one of %s)", cfg.dist, strings.Join(distNames, ", "))
	}
	return d, nil
}

// warnClamped reports a parameter the constructor replaced. Values
// that were in range but adjusted, such as a Gamma shape snapped to a
// nearby integer, are only logged at debug level.
func (cfg *config) warnClamped(param string, requested, used float64, inRange bool) {
	switch {
	case !inRange:
		log.Warningf("%s: %s %v is out of range, using %v", cfg.dist, param, requested, used)
	case requested != used:
		log.Debugf("%s: %s %v adjusted to %v", cfg.dist, param, requested, used)
	}
}

// positive reports whether x is a finite positive number.
func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// readSample reads newline-separated numbers from r. Blank lines are
// skipped.
func readSample(r io.Reader) (stats.Sample, error) {
	var sample stats.Sample
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return sample, errors.Wrapf(err, "line %d", line)
		}
		sample.Xs = append(sample.Xs, value)
	}
	if err := scanner.Err(); err != nil {
		return sample, errors.Wrap(err, "reading input")
	}
	if len(sample.Xs) == 0 {
		return sample, errors.New("no input values")
	}
	return sample, nil
}

func formatFloat(x float64) string {
	return fmt.Sprintf("%.6g", x)
}
