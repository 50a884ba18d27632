// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/aclements/go-randlib/stats"
	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

var methodFlag = cli.StringFlag{
	Name:  "method",
	Usage: `estimator: "mle", "mm", "umvu" (gamma and erlang rate) or "bayes" (binomial, uniform prior)`,
	Value: "mle",
}

var fitCommand = cli.Command{
	Action: fit,
	Name:   "fit",
	Usage:  "estimate distribution parameters from numbers read from stdin",
	Flags: []cli.Flag{
		&distFlag, &methodFlag, &shapeFlag, &degreeFlag, &trialsFlag,
	},
	Description: `
The fit command estimates the parameters of a gamma, erlang or binomial
distribution. For gamma, setting --shape fits only the rate; otherwise
shape and rate are fitted together. Erlang fits the rate for the given
--k, and binomial the success probability for the given --trials.`,
}

// estimate is a fitted distribution and its parameter table.
type estimate struct {
	dist   stats.DistCommon
	params table.Row
	values table.Row
}

func fit(ctx *cli.Context) error {
	cfg, err := newConfig(ctx)
	if err != nil {
		return err
	}
	s, err := readSample(ctx.App.Reader)
	if err != nil {
		return err
	}
	method := ctx.String(methodFlag.Name)

	var est *estimate
	switch cfg.dist {
	case "gamma":
		est, err = fitGamma(cfg, method, s.Xs)
	case "erlang":
		est, err = fitErlang(cfg, method, s.Xs)
	case "binomial":
		est, err = fitBinomial(cfg, method, s.Xs)
	default:
		return errors.Newf("cannot fit %q (want gamma, erlang or binomial)", cfg.dist)
	}
	if err != nil {
		return errors.Wrapf(err, "fitting %s by %s", cfg.dist, method)
	}

	t := table.NewWriter()
	t.SetOutputMirror(ctx.App.Writer)
	t.AppendHeader(append(est.params, "log-likelihood"))
	t.AppendRow(append(est.values, formatFloat(stats.LogLikelihood(est.dist, s.Xs))))
	t.Render()
	return nil
}

func unknownMethod(dist, method string) error {
	return errors.Newf("unknown %s estimator %q", dist, method)
}

func fitGamma(cfg *config, method string, xs []float64) (*estimate, error) {
	g := stats.NewGammaDist(cfg.shape, 1)
	var err error
	if cfg.shapeSet {
		switch method {
		case "mle":
			err = g.FitRateMLE(xs)
		case "mm":
			err = g.FitRateMM(xs)
		case "umvu":
			err = g.FitRateUMVU(xs)
		default:
			return nil, unknownMethod("gamma rate", method)
		}
	} else {
		switch method {
		case "mle":
			err = g.FitShapeAndRateMLE(xs)
		case "mm":
			err = g.FitShapeAndRateMM(xs)
		default:
			return nil, unknownMethod("gamma shape and rate", method)
		}
	}
	if err != nil {
		return nil, err
	}
	return &estimate{
		dist:   g,
		params: table.Row{"shape", "rate", "regime"},
		values: table.Row{formatFloat(g.Shape()), formatFloat(g.Rate()), g.Regime().String()},
	}, nil
}

func fitErlang(cfg *config, method string, xs []float64) (*estimate, error) {
	e := stats.NewErlangDist(cfg.degree, 1)
	var err error
	switch method {
	case "mle":
		err = e.FitRateMLE(xs)
	case "mm":
		err = e.FitRateMM(xs)
	case "umvu":
		err = e.FitRateUMVU(xs)
	default:
		return nil, unknownMethod("erlang", method)
	}
	if err != nil {
		return nil, err
	}
	return &estimate{
		dist:   e,
		params: table.Row{"k", "rate"},
		values: table.Row{e.K(), formatFloat(e.Rate())},
	}, nil
}

func fitBinomial(cfg *config, method string, xs []float64) (*estimate, error) {
	if !cfg.trialsSet {
		return nil, errors.Newf("binomial fits need --%s", trialsFlag.Name)
	}
	b := stats.NewBinomialDist(cfg.trials, 0.5)
	switch method {
	case "mle":
		if err := b.FitProbabilityMLE(xs); err != nil {
			return nil, err
		}
	case "mm":
		if err := b.FitProbabilityMM(xs); err != nil {
			return nil, err
		}
	case "bayes":
		post, err := b.FitProbabilityBayes(xs, stats.BetaDist{Alpha: 1, Beta: 1})
		if err != nil {
			return nil, err
		}
		return &estimate{
			dist:   b,
			params: table.Row{"trials", "prob", "posterior α", "posterior β"},
			values: table.Row{b.N(), formatFloat(b.P()), formatFloat(post.Alpha), formatFloat(post.Beta)},
		}, nil
	default:
		return nil, unknownMethod("binomial", method)
	}
	return &estimate{
		dist:   b,
		params: table.Row{"trials", "prob"},
		values: table.Row{b.N(), formatFloat(b.P())},
	}, nil
}
