// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/aclements/go-randlib/stats"
	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

var (
	xFlag = cli.Float64SliceFlag{
		Name:  "x",
		Usage: "points at which to evaluate the density and CDF",
	}
	qFlag = cli.Float64SliceFlag{
		Name:  "q",
		Usage: "probabilities at which to evaluate the quantile function",
	}
)

var evalCommand = cli.Command{
	Action: eval,
	Name:   "eval",
	Usage:  "evaluate the density, CDF and quantile function of a distribution",
	Flags:  distFlags(&xFlag, &qFlag),
}

func eval(ctx *cli.Context) error {
	cfg, err := newConfig(ctx)
	if err != nil {
		return err
	}
	d, err := cfg.makeDist()
	if err != nil {
		return err
	}
	xs, qs := ctx.Float64Slice(xFlag.Name), ctx.Float64Slice(qFlag.Name)
	if len(xs) == 0 && len(qs) == 0 {
		return errors.Newf("nothing to evaluate: give --%s or --%s", xFlag.Name, qFlag.Name)
	}
	w := ctx.App.Writer

	if m, ok := d.(stats.Moments); ok {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"distribution", "mean", "variance", "median"})
		t.AppendRow(table.Row{cfg.dist, formatFloat(m.Mean()), formatFloat(m.Variance()), formatFloat(stats.Median(d))})
		t.Render()
	}

	if len(xs) > 0 {
		density, label := densityOf(d)
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"x", label, "CDF", "hazard"})
		for _, x := range xs {
			t.AppendRow(table.Row{formatFloat(x), formatFloat(density(x)), formatFloat(d.CDF(x)), formatFloat(stats.Hazard(d, x))})
		}
		t.Render()
	}

	if len(qs) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"q", "quantile"})
		for _, q := range qs {
			t.AppendRow(table.Row{formatFloat(q), formatFloat(stats.Quantile(d, q))})
		}
		t.Render()
	}
	return nil
}

// densityOf returns the PDF or PMF of d and its column label.
func densityOf(d stats.DistCommon) (func(float64) float64, string) {
	switch d := d.(type) {
	case stats.Dist:
		return d.PDF, "PDF"
	case stats.DiscreteDist:
		return d.PMF, "PMF"
	}
	return func(float64) float64 { return math.NaN() }, "density"
}
