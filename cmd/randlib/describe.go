// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-randlib/stats"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

var describeCommand = cli.Command{
	Action: describe,
	Name:   "describe",
	Usage:  "summarize newline-separated numbers read from stdin",
	Flags: []cli.Flag{
		&confidenceFlag,
		&positiveFlag,
	},
	Description: `
The describe command prints summary statistics, quantiles with
distribution-free confidence intervals, and a kernel density estimate
of the values read from stdin.`,
}

func describe(ctx *cli.Context) error {
	cfg, err := newConfig(ctx)
	if err != nil {
		return err
	}
	s, err := readSample(ctx.App.Reader)
	if err != nil {
		return err
	}
	s.Sort()
	w := ctx.App.Writer

	printSummary(w, s)
	if err := printQuantiles(w, s, cfg.confidence); err != nil {
		return err
	}

	kde, err := stats.KDE{Reflect: cfg.positive}.From(s)
	if err != nil {
		// A sample without spread has no density estimate.
		log.Warningf("skipping density estimate: %v", err)
		return nil
	}
	printDensity(w, kde)
	return nil
}

func printSummary(w io.Writer, s stats.Sample) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"N", "sum", "mean", "gmean", "std dev", "variance", "skewness"})
	gmean := "-"
	if g := s.GeoMean(); !math.IsNaN(g) {
		gmean = formatFloat(g)
	}
	t.AppendRow(table.Row{
		len(s.Xs), formatFloat(s.Sum()), formatFloat(s.Mean()), gmean,
		formatFloat(s.StdDev()), formatFloat(s.Variance()), formatFloat(s.Skewness()),
	})
	t.Render()
}

// printQuantiles prints the quartiles and tails of s, each with its
// confidence interval.
func printQuantiles(w io.Writer, s stats.Sample, confidence float64) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"quantile", "value", "CI low", "CI high", "confidence"})

	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		q := float64(p) / 100
		row := table.Row{label, formatFloat(s.Percentile(q))}
		if p > 0 && p < 100 {
			ci := stats.QuantileCI(len(s.Xs), q, confidence)
			lo, hi, err := ci.FromSample(s)
			if err != nil {
				return err
			}
			row = append(row, formatFloat(lo), formatFloat(hi), formatFloat(ci.Confidence))
		}
		t.AppendRow(row)
	}
	t.Render()
	return nil
}

// printDensity tabulates the density estimate over its bounds.
func printDensity(w io.Writer, kde stats.Dist) {
	const points = 11
	lo, hi := kde.Support()
	if b, ok := kde.(interface{ Bounds() (float64, float64) }); ok {
		lo, hi = b.Bounds()
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("kernel density estimate")
	t.AppendHeader(table.Row{"x", "density", "CDF"})
	for i := 0; i < points; i++ {
		x := lo + (hi-lo)*float64(i)/(points-1)
		t.AppendRow(table.Row{formatFloat(x), formatFloat(kde.PDF(x)), formatFloat(kde.CDF(x))})
	}
	t.Render()
}
