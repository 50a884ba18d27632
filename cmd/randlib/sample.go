// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/aclements/go-randlib/stats"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

var sampleCommand = cli.Command{
	Action: sample,
	Name:   "sample",
	Usage:  "print random variates, one per line",
	Flags:  distFlags(&countFlag, &seedFlag),
}

func sample(ctx *cli.Context) error {
	cfg, err := newConfig(ctx)
	if err != nil {
		return err
	}
	d, err := cfg.makeDist()
	if err != nil {
		return err
	}
	if r, ok := d.(interface{ Regime() fmt.Stringer }); ok {
		log.Infof("drawing %d %s variates with the %s sampler", cfg.count, cfg.dist, r.Regime())
	}

	xs := make([]float64, cfg.count)
	src := cfg.source()
	if s, ok := d.(interface {
		Sample(stats.Source, []float64)
	}); ok {
		s.Sample(src, xs)
	} else {
		draw := stats.Rand(d)
		for i := range xs {
			xs[i] = draw(src)
		}
	}

	w := bufio.NewWriter(ctx.App.Writer)
	for _, x := range xs {
		w.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "writing variates")
}
