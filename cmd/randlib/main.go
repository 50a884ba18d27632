// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command randlib samples, fits and evaluates probability
// distributions, and describes samples read from stdin.
//
//	randlib sample --dist gamma --shape 2 --rate 1 -n 10 --seed 1
//	randlib fit --dist binomial --trials 20 < counts.txt
//	randlib eval --dist normal --x 1.5 --q 0.975
//	randlib describe < measurements.txt
package main

import (
	"fmt"
	"os"

	"github.com/aclements/go-randlib/internal/logger"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "randlib",
		Usage: "sample, fit and evaluate probability distributions",
		Flags: []cli.Flag{
			&logger.LogLevelFlag,
		},
		Before: func(ctx *cli.Context) error {
			logger.SetupBackend(ctx.App.ErrWriter, ctx.String(logger.LogLevelFlag.Name))
			return nil
		},
		Commands: []*cli.Command{
			&describeCommand,
			&sampleCommand,
			&fitCommand,
			&evalCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "randlib:", err)
		os.Exit(1)
	}
}
