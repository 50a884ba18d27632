// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions and numerical methods
// not provided by the standard math package.
//
// Functions in this package never panic on numeric input. Domain
// errors are reported as NaN and non-convergence of iterative methods
// is reported through a boolean result.
package mathx // import "github.com/aclements/go-randlib/mathx"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

// machEps is the difference between 1 and the next representable
// float64.
const machEps = 2.220446049250313e-16

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
