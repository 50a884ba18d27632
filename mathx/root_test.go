// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRootBrent(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	x, ok := FindRootBrent(f, 0, 2, 1e-10)
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt2, x, 1e-10)

	// Reversed bracket.
	x, ok = FindRootBrent(f, 2, 0, 1e-10)
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt2, x, 1e-10)

	// Root at an endpoint.
	x, ok = FindRootBrent(func(x float64) float64 { return x - 1 }, 1, 3, 1e-10)
	assert.True(t, ok)
	assert.Equal(t, 1.0, x)

	x, ok = FindRootBrent(math.Cos, 1, 2, 1e-12)
	require.True(t, ok)
	assert.InDelta(t, math.Pi/2, x, 1e-12)

	// Not a bracket.
	_, ok = FindRootBrent(f, 2, 3, 1e-10)
	assert.False(t, ok)
	_, ok = FindRootBrent(func(float64) float64 { return nan }, 0, 1, 1e-10)
	assert.False(t, ok)
}

func TestFindRootNewton(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }
	x, ok := FindRootNewton(f, df, 1, DefaultRootEpsilon)
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt2, x, 1e-10)

	// A vanishing derivative is a failure, not a division by
	// zero.
	_, ok = FindRootNewton(f, df, 0, DefaultRootEpsilon)
	assert.False(t, ok)

	// x² + 1 has no real root.
	_, ok = FindRootNewton(func(x float64) float64 { return x*x + 1 }, df, 0.5, DefaultRootEpsilon)
	assert.False(t, ok)
}

func TestFindRootSecant(t *testing.T) {
	x, ok := FindRootSecant(func(x float64) float64 { return math.Exp(x) - 3 }, 0, 1e-12)
	require.True(t, ok)
	assert.InDelta(t, math.Log(3), x, 1e-11)

	_, ok = FindRootSecant(func(float64) float64 { return 1 }, 0, 1e-12)
	assert.False(t, ok)
}

func TestBisect(t *testing.T) {
	x, ok := Bisect(func(x float64) float64 { return x*x*x - 8 }, 0, 10, 1e-9)
	require.True(t, ok)
	assert.InDelta(t, 2, x, 1e-9)

	_, ok = Bisect(func(x float64) float64 { return x*x + 1 }, -1, 1, 1e-9)
	assert.False(t, ok)

	// A jump has no root; Bisect finds the jump.
	x, ok = Bisect(func(x float64) float64 { return Sign(x - 0.3) }, 0, 1, 1e-9)
	assert.False(t, ok)
	assert.InDelta(t, 0.3, x, 1e-9)

	lo, hi := BisectBool(func(x float64) bool { return x >= 0.3 }, 0, 1, 1e-6)
	assert.LessOrEqual(t, hi-lo, 1e-6)
	assert.True(t, lo < 0.3 && 0.3 <= hi)
}

func TestFindMinBrent(t *testing.T) {
	x, ok := FindMinBrent(func(x float64) float64 { return (x - 1.5) * (x - 1.5) }, -4, 6, 1e-10)
	require.True(t, ok)
	assert.InDelta(t, 1.5, x, 1e-7)

	x, ok = FindMinBrent(math.Cos, 2, 5, 1e-10)
	require.True(t, ok)
	assert.InDelta(t, math.Pi, x, 1e-7)
}

func TestIntegral(t *testing.T) {
	normal := func(x float64) float64 {
		return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
	}
	got := Integral(normal, -20, 20, DefaultIntegralEpsilon, DefaultIntegralDepth)
	assert.InDelta(t, 1, got, 1e-8)

	got = Integral(math.Sin, 0, math.Pi, DefaultIntegralEpsilon, DefaultIntegralDepth)
	assert.InDelta(t, 2, got, 1e-10)

	got = Integral(func(x float64) float64 { return x * x }, 3, 0, DefaultIntegralEpsilon, DefaultIntegralDepth)
	assert.InDelta(t, -9, got, 1e-12)

	assert.Equal(t, 0.0, Integral(math.Exp, 1, 1, DefaultIntegralEpsilon, DefaultIntegralDepth))
	assert.True(t, math.IsNaN(Integral(math.Exp, 0, inf, DefaultIntegralEpsilon, DefaultIntegralDepth)))
}
