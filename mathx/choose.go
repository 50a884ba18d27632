// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

const smallFactLimit = 20 // 20! => 62 bits
var smallFact [smallFactLimit + 1]int64

// factTableLimit bounds the table of float64 factorials. 171!
// overflows float64.
const factTableLimit = 170

var factTable [factTableLimit + 1]float64

// logFactTableLimit bounds the table of log factorials. Beyond it,
// the Moivre-Stirling series is accurate to full precision.
const logFactTableLimit = 255

var logFactTable [logFactTableLimit + 1]float64

func init() {
	smallFact[0] = 1
	fact := int64(1)
	for n := int64(1); n <= smallFactLimit; n++ {
		fact *= n
		smallFact[n] = fact
	}

	factTable[0] = 1
	for n := 1; n <= factTableLimit; n++ {
		factTable[n] = factTable[n-1] * float64(n)
	}

	for n := 1; n <= logFactTableLimit; n++ {
		logFactTable[n] = logFactTable[n-1] + math.Log(float64(n))
	}
}

// Factorial returns n!.
//
// For integral n up to 170 this is read from a table; larger integral
// n overflow to +Inf. Non-integral n return Γ(n+1). Negative n return
// NaN.
func Factorial(n float64) float64 {
	if math.IsNaN(n) || n < 0 {
		return nan
	}
	if n != math.Floor(n) {
		return math.Gamma(n + 1)
	}
	if n <= factTableLimit {
		return factTable[int(n)]
	}
	return inf
}

// LogFactorial returns log n!.
//
// Integral n up to 255 come from a table; beyond that LogFactorial
// uses the Moivre-Stirling series. Negative n return NaN.
func LogFactorial(n float64) float64 {
	if math.IsNaN(n) || n < 0 {
		return nan
	}
	if n != math.Floor(n) {
		return Lgamma(n + 1)
	}
	if n <= logFactTableLimit {
		return logFactTable[int(n)]
	}
	return stirling(n)
}

// stirling returns the Moivre-Stirling approximation of log n!.
func stirling(n float64) float64 {
	inv := 1 / n
	inv2 := inv * inv
	series := inv * (1.0/12 - inv2*(1.0/360-inv2*(1.0/1260-inv2/1680)))
	return n*math.Log(n) - n + 0.5*math.Log(2*math.Pi*n) + series
}

// DoubleFactorial returns n!! = n(n-2)(n-4)···.
func DoubleFactorial(n int) float64 {
	if n < -1 {
		return nan
	}
	y := 1.0
	for k := n; k > 1; k -= 2 {
		y *= float64(k)
	}
	return y
}

// Choose returns the binomial coefficient of n and k.
func Choose(n, k int) float64 {
	if k == 0 || k == n {
		return 1
	}
	if k < 0 || n < k {
		return 0
	}
	if n <= smallFactLimit { // Implies k <= smallFactLimit
		// It's faster to do several integer multiplications
		// than it is to do an extra integer division.
		// Remarkably, this is also faster than pre-computing
		// Pascal's triangle (presumably because this is very
		// cache efficient).
		numer := int64(1)
		for n1 := int64(n - (k - 1)); n1 <= int64(n); n1++ {
			numer *= n1
		}
		denom := smallFact[k]
		return float64(numer / denom)
	}

	return math.Exp(lchoose(n, k))
}

// Lchoose returns math.Log(Choose(n, k)).
func Lchoose(n, k int) float64 {
	if k == 0 || k == n {
		return 0
	}
	if k < 0 || n < k {
		return nan
	}
	return lchoose(n, k)
}

func lchoose(n, k int) float64 {
	return LogFactorial(float64(n)) - LogFactorial(float64(k)) - LogFactorial(float64(n-k))
}
