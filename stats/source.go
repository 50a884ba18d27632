// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

//go:generate mockgen -source source.go -destination source_mock.go -package stats

import "golang.org/x/exp/rand"

// A Source supplies the standard variates every sampler is built
// from. *rand.Rand from golang.org/x/exp/rand implements Source.
//
// Samplers accept a nil Source, in which case they draw from the
// process-wide global source.
type Source interface {
	// Float64 returns a uniform variate in [0, 1).
	Float64() float64

	// ExpFloat64 returns a standard exponential variate
	// (rate 1).
	ExpFloat64() float64

	// NormFloat64 returns a standard normal variate.
	NormFloat64() float64
}

// NewSource returns a deterministic Source seeded with seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

type globalSource struct{}

func (globalSource) Float64() float64     { return rand.Float64() }
func (globalSource) ExpFloat64() float64  { return rand.ExpFloat64() }
func (globalSource) NormFloat64() float64 { return rand.NormFloat64() }

// source returns r, or the global source if r is nil.
func source(r Source) Source {
	if r == nil {
		return globalSource{}
	}
	return r
}

// uniformOpen returns a uniform variate in (0, 1).
func uniformOpen(r Source) float64 {
	for {
		if u := r.Float64(); u > 0 {
			return u
		}
	}
}
