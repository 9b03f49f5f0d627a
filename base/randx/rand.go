// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides the random number sources used for
// palette generation, so that callers can inject a seeded or
// fully deterministic source in place of the global one.
package randx

import "math/rand"

// Rand provides an interface with the subset of the standard
// rand.Rand methods that palette generation needs, to support the
// use of either the global rand generator or a separate Rand source.
type Rand interface {
	// Seed uses the provided seed value to initialize the generator to a deterministic state.
	// Seed should not be called concurrently with any other Rand method.
	Seed(seed int64)

	// Intn returns, as an int, a non-negative pseudo-random number in the half-open interval [0,n).
	// It panics if n <= 0.
	Intn(n int) int

	// Float64 returns, as a float64, a pseudo-random number in the half-open interval [0.0,1.0).
	Float64() float64
}

// SysRand supports the system random number generator
// for either a separate rand.Rand source, or, if that
// is nil, the global rand stream.
type SysRand struct {

	// if non-nil, use this random number source instead of the global default one
	Rand *rand.Rand
}

// NewGlobalRand returns a new SysRand that implements the
// randx.Rand interface, with the system global rand source.
// It is safe for concurrent use.
func NewGlobalRand() *SysRand {
	return &SysRand{}
}

// NewSysRand returns a new SysRand with a new
// rand.Rand random source with given initial seed.
// It is not safe for concurrent use.
func NewSysRand(seed int64) *SysRand {
	r := &SysRand{}
	r.NewRand(seed)
	return r
}

// NewRand sets Rand to a new rand.Rand source using given seed.
func (r *SysRand) NewRand(seed int64) {
	r.Rand = rand.New(rand.NewSource(seed))
}

// Seed uses the provided seed value to initialize the generator to a deterministic state.
// For the global source it replaces the global stream with a fresh seeded one.
func (r *SysRand) Seed(seed int64) {
	if r.Rand == nil {
		r.NewRand(seed)
		return
	}
	r.Rand.Seed(seed)
}

// Intn returns, as an int, a non-negative pseudo-random number in the half-open interval [0,n).
// It panics if n <= 0.
func (r *SysRand) Intn(n int) int {
	if r.Rand == nil {
		return rand.Intn(n)
	}
	return r.Rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in the half-open interval [0.0,1.0).
func (r *SysRand) Float64() float64 {
	if r.Rand == nil {
		return rand.Float64()
	}
	return r.Rand.Float64()
}
