// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

// Sequence is a deterministic [Rand] that cycles through a fixed
// list of values in [0,1). It is mainly useful in tests, where the
// exact draws of a generator need to be known in advance.
// An empty Sequence always returns 0.
type Sequence struct {

	// Values are the values returned by successive calls to Float64.
	Values []float64

	// next is the index of the next value to return
	next int
}

// NewSequence returns a new [Sequence] cycling through the given values.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{Values: values}
}

// Seed resets the sequence to its start; the seed value itself is ignored.
func (s *Sequence) Seed(seed int64) {
	s.next = 0
}

// Float64 returns the next value in the sequence.
func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

// Intn returns the next value in the sequence scaled to [0,n).
// It panics if n <= 0.
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("randx.Sequence.Intn: invalid argument to Intn")
	}
	v := int(s.Float64() * float64(n))
	return min(max(v, 0), n-1)
}
