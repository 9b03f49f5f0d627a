// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette generates color palettes from a base color
// according to a [Scheme], preserving locked slots of a previous
// palette. Every operation returns a new [Palette] and never
// modifies the palettes it is given.
package palette

import (
	"slices"
	"strings"
)

// Palette is an ordered sequence of hex colors, like "#41b883".
type Palette []string

// Clone returns a copy of the palette.
func (p Palette) Clone() Palette {
	return slices.Clone(p)
}

// String returns the colors of the palette separated by spaces.
func (p Palette) String() string {
	return strings.Join(p, " ")
}

// UpdateSlot returns a copy of the given palette with the color at
// the given index replaced by the given color. If the index is out
// of range, the copy is returned unchanged.
func UpdateSlot(p Palette, index int, color string) Palette {
	np := p.Clone()
	if index >= 0 && index < len(np) {
		np[index] = color
	}
	return np
}

// isLocked returns whether slot i should be copied from the previous
// palette: it must be locked and have a previous color to copy.
func isLocked(locked []bool, previous Palette, i int) bool {
	return i < len(locked) && locked[i] && i < len(previous) && previous[i] != ""
}
