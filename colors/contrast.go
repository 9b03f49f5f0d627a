// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"math"
)

// Level is a WCAG 2 contrast conformance level.
type Level int32

const (
	// Fail means a contrast ratio below 4.5.
	Fail Level = iota

	// AA means a contrast ratio of at least 4.5.
	AA

	// AAA means a contrast ratio of at least 7.
	AAA
)

var levelNames = [...]string{Fail: "Fail", AA: "AA", AAA: "AAA"}

// String returns the name of the level, one of "Fail", "AA", or "AAA".
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("Level(%d)", int32(l))
	}
	return levelNames[l]
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Luminance returns the WCAG relative luminance of the given hex
// color, in the range [0,1]. It returns 0 if the color can not be parsed.
func Luminance(hex string) float64 {
	c, err := FromHex(hex)
	if err != nil {
		return 0
	}
	r := linear(c.R)
	g := linear(c.G)
	b := linear(c.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linear converts a gamma-encoded 8-bit sRGB channel
// to a linear value in the range [0,1].
func linear(v uint8) float64 {
	c := float64(v) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between the
// given two hex colors. The contrast ratio will be between 1 and 21.
// A color that can not be parsed is treated as black.
func ContrastRatio(a, b string) float64 {
	la := Luminance(a)
	lb := Luminance(b)
	return (max(la, lb) + 0.05) / (min(la, lb) + 0.05)
}

// WCAGLevel returns the WCAG conformance level reached
// by the given contrast ratio.
func WCAGLevel(ratio float64) Level {
	switch {
	case ratio >= 7:
		return AAA
	case ratio >= 4.5:
		return AA
	}
	return Fail
}

// ContrastColor returns the text color ("#000000" or "#ffffff")
// that should be used on the given hex background color, based
// on its perceived brightness. A color that can not be parsed
// gets white text.
func ContrastColor(hex string) string {
	c, err := FromHex(hex)
	if err != nil {
		return WhiteHex
	}
	brightness := float64(int(c.R)*299+int(c.G)*587+int(c.B)*114) / 1000
	if brightness > 128 {
		return BlackHex
	}
	return WhiteHex
}

const (
	// BlackHex is the hex string of pure black.
	BlackHex = "#000000"

	// WhiteHex is the hex string of pure white.
	WhiteHex = "#ffffff"
)
