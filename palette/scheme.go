// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"strings"
)

// Scheme is the rule that determines how the hues, saturations,
// and lightnesses of a palette relate to its base color.
type Scheme int32

const (
	// Monochromatic keeps the hue and saturation of the base color
	// and spreads the lightness evenly from 20 to 80 percent.
	Monochromatic Scheme = iota

	// Analogous spaces hues 30 degrees apart, centered on the base hue.
	Analogous

	// Triadic spaces hues 120 degrees apart, starting at the base hue.
	Triadic

	// Complementary alternates between the base hue and its opposite.
	Complementary

	// Random ignores the base color and picks each color at random.
	// It is also the fallback for unrecognized scheme names.
	Random
)

var schemeNames = [...]string{
	Monochromatic: "monochromatic",
	Analogous:     "analogous",
	Triadic:       "triadic",
	Complementary: "complementary",
	Random:        "random",
}

// SchemeValues returns all possible values for the type Scheme.
func SchemeValues() []Scheme {
	return []Scheme{Monochromatic, Analogous, Triadic, Complementary, Random}
}

// String returns the lower case name of the scheme.
func (s Scheme) String() string {
	if s < 0 || int(s) >= len(schemeNames) {
		return fmt.Sprintf("Scheme(%d)", int32(s))
	}
	return schemeNames[s]
}

// ParseScheme returns the scheme with the given name, ignoring case.
// For an unrecognized name it returns [Random] and false.
func ParseScheme(name string) (Scheme, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range schemeNames {
		if n == name {
			return Scheme(i), true
		}
	}
	return Random, false
}

// usesBase returns whether colors of the scheme are derived from
// the base color. Out of range schemes behave like [Random].
func (s Scheme) usesBase() bool {
	return s >= Monochromatic && s < Random
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (s Scheme) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Unlike [ParseScheme], it returns an error for an unrecognized name.
func (s *Scheme) UnmarshalText(text []byte) error {
	v, ok := ParseScheme(string(text))
	if !ok {
		return fmt.Errorf("palette.Scheme.UnmarshalText: invalid scheme %q", text)
	}
	*s = v
	return nil
}
