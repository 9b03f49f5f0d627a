// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"strings"
)

// Format is a text format for displaying a color.
type Format int32

const (
	// Hex formats a color as an upper case hex string, like "#41B883".
	Hex Format = iota

	// RGB formats a color as a CSS rgb() value, like "rgb(65, 184, 131)".
	RGB

	// HSL formats a color as a CSS hsl() value, like "hsl(153, 48%, 49%)".
	HSL
)

var formatNames = [...]string{Hex: "HEX", RGB: "RGB", HSL: "HSL"}

// FormatValues returns all possible values for the type Format.
func FormatValues() []Format { return []Format{Hex, RGB, HSL} }

// String returns the upper case name of the format.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int32(f))
	}
	return formatNames[f]
}

// ParseFormat returns the format with the given name, ignoring case.
// For an unrecognized name it returns [Hex] and false.
func ParseFormat(s string) (Format, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, n := range formatNames {
		if n == s {
			return Format(i), true
		}
	}
	return Hex, false
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (f *Format) UnmarshalText(text []byte) error {
	v, ok := ParseFormat(string(text))
	if !ok {
		return fmt.Errorf("colors.Format.UnmarshalText: invalid format %q", text)
	}
	*f = v
	return nil
}

// AsFormat returns the given hex color formatted in the given format.
// For [RGB] and [HSL], a hex string that can not be parsed is returned
// unchanged; any other format returns the input upper cased.
func AsFormat(hex string, f Format) string {
	switch f {
	case RGB:
		c, err := FromHex(hex)
		if err != nil {
			return hex
		}
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	case HSL:
		h, err := HexToHSL(hex)
		if err != nil {
			return hex
		}
		return h.String()
	}
	return strings.ToUpper(hex)
}
