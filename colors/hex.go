// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides conversion between hex, RGB, and HSL
// color representations, formatted color text, and WCAG
// luminance and contrast metrics. All of its functions are pure.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/palette/colors/hsl"
)

// ErrUnparseable is returned (wrapped) by every function in this
// package that fails to parse a color string.
var ErrUnparseable = errors.New("unparseable color")

// FromHex parses the given hex color string, which must consist of
// exactly 6 hex digits (in any case) with an optional leading '#',
// and returns the resulting opaque color. It returns an error
// wrapping [ErrUnparseable] for anything else; see [MustFromHex]
// and [LogFromHex] for versions that do not return an error.
func FromHex(hex string) (color.RGBA, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: %w: %q", ErrUnparseable, hex)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: %w: %q", ErrUnparseable, hex)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) color.RGBA {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// LogFromHex parses the given hex color string
// and returns the resulting color. It logs any
// resulting error; see [FromHex] for a version
// that returns an error.
func LogFromHex(hex string) color.RGBA {
	c, err := FromHex(hex)
	if err != nil {
		slog.Error(err.Error())
	}
	return c
}

// IsHex returns whether the given string is a valid hex color
// as accepted by [FromHex].
func IsHex(hex string) bool {
	_, err := FromHex(hex)
	return err == nil
}

// AsHex returns the color as a '#' followed by two lowercase
// hexadecimal digits per RGB component, like "#41b883".
// The alpha channel is ignored.
func AsHex(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B)
}

// HexToHSL parses the given hex color string and returns its HSL
// representation, with each component rounded to the nearest integer.
func HexToHSL(hex string) (hsl.HSL, error) {
	c, err := FromHex(hex)
	if err != nil {
		return hsl.HSL{}, err
	}
	return hsl.FromColor(c).Round(), nil
}

// HSLToHex returns the hex string of the color with the given hue
// (degrees), saturation (percent), and lightness (percent).
func HSLToHex(h, s, l float64) string {
	return AsHex(hsl.New(h, s, l).AsRGBA())
}
