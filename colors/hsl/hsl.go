// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl provides the HSL (hue, saturation, lightness) color
// representation and its conversion to and from sRGB.
package hsl

import (
	"fmt"
	"image/color"
	"math"
)

// HSL represents a color in the HSL color space. It implements
// the [color.Color] interface, and is always fully opaque.
type HSL struct {

	// H is the hue of the color in degrees, in the range [0,360).
	H float64 `min:"0" max:"360"`

	// S is the saturation of the color as a percentage, in the range [0,100].
	S float64 `min:"0" max:"100"`

	// L is the lightness of the color as a percentage, in the range [0,100].
	L float64 `min:"0" max:"100"`
}

// New returns a new HSL color with the given hue (degrees),
// saturation (percent), and lightness (percent).
func New(hue, saturation, lightness float64) HSL {
	return HSL{hue, saturation, lightness}
}

// FromRGB returns the HSL representation of the given
// non-alpha-premultiplied sRGB components in the range [0,1].
// The result is not rounded; see [HSL.Round].
func FromRGB(r, g, b float64) HSL {
	mx := max(r, g, b)
	mn := min(r, g, b)
	l := (mx + mn) / 2
	if mx == mn {
		return HSL{0, 0, l * 100}
	}

	d := mx - mn
	var s, h float64
	if l > 0.5 {
		s = d / (2 - mx - mn)
	} else {
		s = d / (mx + mn)
	}
	switch mx {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h /= 6
	return HSL{h * 360, s * 100, l * 100}
}

// FromColor returns the HSL representation of the given color,
// ignoring its alpha channel.
func FromColor(c color.Color) HSL {
	if h, ok := c.(HSL); ok {
		return h
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGB(float64(n.R)/255, float64(n.G)/255, float64(n.B)/255)
}

// Model is the standard [color.Model] that converts colors to HSL.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	return FromColor(c)
}

// Round returns the color with each component rounded to the
// nearest integer. A hue that rounds up to 360 wraps to 0.
func (h HSL) Round() HSL {
	return HSL{
		H: math.Mod(math.Round(h.H), 360),
		S: math.Round(h.S),
		L: math.Round(h.L),
	}
}

// ToRGB returns the non-alpha-premultiplied sRGB components of the
// color in the range [0,1]. The hue wraps modulo 360 and the
// saturation and lightness are clamped to [0,100].
func (h HSL) ToRGB() (r, g, b float64) {
	hue := math.Mod(h.H/360, 1)
	if hue < 0 {
		hue++
	}
	s := clamp01(h.S / 100)
	l := clamp01(h.L / 100)
	if s == 0 {
		return l, l, l
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	r = hueToRGB(p, q, hue+1.0/3.0)
	g = hueToRGB(p, q, hue)
	b = hueToRGB(p, q, hue-1.0/3.0)
	return
}

// hueToRGB evaluates one channel of [HSL.ToRGB] at the given
// hue phase t, which is first wrapped into [0,1).
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t >= 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// AsRGBA returns the color as a [color.RGBA], with each
// channel rounded to the nearest 8-bit value.
func (h HSL) AsRGBA() color.RGBA {
	r, g, b := h.ToRGB()
	return color.RGBA{to8(r), to8(g), to8(b), 255}
}

// RGBA implements the [color.Color] interface.
func (h HSL) RGBA() (r, g, b, a uint32) {
	return h.AsRGBA().RGBA()
}

// String returns the color formatted as a CSS hsl() value, like
// "hsl(153, 48%, 49%)".
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", h.H, h.S, h.L)
}

func to8(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}

func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}
