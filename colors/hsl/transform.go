// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import "math"

// Spin returns the color with its hue rotated by the given
// number of degrees, which may be negative. The resulting hue
// always lies in [0,360).
func (h HSL) Spin(amount float64) HSL {
	h.H = math.Mod(h.H+amount, 360)
	if h.H < 0 {
		h.H += 360
	}
	return h
}

// WithLightness returns the color with the given lightness (percent).
func (h HSL) WithLightness(l float64) HSL {
	h.L = l
	return h
}

// Lighten returns a color that is lighter by the given
// absolute lightness amount (0-100, ranges enforced).
func (h HSL) Lighten(amount float64) HSL {
	h.L = min(max(h.L+amount, 0), 100)
	return h
}

// Darken returns a color that is darker by the given
// absolute lightness amount (0-100, ranges enforced).
func (h HSL) Darken(amount float64) HSL {
	return h.Lighten(-amount)
}

// Clamp returns the color with its saturation limited to
// [smin, smax] and its lightness limited to [lmin, lmax].
func (h HSL) Clamp(smin, smax, lmin, lmax float64) HSL {
	h.S = min(max(h.S, smin), smax)
	h.L = min(max(h.L, lmin), lmax)
	return h
}
