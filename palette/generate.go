// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"errors"
	"fmt"
	"math"

	"cogentcore.org/palette/base/randx"
	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/colors/hsl"
)

// ErrCount is returned (wrapped) when a palette is requested with
// fewer than one color.
var ErrCount = errors.New("palette count must be at least 1")

const (
	// SaturationMin and SaturationMax bound the saturation (percent)
	// of every generated color.
	SaturationMin, SaturationMax = 40.0, 80.0

	// LightnessMin and LightnessMax bound the lightness (percent)
	// of every generated color.
	LightnessMin, LightnessMax = 25.0, 75.0

	// monochromatic lightness ramp
	monoStart, monoSpan = 20.0, 60.0

	// random color ranges: hue [0,360), saturation [40,80),
	// lightness [30,70). The lightness range is narrower than the
	// clamp range on purpose.
	randSatStart, randSatSpan     = 40.0, 40.0
	randLightStart, randLightSpan = 30.0, 40.0
)

// Options are the parameters of [Generator.Generate].
type Options struct {

	// Base is the hex color the palette is derived from.
	// It is ignored for the [Random] scheme.
	Base string

	// Scheme is the rule used to derive the colors.
	Scheme Scheme

	// Count is the number of colors in the palette; it must be at least 1.
	Count int

	// Locked marks the slots to copy unchanged from Previous.
	// It may be shorter than Count; missing slots are unlocked.
	Locked []bool

	// Previous is the palette that locked slots are copied from.
	Previous Palette
}

// Generator generates palettes using a random number source.
// A Generator is safe for concurrent use if its source is.
type Generator struct {

	// Rand is the random number source for the [Random] scheme.
	Rand randx.Rand
}

// NewGenerator returns a new [Generator] using the given random
// number source, or the global source if it is nil.
func NewGenerator(rnd randx.Rand) *Generator {
	if rnd == nil {
		rnd = randx.NewGlobalRand()
	}
	return &Generator{Rand: rnd}
}

// Default is the generator used by the package level functions.
// It uses the global random number source.
var Default = NewGenerator(nil)

// Generate generates a palette with [Default]; see [Generator.Generate].
func Generate(opts Options) (Palette, error) {
	return Default.Generate(opts)
}

// GenerateRandom generates a random palette with [Default];
// see [Generator.GenerateRandom].
func GenerateRandom(count int, locked []bool, previous Palette) Palette {
	return Default.GenerateRandom(count, locked, previous)
}

// Generate returns a new palette of opts.Count colors derived from
// opts.Base according to opts.Scheme. Slots that are locked and have a
// color in opts.Previous are copied unchanged. The saturation and
// lightness of every derived color are clamped to
// [SaturationMin, SaturationMax] and [LightnessMin, LightnessMax].
// It returns an error if the count is less than 1, or if the scheme
// needs the base color and it can not be parsed.
func (g *Generator) Generate(opts Options) (Palette, error) {
	if opts.Count < 1 {
		return nil, fmt.Errorf("palette.Generate: %w: %d", ErrCount, opts.Count)
	}
	var base hsl.HSL
	if opts.Scheme.usesBase() {
		b, err := colors.HexToHSL(opts.Base)
		if err != nil {
			return nil, fmt.Errorf("palette.Generate: base color: %w", err)
		}
		base = b
	}

	p := make(Palette, opts.Count)
	for i := range p {
		if isLocked(opts.Locked, opts.Previous, i) {
			p[i] = opts.Previous[i]
			continue
		}
		c := g.derive(opts.Scheme, base, i, opts.Count)
		c = c.Clamp(SaturationMin, SaturationMax, LightnessMin, LightnessMax)
		p[i] = colors.HSLToHex(c.H, c.S, c.L)
	}
	return p, nil
}

// GenerateRandom returns a new palette of count random colors,
// copying slots that are locked and have a color in previous.
// Hues are in [0,360), saturations in [40,80), and lightnesses in
// [30,70). A count less than 1 results in an empty palette.
func (g *Generator) GenerateRandom(count int, locked []bool, previous Palette) Palette {
	p := make(Palette, max(count, 0))
	for i := range p {
		if isLocked(locked, previous, i) {
			p[i] = previous[i]
			continue
		}
		c := g.random()
		p[i] = colors.HSLToHex(c.H, c.S, c.L)
	}
	return p
}

// derive returns the unclamped color at index i of a palette of
// count colors with the given scheme and base color.
func (g *Generator) derive(scheme Scheme, base hsl.HSL, i, count int) hsl.HSL {
	switch scheme {
	case Monochromatic:
		if count <= 1 {
			return base.WithLightness(monoStart + monoSpan/2)
		}
		return base.WithLightness(monoStart + float64(i)*(monoSpan/float64(count-1)))
	case Analogous:
		return base.Spin(float64((i - count/2) * 30))
	case Triadic:
		return base.Spin(float64(i * 120))
	case Complementary:
		if i%2 == 0 {
			return base.Spin(0)
		}
		return base.Spin(180)
	}
	return g.random()
}

// random returns a random color, drawing the hue, saturation,
// and lightness from the source in that order.
func (g *Generator) random() hsl.HSL {
	rnd := g.Rand
	if rnd == nil {
		rnd = randx.NewGlobalRand()
	}
	return hsl.HSL{
		H: math.Floor(rnd.Float64() * 360),
		S: randSatStart + rnd.Float64()*randSatSpan,
		L: randLightStart + rnd.Float64()*randLightSpan,
	}
}
