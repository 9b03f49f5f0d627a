// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestHSL(t *testing.T) {
	assert.Equal(t, HSL{100, 87, 56}, New(100, 87, 56))

	have := FromColor(color.RGBA{204, 114, 67, 255})
	assert.InDelta(t, 20.583942, have.H, 1e-5)
	assert.InDelta(t, 57.322176, have.S, 1e-5)
	assert.InDelta(t, 53.137255, have.L, 1e-5)
	assert.Equal(t, HSL{21, 57, 53}, have.Round())

	assert.Equal(t, color.RGBA{204, 114, 67, 255}, have.AsRGBA())
	assert.Equal(t, have, Model.Convert(have))
	assert.Equal(t, have, Model.Convert(color.RGBA{204, 114, 67, 255}))

	r, g, b, a := have.RGBA()
	assert.Equal(t, uint32(0xcccc), r)
	assert.Equal(t, uint32(0x7272), g)
	assert.Equal(t, uint32(0x4343), b)
	assert.Equal(t, uint32(0xffff), a)

	assert.Equal(t, "hsl(153, 48%, 49%)", New(153, 48, 49).String())
}

func TestFromRGB(t *testing.T) {
	type data struct {
		rgb  color.RGBA
		want HSL
	}
	tests := []data{
		{color.RGBA{0, 0, 0, 255}, HSL{0, 0, 0}},
		{color.RGBA{255, 255, 255, 255}, HSL{0, 0, 100}},
		{color.RGBA{128, 128, 128, 255}, HSL{0, 0, 50}},
		{color.RGBA{255, 0, 0, 255}, HSL{0, 100, 50}},
		{color.RGBA{0, 255, 0, 255}, HSL{120, 100, 50}},
		{color.RGBA{0, 0, 255, 255}, HSL{240, 100, 50}},
		{color.RGBA{65, 184, 131, 255}, HSL{153, 48, 49}},
		{color.RGBA{18, 52, 86, 255}, HSL{210, 65, 20}},
		{color.RGBA{53, 73, 94, 255}, HSL{211, 28, 29}},
		// red-max branch with green < blue wraps near 360
		{color.RGBA{255, 0, 1, 255}, HSL{0, 100, 50}},
	}
	for i, test := range tests {
		have := FromColor(test.rgb).Round()
		assert.Equal(t, test.want, have, "%d: %v", i, test.rgb)
	}

	assert.InDelta(t, 359.764706, FromColor(color.RGBA{255, 0, 1, 255}).H, 1e-5)
}

func TestToRGB(t *testing.T) {
	type data struct {
		hsl  HSL
		want color.RGBA
	}
	tests := []data{
		{HSL{0, 0, 50}, color.RGBA{128, 128, 128, 255}},
		{HSL{0, 100, 50}, color.RGBA{255, 0, 0, 255}},
		{HSL{360, 100, 50}, color.RGBA{255, 0, 0, 255}},
		{HSL{-120, 100, 50}, color.RGBA{0, 0, 255, 255}},
		{HSL{200, 40, 60}, color.RGBA{0x70, 0xa7, 0xc2, 255}},
		{HSL{0, 70, 60}, color.RGBA{0xe0, 0x52, 0x52, 255}},
		{HSL{220, 30, 50}, color.RGBA{0x59, 0x73, 0xa6, 255}},
		{HSL{120, 50, 60}, color.RGBA{0x66, 0xcc, 0x66, 255}},
		{HSL{30, 60, 60}, color.RGBA{0xd6, 0x99, 0x5c, 255}},
		{HSL{153, 48, 49}, color.RGBA{0x41, 0xb9, 0x83, 255}},
		// out of range saturation and lightness are clamped
		{HSL{0, 250, 50}, color.RGBA{255, 0, 0, 255}},
		{HSL{0, 50, 130}, color.RGBA{255, 255, 255, 255}},
	}
	for i, test := range tests {
		assert.Equal(t, test.want, test.hsl.AsRGBA(), "%d: %v", i, test.hsl)
	}
}

func TestColorful(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		c := colorful.Color{R: rnd.Float64(), G: rnd.Float64(), B: rnd.Float64()}
		wh, ws, wl := c.Hsl()
		have := FromRGB(c.R, c.G, c.B)
		assert.InDelta(t, wh, have.H, 1e-9)
		assert.InDelta(t, ws*100, have.S, 1e-9)
		assert.InDelta(t, wl*100, have.L, 1e-9)

		want := colorful.Hsl(have.H, have.S/100, have.L/100)
		r, g, b := have.ToRGB()
		assert.InDelta(t, want.R, r, 1e-9)
		assert.InDelta(t, want.G, g, 1e-9)
		assert.InDelta(t, want.B, b, 1e-9)
	}
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 2000; i++ {
		c := color.RGBA{uint8(rnd.Intn(256)), uint8(rnd.Intn(256)), uint8(rnd.Intn(256)), 255}
		assert.Equal(t, c, FromColor(c).AsRGBA())
	}
}

func TestTransform(t *testing.T) {
	assert.Equal(t, HSL{30, 50, 50}, HSL{350, 50, 50}.Spin(40))
	assert.Equal(t, HSL{330, 50, 50}, HSL{10, 50, 50}.Spin(-40))
	assert.Equal(t, HSL{10, 50, 50}, HSL{10, 50, 50}.Spin(720))
	assert.Equal(t, HSL{10, 50, 80}, HSL{10, 50, 50}.WithLightness(80))

	assert.Equal(t, HSL{0, 100, 80}, HSL{0, 100, 50}.Lighten(30))
	assert.Equal(t, HSL{0, 100, 100}, HSL{0, 100, 90}.Lighten(30))
	assert.Equal(t, HSL{0, 100, 20}, HSL{0, 100, 50}.Darken(30))
	assert.Equal(t, HSL{0, 100, 0}, HSL{0, 100, 10}.Darken(30))

	assert.Equal(t, HSL{10, 40, 75}, HSL{10, 20, 90}.Clamp(40, 80, 25, 75))
	assert.Equal(t, HSL{10, 80, 25}, HSL{10, 95, 5}.Clamp(40, 80, 25, 75))
	assert.Equal(t, HSL{10, 60, 50}, HSL{10, 60, 50}.Clamp(40, 80, 25, 75))
}
