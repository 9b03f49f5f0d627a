// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"math/rand"
	"strings"
	"testing"

	"cogentcore.org/palette/colors/hsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHex(t *testing.T) {
	type data struct {
		hex  string
		want color.RGBA
	}
	tests := []data{
		{"#41b883", color.RGBA{65, 184, 131, 255}},
		{"41b883", color.RGBA{65, 184, 131, 255}},
		{"#41B883", color.RGBA{65, 184, 131, 255}},
		{"#000000", color.RGBA{0, 0, 0, 255}},
		{"FFFFFF", color.RGBA{255, 255, 255, 255}},
		{"#0a0B0c", color.RGBA{10, 11, 12, 255}},
	}
	for _, test := range tests {
		have, err := FromHex(test.hex)
		require.NoError(t, err, test.hex)
		assert.Equal(t, test.want, have, test.hex)
	}
}

func TestFromHexInvalid(t *testing.T) {
	for _, hex := range []string{
		"", "#", "not-a-color", "#12", "#fff", "##41b883", "#41b8833",
		"#41b88g", "41b88", "+41b88", " 41b883", "#41b8 3", "#ffffffff",
	} {
		_, err := FromHex(hex)
		assert.ErrorIs(t, err, ErrUnparseable, hex)
		assert.False(t, IsHex(hex), hex)
	}
	assert.Panics(t, func() { MustFromHex("#12") })
	assert.Equal(t, color.RGBA{}, LogFromHex("#12"))
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, MustFromHex("#010203"))
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#41b883", AsHex(color.RGBA{65, 184, 131, 255}))
	assert.Equal(t, "#000000", AsHex(color.RGBA{0, 0, 0, 255}))
	assert.Equal(t, "#0a0b0c", AsHex(color.RGBA{10, 11, 12, 255}))
	assert.Equal(t, "#000000", AsHex(nil))
	assert.Equal(t, "#ff0000", AsHex(hsl.New(0, 100, 50)))
}

func TestHexRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		hex := fmt.Sprintf("#%06x", rnd.Intn(1<<24))
		if i%2 == 0 {
			hex = strings.ToUpper(hex)
		}
		c, err := FromHex(hex)
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(hex), AsHex(c))
	}
}

func TestHexToHSL(t *testing.T) {
	type data struct {
		hex  string
		want hsl.HSL
	}
	tests := []data{
		{"#41b883", hsl.HSL{H: 153, S: 48, L: 49}},
		{"#ff0000", hsl.HSL{H: 0, S: 100, L: 50}},
		{"#00ff00", hsl.HSL{H: 120, S: 100, L: 50}},
		{"#0000ff", hsl.HSL{H: 240, S: 100, L: 50}},
		{"#ffffff", hsl.HSL{H: 0, S: 0, L: 100}},
		{"#000000", hsl.HSL{H: 0, S: 0, L: 0}},
		{"#808080", hsl.HSL{H: 0, S: 0, L: 50}},
		{"#35495e", hsl.HSL{H: 211, S: 28, L: 29}},
	}
	for _, test := range tests {
		have, err := HexToHSL(test.hex)
		require.NoError(t, err, test.hex)
		assert.Equal(t, test.want, have, test.hex)
	}

	_, err := HexToHSL("#12")
	assert.ErrorIs(t, err, ErrUnparseable)
}

func TestHSLToHex(t *testing.T) {
	assert.Equal(t, "#ff0000", HSLToHex(0, 100, 50))
	assert.Equal(t, "#ff0000", HSLToHex(360, 100, 50))
	assert.Equal(t, "#808080", HSLToHex(0, 0, 50))
	assert.Equal(t, "#41b983", HSLToHex(153, 48, 49))
	assert.Equal(t, "#70a7c2", HSLToHex(200, 40, 60))
}

// The integer rounding of HexToHSL limits how closely a round trip
// can reproduce the input color: many colors come back within 1
// per channel, and no color is off by more than 5.
func TestHexHSLRoundTrip(t *testing.T) {
	for _, hex := range []string{
		"#41b883", "#ff0000", "#00ff00", "#0000ff", "#ffffff",
		"#000000", "#808080", "#35495e",
	} {
		h, err := HexToHSL(hex)
		require.NoError(t, err)
		assertNear(t, hex, HSLToHex(h.H, h.S, h.L), 1)
	}

	rnd := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		hex := fmt.Sprintf("#%06x", rnd.Intn(1<<24))
		h, err := HexToHSL(hex)
		require.NoError(t, err)
		assertNear(t, hex, HSLToHex(h.H, h.S, h.L), 5)
	}
}

func assertNear(t *testing.T, want, have string, tol int) {
	t.Helper()
	w := MustFromHex(want)
	h := MustFromHex(have)
	assert.InDelta(t, w.R, h.R, float64(tol), "%s vs %s", want, have)
	assert.InDelta(t, w.G, h.G, float64(tol), "%s vs %s", want, have)
	assert.InDelta(t, w.B, h.B, float64(tol), "%s vs %s", want, have)
}
