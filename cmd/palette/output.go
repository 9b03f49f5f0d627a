// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cogentcore.org/palette/colors"
	"github.com/muesli/termenv"
)

// printer writes colors to an output, one per line.
type printer struct {
	w      io.Writer
	out    *termenv.Output
	format colors.Format

	// whether to draw each color on a swatch of itself
	swatches bool
}

func newPrinter(w io.Writer, format colors.Format, swatches bool, opts ...termenv.OutputOption) *printer {
	return &printer{
		w:        w,
		out:      termenv.NewOutput(w, opts...),
		format:   format,
		swatches: swatches,
	}
}

// color prints the given hex color in the printer format.
func (p *printer) color(hex string) {
	text := colors.AsFormat(hex, p.format)
	if !p.swatches || p.out.Profile == termenv.Ascii {
		fmt.Fprintln(p.w, text)
		return
	}
	s := p.out.String(" " + text + " ").
		Foreground(p.out.Color(colors.ContrastColor(hex))).
		Background(p.out.Color(hex))
	fmt.Fprintln(p.w, s.String())
}

// all prints each of the given hex colors.
func (p *printer) all(hexes []string) {
	for _, h := range hexes {
		p.color(h)
	}
}
