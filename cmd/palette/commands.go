// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"cogentcore.org/palette/base/randx"
	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// paletteFlags are the flags shared by the palette generating commands.
type paletteFlags struct {
	cfg   Config
	locks []int
	prev  []string
}

func (pf *paletteFlags) add(fs *pflag.FlagSet) {
	fs.IntVarP(&pf.cfg.Count, "count", "n", 0, "number of colors in the palette")
	fs.IntSliceVarP(&pf.locks, "lock", "l", nil, "indices of the colors to keep from --prev")
	fs.StringSliceVarP(&pf.prev, "prev", "p", nil, "the previous palette, as comma separated hex colors")
	fs.StringVarP(&pf.cfg.Format, "format", "f", "", "output format: hex, rgb, or hsl")
	fs.Int64Var(&pf.cfg.Seed, "seed", 0, "random seed (0 for a new seed on every run)")
}

// config returns the loaded config overridden by every flag
// of cmd that has been set, and validates it.
func (a *app) config(cmd *cobra.Command, f *Config) (Config, error) {
	cfg := a.cfg
	fs := cmd.Flags()
	if fs.Changed("base") {
		cfg.Base = f.Base
	}
	if fs.Changed("scheme") {
		cfg.Scheme = f.Scheme
	}
	if fs.Changed("count") {
		cfg.Count = f.Count
	}
	if fs.Changed("format") {
		cfg.Format = f.Format
	}
	if fs.Changed("seed") {
		cfg.Seed = f.Seed
	}
	if a.plain {
		cfg.Swatches = false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// printer returns a printer for the output of cmd in the config format.
func (a *app) printer(cmd *cobra.Command, cfg Config) *printer {
	format, ok := colors.ParseFormat(cfg.Format)
	if !ok {
		warnUnknown("format", cfg.Format, strings.ToLower(format.String()), names(colors.FormatValues()))
	}
	return newPrinter(cmd.OutOrStdout(), format, cfg.Swatches, a.termOpts...)
}

// generator returns a palette generator seeded from the config.
func generator(cfg Config) *palette.Generator {
	if cfg.Seed == 0 {
		return palette.Default
	}
	return palette.NewGenerator(randx.NewSysRand(cfg.Seed))
}

// lockMask returns the lock mask of a palette of count colors
// with the given slot indices locked.
func lockMask(locks []int, count int) ([]bool, error) {
	if len(locks) == 0 {
		return nil, nil
	}
	mask := make([]bool, count)
	for _, i := range locks {
		if i < 0 || i >= count {
			return nil, fmt.Errorf("lock index %d out of range for %d colors", i, count)
		}
		mask[i] = true
	}
	return mask, nil
}

// previous returns the previous palette given on the command line.
func previous(prev []string) (palette.Palette, error) {
	p := make(palette.Palette, len(prev))
	for i, c := range prev {
		c = strings.TrimSpace(c)
		if !colors.IsHex(c) {
			return nil, fmt.Errorf("previous palette: color %d: %w: %q", i, colors.ErrUnparseable, c)
		}
		p[i] = c
	}
	return p, nil
}

func (a *app) generateCmd() *cobra.Command {
	var f paletteFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a palette from a base color",
		Example: `  palette generate --base "#41b883" --scheme triadic --count 3
  palette generate --base tomato --prev "#ff6347,#47e3ff,#63ff47" --lock 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd, &f.cfg)
			if err != nil {
				return err
			}
			base, err := colors.NormalizeHex(cfg.Base)
			if err != nil {
				return err
			}
			scheme, ok := palette.ParseScheme(cfg.Scheme)
			if !ok {
				warnUnknown("scheme", cfg.Scheme, scheme.String(), names(palette.SchemeValues()))
			}
			mask, err := lockMask(f.locks, cfg.Count)
			if err != nil {
				return err
			}
			prev, err := previous(f.prev)
			if err != nil {
				return err
			}
			p, err := generator(cfg).Generate(palette.Options{
				Base:     base,
				Scheme:   scheme,
				Count:    cfg.Count,
				Locked:   mask,
				Previous: prev,
			})
			if err != nil {
				return err
			}
			a.printer(cmd, cfg).all(p)
			return nil
		},
	}
	cmd.Flags().StringVarP(&f.cfg.Base, "base", "b", "", "base color, as a hex value or CSS color name")
	cmd.Flags().StringVarP(&f.cfg.Scheme, "scheme", "s", "", "scheme: monochromatic, analogous, triadic, complementary, or random")
	f.add(cmd.Flags())
	return cmd
}

func (a *app) randomCmd() *cobra.Command {
	var f paletteFlags
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a palette of random colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd, &f.cfg)
			if err != nil {
				return err
			}
			mask, err := lockMask(f.locks, cfg.Count)
			if err != nil {
				return err
			}
			prev, err := previous(f.prev)
			if err != nil {
				return err
			}
			a.printer(cmd, cfg).all(generator(cfg).GenerateRandom(cfg.Count, mask, prev))
			return nil
		},
	}
	f.add(cmd.Flags())
	return cmd
}

func (a *app) convertCmd() *cobra.Command {
	var f Config
	cmd := &cobra.Command{
		Use:     "convert COLOR...",
		Short:   "Print colors in another format",
		Example: `  palette convert --format rgb "#41b883" tomato`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd, &f)
			if err != nil {
				return err
			}
			hexes := make([]string, len(args))
			for i, arg := range args {
				hexes[i], err = colors.NormalizeHex(arg)
				if err != nil {
					return err
				}
			}
			a.printer(cmd, cfg).all(hexes)
			return nil
		},
	}
	cmd.Flags().StringVarP(&f.Format, "format", "f", "", "output format: hex, rgb, or hsl")
	return cmd
}

func (a *app) contrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast FOREGROUND BACKGROUND",
		Short: "Print the WCAG contrast ratio and level of two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := colors.NormalizeHex(args[0])
			if err != nil {
				return err
			}
			bg, err := colors.NormalizeHex(args[1])
			if err != nil {
				return err
			}
			ratio := colors.ContrastRatio(fg, bg)
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f:1 %s\n", ratio, colors.WCAGLevel(ratio))
			return nil
		},
	}
}

func (a *app) moodCmd() *cobra.Command {
	var f Config
	cmd := &cobra.Command{
		Use:       "mood NAME",
		Short:     "Print the seed color of a mood",
		Long:      "Print the seed color of a mood: calm, energetic, professional, fresh, or warm.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: names(colors.MoodValues()),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd, &f)
			if err != nil {
				return err
			}
			m, ok := colors.ParseMood(args[0])
			if !ok {
				warnUnknown("mood", args[0], m.String(), names(colors.MoodValues()))
			}
			a.printer(cmd, cfg).color(m.Hex())
			return nil
		},
	}
	cmd.Flags().StringVarP(&f.Format, "format", "f", "", "output format: hex, rgb, or hsl")
	return cmd
}

func (a *app) schemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List the palette schemes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range palette.SchemeValues() {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
		},
	}
}
