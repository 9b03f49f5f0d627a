// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command palette generates color palettes, converts colors
// between formats, and checks the WCAG contrast of color pairs.
package main

import (
	"fmt"
	"os"

	"cogentcore.org/palette/base/logx"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// app is the state shared by all of the commands.
type app struct {

	// the config file path given with --config
	cfgPath string

	// verbosity flags
	vv, verbose, quiet bool

	// disable swatches regardless of the config
	plain bool

	// the config loaded before running a command
	cfg Config

	// options for the terminal output, mainly for tests
	termOpts []termenv.OutputOption
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "palette",
		Short: "Generate color palettes and check color contrast",
		Long: `palette generates color palettes from a base color using monochromatic,
analogous, triadic, complementary, or random schemes, converts colors between
hex, rgb, and hsl, and computes WCAG contrast ratios.

Defaults are read from palette.toml in the current directory, or from the
file given with --config; command line flags override them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(a.vv, a.verbose, a.quiet)
			logx.SetDefaultLogger(cmd.ErrOrStderr())
			cfg, err := LoadConfig(a.cfgPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (default ./"+DefaultConfigFile+" if it exists)")
	pf.BoolVar(&a.vv, "vv", false, "enable very verbose (debug) output")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "only show errors")
	pf.BoolVar(&a.plain, "plain", false, "print colors as plain text without swatches")

	root.AddCommand(
		a.generateCmd(),
		a.randomCmd(),
		a.convertCmd(),
		a.contrastCmd(),
		a.moodCmd(),
		a.schemesCmd(),
	)
	return root
}
