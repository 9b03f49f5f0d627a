// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx configures the default [slog] logger
// from user verbosity flags.
package logx

import (
	"io"
	"log/slog"
)

// UserLevel is the lowest level of messages that are shown to the
// user. Commands set it from their verbosity flags with
// [LevelFromFlags] before creating a logger; it defaults to
// [slog.LevelWarn], so warnings about unrecognized names are shown.
var UserLevel = slog.LevelWarn

// LevelFromFlags maps the --vv, --verbose, and --quiet flags to a
// level: debug, info, and error respectively, or warn if none is set.
// The more verbose flag wins when several are given.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger returns a new text logger writing to w that shows
// messages at or above [UserLevel].
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel}))
}

// SetDefaultLogger sets the default logger to a logger
// returned by [NewLogger] and returns it.
func SetDefaultLogger(w io.Writer) *slog.Logger {
	l := NewLogger(w)
	slog.SetDefault(l)
	return l
}
