// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggest returns the candidate closest to the given name by edit
// distance, or "" if none of them is close enough to be a likely typo.
func suggest(name string, candidates []string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	best, dist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(name, c)
		if dist < 0 || d < dist {
			best, dist = c, d
		}
	}
	if dist < 0 || dist > max(2, len(best)/3) {
		return ""
	}
	return best
}

// warnUnknown logs that the given kind of name was not recognized and
// that fallback is used instead, with a suggestion if there is one.
func warnUnknown(kind, name, fallback string, candidates []string) {
	msg := fmt.Sprintf("unknown %s %q, using %s", kind, name, fallback)
	if s := suggest(name, candidates); s != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", s)
	}
	slog.Warn(msg)
}

func names[T fmt.Stringer](values []T) []string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strings.ToLower(v.String())
	}
	return s
}
