// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// FromName returns the color value specified
// by the given CSS standard color name, ignoring case.
// It returns an error wrapping [ErrUnparseable] if the
// name is not found.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, fmt.Errorf("colors.FromName: %w: name not found: %q", ErrUnparseable, name)
	}
	return c, nil
}

// FromString returns a color value from the given string,
// which can be a hex value as accepted by [FromHex] or a CSS
// standard color name, like "tomato".
func FromString(str string) (color.RGBA, error) {
	str = strings.TrimSpace(str)
	if c, err := FromHex(str); err == nil {
		return c, nil
	}
	c, err := FromName(str)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromString: %w: %q", ErrUnparseable, str)
	}
	return c, nil
}

// NormalizeHex returns the canonical lower case hex string of the
// color described by the given string (see [FromString]).
func NormalizeHex(str string) (string, error) {
	c, err := FromString(str)
	if err != nil {
		return "", err
	}
	return AsHex(c), nil
}
