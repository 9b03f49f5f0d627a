// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"strings"

	"cogentcore.org/palette/colors/hsl"
)

// Mood is a named feeling that maps to a canonical seed color.
type Mood int32

const (
	// Calm is a soft, airy blue.
	Calm Mood = iota

	// Energetic is a bright red.
	Energetic

	// Professional is a muted navy.
	Professional

	// Fresh is a light green.
	Fresh

	// Warm is a sandy orange.
	Warm
)

var moodNames = [...]string{
	Calm:         "calm",
	Energetic:    "energetic",
	Professional: "professional",
	Fresh:        "fresh",
	Warm:         "warm",
}

var moodSeeds = [...]hsl.HSL{
	Calm:         {H: 200, S: 40, L: 60},
	Energetic:    {H: 0, S: 70, L: 60},
	Professional: {H: 220, S: 30, L: 50},
	Fresh:        {H: 120, S: 50, L: 60},
	Warm:         {H: 30, S: 60, L: 60},
}

// MoodValues returns all possible values for the type Mood.
func MoodValues() []Mood { return []Mood{Calm, Energetic, Professional, Fresh, Warm} }

// String returns the lower case name of the mood.
func (m Mood) String() string {
	if m < 0 || int(m) >= len(moodNames) {
		return fmt.Sprintf("Mood(%d)", int32(m))
	}
	return moodNames[m]
}

// ParseMood returns the mood with the given name, ignoring case.
// For an unrecognized name it returns [Calm] and false.
func ParseMood(s string) (Mood, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range moodNames {
		if n == s {
			return Mood(i), true
		}
	}
	return Calm, false
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m Mood) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *Mood) UnmarshalText(text []byte) error {
	v, ok := ParseMood(string(text))
	if !ok {
		return fmt.Errorf("colors.Mood.UnmarshalText: invalid mood %q", text)
	}
	*m = v
	return nil
}

// Seed returns the canonical HSL color of the mood.
// Out of range moods return the [Calm] seed.
func (m Mood) Seed() hsl.HSL {
	if m < 0 || int(m) >= len(moodSeeds) {
		return moodSeeds[Calm]
	}
	return moodSeeds[m]
}

// Hex returns the hex string of the canonical color of the mood.
func (m Mood) Hex() string {
	s := m.Seed()
	return HSLToHex(s.H, s.S, s.L)
}

// FromMood returns the hex color for the mood with the given name,
// falling back on [Calm] for an unrecognized name.
func FromMood(name string) string {
	m, _ := ParseMood(name)
	return m.Hex()
}
