// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides the default chart colors and the small
// amount of color arithmetic the chart layouts need: parsing hex
// colors, interpolating between them, and judging how dark they are.
//
// Colors are passed around as "#rrggbb" strings because that is the
// form they take in the emitted markup.
package palette

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var defaultColors = [...]string{
	"#253a5e", "#e8c170", "#a53030", "#75a743", "#73bed3", "#7a367b",
	"#3c5e8b", "#4f8fba", "#a4dddb", "#25562e", "#468232", "#a8ca58",
	"#d0da91", "#7a4841", "#ad7757", "#c09473", "#d7b594", "#e7d5b3",
	"#602c2c", "#884b2b", "#be772b", "#de9e41", "#411d31", "#752438",
	"#cf573c", "#da863e", "#402751", "#a23e8c", "#c65197", "#df84a5",
	"#10141f", "#151d28", "#202e37", "#394a50", "#577277", "#172038",
	"#19332d", "#4d2b32", "#341c27", "#241527", "#1e1d39", "#090a14",
	"#819796", "#a8b5b2", "#c7cfcc", "#ebede9",
}

// Default returns a new copy of the default palette. Each call
// returns a distinct slice, so callers may sort or modify it freely.
func Default() []string {
	out := make([]string, len(defaultColors))
	copy(out, defaultColors[:])
	return out
}

// Parse parses a "#rrggbb" or "rrggbb" color.
func Parse(hex string) (colorful.Color, error) {
	h := strings.TrimSpace(hex)
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	c, err := colorful.Hex(h)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("palette: bad color %q: %v", hex, err)
	}
	return c, nil
}

// Interpolate returns the color a fraction t of the way from "from"
// to "to", interpolating linearly in RGB space. t is clamped to
// [0, 1]. If either color fails to parse, Interpolate returns from
// unchanged.
func Interpolate(from, to string, t float64) string {
	a, err := Parse(from)
	if err != nil {
		return from
	}
	b, err := Parse(to)
	if err != nil {
		return from
	}
	if math.IsNaN(t) || t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.BlendRgb(b, t).Clamped().Hex()
}

// Brightness returns the perceived brightness of a color on a 0-255
// scale, using the ITU-R BT.601 luma weights.
func Brightness(hex string) float64 {
	c, err := Parse(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.RGB255()
	return (float64(r)*299 + float64(g)*587 + float64(b)*114) / 1000
}

// IsDark reports whether text drawn over hex should be light.
func IsDark(hex string) bool {
	return Brightness(hex) < 128
}

// SortByDarkness sorts colors in place from lightest to darkest.
// Colors of equal brightness keep their relative order.
func SortByDarkness(colors []string) {
	sort.SliceStable(colors, func(i, j int) bool {
		return Brightness(colors[i]) > Brightness(colors[j])
	})
}

// WithAlpha returns hex as a CSS rgba() color with the given alpha.
func WithAlpha(hex string, alpha float64) string {
	c, err := Parse(hex)
	if err != nil {
		return hex
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, alpha)
}

// At returns colors[i], cycling through colors if i is out of range.
func At(colors []string, i int) string {
	if len(colors) == 0 {
		return "#000000"
	}
	if i < 0 {
		i = -i
	}
	return colors[i%len(colors)]
}
