// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"github.com/svgsimplegraph/simplegraph/layout"
	"github.com/svgsimplegraph/simplegraph/palette"
)

// Config holds the options shared by all chart families.
//
// Width and Height are the size of the plot area. The rendered
// document is sized to fit everything drawn, plus padding.
//
// Zero-valued numeric fields mean "unset". In particular a per-side
// padding of zero falls back to the axis padding, which falls back to
// Padding.
type Config struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"`

	XPadding      float64 `yaml:"x_padding"`
	YPadding      float64 `yaml:"y_padding"`
	TopPadding    float64 `yaml:"top_padding"`
	BottomPadding float64 `yaml:"bottom_padding"`
	LeftPadding   float64 `yaml:"left_padding"`
	RightPadding  float64 `yaml:"right_padding"`

	// Colors is the palette series and bubbles are colored from.
	// If empty, the default palette is used.
	Colors []string `yaml:"colors"`

	NumYTicks int `yaml:"num_y_ticks"`

	XAxisLabel          string `yaml:"x_axis_label"`
	PrimaryYAxisLabel   string `yaml:"primary_y_axis_label"`
	SecondaryYAxisLabel string `yaml:"secondary_y_axis_label"`

	PrimaryTickPrefix   string `yaml:"primary_tick_prefix"`
	PrimaryTickSuffix   string `yaml:"primary_tick_suffix"`
	SecondaryTickPrefix string `yaml:"secondary_tick_prefix"`
	SecondaryTickSuffix string `yaml:"secondary_tick_suffix"`

	ShowLegend    bool `yaml:"show_legend"`
	RotateXLabels bool `yaml:"rotate_x_labels"`

	BackgroundColor string `yaml:"background_color"`

	// DarkMode selects light text. If nil, it is derived from the
	// brightness of BackgroundColor.
	DarkMode *bool `yaml:"dark_mode"`

	Title         string  `yaml:"title"`
	TitleFontSize float64 `yaml:"title_font_size"`
	FontSize      float64 `yaml:"font_size"`

	// Watermark is a markup fragment drawn over the chart.
	Watermark string `yaml:"watermark"`

	// ElementSpacing is the gap between the plot and the legend,
	// title, axis labels and buttons.
	ElementSpacing float64 `yaml:"element_spacing"`

	// FontWidthMultiplier scales the estimated width of text. It
	// is ignored if Measurer is set.
	FontWidthMultiplier float64 `yaml:"font_width_multiplier"`

	// Measurer estimates text sizes for layout. If nil, a
	// layout.Heuristic is used.
	Measurer layout.Measurer `yaml:"-"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:               300,
		Height:              200,
		Padding:             20,
		NumYTicks:           layout.DefaultTickCount,
		ShowLegend:          true,
		RotateXLabels:       true,
		TitleFontSize:       16,
		FontSize:            10,
		ElementSpacing:      10,
		FontWidthMultiplier: 1,
	}
}

// clone returns a copy of c that shares no mutable state with c, with
// unset fields filled from DefaultConfig.
func (c Config) clone() Config {
	def := DefaultConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.NumYTicks < 1 {
		c.NumYTicks = def.NumYTicks
	}
	if c.FontSize <= 0 {
		c.FontSize = def.FontSize
	}
	if c.TitleFontSize <= 0 {
		c.TitleFontSize = def.TitleFontSize
	}
	if c.ElementSpacing <= 0 {
		c.ElementSpacing = def.ElementSpacing
	}
	if len(c.Colors) == 0 {
		c.Colors = palette.Default()
	} else {
		c.Colors = append([]string(nil), c.Colors...)
	}
	if c.DarkMode != nil {
		dark := *c.DarkMode
		c.DarkMode = &dark
	}
	return c
}

func firstNonZero(xs ...float64) float64 {
	for _, x := range xs {
		if x != 0 {
			return x
		}
	}
	return 0
}

// padding returns the padding on each side of the chart.
func (c Config) padding() layout.Padding {
	return layout.Padding{
		Top:    firstNonZero(c.TopPadding, c.YPadding, c.Padding),
		Bottom: firstNonZero(c.BottomPadding, c.YPadding, c.Padding),
		Left:   firstNonZero(c.LeftPadding, c.XPadding, c.Padding),
		Right:  firstNonZero(c.RightPadding, c.XPadding, c.Padding),
	}
}

// dark reports whether the chart uses light text on a dark
// background.
func (c Config) dark() bool {
	if c.DarkMode != nil {
		return *c.DarkMode
	}
	return c.BackgroundColor != "" && palette.IsDark(c.BackgroundColor)
}

func (c Config) textColor() string {
	if c.dark() {
		return "#ffffff"
	}
	return "#000000"
}

func (c Config) measurer() layout.Measurer {
	if c.Measurer != nil {
		return c.Measurer
	}
	return layout.Heuristic{Multiplier: c.FontWidthMultiplier}
}

// color returns the i'th palette color.
func (c Config) color(i int) string {
	return palette.At(c.Colors, i)
}
