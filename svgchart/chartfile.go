// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/svgsimplegraph/simplegraph/chart"
	"github.com/svgsimplegraph/simplegraph/layout"
	"gopkg.in/yaml.v3"
)

// chartFile is the YAML description of one chart. Which fields apply
// depends on Type.
type chartFile struct {
	Type   string    `yaml:"type"`
	Config yaml.Node `yaml:"config"`

	// Categorical and ribbon charts.
	XLabels  []string     `yaml:"x_labels"`
	BarWidth float64      `yaml:"bar_width"`
	Series   []seriesFile `yaml:"series"`

	// Categorical charts.
	Stacked        bool          `yaml:"stacked"`
	ReferenceLines []refLineFile `yaml:"reference_lines"`

	// Ribbon charts.
	ColorRange []float64 `yaml:"color_range"`

	// Bubble charts.
	Bubbles []bubbleFile `yaml:"bubbles"`
	Arrows  []arrowFile  `yaml:"arrows"`

	// Toggles.
	Charts         []toggleFile `yaml:"charts"`
	Buttons        string       `yaml:"buttons"`
	ButtonFontSize float64      `yaml:"button_font_size"`
	ButtonColors   []string     `yaml:"button_colors"`
}

type seriesFile struct {
	// Values is a list of numbers; ~ is a gap.
	Values      []*float64 `yaml:"values"`
	Label       string     `yaml:"label"`
	Kind        string     `yaml:"kind"`
	Secondary   bool       `yaml:"secondary"`
	PrintValues bool       `yaml:"print_values"`
	ColorIndex  *int       `yaml:"color_index"`
	StrokeWidth float64    `yaml:"stroke_width"`
}

type refLineFile struct {
	Orientation string  `yaml:"orientation"`
	Value       float64 `yaml:"value"`
	Label       string  `yaml:"label"`
	Secondary   bool    `yaml:"secondary"`
	Color       string  `yaml:"color"`
}

type bubbleFile struct {
	Size      float64 `yaml:"size"`
	InnerSize float64 `yaml:"inner_size"`
	Text      string  `yaml:"text"`
	Handle    string  `yaml:"handle"`
}

type arrowFile struct {
	From      bubbleRef `yaml:"from"`
	To        bubbleRef `yaml:"to"`
	Magnitude float64   `yaml:"magnitude"`
}

type toggleFile struct {
	Label   string    `yaml:"label"`
	Default bool      `yaml:"default"`
	Chart   chartFile `yaml:"chart"`
}

// bubbleRef is a bubble index (an integer) or handle (anything else).
type bubbleRef struct {
	chart.Ref
}

func (r *bubbleRef) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: bubble reference must be an index or a handle", n.Line)
	}
	if n.ShortTag() == "!!int" {
		var i int
		if err := n.Decode(&i); err != nil {
			return err
		}
		r.Ref = chart.Index(i)
		return nil
	}
	r.Ref = chart.Handle(n.Value)
	return nil
}

// loadChart decodes a chart description from r. If m is not nil, it
// is used to measure text in every chart.
func loadChart(r io.Reader, m layout.Measurer) (chart.Chart, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cf chartFile
	if err := dec.Decode(&cf); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty chart file")
		}
		return nil, err
	}
	return cf.build(m)
}

// config returns the chart's configuration: the defaults, overridden
// by any fields set in the file.
func (cf *chartFile) config(m layout.Measurer) (chart.Config, error) {
	cfg := chart.DefaultConfig()
	if cf.Config.Kind != 0 {
		// Node.Decode has no strict mode, so round-trip the node
		// through a decoder that rejects unknown keys.
		b, err := yaml.Marshal(&cf.Config)
		if err != nil {
			return cfg, err
		}
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
	}
	cfg.Measurer = m
	return cfg, nil
}

func (cf *chartFile) build(m layout.Measurer) (chart.Chart, error) {
	if cf.Type == "toggle" {
		return cf.buildToggle(m)
	}
	cfg, err := cf.config(m)
	if err != nil {
		return nil, err
	}
	switch cf.Type {
	case "categorical", "":
		return cf.buildCategorical(cfg)
	case "ribbon":
		return cf.buildRibbon(cfg)
	case "bubble":
		return cf.buildBubble(cfg)
	}
	return nil, fmt.Errorf("unknown chart type %q", cf.Type)
}

func (s *seriesFile) values() []float64 {
	vs := make([]float64, len(s.Values))
	for i, v := range s.Values {
		if v == nil {
			vs[i] = math.NaN()
		} else {
			vs[i] = *v
		}
	}
	return vs
}

func (s *seriesFile) options() ([]chart.SeriesOption, error) {
	var opts []chart.SeriesOption
	if s.Label != "" {
		opts = append(opts, chart.WithLabel(s.Label))
	}
	switch k := chart.Kind(s.Kind); k {
	case "":
	case chart.Bar, chart.Line, chart.Dot:
		opts = append(opts, chart.WithKind(k))
	default:
		return nil, fmt.Errorf("series %q: unknown kind %q", s.Label, s.Kind)
	}
	if s.Secondary {
		opts = append(opts, chart.OnSecondary())
	}
	if s.PrintValues {
		opts = append(opts, chart.WithPrintValues())
	}
	if s.ColorIndex != nil {
		opts = append(opts, chart.WithColorIndex(*s.ColorIndex))
	}
	if s.StrokeWidth > 0 {
		opts = append(opts, chart.WithStrokeWidth(s.StrokeWidth))
	}
	return opts, nil
}

func (cf *chartFile) buildCategorical(cfg chart.Config) (chart.Chart, error) {
	c := chart.NewCategorical(cfg)
	c.XLabels = cf.XLabels
	c.Stacked = cf.Stacked
	if cf.BarWidth > 0 {
		c.BarWidth = cf.BarWidth
	}
	for i := range cf.Series {
		s := &cf.Series[i]
		opts, err := s.options()
		if err != nil {
			return nil, err
		}
		c.AddSeries(s.values(), opts...)
	}
	for _, l := range cf.ReferenceLines {
		o := chart.Orientation(l.Orientation)
		switch o {
		case "":
			o = chart.Horizontal
		case chart.Horizontal, chart.Vertical:
		default:
			return nil, fmt.Errorf("reference line %q: unknown orientation %q", l.Label, l.Orientation)
		}
		c.AddReferenceLine(chart.ReferenceLine{
			Orientation: o,
			Value:       l.Value,
			Label:       l.Label,
			Secondary:   l.Secondary,
			Color:       l.Color,
		})
	}
	return c, nil
}

func (cf *chartFile) buildRibbon(cfg chart.Config) (chart.Chart, error) {
	r := chart.NewRibbon(cfg)
	r.XLabels = cf.XLabels
	if cf.BarWidth > 0 {
		r.BarWidth = cf.BarWidth
	}
	switch len(cf.ColorRange) {
	case 0:
	case 2:
		r.ColorRange = &[2]float64{cf.ColorRange[0], cf.ColorRange[1]}
	default:
		return nil, fmt.Errorf("color_range must have two values, not %d", len(cf.ColorRange))
	}
	for i := range cf.Series {
		s := &cf.Series[i]
		opts, err := s.options()
		if err != nil {
			return nil, err
		}
		r.AddSeries(s.values(), opts...)
	}
	return r, nil
}

func (cf *chartFile) buildBubble(cfg chart.Config) (chart.Chart, error) {
	ba := chart.NewBubbleArrow(cfg)
	for _, b := range cf.Bubbles {
		_, err := ba.AddBubble(b.Size,
			chart.WithInnerSize(b.InnerSize), chart.WithText(b.Text), chart.WithHandle(b.Handle))
		if err != nil {
			return nil, err
		}
	}
	for _, a := range cf.Arrows {
		if err := ba.AddArrow(a.From.Ref, a.To.Ref, a.Magnitude); err != nil {
			return nil, fmt.Errorf("arrow %s -> %s: %w", a.From, a.To, err)
		}
	}
	return ba, nil
}

func (cf *chartFile) buildToggle(m layout.Measurer) (chart.Chart, error) {
	var opts []chart.ToggleOption
	switch cf.Buttons {
	case "", "right":
	case "top":
		opts = append(opts, chart.WithButtonPosition(chart.ButtonsTop))
	default:
		return nil, fmt.Errorf("unknown button position %q", cf.Buttons)
	}
	if cf.ButtonFontSize > 0 {
		opts = append(opts, chart.WithButtonFontSize(cf.ButtonFontSize))
	}
	switch len(cf.ButtonColors) {
	case 0:
	case 2:
		opts = append(opts, chart.WithButtonColors(cf.ButtonColors[0], cf.ButtonColors[1]))
	default:
		return nil, fmt.Errorf("button_colors must have two colors, not %d", len(cf.ButtonColors))
	}

	t := chart.NewToggle(opts...)
	for i := range cf.Charts {
		tf := &cf.Charts[i]
		c, err := tf.Chart.build(m)
		if err != nil {
			return nil, fmt.Errorf("chart %q: %w", tf.Label, err)
		}
		t.AddChart(c, tf.Label, tf.Default)
	}
	return t, nil
}
