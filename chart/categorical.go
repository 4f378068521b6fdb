// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"github.com/svgsimplegraph/simplegraph/layout"
	"github.com/svgsimplegraph/simplegraph/palette"
)

// Categorical is a chart over a categorical x axis. Each series is
// drawn as bars, a line, or dots, against a primary (left) or
// secondary (right) y axis.
//
// The order of Series is significant: it is the order bars are
// placed side by side and the order they stack in.
type Categorical struct {
	// XLabels labels the categories.
	XLabels []string

	// Stacked stacks the bar series of each axis at each category
	// instead of placing them side by side.
	Stacked bool

	// BarWidth is the width of one bar. Bars are narrowed if they
	// do not fit in their category.
	BarWidth float64

	Series         []Series
	ReferenceLines []ReferenceLine

	cfg Config
}

// Orientation is the direction of a reference line.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// A ReferenceLine marks a value across the plot.
//
// A horizontal line is drawn at y value Value of the primary (or, if
// Secondary is set, the secondary) axis. A vertical line is drawn at
// category position Value, where 0 is the center of the first
// category.
type ReferenceLine struct {
	Orientation Orientation
	Value       float64
	Label       string
	Secondary   bool

	// Color defaults to the text color.
	Color string
}

// NewCategorical returns an empty categorical chart. The chart keeps
// its own copy of cfg.
func NewCategorical(cfg Config) *Categorical {
	cfg = cfg.clone()
	if cfg.dark() {
		palette.SortByDarkness(cfg.Colors)
	}
	return &Categorical{BarWidth: 30, cfg: cfg}
}

// AddSeries appends a series. Values is copied.
func (c *Categorical) AddSeries(values []float64, opts ...SeriesOption) {
	c.Series = append(c.Series, newSeries(values, len(c.Series), opts))
}

func (c *Categorical) AddReferenceLine(l ReferenceLine) {
	c.ReferenceLines = append(c.ReferenceLines, l)
}

func (c *Categorical) Render() (string, error)  { return render(c) }
func (c *Categorical) DataURI() (string, error) { return dataURI(c) }

// axisValues returns the values the axis must span: every value of
// the axis' series, or, when stacked, the running totals of the bars.
func (c *Categorical) axisValues(secondary bool) []float64 {
	var vs []float64
	if c.Stacked {
		for i := range c.Series[0].Values {
			base := 0.0
			for _, s := range c.Series {
				if s.Secondary != secondary || s.Kind != Bar {
					continue
				}
				if v := s.Values[i]; isFinite(v) {
					base += v
					vs = append(vs, base)
				}
			}
		}
	}
	for _, s := range c.Series {
		if s.Secondary != secondary || c.Stacked && s.Kind == Bar {
			continue
		}
		vs = append(vs, s.Values...)
	}
	for _, l := range c.ReferenceLines {
		if l.Orientation != Vertical && l.Secondary == secondary {
			vs = append(vs, l.Value)
		}
	}
	return vs
}

func (c *Categorical) ticks(secondary bool) []float64 {
	min, max, ok := layout.Extent(c.axisValues(secondary))
	if !ok {
		min, max = 0, 0
	}
	return layout.CalculateTicks(min, max, true, c.cfg.NumYTicks)
}

func (c *Categorical) hasSecondary() bool {
	for _, s := range c.Series {
		if s.Secondary {
			return true
		}
	}
	return false
}

// scales returns the primary and secondary scales. If the chart has a
// secondary axis, the two scales have zero at the same height.
func (c *Categorical) scales() (primary, secondary layout.Scale, err error) {
	pt := c.ticks(false)
	var st []float64
	if c.hasSecondary() {
		if pt, st, err = layout.MatchTicks(pt, c.ticks(true)); err != nil {
			return
		}
	}
	return layout.NewScale(pt, c.cfg.Height), layout.NewScale(st, c.cfg.Height), nil
}

func (c *Categorical) frame() (*frame, error) {
	n, err := checkLengths(c.Series)
	if err != nil {
		return nil, err
	}
	if err := checkKinds(c.Series); err != nil {
		return nil, err
	}
	ps, ss, err := c.scales()
	if err != nil {
		return nil, err
	}
	cfg := c.cfg
	cv := newCanvas(cfg)
	w, h := cfg.Width, cfg.Height
	fg := cfg.textColor()

	band := w
	if n > 0 {
		band = w / float64(n)
	}
	center := func(i float64) float64 { return (i + 0.5) * band }

	across := 0
	for _, s := range c.Series {
		if s.Kind == Bar {
			across++
		}
	}
	if c.Stacked && across > 0 {
		across = 1
	}
	bw := c.BarWidth
	if bw <= 0 {
		bw = 30
	}
	if across > 0 && float64(across)*bw > 0.9*band {
		bw = 0.9 * band / float64(across)
	}

	var bases [2][]float64
	bases[0], bases[1] = make([]float64, n), make([]float64, n)
	slot := 0
	valueGap := 5 + cfg.FontSize*layout.LineHeight/2
	for _, s := range c.Series {
		sc, ax := ps, 0
		prefix, suffix := cfg.PrimaryTickPrefix, cfg.PrimaryTickSuffix
		if s.Secondary {
			sc, ax = ss, 1
			prefix, suffix = cfg.SecondaryTickPrefix, cfg.SecondaryTickSuffix
		}
		color := cfg.color(s.ColorIndex)
		gaps := 0

		switch s.Kind {
		case Line:
			var p path
			inLine := false
			for i, v := range s.Values {
				if !isFinite(v) {
					inLine = false
					gaps++
					continue
				}
				x, y := center(float64(i)), sc.Map(v)
				if inLine {
					p.lineTo(x, y)
				} else {
					p.moveTo(x, y)
					inLine = true
				}
				if s.PrintValues {
					cv.label(x, y-valueGap, layout.FormatTick(prefix, v, suffix), layout.AnchorMiddle, fg)
				}
			}
			cv.drawPath(&p, `class="line"`, `fill="none"`, attr("stroke", color), attr("stroke-width", s.StrokeWidth))

		case Dot:
			for i, v := range s.Values {
				if !isFinite(v) {
					gaps++
					continue
				}
				x, y := center(float64(i)), sc.Map(v)
				cv.circle(x, y, 5, `class="dot"`, attr("fill", color), attr("stroke", fg), attr("stroke-width", s.StrokeWidth))
				if s.PrintValues {
					cv.label(x, y-valueGap, layout.FormatTick(prefix, v, suffix), layout.AnchorMiddle, fg)
				}
			}

		default:
			for i, v := range s.Values {
				if !isFinite(v) {
					gaps++
					continue
				}
				left := center(float64(i)) - bw/2
				base := 0.0
				if c.Stacked {
					base = bases[ax][i]
					bases[ax][i] += v
				} else {
					left = center(float64(i)) - float64(across)*bw/2 + float64(slot)*bw
				}
				y0, y1 := sc.Map(base), sc.Map(base+v)
				cv.rect(left, y1, bw, y0-y1, `class="bar"`, attr("fill", color))
				if s.PrintValues {
					ly := y1 - valueGap
					if y1 > y0 {
						ly = y1 + valueGap
					}
					cv.label(left+bw/2, ly, layout.FormatTick(prefix, v, suffix), layout.AnchorMiddle, fg)
				}
			}
			slot++
		}
		if gaps > 0 && s.Kind != Line {
			Warning.Printf("series %q: skipped %d missing values", s.Label, gaps)
		}
	}
	cv.flushLabels()

	// Axes.
	cv.line(0, ps.Zero(), w, ps.Zero(), cv.stroke()...)
	cv.yAxis(ps, 0, false, cfg.PrimaryTickPrefix, cfg.PrimaryTickSuffix)
	secondaryLabel := ""
	if c.hasSecondary() {
		cv.yAxis(ss, w, true, cfg.SecondaryTickPrefix, cfg.SecondaryTickSuffix)
		secondaryLabel = cfg.SecondaryYAxisLabel
	}

	for _, l := range c.ReferenceLines {
		color := l.Color
		if color == "" {
			color = fg
		}
		style := []string{attr("stroke", color), `stroke-dasharray="4 2"`, `class="reference"`}
		if l.Orientation == Vertical {
			x := center(l.Value)
			cv.line(x, 0, x, h, style...)
			cv.text(layout.Text{X: x + tickLength, Y: 0, S: l.Label, Size: cfg.FontSize, Baseline: layout.BaselineHanging}, color)
			continue
		}
		sc := ps
		if l.Secondary {
			sc = ss
		}
		y := sc.Map(l.Value)
		cv.line(0, y, w, y, style...)
		cv.text(layout.Text{X: w - tickLength, Y: y - tickLength, S: l.Label, Size: cfg.FontSize, Anchor: layout.AnchorEnd}, color)
	}

	cv.xLabels(c.XLabels, n, func(i int) float64 { return center(float64(i)) }, h)
	cv.axisTitles(cfg.XAxisLabel, cfg.PrimaryYAxisLabel, secondaryLabel, w, h)
	if cfg.ShowLegend {
		c.legend(cv)
	}
	cv.title(cfg.Title, w/2)
	return cv.frame(), nil
}

// legend draws a row of swatches and labels above everything drawn so
// far, wrapping to more rows if it is wider than the plot.
func (c *Categorical) legend(cv *canvas) {
	const swatch = 10
	cfg := cv.cfg
	fs, sp := cfg.FontSize, cfg.ElementSpacing

	type entry struct {
		s Series
		w float64
	}
	var rows [][]entry
	var row []entry
	rowW := 0.0
	for _, s := range c.Series {
		if s.Label == "" {
			continue
		}
		tw, _ := cv.m.Measure(s.Label, fs)
		ew := swatch + tickGap + tw
		if len(row) > 0 && rowW+sp+ew > cfg.Width {
			rows, row, rowW = append(rows, row), nil, 0
		}
		if len(row) > 0 {
			rowW += sp
		}
		row = append(row, entry{s, ew})
		rowW += ew
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return
	}

	_, th := cv.m.Measure("M", fs)
	rowH := math.Max(swatch, th)
	top := cv.box.Top - sp - float64(len(rows))*rowH
	for r, row := range rows {
		y := top + (float64(r)+0.5)*rowH
		x := 0.0
		for _, e := range row {
			color := cfg.color(e.s.ColorIndex)
			switch e.s.Kind {
			case Dot:
				cv.circle(x+swatch/2, y, swatch/2, attr("fill", color))
			case Line:
				cv.line(x, y, x+swatch, y, attr("stroke", color), attr("stroke-width", math.Max(2, e.s.StrokeWidth)))
			default:
				cv.rect(x, y-swatch/2, swatch, swatch, attr("fill", color))
			}
			cv.text(layout.Text{X: x + swatch + tickGap, Y: y, S: e.s.Label, Size: fs, Baseline: layout.BaselineCentral}, cfg.textColor())
			x += e.w + sp
		}
	}
}
