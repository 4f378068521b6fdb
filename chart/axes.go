// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "github.com/svgsimplegraph/simplegraph/layout"

const (
	tickLength = 3 // length of tick marks
	tickGap    = 5 // gap between an axis and its tick labels
)

func (c *canvas) stroke() []string {
	return []string{attr("stroke", c.cfg.textColor()), `stroke-width="1"`}
}

// yAxis draws a vertical axis at x for scale s, with tick labels to
// the left, or to the right if right is set.
func (c *canvas) yAxis(s layout.Scale, x float64, right bool, prefix, suffix string) {
	c.line(x, 0, x, s.Pixels, c.stroke()...)
	dir, anchor := -1.0, layout.AnchorEnd
	if right {
		dir, anchor = 1, layout.AnchorStart
	}
	for _, t := range s.Ticks {
		y := s.Map(t)
		c.line(x, y, x+dir*tickLength, y, c.stroke()...)
		c.text(layout.Text{
			X: x + dir*tickGap, Y: y,
			S:        layout.FormatTick(prefix, t, suffix),
			Size:     c.cfg.FontSize,
			Anchor:   anchor,
			Baseline: layout.BaselineCentral,
		}, c.cfg.textColor())
	}
}

// xLabels draws category labels below y. center gives the x
// coordinate of category i; labels beyond n categories are ignored.
func (c *canvas) xLabels(labels []string, n int, center func(i int) float64, y float64) {
	for i, l := range labels {
		if i >= n {
			break
		}
		t := layout.Text{X: center(i), Y: y + tickGap, S: l, Size: c.cfg.FontSize}
		if c.cfg.RotateXLabels {
			t.Anchor, t.Baseline, t.Rotation = layout.AnchorEnd, layout.BaselineCentral, -90
		} else {
			t.Anchor, t.Baseline = layout.AnchorMiddle, layout.BaselineHanging
		}
		c.text(t, c.cfg.textColor())
	}
}

// axisTitles draws the axis titles outside everything drawn so far.
// w and h are the size of the plot area.
func (c *canvas) axisTitles(x, left, right string, w, h float64) {
	sp, size, fg := c.cfg.ElementSpacing, c.cfg.FontSize+2, c.cfg.textColor()
	box := c.box
	if x != "" {
		c.text(layout.Text{X: w / 2, Y: box.Bottom + sp, S: x, Size: size, Anchor: layout.AnchorMiddle, Baseline: layout.BaselineHanging}, fg)
	}
	if left != "" {
		c.text(layout.Text{X: box.Left - sp, Y: h / 2, S: left, Size: size, Anchor: layout.AnchorMiddle, Rotation: -90}, fg)
	}
	if right != "" {
		c.text(layout.Text{X: box.Right + sp, Y: h / 2, S: right, Size: size, Anchor: layout.AnchorMiddle, Rotation: 90}, fg)
	}
}

// title draws the chart title centered on x above everything drawn
// so far.
func (c *canvas) title(s string, x float64) {
	if s == "" || c.box.Empty() {
		return
	}
	c.text(layout.Text{X: x, Y: c.box.Top - c.cfg.ElementSpacing, S: s, Size: c.cfg.TitleFontSize, Anchor: layout.AnchorMiddle}, c.cfg.textColor(), `class="title"`)
}
