// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "math"

// Box is the smallest rectangle enclosing everything recorded into
// it. The zero Box is not empty; use NewBox or Reset.
type Box struct {
	Left, Right, Top, Bottom float64
}

// NewBox returns an empty, inverted box: the first recorded element
// sets all four edges.
func NewBox() Box {
	var b Box
	b.Reset()
	return b
}

// Reset empties b.
func (b *Box) Reset() {
	*b = Box{
		Left:   math.Inf(1),
		Right:  math.Inf(-1),
		Top:    math.Inf(1),
		Bottom: math.Inf(-1),
	}
}

// Empty reports whether nothing has been recorded in b.
func (b Box) Empty() bool {
	return b.Left > b.Right || b.Top > b.Bottom
}

func (b Box) Width() float64 {
	if b.Empty() {
		return 0
	}
	return b.Right - b.Left
}

func (b Box) Height() float64 {
	if b.Empty() {
		return 0
	}
	return b.Bottom - b.Top
}

// Expand grows b to include the point (x, y). Non-finite points are
// ignored.
func (b *Box) Expand(x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	b.Left = math.Min(b.Left, x)
	b.Right = math.Max(b.Right, x)
	b.Top = math.Min(b.Top, y)
	b.Bottom = math.Max(b.Bottom, y)
}

// Union grows b to include o.
func (b *Box) Union(o Box) {
	if o.Empty() {
		return
	}
	b.Expand(o.Left, o.Top)
	b.Expand(o.Right, o.Bottom)
}

// RecordPoint records a shape centered at (x, y), such as a circle.
func (b *Box) RecordPoint(x, y, halfW, halfH float64) {
	b.Expand(x-halfW, y-halfH)
	b.Expand(x+halfW, y+halfH)
}

// RecordRect records the rectangle with top-left corner (x, y).
func (b *Box) RecordRect(x, y, w, h float64) {
	b.Expand(x, y)
	b.Expand(x+w, y+h)
}

// Anchor is the horizontal alignment of text relative to its x
// coordinate. The values are those of the text-anchor attribute.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Baseline is the vertical alignment of text relative to its y
// coordinate. The values are those of the dominant-baseline
// attribute.
type Baseline string

const (
	BaselineAlphabetic Baseline = "alphabetic"
	BaselineCentral    Baseline = "central"
	BaselineHanging    Baseline = "hanging"
)

// offset returns the position of the top of a box of height h
// relative to its y coordinate.
func (bl Baseline) offset(h float64) float64 {
	switch bl {
	case BaselineHanging, "top", "text-before-edge":
		return 0
	case BaselineCentral, "middle":
		return -h / 2
	}
	return -h
}

// offset returns the position of the left of a box of width w
// relative to its x coordinate.
func (a Anchor) offset(w float64) float64 {
	switch a {
	case AnchorMiddle:
		return -w / 2
	case AnchorEnd:
		return -w
	}
	return 0
}

// Text describes a placed text element.
type Text struct {
	X, Y     float64
	S        string
	Size     float64
	Anchor   Anchor
	Baseline Baseline

	// Rotation is in degrees, clockwise about (X, Y), as in the
	// rotate transform.
	Rotation float64
}

// Corners returns the four corners of t's estimated extent. If t is
// rotated, these are the rotated corners.
func (t Text) Corners(m Measurer) [4][2]float64 {
	w, h := m.Measure(t.S, t.Size)
	x0, y0 := t.Anchor.offset(w), t.Baseline.offset(h)
	cs := [4][2]float64{{x0, y0}, {x0 + w, y0}, {x0, y0 + h}, {x0 + w, y0 + h}}
	sin, cos := 0.0, 1.0
	if t.Rotation != 0 {
		sin, cos = math.Sincos(t.Rotation * math.Pi / 180)
	}
	for i, c := range cs {
		dx, dy := c[0], c[1]
		cs[i] = [2]float64{t.X + dx*cos - dy*sin, t.Y + dx*sin + dy*cos}
	}
	return cs
}

// RecordText records the estimated extent of t, measured by m.
func (b *Box) RecordText(m Measurer, t Text) {
	for _, c := range t.Corners(m) {
		b.Expand(c[0], c[1])
	}
}

// Padding is extra space around each side of a box.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Rect is a rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, Width, Height float64
}

// Viewport returns b grown by p. If b is empty, the viewport is just
// the padding, anchored at the origin.
func (b Box) Viewport(p Padding) Rect {
	if b.Empty() {
		return Rect{Width: p.Left + p.Right, Height: p.Top + p.Bottom}
	}
	return Rect{
		X:      b.Left - p.Left,
		Y:      b.Top - p.Top,
		Width:  b.Right - b.Left + p.Left + p.Right,
		Height: b.Bottom - b.Top + p.Top + p.Bottom,
	}
}
