// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "math"

// A Label is a piece of text whose vertical position may be adjusted
// to keep it clear of other labels. Y is the vertical center.
type Label struct {
	X, Y          float64
	Text          string
	Size          float64
	Width, Height float64
	Anchor        Anchor
	Fill          string
}

// NewLabel returns a label for text centered vertically on y,
// measured by m.
func NewLabel(m Measurer, x, y float64, text string, size float64, anchor Anchor, fill string) Label {
	w, h := m.Measure(text, size)
	return Label{X: x, Y: y, Text: text, Size: size, Width: w, Height: h, Anchor: anchor, Fill: fill}
}

func (l Label) left() float64   { return l.X + l.Anchor.offset(l.Width) }
func (l Label) top() float64    { return l.Y - l.Height/2 }
func (l Label) bottom() float64 { return l.Y + l.Height/2 }

// AsText returns l as a Text with a central baseline.
func (l Label) AsText() Text {
	return Text{X: l.X, Y: l.Y, S: l.Text, Size: l.Size, Anchor: l.Anchor, Baseline: BaselineCentral}
}

// Overlap returns how far a and b overlap vertically. ok is false if
// the labels do not intersect both horizontally and vertically.
func Overlap(a, b Label) (d float64, ok bool) {
	if a.left() >= b.left()+b.Width || b.left() >= a.left()+a.Width {
		return 0, false
	}
	if a.top() >= b.bottom() || b.top() >= a.bottom() {
		return 0, false
	}
	return math.Min(a.bottom(), b.bottom()) - math.Max(a.top(), b.top()), true
}

// neighbors are the list offsets checked for each label.
var neighbors = []int{-2, -1, 1, 2}

// ResolveCollisions nudges labels vertically until no label overlaps
// a label within two places of it in the list.
//
// Each label is checked against its neighbors in turn. When it
// overlaps one, it moves away from that neighbor by the overlap and
// checking restarts three labels earlier, since the move may have
// created a conflict upstream. ResolveCollisions gives up after
// 10*len(labels) checks and reports settled == false; the labels are
// then left in their best-effort positions.
func ResolveCollisions(labels []Label) (iterations int, settled bool) {
	n := len(labels)
	budget := 10 * n
	for i := 0; i < n; {
		if iterations >= budget {
			return iterations, false
		}
		iterations++

		moved := false
		for _, off := range neighbors {
			j := i + off
			if j < 0 || j >= n {
				continue
			}
			d, ok := Overlap(labels[i], labels[j])
			if !ok {
				continue
			}
			if labels[i].Y <= labels[j].Y {
				labels[i].Y -= d
			} else {
				labels[i].Y += d
			}
			moved = true
			break
		}
		if moved {
			i -= 3
			if i < 0 {
				i = 0
			}
		} else {
			i++
		}
	}
	return iterations, true
}
