// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/svgsimplegraph/simplegraph/layout"
	"github.com/svgsimplegraph/simplegraph/palette"
)

// bubbleGap is the gap between adjacent bubbles, as a fraction of
// their radii.
const bubbleGap = 0.1

// BubbleArrow is a chart of bubbles sized by area, placed around a
// circle, and joined by arrows whose widths are proportional to their
// magnitudes.
type BubbleArrow struct {
	bubbles []Bubble
	arrows  []arrow
	handles map[string]int

	cfg Config
}

// A Bubble is a circle whose area is proportional to Size. If
// InnerSize is non-zero, a hole of that size is cut from its center.
type Bubble struct {
	Size      float64
	InnerSize float64
	Text      string

	// Handle, if not empty, is a unique name arrows can use to
	// refer to the bubble.
	Handle string
}

type arrow struct {
	from, to  int
	magnitude float64
}

// A BubbleOption sets an optional property of a bubble.
type BubbleOption func(*Bubble)

func WithInnerSize(size float64) BubbleOption {
	return func(b *Bubble) { b.InnerSize = size }
}

func WithText(text string) BubbleOption {
	return func(b *Bubble) { b.Text = text }
}

func WithHandle(handle string) BubbleOption {
	return func(b *Bubble) { b.Handle = handle }
}

// A Ref refers to a bubble, either by index or by handle.
type Ref struct {
	index  int
	handle string
	named  bool
}

// Index returns a reference to the i'th bubble added.
func Index(i int) Ref {
	return Ref{index: i}
}

// Handle returns a reference to the bubble with the given handle.
func Handle(name string) Ref {
	return Ref{handle: name, named: true}
}

func (r Ref) String() string {
	if r.named {
		return strconv.Quote(r.handle)
	}
	return strconv.Itoa(r.index)
}

// NewBubbleArrow returns an empty bubble chart. The chart keeps its
// own copy of cfg.
func NewBubbleArrow(cfg Config) *BubbleArrow {
	cfg = cfg.clone()
	if cfg.dark() {
		palette.SortByDarkness(cfg.Colors)
	}
	return &BubbleArrow{handles: make(map[string]int), cfg: cfg}
}

// AddBubble adds a bubble and returns its index.
func (ba *BubbleArrow) AddBubble(size float64, opts ...BubbleOption) (int, error) {
	b := Bubble{Size: size}
	for _, o := range opts {
		o(&b)
	}
	if !(b.Size >= 0) || math.IsInf(b.Size, 1) {
		return -1, fmt.Errorf("%w: bubble size %g", ErrNegativeSize, b.Size)
	}
	if !(b.InnerSize >= 0) || math.IsInf(b.InnerSize, 1) {
		return -1, fmt.Errorf("%w: bubble inner size %g", ErrNegativeSize, b.InnerSize)
	}
	if b.Handle != "" {
		if _, ok := ba.handles[b.Handle]; ok {
			return -1, fmt.Errorf("%w: %q", ErrDuplicateHandle, b.Handle)
		}
		ba.handles[b.Handle] = len(ba.bubbles)
	}
	ba.bubbles = append(ba.bubbles, b)
	return len(ba.bubbles) - 1, nil
}

func (ba *BubbleArrow) resolve(r Ref) (int, error) {
	if !r.named {
		return r.index, nil
	}
	i, ok := ba.handles[r.handle]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownBubble, r.handle)
	}
	return i, nil
}

// AddArrow adds an arrow from one bubble to another. Handles are
// resolved immediately; indexes are checked when the chart is
// rendered. An arrow with magnitude 0 is ignored.
func (ba *BubbleArrow) AddArrow(from, to Ref, magnitude float64) error {
	if !(magnitude >= 0) || math.IsInf(magnitude, 1) {
		return fmt.Errorf("%w: arrow magnitude %g", ErrNegativeSize, magnitude)
	}
	fi, err := ba.resolve(from)
	if err != nil {
		return err
	}
	ti, err := ba.resolve(to)
	if err != nil {
		return err
	}
	if magnitude == 0 {
		return nil
	}
	ba.arrows = append(ba.arrows, arrow{fi, ti, magnitude})
	return nil
}

func (ba *BubbleArrow) Render() (string, error)  { return render(ba) }
func (ba *BubbleArrow) DataURI() (string, error) { return dataURI(ba) }

// Placement is the computed position of every bubble.
type Placement struct {
	// CX and CY are the center of the circle the bubbles are
	// placed on, and Radius is its radius.
	CX, CY, Radius float64

	// Scale is the factor from unscaled radii (sqrt(size/pi)) to
	// drawn radii. It is the same for every bubble.
	Scale float64

	Bubbles []BubblePlacement
}

type BubblePlacement struct {
	X, Y   float64
	R      float64
	InnerR float64

	// Angle is the direction of the bubble from the circle's
	// center, in radians.
	Angle float64
}

// Layout places the bubbles evenly around a circle.
//
// The circle is just large enough that neighboring bubbles keep a gap
// of 10% of their radii and that the two largest bubbles cannot touch
// across the circle. The arrangement is then scaled to fit the
// shorter side of the plot area. Each bubble's share of the circle is
// proportional to its radius.
func (ba *BubbleArrow) Layout() (*Placement, error) {
	w, h := ba.cfg.Width, ba.cfg.Height
	pl := &Placement{CX: w / 2, CY: h / 2}
	n := len(ba.bubbles)
	if n == 0 {
		return pl, nil
	}

	rs := make([]float64, n)
	var sum, r1, r2 float64
	for i, b := range ba.bubbles {
		r := math.Sqrt(b.Size / math.Pi)
		rs[i] = r
		sum += r
		if r > r1 {
			r1, r2 = r, r1
		} else if r > r2 {
			r2 = r
		}
	}

	var circle float64
	if n > 1 {
		circle = (1 + bubbleGap) * sum / float64(n) / math.Sin(math.Pi/float64(n))
		circle = math.Max(circle, (1+bubbleGap)*(r1+r2))
	}
	if minDiameter := 2 * (circle + (1+bubbleGap)*r1); minDiameter > 0 {
		pl.Scale = math.Min(w, h) / minDiameter
	}
	pl.Radius = circle * pl.Scale

	acc := 0.0
	for i, b := range ba.bubbles {
		share := 1 / float64(n)
		if sum > 0 {
			share = rs[i] / sum
		}
		acc += share / 2
		angle := 2 * math.Pi * acc
		acc += share / 2

		sin, cos := math.Sincos(angle)
		pl.Bubbles = append(pl.Bubbles, BubblePlacement{
			X:      pl.CX + pl.Radius*cos,
			Y:      pl.CY + pl.Radius*sin,
			R:      rs[i] * pl.Scale,
			InnerR: math.Sqrt(b.InnerSize/math.Pi) * pl.Scale,
			Angle:  angle,
		})
	}
	return pl, nil
}

func (ba *BubbleArrow) frame() (*frame, error) {
	for _, a := range ba.arrows {
		for _, i := range []int{a.from, a.to} {
			if i < 0 || i >= len(ba.bubbles) {
				return nil, fmt.Errorf("%w: arrow refers to bubble %d of %d", ErrBubbleIndex, i, len(ba.bubbles))
			}
		}
	}
	pl, err := ba.Layout()
	if err != nil {
		return nil, err
	}
	cfg := ba.cfg
	cv := newCanvas(cfg)

	// Sort arrows by origin so each origin's arrows are drawn as
	// one path. Within an origin, arrows to earlier bubbles come
	// first.
	arrows := append([]arrow(nil), ba.arrows...)
	sort.SliceStable(arrows, func(i, j int) bool {
		a, b := arrows[i], arrows[j]
		if a.from != b.from {
			return a.from < b.from
		}
		if af, bf := a.to > a.from, b.to > b.from; af != bf {
			return bf
		}
		return a.to < b.to
	})
	for len(arrows) > 0 {
		from := arrows[0].from
		k := 1
		for k < len(arrows) && arrows[k].from == from {
			k++
		}
		ba.drawArrows(cv, pl, arrows[:k])
		arrows = arrows[k:]
	}

	fg := cfg.textColor()
	for i, b := range ba.bubbles {
		bp := pl.Bubbles[i]
		fill := cfg.color(i)
		cv.circle(bp.X, bp.Y, bp.R, `class="bubble"`, attr("fill", fill))
		if bp.InnerR > 0 {
			cv.circle(bp.X, bp.Y, bp.InnerR, attr("fill", "#ffffff"))
		}
		if b.Text == "" {
			continue
		}
		tw, th := cv.m.Measure(b.Text, cfg.FontSize)
		room := bp.R
		if bp.InnerR > 0 {
			room = bp.InnerR
		}
		if math.Hypot(tw/2, th/2) <= room {
			tc := "#000000"
			if palette.IsDark(fill) && bp.InnerR == 0 {
				tc = "#ffffff"
			}
			cv.text(layout.Text{X: bp.X, Y: bp.Y, S: b.Text, Size: cfg.FontSize, Anchor: layout.AnchorMiddle, Baseline: layout.BaselineCentral}, tc)
			continue
		}
		// Doesn't fit. Put it outside, away from the center.
		sin, cos := math.Sincos(bp.Angle)
		anchor := layout.AnchorMiddle
		if cos > 0.3 {
			anchor = layout.AnchorStart
		} else if cos < -0.3 {
			anchor = layout.AnchorEnd
		}
		d := bp.R + tickGap
		cv.label(bp.X+cos*d, bp.Y+sin*(d+th/2), b.Text, anchor, fg)
	}
	cv.flushLabels()
	cv.title(cfg.Title, pl.CX)
	return cv.frame(), nil
}

// drawArrows draws the arrows leaving one bubble as a single path.
//
// The arrows share the origin's diameter, or less if their total
// magnitude is less than the origin's size, in proportion to their
// magnitudes.
func (ba *BubbleArrow) drawArrows(cv *canvas, pl *Placement, arrows []arrow) {
	from := arrows[0].from
	size := ba.bubbles[from].Size
	if size == 0 {
		Warning.Printf("dropping %d arrows from empty bubble %d", len(arrows), from)
		return
	}
	total := 0.0
	for _, a := range arrows {
		total += a.magnitude
	}
	o := pl.Bubbles[from]
	widthAll := 2 * o.R * math.Min(1, total/size)

	var p path
	used := 0.0
	for _, a := range arrows {
		width := widthAll * a.magnitude / total
		offset := used + width/2 - widthAll/2
		used += width
		if a.to == a.from {
			loopShape(&p, o, width, offset)
			continue
		}
		d := pl.Bubbles[a.to]
		arrowShape(&p, o.X, o.Y, d.X, d.Y, pl.CX, pl.CY, width, d.R, offset)
	}
	cv.drawPath(&p, `class="arrow"`, attr("fill", palette.WithAlpha(cv.cfg.color(from), 0.5)))
}

// arrowShape adds an arrow of the given width from (x1, y1) to (x2,
// y2). The sides curve through the center (cx, cy). The arrow stops
// backoff short of (x2, y2), and its tail is shifted sideways by
// offset.
func arrowShape(p *path, x1, y1, x2, y2, cx, cy, width, backoff, offset float64) {
	head := math.Max(10, width/5)
	hw := width / 2
	dirIn := math.Atan2(y2-cy, x2-cx)
	dirOut := math.Atan2(y1-cy, x1-cx)
	midSin, midCos := math.Sincos(math.Atan2(y2-y1, x2-x1) + math.Pi/2)
	outSin, outCos := math.Sincos(dirOut + math.Pi/2)
	inSin, inCos := math.Sincos(dirIn + math.Pi/2)
	dSin, dCos := math.Sincos(dirIn)

	// Tip, backed off from the destination, and the head's base.
	tx, ty := x2-dCos*backoff, y2-dSin*backoff
	bx, by := tx-dCos*head, ty-dSin*head

	p.moveTo(x1-outCos*(hw+offset), y1-outSin*(hw+offset))
	p.quadTo(cx+midCos*hw, cy+midSin*hw, bx+inCos*hw, by+inSin*hw)
	p.lineTo(bx+1.3*inCos*hw, by+1.3*inSin*hw)
	p.lineTo(tx, ty)
	p.lineTo(bx-1.3*inCos*hw, by-1.3*inSin*hw)
	p.lineTo(bx-inCos*hw, by-inSin*hw)
	p.quadTo(cx-midCos*hw, cy-midSin*hw, x1+outCos*(hw-offset), y1+outSin*(hw-offset))
	p.close()
}

// loopShape adds an arrow from bubble b back to itself. It leaves the
// bubble to one side of b's outward direction, loops outward, and
// returns on the other side.
func loopShape(p *path, b BubblePlacement, width, offset float64) {
	const spread = 0.5 // radians either side of the outward direction
	hw := width / 2
	r := b.R
	at := func(angle, dist float64) (float64, float64) {
		sin, cos := math.Sincos(angle)
		return b.X + cos*dist, b.Y + sin*dist
	}
	reach := math.Max(r, 15)
	kx, ky := at(b.Angle, r+2*reach)
	ux, uy := math.Cos(b.Angle), math.Sin(b.Angle)

	start := b.Angle + spread + offset/r
	s1x, s1y := at(start+hw/r, r)
	s2x, s2y := at(start-hw/r, r)

	// Tip on the bubble's edge, arriving from the apex.
	tx, ty := at(b.Angle-spread, r)
	dx, dy := tx-kx, ty-ky
	dl := math.Hypot(dx, dy)
	dx, dy = dx/dl, dy/dl
	nx, ny := -dy, dx
	head := math.Max(10, width/5)
	bx, by := tx-dx*head, ty-dy*head

	p.moveTo(s1x, s1y)
	p.quadTo(kx+ux*hw, ky+uy*hw, bx+nx*hw, by+ny*hw)
	p.lineTo(bx+1.3*nx*hw, by+1.3*ny*hw)
	p.lineTo(tx, ty)
	p.lineTo(bx-1.3*nx*hw, by-1.3*ny*hw)
	p.lineTo(bx-nx*hw, by-ny*hw)
	p.quadTo(kx-ux*hw, ky-uy*hw, s2x, s2y)
	p.close()
}
