// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/ajstarks/svgo"
	"github.com/svgsimplegraph/simplegraph/layout"
)

// canvas accumulates the elements of one chart during a render. Every
// element drawn is also recorded in the bounding box.
type canvas struct {
	cfg Config
	m   layout.Measurer
	svg *svg.SVG
	buf bytes.Buffer
	box layout.Box

	// labels are drawn by flushLabels after collision
	// resolution.
	labels []layout.Label
	defs   []string
}

func newCanvas(cfg Config) *canvas {
	c := &canvas{cfg: cfg, m: cfg.measurer(), box: layout.NewBox()}
	c.svg = svg.New(&c.buf)
	return c
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func attr(name string, value interface{}) string {
	switch v := value.(type) {
	case float64:
		return fmt.Sprintf(`%s="%.6g"`, name, v)
	case string:
		var b strings.Builder
		b.WriteString(name)
		b.WriteString(`="`)
		xmlEscape(&b, v)
		b.WriteString(`"`)
		return b.String()
	}
	return fmt.Sprintf(`%s="%v"`, name, value)
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

func xmlEscape(w io.StringWriter, s string) {
	w.WriteString(attrEscaper.Replace(s))
}

// rect draws the rectangle with corner (x, y) and size w by h. The
// edges are rounded to whole units individually, so adjacent
// rectangles share edges. A negative height extends upward.
func (c *canvas) rect(x, y, w, h float64, style ...string) {
	if h < 0 {
		y, h = y+h, -h
	}
	if w < 0 {
		x, w = x+w, -w
	}
	x0, y0 := round(x), round(y)
	x1, y1 := round(x+w), round(y+h)
	c.box.RecordRect(float64(x0), float64(y0), float64(x1-x0), float64(y1-y0))
	c.svg.Rect(x0, y0, x1-x0, y1-y0, style...)
}

func (c *canvas) line(x1, y1, x2, y2 float64, style ...string) {
	c.box.Expand(x1, y1)
	c.box.Expand(x2, y2)
	c.svg.Line(round(x1), round(y1), round(x2), round(y2), style...)
}

func (c *canvas) circle(x, y, r float64, style ...string) {
	c.box.RecordPoint(x, y, r, r)
	c.svg.Circle(round(x), round(y), round(r), style...)
}

// text draws t immediately, without collision resolution.
func (c *canvas) text(t layout.Text, fill string, style ...string) {
	if t.S == "" {
		return
	}
	c.box.RecordText(c.m, t)
	attrs := []string{attr("font-size", t.Size), attr("fill", fill)}
	if t.Anchor != "" && t.Anchor != layout.AnchorStart {
		attrs = append(attrs, attr("text-anchor", string(t.Anchor)))
	}
	if t.Baseline != "" && t.Baseline != layout.BaselineAlphabetic {
		attrs = append(attrs, attr("dominant-baseline", string(t.Baseline)))
	}
	x, y := round(t.X), round(t.Y)
	if t.Rotation != 0 {
		attrs = append(attrs, fmt.Sprintf(`transform="rotate(%.6g %d %d)"`, t.Rotation, x, y))
	}
	c.svg.Text(x, y, t.S, append(attrs, style...)...)
}

// label queues a label for collision resolution.
func (c *canvas) label(x, y float64, s string, anchor layout.Anchor, fill string) {
	if s == "" {
		return
	}
	c.labels = append(c.labels, layout.NewLabel(c.m, x, y, s, c.cfg.FontSize, anchor, fill))
}

// flushLabels separates the queued labels and draws them.
func (c *canvas) flushLabels() {
	if len(c.labels) == 0 {
		return
	}
	if iters, settled := layout.ResolveCollisions(c.labels); !settled {
		Warning.Printf("%d labels still overlap after %d steps", len(c.labels), iters)
	}
	for _, l := range c.labels {
		c.text(l.AsText(), l.Fill, `class="label"`)
	}
	c.labels = nil
}

func (c *canvas) def(markup string) {
	c.defs = append(c.defs, markup)
}

func (c *canvas) drawPath(p *path, style ...string) {
	if p.empty() {
		return
	}
	for _, pt := range p.pts {
		c.box.Expand(pt[0], pt[1])
	}
	c.svg.Path(wrapPath(string(p.b)), style...)
}

// frame finishes the chart's body.
func (c *canvas) frame() *frame {
	c.flushLabels()
	return &frame{
		cfg:  c.cfg,
		body: c.buf.String(),
		defs: slice.Nub(c.defs).([]string),
		box:  c.box,
	}
}

// path builds SVG path data from absolute commands.
type path struct {
	b   []byte
	pts [][2]float64
}

func (p *path) empty() bool {
	return len(p.b) == 0
}

func (p *path) moveTo(x, y float64)         { p.op('M', x, y) }
func (p *path) lineTo(x, y float64)         { p.op('L', x, y) }
func (p *path) quadTo(cx, cy, x, y float64) { p.op('Q', cx, cy, x, y) }
func (p *path) close()                      { p.b = append(p.b, 'Z') }

func (p *path) op(cmd byte, xy ...float64) {
	p.b = append(p.b, cmd)
	for i := 0; i+1 < len(xy); i += 2 {
		if i > 0 {
			p.b = append(p.b, ' ')
		}
		p.b = strconv.AppendFloat(p.b, xy[i], 'g', 6, 64)
		p.b = append(p.b, ' ')
		p.b = strconv.AppendFloat(p.b, xy[i+1], 'g', 6, 64)
		p.pts = append(p.pts, [2]float64{xy[i], xy[i+1]})
	}
}

// wrapPath wraps path data into lines of at most about 70 bytes.
func wrapPath(p string) string {
	const width = 70
	if len(p) <= width {
		return p
	}
	parts := make([]string, 0, 16)
	for len(p) > width {
		// Find the last command or space before exceeding width.
		lastCmd, lastSpace := 0, 0
		for i, ch := range p {
			if i >= width && (lastCmd != 0 || lastSpace != 0) {
				break
			}
			if ch == 'e' || ch == 'E' {
				// Exponent, not a command.
				continue
			}
			if 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' {
				lastCmd = i
			} else if ch == ' ' {
				lastSpace = i
			}
		}
		split := len(p)
		if lastCmd != 0 {
			split = lastCmd
		} else if lastSpace != 0 {
			split = lastSpace
		}
		parts, p = append(parts, p[:split]), p[split:]
	}
	if len(p) > 0 {
		parts = append(parts, p)
	}
	return strings.Join(parts, "\n")
}
