// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/ajstarks/svgo"
	"github.com/google/uuid"
	"github.com/svgsimplegraph/simplegraph/layout"
)

// ButtonPosition is where a Toggle draws its buttons.
type ButtonPosition int

const (
	// ButtonsRight stacks the buttons to the right of the charts.
	ButtonsRight ButtonPosition = iota

	// ButtonsTop lines the buttons up above the charts.
	ButtonsTop
)

// Toggle combines several charts into one document. Only one chart is
// visible at a time; clicking a chart's button shows it and hides the
// others. Switching uses declarative SVG <set> elements, so the
// document needs no scripting.
type Toggle struct {
	entries []toggleEntry
	def     int

	position ButtonPosition
	fontSize float64
	active   string
	inactive string
}

type toggleEntry struct {
	chart Chart
	label string
	id    string
}

// A ToggleOption configures a Toggle.
type ToggleOption func(*Toggle)

func WithButtonPosition(p ButtonPosition) ToggleOption {
	return func(t *Toggle) { t.position = p }
}

func WithButtonFontSize(size float64) ToggleOption {
	return func(t *Toggle) { t.fontSize = size }
}

// WithButtonColors sets the fill of the selected button and of the
// other buttons.
func WithButtonColors(active, inactive string) ToggleOption {
	return func(t *Toggle) { t.active, t.inactive = active, inactive }
}

func NewToggle(opts ...ToggleOption) *Toggle {
	t := &Toggle{fontSize: 10, active: "#73bed3", inactive: "#c7cfcc"}
	for _, o := range opts {
		o(t)
	}
	return t
}

// AddChart adds c with a button labeled label. The first chart added
// is shown initially unless a later one is added with isDefault set.
func (t *Toggle) AddChart(c Chart, label string, isDefault bool) {
	id := "b" + strings.ReplaceAll(uuid.NewString(), "-", "")
	t.entries = append(t.entries, toggleEntry{c, label, id})
	if isDefault {
		t.def = len(t.entries) - 1
	}
}

func (t *Toggle) Render() (string, error)  { return render(t) }
func (t *Toggle) DataURI() (string, error) { return dataURI(t) }

func (t *Toggle) frame() (*frame, error) {
	if len(t.entries) == 0 {
		return nil, ErrNoCharts
	}
	frames := make([]*frame, len(t.entries))
	box := layout.NewBox()
	var defs []string
	for i, e := range t.entries {
		f, err := e.chart.frame()
		if err != nil {
			return nil, fmt.Errorf("chart %q: %w", e.label, err)
		}
		frames[i] = f
		box.Union(f.box)
		box.Expand(0, 0)
		box.Expand(f.cfg.Width, f.cfg.Height)
		defs = append(defs, f.defs...)
	}
	cfg := frames[t.def].cfg

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	for i, f := range frames {
		vis := "hidden"
		if i == t.def {
			vis = "visible"
		}
		canvas.Group(attr("visibility", vis))
		io.WriteString(canvas.Writer, f.body)
		fmt.Fprintf(canvas.Writer, "<set attributeName=\"visibility\" to=\"visible\" begin=\"%s.click\"/>\n", t.entries[i].id)
		if others := t.others(i); others != "" {
			fmt.Fprintf(canvas.Writer, "<set attributeName=\"visibility\" to=\"hidden\" begin=\"%s\"/>\n", others)
		}
		canvas.Gend()
	}

	// Buttons are all the size of the largest label.
	m := cfg.measurer()
	sp := cfg.ElementSpacing
	var tw, th float64
	for _, e := range t.entries {
		w, h := m.Measure(e.label, t.fontSize)
		tw, th = math.Max(tw, w), math.Max(th, h)
	}
	bw, bh := 2*sp+tw, sp+th

	var x, y, dx, dy float64
	switch t.position {
	case ButtonsTop:
		x, y = box.Left, box.Top-sp-bh
		dx = bw + sp/2
	default:
		x, y = box.Right+sp, box.Top
		dy = bh + sp/2
	}
	for i, e := range t.entries {
		fill := t.inactive
		if i == t.def {
			fill = t.active
		}
		canvas.Group(`id="`+e.id+`"`, fmt.Sprintf(`transform="translate(%.6g %.6g)"`, x, y), `class="button"`, `cursor="pointer"`)
		fmt.Fprintf(canvas.Writer, "<rect width=\"%.6g\" height=\"%.6g\" rx=\"%.6g\" ry=\"%.6g\" %s>\n", bw, bh, bh/2, bh/2, attr("fill", fill))
		fmt.Fprintf(canvas.Writer, "<set attributeName=\"fill\" to=\"%s\" begin=\"%s.click\"/>\n", t.active, e.id)
		if others := t.others(i); others != "" {
			fmt.Fprintf(canvas.Writer, "<set attributeName=\"fill\" to=\"%s\" begin=\"%s\"/>\n", t.inactive, others)
		}
		io.WriteString(canvas.Writer, "</rect>\n")
		canvas.Text(round(bw/2), round(bh/2), e.label,
			`text-anchor="middle"`, `dominant-baseline="central"`, attr("font-size", t.fontSize), `fill="#000000"`)
		canvas.Gend()
		box.RecordRect(x, y, bw, bh)
		x, y = x+dx, y+dy
	}

	return &frame{
		cfg:  cfg,
		body: buf.String(),
		defs: slice.Nub(defs).([]string),
		box:  box,
	}, nil
}

// others returns the click events of every button except the i'th.
func (t *Toggle) others(i int) string {
	var ev []string
	for j, e := range t.entries {
		if j != i {
			ev = append(ev, e.id+".click")
		}
	}
	return strings.Join(ev, ";")
}
