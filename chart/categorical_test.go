// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

var barRe = regexp.MustCompile(`<rect x="(-?\d+)" y="(-?\d+)" width="(\d+)" height="(\d+)" class="bar"`)

type rect struct{ x, y, w, h int }

func bars(t *testing.T, doc string) []rect {
	t.Helper()
	var out []rect
	for _, m := range barRe.FindAllStringSubmatch(doc, -1) {
		var v [4]int
		for i := range v {
			v[i], _ = strconv.Atoi(m[i+1])
		}
		out = append(out, rect{v[0], v[1], v[2], v[3]})
	}
	return out
}

func TestStackedNegative(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 300, 200
	c := NewCategorical(cfg)
	c.Stacked = true
	c.AddSeries([]float64{10, -5}, WithLabel("a"))
	c.AddSeries([]float64{5, -5}, WithLabel("b"))

	ps, _, err := c.scales()
	if err != nil {
		t.Fatal(err)
	}
	if ps.Min != -10 || ps.Max != 15 {
		t.Fatalf("stacked scale spans [%g, %g]; want [-10, 15]", ps.Min, ps.Max)
	}

	doc, err := c.Render()
	if err != nil {
		t.Fatal(err)
	}
	// Ticks run -10..15, so y = 200 - 8*(v+10). Each category is
	// 150 wide and bars are 30 wide.
	want := []rect{
		{60, 40, 30, 80},   // a[0]: 0..10
		{210, 120, 30, 40}, // a[1]: 0..-5
		{60, 0, 30, 40},    // b[0]: 10..15
		{210, 160, 30, 40}, // b[1]: -5..-10
	}
	got := bars(t, doc)
	if len(got) != len(want) {
		t.Fatalf("got %d bars %v; want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bar %d = %+v; want %+v", i, got[i], want[i])
		}
	}
}

func TestSideBySide(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 300, 200
	c := NewCategorical(cfg)
	c.AddSeries([]float64{10, 20})
	c.AddSeries([]float64{20, 10})
	doc, err := c.Render()
	if err != nil {
		t.Fatal(err)
	}
	got := bars(t, doc)
	if len(got) != 4 {
		t.Fatalf("got %d bars; want 4", len(got))
	}
	// Two 30-wide bars centered in a 150-wide band.
	if got[0].x != 45 || got[2].x != 75 {
		t.Errorf("bars of category 0 at x=%d and x=%d; want 45 and 75", got[0].x, got[2].x)
	}
	for _, b := range got {
		if b.y+b.h != 200 {
			t.Errorf("bar %+v does not sit on the zero line at 200", b)
		}
	}
}

func TestNarrowBands(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 100
	c := NewCategorical(cfg)
	vals := make([]float64, 10)
	for i := range vals {
		vals[i] = float64(i + 1)
	}
	c.AddSeries(vals)
	doc, err := c.Render()
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range bars(t, doc) {
		if b.w > 10 {
			t.Errorf("bar %+v is wider than its 10 unit band", b)
		}
	}
}

func TestSecondaryAxisAlignsZero(t *testing.T) {
	for _, test := range []struct {
		primary, secondary []float64
	}{
		{[]float64{10, 20, 50}, []float64{-2, 1, 0.5}},
		{[]float64{-300, 100}, []float64{5, 7}},
		{[]float64{1, 2}, []float64{-1000, -10}},
	} {
		c := NewCategorical(DefaultConfig())
		c.AddSeries(test.primary)
		c.AddSeries(test.secondary, WithKind(Line), OnSecondary())
		ps, ss, err := c.scales()
		if err != nil {
			t.Errorf("%v / %v: %v", test.primary, test.secondary, err)
			continue
		}
		if len(ps.Ticks) != len(ss.Ticks) {
			t.Errorf("%v / %v: %d primary ticks, %d secondary", test.primary, test.secondary, len(ps.Ticks), len(ss.Ticks))
		}
		if math.Abs(ps.Zero()-ss.Zero()) > 1e-9 {
			t.Errorf("%v / %v: zero at %g on primary, %g on secondary", test.primary, test.secondary, ps.Zero(), ss.Zero())
		}
		for _, v := range test.secondary {
			if y := ss.Map(v); y < -1e-9 || y > ss.Pixels+1e-9 {
				t.Errorf("%v: secondary value %g maps outside the plot to %g", test.secondary, v, y)
			}
		}
	}
}

func TestGaps(t *testing.T) {
	c := NewCategorical(DefaultConfig())
	c.AddSeries([]float64{1, math.NaN(), 3})
	c.AddSeries([]float64{1, math.NaN(), 3}, WithKind(Line))
	doc, err := c.Render()
	if err != nil {
		t.Fatal(err)
	}
	if n := len(bars(t, doc)); n != 2 {
		t.Errorf("got %d bars; want 2 with a gap", n)
	}
	// The line breaks at the gap, so it has two moves.
	i := strings.Index(doc, `class="line"`)
	start := strings.LastIndex(doc[:i], "<path")
	if n := strings.Count(doc[start:i], "M"); n != 2 {
		t.Errorf("line has %d segments; want 2", n)
	}
}

func TestPrintValues(t *testing.T) {
	c := NewCategorical(DefaultConfig())
	c.AddSeries([]float64{1500, 20}, WithPrintValues())
	doc, err := c.Render()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{">1.5K</text>", ">20</text>"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document lacks value label %q", want)
		}
	}
}

func TestReferenceLines(t *testing.T) {
	c := NewCategorical(DefaultConfig())
	c.AddSeries([]float64{1, 2, 3})
	c.AddReferenceLine(ReferenceLine{Orientation: Horizontal, Value: 10, Label: "target"})
	c.AddReferenceLine(ReferenceLine{Orientation: Vertical, Value: 1})
	ps, _, err := c.scales()
	if err != nil {
		t.Fatal(err)
	}
	if ps.Max < 10 {
		t.Errorf("scale tops out at %g, below the reference line at 10", ps.Max)
	}
	doc, err := c.Render()
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(doc, `class="reference"`); n != 2 {
		t.Errorf("got %d reference lines; want 2", n)
	}
	if !strings.Contains(doc, ">target</text>") {
		t.Errorf("reference line label missing")
	}
}

func TestLegend(t *testing.T) {
	c := NewCategorical(DefaultConfig())
	c.AddSeries([]float64{1}, WithLabel("first"))
	c.AddSeries([]float64{2}, WithLabel("second"), WithKind(Dot))
	c.AddSeries([]float64{3})
	doc, err := c.Render()
	if err != nil {
		t.Fatal(err)
	}
	for _, l := range []string{">first</text>", ">second</text>"} {
		if !strings.Contains(doc, l) {
			t.Errorf("legend lacks %q", l)
		}
	}

	c.cfg.ShowLegend = false
	doc, err = c.Render()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(doc, ">first</text>") {
		t.Errorf("legend drawn with ShowLegend off")
	}
}
