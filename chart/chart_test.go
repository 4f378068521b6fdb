// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/svgsimplegraph/simplegraph/palette"
)

func TestMain(m *testing.M) {
	Warning.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func fiveBars() *Categorical {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 600, 400
	c := NewCategorical(cfg)
	c.XLabels = []string{"A", "B", "C", "D", "E"}
	c.AddSeries([]float64{10, 20, 30, 40, 50}, WithLabel("values"))
	return c
}

func TestFiveBars(t *testing.T) {
	uri, err := fiveBars().DataURI()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(uri, DataURIPrefix) {
		t.Fatalf("data URI %.40q... lacks prefix %q", uri, DataURIPrefix)
	}
	doc, err := DecodeDataURI(uri)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(doc, `class="bar"`); n != 5 {
		t.Errorf("document has %d bars; want 5", n)
	}
	if !strings.Contains(doc, "<svg") || !strings.Contains(doc, "</svg>") {
		t.Errorf("document is not an svg element:\n%s", doc)
	}
}

func TestRenderIdempotent(t *testing.T) {
	charts := map[string]Chart{
		"categorical": fiveBars(),
		"ribbon":      testRibbon(3),
		"bubble":      testBubbles(t),
	}
	for name, c := range charts {
		a, err := c.Render()
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		b, err := c.Render()
		if err != nil {
			t.Errorf("%s: second render: %v", name, err)
			continue
		}
		if a != b {
			t.Errorf("%s: rendering twice gave different documents", name)
		}
	}
}

var viewBoxRe = regexp.MustCompile(`viewBox="(-?\d+) (-?\d+) (\d+) (\d+)"`)

// viewBox returns the viewBox of doc.
func viewBox(t *testing.T, doc string) (x, y, w, h int) {
	t.Helper()
	m := viewBoxRe.FindStringSubmatch(doc)
	if m == nil {
		t.Fatalf("no viewBox in document:\n%s", doc)
	}
	var v [4]int
	for i := range v {
		v[i], _ = strconv.Atoi(m[i+1])
	}
	return v[0], v[1], v[2], v[3]
}

func TestViewBoxCoversPlot(t *testing.T) {
	doc, err := fiveBars().Render()
	if err != nil {
		t.Fatal(err)
	}
	x, y, w, h := viewBox(t, doc)
	// Padding is 20 and the y axis labels sit left of the plot,
	// so the view must extend beyond the plot on every side.
	if x > -20 || y > -20 || x+w < 620 || y+h < 420 {
		t.Errorf("viewBox %d %d %d %d does not cover the padded plot", x, y, w, h)
	}
	if !strings.Contains(doc, `width="`+strconv.Itoa(w)+`"`) {
		t.Errorf("document width does not match viewBox width %d", w)
	}
}

func TestEmptyChart(t *testing.T) {
	if _, err := NewCategorical(DefaultConfig()).Render(); !errors.Is(err, ErrNoSeries) {
		t.Errorf("rendering empty chart: got %v; want %v", err, ErrNoSeries)
	}
}

func TestSeriesLength(t *testing.T) {
	c := NewCategorical(DefaultConfig())
	c.AddSeries([]float64{1, 2, 3})
	c.AddSeries([]float64{1, 2})
	if _, err := c.Render(); !errors.Is(err, ErrSeriesLength) {
		t.Errorf("got %v; want %v", err, ErrSeriesLength)
	}
}

func TestUnknownKind(t *testing.T) {
	c := NewCategorical(DefaultConfig())
	c.AddSeries([]float64{1, 2}, WithKind("area"))
	c.AddSeries([]float64{3, 4})
	if _, err := c.Render(); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("got %v; want %v", err, ErrUnknownKind)
	}
}

func TestDarkModeKeepsDefaultPalette(t *testing.T) {
	before := palette.Default()
	cfg := DefaultConfig()
	cfg.BackgroundColor = "#101010"
	c := NewCategorical(cfg)
	c.AddSeries([]float64{1, 2})
	if _, err := c.Render(); err != nil {
		t.Fatal(err)
	}
	after := palette.Default()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("default palette changed at %d: %s -> %s", i, before[i], after[i])
		}
	}
	if !c.cfg.dark() {
		t.Errorf("chart with background %s is not dark", cfg.BackgroundColor)
	}
	if palette.IsDark(c.cfg.Colors[0]) {
		t.Errorf("dark chart's first color %s is dark; want lightest first", c.cfg.Colors[0])
	}
}

func TestConfigCopied(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Colors = []string{"#ff0000", "#00ff00"}
	c := NewCategorical(cfg)
	cfg.Colors[0] = "#0000ff"
	if got := c.cfg.color(0); got != "#ff0000" {
		t.Errorf("chart color changed to %s after modifying caller's config", got)
	}
}

func TestBackgroundAndWatermark(t *testing.T) {
	c := fiveBars()
	c.cfg.BackgroundColor = "#404040"
	c.cfg.Watermark = `<rect id="wm" x="250" y="150" width="100" height="100"/>`
	doc, err := c.Render()
	if err != nil {
		t.Fatal(err)
	}
	bg := strings.Index(doc, `fill="#404040"`)
	wm := strings.Index(doc, `id="wm"`)
	bar := strings.Index(doc, `class="bar"`)
	if bg < 0 || wm < 0 {
		t.Fatalf("missing background or watermark:\n%s", doc)
	}
	if !(bg < bar && bar < wm) {
		t.Errorf("want background, then bars, then watermark; got offsets %d, %d, %d", bg, bar, wm)
	}
}
