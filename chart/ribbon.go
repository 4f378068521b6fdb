// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ajstarks/svgo"
	"github.com/svgsimplegraph/simplegraph/layout"
	"github.com/svgsimplegraph/simplegraph/palette"
)

// Ribbon compares two series that share a scale. At each category a
// ribbon runs from the first series' value to the second's, pointing
// toward the second. An optional third series colors each ribbon on
// a gradient between the first two palette colors.
//
// Series are taken in order: the first two are compared and the third
// is the color series.
type Ribbon struct {
	XLabels  []string
	BarWidth float64

	// ColorRange is the range of the color series mapped onto the
	// gradient. If nil, it is derived from the color series,
	// rounded out to the nearest round numbers at least 5% beyond
	// the data (see layout.AdjustedMin and layout.AdjustedMax).
	ColorRange *[2]float64

	Series []Series

	cfg Config
}

// NewRibbon returns an empty ribbon chart. The chart keeps its own
// copy of cfg.
func NewRibbon(cfg Config) *Ribbon {
	return &Ribbon{BarWidth: 30, cfg: cfg.clone()}
}

// AddSeries appends a series. Only WithLabel and WithPrintValues
// affect ribbon charts.
func (r *Ribbon) AddSeries(values []float64, opts ...SeriesOption) {
	r.Series = append(r.Series, newSeries(values, len(r.Series), opts))
}

func (r *Ribbon) Render() (string, error)  { return render(r) }
func (r *Ribbon) DataURI() (string, error) { return dataURI(r) }

// colorRange returns the range of values mapped onto the gradient.
// The derived bounds are the closest qualifying round numbers, so a
// color minimum of 97 starts the gradient at 90, not 50.
func (r *Ribbon) colorRange() (lo, hi float64) {
	if r.ColorRange != nil {
		return r.ColorRange[0], r.ColorRange[1]
	}
	min, max, ok := layout.Extent(r.Series[2].Values)
	if !ok {
		return 0, 0
	}
	return layout.AdjustedMin(min), layout.AdjustedMax(max)
}

// ribbonColor returns the fill for color value v.
func (r *Ribbon) ribbonColor(v, lo, hi float64) string {
	from, to := r.cfg.color(0), r.cfg.color(1)
	if !isFinite(v) || hi == lo {
		return from
	}
	return palette.Interpolate(from, to, (v-lo)/(hi-lo))
}

// gradientID returns the id of the legend gradient, which depends only
// on its colors so that identical gradients are defined once.
func (r *Ribbon) gradientID() string {
	id := "ribbon-" + r.cfg.color(0) + "-" + r.cfg.color(1)
	return strings.Map(func(c rune) rune {
		if c == '#' {
			return -1
		}
		return c
	}, id)
}

// chevron adds a ribbon of width bw starting at x that runs from y1 to
// y2 and points toward y2.
func chevron(p *path, x, y1, y2, bw float64) {
	hw := bw / 2
	dir := 1.0
	if y2 < y1 {
		dir = -1
	}
	p.moveTo(x, y1)
	p.lineTo(x, y2)
	p.lineTo(x+hw, y2+dir*hw)
	p.lineTo(x+bw, y2)
	p.lineTo(x+bw, y1)
	p.lineTo(x+hw, y1+dir*hw)
	p.close()
}

func (r *Ribbon) frame() (*frame, error) {
	if len(r.Series) < 2 || len(r.Series) > 3 {
		return nil, fmt.Errorf("%w: have %d", ErrRibbonArity, len(r.Series))
	}
	n, err := checkLengths(r.Series)
	if err != nil {
		return nil, err
	}
	cfg := r.cfg
	cv := newCanvas(cfg)
	w, h := cfg.Width, cfg.Height
	fg := cfg.textColor()
	hasColor := len(r.Series) == 3

	vals := append(append([]float64(nil), r.Series[0].Values...), r.Series[1].Values...)
	min, max, ok := layout.Extent(vals)
	if !ok {
		min, max = 0, 0
	}
	sc := layout.NewScale(layout.CalculateTicks(min, max, true, cfg.NumYTicks), h)

	var lo, hi float64
	if hasColor {
		lo, hi = r.colorRange()
	}

	band := w
	if n > 0 {
		band = w / float64(n)
	}
	bw := r.BarWidth
	if bw <= 0 {
		bw = 30
	}
	if bw > 0.9*band {
		bw = 0.9 * band
	}
	center := func(i int) float64 { return (float64(i) + 0.5) * band }

	valueGap := bw/2 + 5
	for i := 0; i < n; i++ {
		a, b := r.Series[0].Values[i], r.Series[1].Values[i]
		if !isFinite(a) || !isFinite(b) {
			continue
		}
		x := center(i)
		y1, y2 := sc.Map(a), sc.Map(b)
		fill := cfg.color(0)
		if hasColor {
			fill = r.ribbonColor(r.Series[2].Values[i], lo, hi)
		}
		var p path
		chevron(&p, x-bw/2, y1, y2, bw)
		cv.drawPath(&p, `class="ribbon"`, attr("fill", fill))

		if r.Series[0].PrintValues {
			cv.label(x, y1, layout.HumanReadable(a), layout.AnchorMiddle, fg)
		}
		if r.Series[1].PrintValues {
			ly := y2 + valueGap
			if y2 < y1 {
				ly = y2 - valueGap
			}
			cv.label(x, ly, layout.HumanReadable(b), layout.AnchorMiddle, fg)
		}
		if hasColor && r.Series[2].PrintValues {
			adj := bw / 4
			if y2 < y1 {
				adj = -adj
			}
			tc := fg
			if palette.IsDark(fill) {
				tc = "#ffffff"
			} else if cfg.dark() {
				tc = "#000000"
			}
			cv.label(x, (y1+y2)/2+adj, layout.HumanReadable(r.Series[2].Values[i]), layout.AnchorMiddle, tc)
		}
	}
	cv.flushLabels()

	cv.line(0, sc.Zero(), w, sc.Zero(), cv.stroke()...)
	cv.yAxis(sc, 0, false, cfg.PrimaryTickPrefix, cfg.PrimaryTickSuffix)
	cv.xLabels(r.XLabels, n, center, h)

	if cfg.ShowLegend && hasColor {
		r.gradientLegend(cv, bw, lo, hi)
	}
	cv.axisTitles(cfg.XAxisLabel, cfg.PrimaryYAxisLabel, "", w, h)
	if cfg.ShowLegend {
		r.legend(cv, bw)
	}
	cv.title(cfg.Title, w/2)
	return cv.frame(), nil
}

// legend draws a sample ribbon labeled with the first two series'
// labels above everything drawn so far.
func (r *Ribbon) legend(cv *canvas, bw float64) {
	cfg := cv.cfg
	third, hw := cfg.Width/3, bw/2
	x, y := third, cv.box.Top-cfg.ElementSpacing-hw
	var p path
	p.moveTo(x, y-hw)
	p.lineTo(x+third, y-hw)
	p.lineTo(x+third+hw, y)
	p.lineTo(x+third, y+hw)
	p.lineTo(x, y+hw)
	p.lineTo(x+hw, y)
	p.close()
	cv.drawPath(&p, attr("fill", cfg.color(0)))
	fg := cfg.textColor()
	cv.text(layout.Text{X: x - tickGap, Y: y, S: r.Series[0].Label, Size: cfg.FontSize, Anchor: layout.AnchorEnd, Baseline: layout.BaselineCentral}, fg)
	cv.text(layout.Text{X: x + third + hw + tickGap, Y: y, S: r.Series[1].Label, Size: cfg.FontSize, Baseline: layout.BaselineCentral}, fg)
}

// gradientLegend draws a vertical color bar for the color series to
// the right of everything drawn so far.
func (r *Ribbon) gradientLegend(cv *canvas, bw, lo, hi float64) {
	cfg := cv.cfg
	_, th := cv.m.Measure("M", cfg.FontSize)
	x := cv.box.Right + cfg.ElementSpacing + th
	h := cfg.Height

	id := r.gradientID()
	var def bytes.Buffer
	svg.New(&def).LinearGradient(id, 0, 0, 0, 100, []svg.Offcolor{
		{Offset: 0, Color: cfg.color(1), Opacity: 1},
		{Offset: 100, Color: cfg.color(0), Opacity: 1},
	})
	cv.def(strings.TrimRight(def.String(), "\n"))

	cv.rect(x, 0, bw, h, `class="gradient"`, attr("fill", "url(#"+id+")"))
	fg := cfg.textColor()
	cv.text(layout.Text{X: x + bw + tickGap, Y: 0, S: layout.HumanReadable(hi), Size: cfg.FontSize, Baseline: layout.BaselineCentral}, fg)
	cv.text(layout.Text{X: x + bw + tickGap, Y: h, S: layout.HumanReadable(lo), Size: cfg.FontSize, Baseline: layout.BaselineCentral}, fg)
	cv.text(layout.Text{X: x - tickLength, Y: h / 2, S: r.Series[2].Label, Size: cfg.FontSize, Anchor: layout.AnchorMiddle, Rotation: -90}, fg)
}
