// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "fmt"

// Kind is how a series is drawn.
type Kind string

const (
	Bar  Kind = "bar"
	Line Kind = "line"
	Dot  Kind = "dot"
)

// Series is one row of values, one value per category. A NaN value is
// a gap: lines break there and no bar or dot is drawn.
type Series struct {
	Values []float64

	// Label is the legend label. Series without a label are drawn
	// but left out of the legend.
	Label string

	Kind Kind

	// Secondary puts the series on the right-hand y axis.
	Secondary bool

	// PrintValues draws each value next to its mark.
	PrintValues bool

	// ColorIndex selects the series' color from the palette.
	ColorIndex int

	// StrokeWidth is the width of lines and dot outlines.
	StrokeWidth float64
}

// A SeriesOption sets an optional property of a series.
type SeriesOption func(*Series)

func WithLabel(label string) SeriesOption {
	return func(s *Series) { s.Label = label }
}

func WithKind(kind Kind) SeriesOption {
	return func(s *Series) { s.Kind = kind }
}

// OnSecondary puts a series on the secondary axis.
func OnSecondary() SeriesOption {
	return func(s *Series) { s.Secondary = true }
}

func WithPrintValues() SeriesOption {
	return func(s *Series) { s.PrintValues = true }
}

// WithColorIndex overrides the default color index, which is the
// series' position.
func WithColorIndex(i int) SeriesOption {
	return func(s *Series) { s.ColorIndex = i }
}

func WithStrokeWidth(w float64) SeriesOption {
	return func(s *Series) { s.StrokeWidth = w }
}

func newSeries(values []float64, index int, opts []SeriesOption) Series {
	s := Series{
		Values:      append([]float64(nil), values...),
		Kind:        Bar,
		ColorIndex:  index,
		StrokeWidth: 1,
	}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// checkLengths returns the common length of series, or an error if
// they differ.
func checkLengths(series []Series) (int, error) {
	if len(series) == 0 {
		return 0, ErrNoSeries
	}
	n := len(series[0].Values)
	for i, s := range series[1:] {
		if len(s.Values) != n {
			return 0, fmt.Errorf("%w: series %d has %d values, series 0 has %d", ErrSeriesLength, i+1, len(s.Values), n)
		}
	}
	return n, nil
}

func checkKinds(series []Series) error {
	for i, s := range series {
		switch s.Kind {
		case Bar, Line, Dot:
		default:
			return fmt.Errorf("%w: series %d has kind %q", ErrUnknownKind, i, s.Kind)
		}
	}
	return nil
}
