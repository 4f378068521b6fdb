// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
)

// Scale maps data values on a vertical axis to canvas y coordinates.
// Canvas y grows downward, so Max maps to 0 and Min maps to Pixels.
//
// A Scale is derived from a tick sequence and is never stored by a
// chart between renders.
type Scale struct {
	Ticks    []float64
	Min, Max float64
	Pixels   float64
}

// NewScale returns the scale spanning ticks over pixels canvas units.
func NewScale(ticks []float64, pixels float64) Scale {
	s := Scale{Ticks: ticks, Pixels: pixels}
	if len(ticks) > 0 {
		s.Min, s.Max = ticks[0], ticks[len(ticks)-1]
	}
	return s
}

// PixelsPerUnit returns the number of canvas units per data unit.
func (s Scale) PixelsPerUnit() float64 {
	if s.Max == s.Min {
		return 0
	}
	return s.Pixels / (s.Max - s.Min)
}

// Map returns the canvas y coordinate of v. Values outside the scale
// map outside [0, Pixels].
func (s Scale) Map(v float64) float64 {
	l := scale.Linear{Min: s.Min, Max: s.Max}
	return s.Pixels * (1 - l.Map(v))
}

// Zero returns the canvas y coordinate of the value 0, clamped to the
// scale. This is the baseline bars grow from.
func (s Scale) Zero() float64 {
	l := scale.Linear{Min: s.Min, Max: s.Max, Clamp: true}
	return s.Pixels * (1 - l.Map(0))
}

// Extent returns the minimum and maximum of the finite values in vs.
// ok is false if vs has no finite values.
func Extent(vs []float64) (min, max float64, ok bool) {
	fs := make([]float64, 0, len(vs))
	for _, v := range vs {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			fs = append(fs, v)
		}
	}
	if len(fs) == 0 {
		return 0, 0, false
	}
	min, max = stats.Bounds(fs)
	return min, max, true
}
