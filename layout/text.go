// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// A Measurer approximates the size of text drawn at a font size.
//
// Measurements only drive layout decisions (collision avoidance and
// fitting the viewport). The emitted markup leaves text shaping to
// whatever displays it, so no Measurer is exact.
type Measurer interface {
	Measure(text string, size float64) (w, h float64)
}

const (
	// CharWidth is the width of an average character as a
	// fraction of the font size.
	CharWidth = 0.6

	// LineHeight is the height of a line of text as a multiple of
	// the font size.
	LineHeight = 1.2
)

// Heuristic measures text by counting characters. Multiplier scales
// the width for fonts that are wider or narrower than average; a
// Multiplier <= 0 is treated as 1.
type Heuristic struct {
	Multiplier float64
}

func (h Heuristic) Measure(text string, size float64) (w, ht float64) {
	return EstimateDimensions(text, size, h.Multiplier)
}

// EstimateDimensions returns the approximate width and height of text
// at the given font size. Text is split into lines at "\n".
func EstimateDimensions(text string, size, multiplier float64) (w, h float64) {
	if multiplier <= 0 {
		multiplier = 1
	}
	lines := strings.Split(text, "\n")
	longest := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > longest {
			longest = n
		}
	}
	return float64(longest) * size * CharWidth * multiplier, float64(len(lines)) * size * LineHeight
}

// FaceMeasurer measures text widths using the advances of a real
// font. Heights are computed as for Heuristic.
//
// A FaceMeasurer may be shared by several charts.
type FaceMeasurer struct {
	font *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewFaceMeasurer returns a FaceMeasurer for the given TrueType or
// OpenType font data.
func NewFaceMeasurer(data []byte) (*FaceMeasurer, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return &FaceMeasurer{font: f, faces: make(map[float64]font.Face)}, nil
}

// GoRegular returns a FaceMeasurer for the Go Regular font.
func GoRegular() (*FaceMeasurer, error) {
	return NewFaceMeasurer(goregular.TTF)
}

func (m *FaceMeasurer) Measure(text string, size float64) (w, h float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	face, err := m.face(size)
	if err != nil {
		return EstimateDimensions(text, size, 1)
	}
	lines := strings.Split(text, "\n")
	for _, l := range lines {
		// Advances are 26.6 fixed point.
		if lw := float64(font.MeasureString(face, l)) / 64; lw > w {
			w = lw
		}
	}
	return w, float64(len(lines)) * size * LineHeight
}

func (m *FaceMeasurer) face(size float64) (font.Face, error) {
	if f, ok := m.faces[size]; ok {
		return f, nil
	}
	// At 72 DPI one point is one canvas unit.
	f, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	m.faces[size] = f
	return f, nil
}
