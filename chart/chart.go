// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart lays out simple charts and renders them as
// self-contained SVG documents.
//
// Three chart families are provided: Categorical (bars, lines and
// dots over a categorical x axis with one or two y axes), Ribbon
// (two series compared per category, optionally colored by a third),
// and BubbleArrow (sized bubbles on a circle joined by sized arrows).
// Toggle combines several charts into one document with buttons that
// switch between them.
//
// A chart is populated through its fields and Add methods and then
// rendered. Rendering lays out every element, tracks the bounding box
// of everything drawn, resolves overlapping labels, and derives the
// document's size and viewBox from the bounding box plus padding. The
// configured width and height are the size of the plot area, not of
// the final document.
//
// Rendering an unchanged chart again produces identical output. A
// chart must not be used from more than one goroutine at a time, but
// independent charts share no mutable state.
package chart

import (
	"bytes"
	"log"
	"os"

	"github.com/svgsimplegraph/simplegraph/layout"
)

// Warning is the logger for conditions that do not prevent rendering,
// such as labels that could not be fully separated.
var Warning = log.New(os.Stderr, "[simplegraph] ", log.Lshortfile)

// Chart is implemented by every chart family.
type Chart interface {
	// Render returns the chart as an SVG document.
	Render() (string, error)

	// DataURI returns the chart as a base64 data URI, suitable
	// for the src attribute of an img element.
	DataURI() (string, error)

	// frame lays out the chart without writing the document, so
	// charts can be composed.
	frame() (*frame, error)
}

// A frame is a laid out chart: its body markup, the definitions the
// body refers to, and the bounding box of the body.
type frame struct {
	cfg  Config
	body string
	defs []string
	box  layout.Box
}

func render(c Chart) (string, error) {
	f, err := c.frame()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	writeDocument(&buf, f)
	return buf.String(), nil
}

func dataURI(c Chart) (string, error) {
	s, err := render(c)
	if err != nil {
		return "", err
	}
	return EncodeDataURI(s), nil
}
