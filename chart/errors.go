// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "errors"

var (
	// ErrNoSeries is returned when rendering a chart with no
	// series.
	ErrNoSeries = errors.New("chart has no series")

	// ErrSeriesLength is returned when the series of a chart
	// have different lengths.
	ErrSeriesLength = errors.New("series lengths differ")

	// ErrUnknownKind is returned when rendering a categorical
	// chart with a series that is not a bar, line or dot series.
	ErrUnknownKind = errors.New("unknown series kind")

	// ErrRibbonArity is returned when rendering a ribbon chart
	// that does not have two or three series.
	ErrRibbonArity = errors.New("ribbon chart needs two or three series")

	// ErrNegativeSize is returned when adding a bubble or arrow
	// with a negative (or NaN) size.
	ErrNegativeSize = errors.New("negative size")

	// ErrDuplicateHandle is returned when adding a bubble with a
	// handle that is already in use.
	ErrDuplicateHandle = errors.New("duplicate bubble handle")

	// ErrUnknownBubble is returned when an arrow refers to a
	// bubble handle that does not exist.
	ErrUnknownBubble = errors.New("unknown bubble handle")

	// ErrBubbleIndex is returned when rendering a chart with an
	// arrow whose bubble index is out of range.
	ErrBubbleIndex = errors.New("bubble index out of range")

	// ErrNoCharts is returned when rendering an empty Toggle.
	ErrNoCharts = errors.New("toggle has no charts")

	// ErrDataURI is returned when decoding a string that is not
	// an SVG data URI.
	ErrDataURI = errors.New("not an SVG data URI")
)
