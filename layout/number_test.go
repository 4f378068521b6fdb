// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"math"
	"testing"
)

func TestHumanReadable(t *testing.T) {
	for _, test := range []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{0.25, "0.25"},
		{1.5, "1.5"},
		{42, "42"},
		{999, "999"},
		{1000, "1K"},
		{1500, "1.5K"},
		{2e6, "2M"},
		{3.4e9, "3.4B"},
		{-1500, "-1.5K"},
		{math.NaN(), ""},
	} {
		if got := HumanReadable(test.v); got != test.want {
			t.Errorf("HumanReadable(%g) = %q; want %q", test.v, got, test.want)
		}
	}
}

func TestFormatTick(t *testing.T) {
	for _, test := range []struct {
		prefix, suffix string
		v              float64
		want           string
	}{
		{"$", "", 1500, "$1.5K"},
		{"$", "", -20, "-$20"},
		{"", "%", 50, "50%"},
	} {
		if got := FormatTick(test.prefix, test.v, test.suffix); got != test.want {
			t.Errorf("FormatTick(%q, %g, %q) = %q; want %q", test.prefix, test.v, test.suffix, got, test.want)
		}
	}
}
