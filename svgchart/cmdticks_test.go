// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"
)

func TestWriteTicks(t *testing.T) {
	for _, test := range []struct {
		min, max float64
		zero     bool
		n        int
		want     string
	}{
		{0, 50, true, 5, "ticks: 0 10 20 30 40 50\nlabels: 0 10 20 30 40 50\nadjusted: 0 60\n"},
		{-30, 50, true, 5, "ticks: -30 -20 -10 0 10 20 30 40 50\nlabels: -30 -20 -10 0 10 20 30 40 50\nadjusted: -36 60\n"},
		{0.25, 1.75, false, 3, "ticks: 0 0.5 1 1.5 2\nlabels: 0 0.50 1.0 1.5 2.0\nadjusted: 0.2 2\n"},
	} {
		var buf bytes.Buffer
		writeTicks(&buf, test.min, test.max, test.zero, test.n)
		if got := buf.String(); got != test.want {
			t.Errorf("writeTicks(%g, %g, %v, %d) =\n%s\nwant:\n%s", test.min, test.max, test.zero, test.n, got, test.want)
		}
	}
}
