// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "testing"

func TestEstimateDimensions(t *testing.T) {
	for _, test := range []struct {
		text       string
		size, mult float64
		w, h       float64
	}{
		{"abc", 10, 1, 18, 12},
		{"abc", 10, 0, 18, 12},
		{"abc", 10, 2, 36, 12},
		{"ab\nabcd", 10, 1, 24, 24},
		{"", 10, 1, 0, 12},
		{"héllo", 20, 1, 60, 24},
	} {
		w, h := EstimateDimensions(test.text, test.size, test.mult)
		if !near(w, test.w) || !near(h, test.h) {
			t.Errorf("EstimateDimensions(%q, %g, %g) = %g, %g; want %g, %g", test.text, test.size, test.mult, w, h, test.w, test.h)
		}
	}
}

func TestFaceMeasurer(t *testing.T) {
	m, err := GoRegular()
	if err != nil {
		t.Fatal(err)
	}
	wi, hi := m.Measure("iiii", 10)
	ww, _ := m.Measure("WWWW", 10)
	if wi <= 0 || ww <= wi {
		t.Errorf("width of iiii = %g, WWWW = %g; want 0 < iiii < WWWW", wi, ww)
	}
	if !near(hi, 12) {
		t.Errorf("height = %g; want 12", hi)
	}
	w20, _ := m.Measure("WWWW", 20)
	if w20 < 1.9*ww || w20 > 2.1*ww {
		t.Errorf("width at size 20 = %g; want about twice %g", w20, ww)
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
