// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func TestCalculateTicks(t *testing.T) {
	for _, test := range []struct {
		min, max    float64
		includeZero bool
		target      int
		want        []float64
	}{
		{0, 50, true, 5, []float64{0, 10, 20, 30, 40, 50}},
		{-30, 50, true, 5, []float64{-30, -20, -10, 0, 10, 20, 30, 40, 50}},
		{0.25, 1.75, false, 3, []float64{0, 0.5, 1, 1.5, 2}},
		{3, 97, true, 4, []float64{0, 20, 40, 60, 80, 100}},
		{10, 50, true, 0, []float64{0, 10, 20, 30, 40, 50}},
		{-7, -3, true, 2, []float64{-7.5, -5, -2.5, 0}},
		{-4.16e-8, 600.17, true, 2, []float64{-250, 0, 250, 500, 750}},
		{-1e-12, 1, false, 2, []float64{-0.5, 0, 0.5, 1}},
	} {
		got := CalculateTicks(test.min, test.max, test.includeZero, test.target)
		if fmt.Sprint(got) != fmt.Sprint(test.want) {
			t.Errorf("CalculateTicks(%g, %g, %v, %d) = %v; want %v", test.min, test.max, test.includeZero, test.target, got, test.want)
		}
	}
}

func checkAscending(t *testing.T, name string, ticks []float64) {
	t.Helper()
	for i := 1; i < len(ticks); i++ {
		if ticks[i] <= ticks[i-1] {
			t.Fatalf("%s = %v; not strictly ascending", name, ticks)
		}
	}
}

func TestCalculateTicksZero(t *testing.T) {
	bounds := []float64{-12345, -1000, -97, -3.3, -0.07, 0, 0.002, 1, 4.5, 99, 1e6}
	for _, lo := range bounds {
		for _, hi := range bounds {
			if hi < lo {
				continue
			}
			for target := 1; target <= 10; target++ {
				ticks := CalculateTicks(lo, hi, true, target)
				name := fmt.Sprintf("CalculateTicks(%g, %g, true, %d)", lo, hi, target)
				checkAscending(t, name, ticks)
				zeros := 0
				for _, x := range ticks {
					if x == 0 {
						zeros++
					}
				}
				if zeros != 1 {
					t.Fatalf("%s = %v; has %d zeros", name, ticks, zeros)
				}
				if ticks[0] > lo || ticks[len(ticks)-1] < hi {
					t.Fatalf("%s = %v; does not bound data", name, ticks)
				}
			}
		}
	}
}

func TestCalculateTicksBounds(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20000; i++ {
		// Mix tiny offsets from zero with ordinary magnitudes.
		lo := -r.Float64() * []float64{1e-9, 1e-3, 1, 1e3}[r.Intn(4)]
		hi := r.Float64() * []float64{1, 1e2, 1e4}[r.Intn(3)]
		target := 1 + r.Intn(10)
		for _, zero := range []bool{false, true} {
			ticks := CalculateTicks(lo, hi, zero, target)
			if ticks[0] > lo || ticks[len(ticks)-1] < hi {
				t.Fatalf("CalculateTicks(%g, %g, %v, %d) = %v; does not bound data", lo, hi, zero, target, ticks)
			}
		}
	}
}

func TestCalculateTicksDegenerate(t *testing.T) {
	for _, v := range []float64{0, 5, -5, 1e-9} {
		for _, zero := range []bool{false, true} {
			ticks := CalculateTicks(v, v, zero, 5)
			name := fmt.Sprintf("CalculateTicks(%g, %g, %v, 5)", v, v, zero)
			if len(ticks) < 2 {
				t.Fatalf("%s = %v; want at least 2 ticks", name, ticks)
			}
			checkAscending(t, name, ticks)
			if ticks[0] > v || ticks[len(ticks)-1] < v {
				t.Fatalf("%s = %v; does not bound %g", name, ticks, v)
			}
		}
	}
}

func TestAdjustedBounds(t *testing.T) {
	for _, test := range []struct {
		v, max, min float64
	}{
		{50, 60, 45},
		{97, 105, 90},
		{12, 15, 10},
		{0, 0, 0},
		{-50, -45, -60},
	} {
		if got := AdjustedMax(test.v); got != test.max {
			t.Errorf("AdjustedMax(%g) = %g; want %g", test.v, got, test.max)
		}
		if got := AdjustedMin(test.v); got != test.min {
			t.Errorf("AdjustedMin(%g) = %g; want %g", test.v, got, test.min)
		}
	}

	for v := 0.001; v < 1e7; v *= 1.37 {
		if got := AdjustedMax(v); got < v {
			t.Errorf("AdjustedMax(%g) = %g < %g", v, got, v)
		}
		if got := AdjustedMin(v); got > v {
			t.Errorf("AdjustedMin(%g) = %g > %g", v, got, v)
		}
	}
}

func TestMatchTicks(t *testing.T) {
	a := []float64{0, 10, 20, 30, 40, 50}
	b := []float64{-2, -1, 0, 1}
	a2, b2, err := MatchTicks(a, b)
	if err != nil {
		t.Fatal(err)
	}
	wantA := []float64{-20, -10, 0, 10, 20, 30, 40, 50}
	wantB := []float64{-2, -1, 0, 1, 2, 3, 4, 5}
	if fmt.Sprint(a2) != fmt.Sprint(wantA) || fmt.Sprint(b2) != fmt.Sprint(wantB) {
		t.Errorf("MatchTicks = %v, %v; want %v, %v", a2, b2, wantA, wantB)
	}

	if _, _, err := MatchTicks([]float64{1, 2}, b); !errors.Is(err, ErrNoZero) {
		t.Errorf("MatchTicks without zero: err = %v; want %v", err, ErrNoZero)
	}
}

func TestMatchTicksProperty(t *testing.T) {
	ranges := [][2]float64{{0, 7}, {-3, 90}, {-1000, 10}, {0, 0.3}, {-5, -1}, {12, 13}}
	for _, ra := range ranges {
		for _, rb := range ranges {
			a := CalculateTicks(ra[0], ra[1], true, 5)
			b := CalculateTicks(rb[0], rb[1], true, 4)
			a2, b2, err := MatchTicks(a, b)
			if err != nil {
				t.Fatalf("MatchTicks(%v, %v): %v", a, b, err)
			}
			if len(a2) != len(b2) {
				t.Fatalf("MatchTicks(%v, %v) lengths %d, %d", a, b, len(a2), len(b2))
			}
			if za, zb := zeroIndex(a2), zeroIndex(b2); za != zb || za < 0 {
				t.Fatalf("MatchTicks(%v, %v) = %v, %v; zeros at %d, %d", a, b, a2, b2, za, zb)
			}
			checkAscending(t, "matched a", a2)
			checkAscending(t, "matched b", b2)
		}
	}
}
