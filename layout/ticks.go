// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"errors"
	"math"
	"strconv"
)

// ErrNoZero is returned by MatchTicks when a tick sequence does not
// contain zero.
var ErrNoZero = errors.New("tick sequence does not contain zero")

// DefaultTickCount is the tick count used when a caller asks for
// fewer than one tick.
const DefaultTickCount = 5

// CalculateTicks returns an ascending sequence of round tick values
// that bounds [min, max] using roughly target intervals.
//
// The step between ticks is 1, 2, 2.5 or 5 times a power of ten. If
// includeZero is true, the range is first widened to include 0 and
// the result is guaranteed to contain an exact 0. A degenerate range
// (min == max) is replaced by a fixed fallback span, so the result
// always has at least two ticks.
func CalculateTicks(min, max float64, includeZero bool, target int) []float64 {
	if target < 1 {
		target = DefaultTickCount
	}
	if !finite(min) || !finite(max) {
		min, max = 0, 1
	}
	if min > max {
		min, max = max, min
	}
	if includeZero {
		min, max = math.Min(min, 0), math.Max(max, 0)
	}
	if min == max {
		if min == 0 {
			max = 1
		} else {
			d := math.Abs(min) / 10
			min, max = min-d, max+d
			if includeZero {
				min, max = math.Min(min, 0), math.Max(max, 0)
			}
		}
	}

	step := niceStep((max - min) / float64(target))

	// Work in integer multiples of step so that accumulated
	// floating point error can't move a tick (in particular zero).
	var lo int64
	switch {
	case includeZero && min >= 0:
		lo = 0
	case includeZero:
		lo = -int64(math.Ceil(clean(-min / step)))
	default:
		lo = int64(math.Floor(clean(min / step)))
	}
	hi := int64(math.Ceil(clean(max / step)))
	if hi <= lo {
		hi = lo + 1
	}

	ticks := make([]float64, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		ticks = append(ticks, clean(float64(k)*step))
	}
	return ticks
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// niceStep rounds rough down to 1, 2, 2.5 or 5 times a power of ten.
func niceStep(rough float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(rough)))
	var mult float64
	switch r := rough / mag; {
	case r >= 5:
		mult = 5
	case r >= 2.5:
		mult = 2.5
	case r >= 2:
		mult = 2
	default:
		mult = 1
	}
	return clean(mult * mag)
}

// clean rounds x to 12 significant digits, which removes the noise
// left by multiplying a step by an integer (0.30000000000000004).
func clean(x float64) float64 {
	if x == 0 {
		return 0
	}
	y, err := strconv.ParseFloat(strconv.FormatFloat(x, 'g', 12, 64), 64)
	if err != nil {
		return x
	}
	return y
}

var roundingFactors = []float64{1, 1.2, 1.5, 2, 2.5, 5}

// AdjustedMax returns a round number above v, at least 5% beyond it,
// for use as a single upper bound (for example the top of a color
// range). Negative values are handled by mirroring AdjustedMin.
func AdjustedMax(v float64) float64 {
	switch {
	case v == 0:
		return 0
	case v < 0:
		return -AdjustedMin(-v)
	}
	base := math.Pow(10, math.Floor(math.Log10(v)))
	best := math.Inf(1)
	for _, f := range roundingFactors {
		unit := base * f
		cand := clean(math.Ceil(v/unit) * unit)
		if cand >= v*1.05 && cand < best {
			best = cand
		}
	}
	if math.IsInf(best, 1) {
		best = clean(math.Ceil(v*1.05/base) * base)
	}
	return best
}

// AdjustedMin returns a round number below v, at least 5% beyond it.
// Of the qualifying candidates it picks the closest to v, not the
// smallest: 97 gives 90 and 12 gives 10.
// Negative values are handled by mirroring AdjustedMax.
func AdjustedMin(v float64) float64 {
	switch {
	case v == 0:
		return 0
	case v < 0:
		return -AdjustedMax(-v)
	}
	base := math.Pow(10, math.Floor(math.Log10(v)))
	best := 0.0
	for _, f := range roundingFactors {
		unit := base * f
		cand := clean(math.Floor(v/unit) * unit)
		if cand <= v*0.95 && cand > best {
			best = cand
		}
	}
	return best
}

// MatchTicks aligns two tick sequences, each containing zero, so that
// they have the same length and zero at the same index. Sequences are
// extended at either end by extrapolating their own step.
func MatchTicks(a, b []float64) ([]float64, []float64, error) {
	za, zb := zeroIndex(a), zeroIndex(b)
	if za < 0 || zb < 0 {
		return nil, nil, ErrNoZero
	}
	below := za
	if zb > below {
		below = zb
	}
	above := len(a) - 1 - za
	if n := len(b) - 1 - zb; n > above {
		above = n
	}
	return extend(a, za, below, above), extend(b, zb, below, above), nil
}

func zeroIndex(ticks []float64) int {
	for i, t := range ticks {
		if t == 0 {
			return i
		}
	}
	return -1
}

// extend returns ticks with below values under zero and above values
// over zero, keeping the existing ticks.
func extend(ticks []float64, zero, below, above int) []float64 {
	step := 1.0
	if len(ticks) > 1 {
		step = (ticks[len(ticks)-1] - ticks[0]) / float64(len(ticks)-1)
	}
	out := make([]float64, 0, below+above+1)
	for k := -below; k <= above; k++ {
		if i := zero + k; i >= 0 && i < len(ticks) {
			out = append(out, ticks[i])
		} else {
			out = append(out, clean(float64(k)*step))
		}
	}
	return out
}
