// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"math"
)

// HumanReadable formats v for a tick or value label, abbreviating
// thousands, millions and billions as K, M and B.
func HumanReadable(v float64) string {
	switch {
	case math.IsNaN(v):
		return ""
	case v < 0:
		return "-" + HumanReadable(-v)
	case v == 0:
		return "0"
	case v >= 1e9:
		return abbrev(v/1e9, "B")
	case v >= 1e6:
		return abbrev(v/1e6, "M")
	case v >= 1e3:
		return abbrev(v/1e3, "K")
	case v >= 10:
		return fmt.Sprintf("%.0f", v)
	case v >= 1:
		return fmt.Sprintf("%.1f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

func abbrev(v float64, suffix string) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f%s", v, suffix)
	}
	return fmt.Sprintf("%.1f%s", v, suffix)
}

// FormatTick formats an axis tick value with an optional prefix and
// suffix, such as a currency sign or a unit.
func FormatTick(prefix string, v float64, suffix string) string {
	s := HumanReadable(v)
	if s != "" && s[0] == '-' {
		return "-" + prefix + s[1:] + suffix
	}
	return prefix + s + suffix
}
