// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/svgsimplegraph/simplegraph/layout"
)

var cmdTicksFlags = flag.NewFlagSet(os.Args[0]+" ticks", flag.ExitOnError)

var ticks struct {
	zero bool
	n    int
}

func init() {
	f := cmdTicksFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s ticks [flags] <min> <max>\n", os.Args[0])
		f.PrintDefaults()
	}
	f.BoolVar(&ticks.zero, "zero", true, "include zero in the tick range")
	f.IntVar(&ticks.n, "n", layout.DefaultTickCount, "target `count` of tick intervals")
	registerSubcommand("ticks", "[flags] <min> <max> - print axis ticks for a range", cmdTicks, f)
}

func cmdTicks() {
	if cmdTicksFlags.NArg() != 2 {
		cmdTicksFlags.Usage()
		os.Exit(2)
	}
	var bounds [2]float64
	for i, arg := range cmdTicksFlags.Args() {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			log.Fatal(err)
		}
		bounds[i] = v
	}
	writeTicks(os.Stdout, bounds[0], bounds[1], ticks.zero, ticks.n)
}

func writeTicks(w io.Writer, min, max float64, zero bool, n int) {
	ts := layout.CalculateTicks(min, max, zero, n)
	strs := make([]string, len(ts))
	for i, t := range ts {
		strs[i] = strconv.FormatFloat(t, 'g', -1, 64)
	}
	fmt.Fprintf(w, "ticks: %s\n", strings.Join(strs, " "))
	fmt.Fprintf(w, "labels: %s\n", strings.Join(labels(ts), " "))
	fmt.Fprintf(w, "adjusted: %g %g\n", layout.AdjustedMin(min), layout.AdjustedMax(max))
}

func labels(ts []float64) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = layout.HumanReadable(t)
	}
	return out
}
