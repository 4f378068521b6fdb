// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command svgchart renders charts described in YAML files as SVG.
//
// Usage:
//
//      svgchart render [-o file] [-datauri] [-gofont] [-view cmd] <chart.yaml>
//      svgchart ticks [-zero] [-n count] <min> <max>
//
// A chart file names the chart type and gives its configuration and
// data:
//
//      type: categorical
//      config:
//        width: 600
//        height: 400
//        title: Sales
//      x_labels: [Q1, Q2, Q3]
//      series:
//        - values: [10, ~, 30]
//          label: Widgets
//        - values: [1, 2, 3]
//          kind: line
//          secondary: true
//
// Type is one of categorical, ribbon, bubble or toggle. A ~ value is a
// gap. Bubble charts list bubbles and arrows; an arrow's from and to
// are bubble indexes or handles. A toggle lists other charts, each
// with a button label.
//
// The ticks subcommand prints the axis ticks chosen for a range and
// the rounded bounds used for color ranges.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

type subcommand struct {
	name, desc string
	cmd        func()
	flags      *flag.FlagSet
}

var subcommands []*subcommand

func registerSubcommand(name, desc string, cmd func(), flags *flag.FlagSet) {
	subcommands = append(subcommands, &subcommand{name, desc, cmd, flags})
}

func main() {
	log.SetPrefix("svgchart: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <subcommand> [args...]\n\nSubcommands:\n", os.Args[0])
		for _, sub := range subcommands {
			fmt.Fprintf(os.Stderr, "  %s %s\n", sub.name, sub.desc)
		}
		fmt.Fprintf(os.Stderr, "\nRun %s <subcommand> -h for subcommand flags.\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	name := flag.Arg(0)
	for _, sub := range subcommands {
		if sub.name == name {
			sub.flags.Parse(flag.Args()[1:])
			sub.cmd()
			return
		}
	}
	fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", name)
	flag.Usage()
	os.Exit(2)
}
