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
	"os/exec"
	"runtime"
	"runtime/pprof"

	"github.com/kballard/go-shellquote"
	"github.com/svgsimplegraph/simplegraph/layout"
)

var cmdRenderFlags = flag.NewFlagSet(os.Args[0]+" render", flag.ExitOnError)

var renderOpts struct {
	out        string
	dataURI    bool
	goFont     bool
	view       string
	cpuProfile string
	memProfile string
}

func init() {
	f := cmdRenderFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s render [flags] <chart.yaml>\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&renderOpts.out, "o", "", "write output to `file` (default: stdout)")
	f.BoolVar(&renderOpts.dataURI, "datauri", false, "write a base64 data URI instead of a document")
	f.BoolVar(&renderOpts.goFont, "gofont", false, "measure text with the Go font instead of estimating")
	f.StringVar(&renderOpts.view, "view", "", "run `command` on the output file")
	f.StringVar(&renderOpts.cpuProfile, "cpuprofile", "", "write CPU profile to `file`")
	f.StringVar(&renderOpts.memProfile, "memprofile", "", "write heap profile to `file`")
	registerSubcommand("render", "[flags] <chart.yaml> - render a chart as SVG", cmdRender, f)
}

func cmdRender() {
	if cmdRenderFlags.NArg() != 1 {
		cmdRenderFlags.Usage()
		os.Exit(2)
	}
	if renderOpts.view != "" && renderOpts.out == "" {
		log.Fatal("-view requires -o")
	}

	if renderOpts.cpuProfile != "" {
		f, err := os.Create(renderOpts.cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if renderOpts.memProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(renderOpts.memProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	var m layout.Measurer
	if renderOpts.goFont {
		fm, err := layout.GoRegular()
		if err != nil {
			log.Fatal(err)
		}
		m = fm
	}

	// Load the chart.
	in := os.Stdin
	if path := cmdRenderFlags.Arg(0); path != "-" {
		var err error
		in, err = os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer in.Close()
	}
	c, err := loadChart(in, m)
	if err != nil {
		log.Fatalf("%s: %v", cmdRenderFlags.Arg(0), err)
	}

	var doc string
	if renderOpts.dataURI {
		doc, err = c.DataURI()
	} else {
		doc, err = c.Render()
	}
	if err != nil {
		log.Fatal(err)
	}

	// Write output.
	out := os.Stdout
	if renderOpts.out != "" {
		out, err = os.Create(renderOpts.out)
		if err != nil {
			log.Fatal(err)
		}
	}
	if _, err := io.WriteString(out, doc); err != nil {
		log.Fatal(err)
	}
	if renderOpts.dataURI {
		fmt.Fprintln(out)
	}
	if out != os.Stdout {
		if err := out.Close(); err != nil {
			log.Fatal(err)
		}
	}

	if renderOpts.view != "" {
		if err := view(renderOpts.view, renderOpts.out); err != nil {
			log.Fatal(err)
		}
	}
}

// view runs the shell-quoted command line viewer with path appended.
func view(viewer, path string) error {
	args, err := shellquote.Split(viewer)
	if err != nil {
		return fmt.Errorf("parsing -view: %v", err)
	}
	if len(args) == 0 {
		return fmt.Errorf("empty -view command")
	}
	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
