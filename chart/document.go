// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"io"
	"math"

	"github.com/ajstarks/svgo"
)

// writeDocument writes f as a complete SVG document. The document's
// size and viewBox are the frame's bounding box plus padding, rounded
// out to whole units.
func writeDocument(w io.Writer, f *frame) {
	vp := f.box.Viewport(f.cfg.padding())
	x0, y0 := int(math.Floor(vp.X)), int(math.Floor(vp.Y))
	x1, y1 := int(math.Ceil(vp.X+vp.Width)), int(math.Ceil(vp.Y+vp.Height))
	width, height := x1-x0, y1-y0

	canvas := svg.New(w)
	canvas.Start(width, height,
		fmt.Sprintf(`viewBox="%d %d %d %d"`, x0, y0, width, height),
		`font-family="Roboto,&quot;Helvetica Neue&quot;,Helvetica,Arial,sans-serif"`)
	if len(f.defs) > 0 {
		canvas.Def()
		for _, d := range f.defs {
			fmt.Fprintln(canvas.Writer, d)
		}
		canvas.DefEnd()
	}
	if bg := f.cfg.BackgroundColor; bg != "" {
		canvas.Roundrect(x0, y0, width, height, 10, 10, attr("fill", bg))
	}
	io.WriteString(canvas.Writer, f.body)
	if f.cfg.Watermark != "" {
		fmt.Fprintln(canvas.Writer, f.cfg.Watermark)
	}
	canvas.End()
}
