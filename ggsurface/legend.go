// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggsurface

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// WriteLegendSVG renders a legend of the labeled series of f as a
// standalone SVG. go-gg does not draw legends, so this is the only
// place labels appear.
func (f *Figure) WriteLegendSVG(w io.Writer) error {
	var entries []*Series
	for _, s := range f.series {
		if s.Label != "" {
			entries = append(entries, s)
		}
	}

	fontSize := f.FontSize
	if fontSize <= 0 {
		fontSize = 12
	}
	row := int(math.Ceil(fontSize * 1.5))
	swatch := 2 * row
	pad := row / 2

	maxLabel := 0
	for _, s := range entries {
		if n := len([]rune(s.Label)); n > maxLabel {
			maxLabel = n
		}
	}
	// Assume an average glyph is 0.6em wide.
	width := 3*pad + swatch + int(math.Ceil(float64(maxLabel)*fontSize*0.6))
	height := 2*pad + row*len(entries)

	canvas := svg.New(w)
	canvas.Start(width, height)
	textStyle := fmt.Sprintf("font-family:%s;font-size:%gpx;dominant-baseline:middle", f.FontFamily, fontSize)
	for i, s := range entries {
		y := pad + i*row + row/2
		c := hex(s.Color)
		switch s.Kind {
		case KindBar:
			canvas.Rect(pad, y-row/3, swatch, 2*row/3, "fill:"+c)
		default:
			canvas.Line(pad, y, pad+swatch, y, fmt.Sprintf("stroke:%s;stroke-width:%d", c, strokeWidth(s)))
			if hasMarker(s.Attrs) || s.Kind == KindErrorBar {
				canvas.Circle(pad+swatch/2, y, row/5, "fill:"+c)
			}
		}
		canvas.Text(2*pad+swatch, y, s.Label, textStyle)
	}
	canvas.End()
	return nil
}

// strokeWidth returns the legend stroke width for s, from its
// "linewidth" attribute if it has a numeric one.
func strokeWidth(s *Series) int {
	switch lw := s.Attrs["linewidth"].(type) {
	case int:
		if lw > 0 {
			return lw
		}
	case float64:
		if lw > 0 {
			return int(math.Ceil(lw))
		}
	}
	return 2
}

// WriteLegend renders the legend of f to w in format. Only "svg" is
// supported.
func (f *Figure) WriteLegend(w io.Writer, format string) error {
	if format != "svg" {
		return fmt.Errorf("unsupported legend format %q", format)
	}
	return f.WriteLegendSVG(w)
}
