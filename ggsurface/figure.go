// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ggsurface implements a plot.Surface that renders with
// go-gg.
//
// A Figure accumulates series and renders them all at once to SVG.
// It understands the "label", "color", "marker", and "yerr"
// attributes. Other attributes, such as line widths, marker sizes,
// and hatches, are recorded on each Series and shown in the legend
// where possible, but go-gg has no way to draw them.
package ggsurface

import (
	"fmt"
	"image/color"
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/decorplot/go-decor/config"
	"github.com/decorplot/go-decor/decor"
	"github.com/decorplot/go-decor/plot"
	"go.uber.org/zap"
)

// Kind is the kind of mark a Series is drawn with.
type Kind int

const (
	KindLine Kind = iota
	KindErrorBar
	KindBar
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindErrorBar:
		return "errorbar"
	case KindBar:
		return "bar"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Series is one series drawn on a Figure. It is the plot.Artifact
// returned by Figure's drawing methods.
type Series struct {
	Kind  Kind
	Label string

	// Color is the resolved color, or nil for the default.
	Color color.Color

	// Attrs are the attributes the series was drawn with.
	Attrs decor.Attrs

	xs, ys []float64
	yerr   []float64
	width  float64
}

// A Figure is a plot.Surface that renders with go-gg.
type Figure struct {
	// Width and Height are the rendered size in pixels.
	Width, Height int

	Title          string
	XLabel, YLabel string

	// FontFamily and FontSize style legend text.
	FontFamily string
	FontSize   float64

	// Log receives warnings about attributes that cannot be
	// drawn. If nil, zap.L() is used.
	Log *zap.Logger

	series     []*Series
	tickPos    []float64
	tickLabels []string
}

var _ plot.Surface = (*Figure)(nil)

// New returns an empty Figure styled by s.
func New(s *config.Style) *Figure {
	return &Figure{
		Width:      s.Figure.Width,
		Height:     s.Figure.Height,
		Title:      s.Figure.Title,
		XLabel:     s.Figure.XLabel,
		YLabel:     s.Figure.YLabel,
		FontFamily: s.Font.Family,
		FontSize:   s.Font.Size,
	}
}

func (f *Figure) log() *zap.Logger {
	if f.Log == nil {
		return zap.L().Named("ggsurface")
	}
	return f.Log
}

// Series returns the series drawn so far.
func (f *Figure) Series() []*Series {
	return f.series
}

func (f *Figure) add(kind Kind, xs, ys []float64, attrs decor.Attrs) (*Series, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%d x values for %d y values", len(xs), len(ys))
	}
	s := &Series{
		Kind:  kind,
		Color: f.resolveColor(attrs["color"]),
		Attrs: attrs,
		xs:    xs,
		ys:    ys,
	}
	s.Label, _ = attrs.Label()
	f.series = append(f.series, s)
	return s, nil
}

func (f *Figure) Line(xs, ys []float64, attrs decor.Attrs) (plot.Artifact, error) {
	return f.add(KindLine, xs, ys, attrs)
}

// ErrorBar draws a line series with a vertical error bar at each
// point. attrs["yerr"] may be a single magnitude for every point or a
// []float64 with one magnitude per point.
func (f *Figure) ErrorBar(xs, ys []float64, attrs decor.Attrs) (plot.Artifact, error) {
	yerr, err := floats(attrs["yerr"], len(ys))
	if err != nil {
		return nil, fmt.Errorf("yerr: %w", err)
	}
	s, err := f.add(KindErrorBar, xs, ys, attrs)
	if err != nil {
		return nil, err
	}
	s.yerr = yerr
	return s, nil
}

func (f *Figure) Bar(xs, heights []float64, width float64, attrs decor.Attrs) (plot.Artifact, error) {
	s, err := f.add(KindBar, xs, heights, attrs)
	if err != nil {
		return nil, err
	}
	s.width = width
	return s, nil
}

func (f *Figure) SetXTicks(pos []float64, labels []string) error {
	if len(pos) != len(labels) {
		return fmt.Errorf("%d tick positions for %d labels", len(pos), len(labels))
	}
	f.tickPos, f.tickLabels = pos, labels
	return nil
}

func (f *Figure) Legend() []plot.LegendEntry {
	var l []plot.LegendEntry
	for _, s := range f.series {
		if s.Label != "" {
			l = append(l, plot.LegendEntry{Label: s.Label, Attrs: s.Attrs})
		}
	}
	return l
}

// floats converts a "yerr"-style attribute to one value per point.
func floats(v interface{}, n int) ([]float64, error) {
	var xs []float64
	switch v := v.(type) {
	case nil:
		return nil, nil
	case float64:
		xs = make([]float64, n)
		for i := range xs {
			xs[i] = v
		}
		return xs, nil
	case int:
		return floats(float64(v), n)
	case []float64:
		xs = v
	case []int:
		xs = make([]float64, len(v))
		for i, x := range v {
			xs[i] = float64(x)
		}
	default:
		return nil, fmt.Errorf("unsupported type %T", v)
	}
	if len(xs) != n {
		return nil, fmt.Errorf("%d values for %d points", len(xs), n)
	}
	return xs, nil
}

// Plot builds the go-gg plot of everything drawn on f.
func (f *Figure) Plot() *gg.Plot {
	p := gg.NewPlot(table.NewBuilder(nil).Add("x", []float64{}).Add("y", []float64{}).Done())

	for _, s := range f.series {
		switch s.Kind {
		case KindLine:
			f.addLine(p, s)
		case KindErrorBar:
			f.addLine(p, s)
			f.addErrorBars(p, s)
		case KindBar:
			f.addBars(p, s)
		}
	}

	if len(f.tickPos) > 0 {
		ys := make([]float64, len(f.tickPos))
		p.SetData(table.NewBuilder(nil).Add("x", f.tickPos).Add("y", ys).Add("tick", f.tickLabels).Done())
		p.Add(gg.LayerTags{X: "x", Y: "y", Label: "tick"})
	}

	if f.Title != "" {
		p.Add(gg.Title(f.Title))
	}
	if f.XLabel != "" {
		p.Add(gg.AxisLabel("x", f.XLabel))
	}
	if f.YLabel != "" {
		p.Add(gg.AxisLabel("y", f.YLabel))
	}
	return p
}

// colorCol adds a constant column of c to the current data of p.
func colorCol(p *gg.Plot, c color.Color) string {
	if c == nil {
		return ""
	}
	return p.Const(c)
}

func (f *Figure) addLine(p *gg.Plot, s *Series) {
	p.SetData(table.NewBuilder(nil).Add("x", s.xs).Add("y", s.ys).Done())
	col := colorCol(p, s.Color)
	p.Add(gg.LayerLines{X: "x", Y: "y", Color: col})
	if hasMarker(s.Attrs) || s.Kind == KindErrorBar {
		p.Add(gg.LayerPoints{X: "x", Y: "y", Color: col})
	}
}

func (f *Figure) addErrorBars(p *gg.Plot, s *Series) {
	if s.yerr == nil {
		return
	}
	n := len(s.xs)
	xs, ys, seg := make([]float64, 0, 2*n), make([]float64, 0, 2*n), make([]int, 0, 2*n)
	for i, x := range s.xs {
		xs = append(xs, x, x)
		ys = append(ys, s.ys[i]-s.yerr[i], s.ys[i]+s.yerr[i])
		seg = append(seg, i, i)
	}
	p.SetData(table.NewBuilder(nil).Add("x", xs).Add("y", ys).Add("seg", seg).Done())
	col := colorCol(p, s.Color)
	p.GroupBy("seg")
	p.Add(gg.LayerPaths{X: "x", Y: "y", Color: col})
}

// defaultBarFill is used for bars with no color.
var defaultBarFill = color.RGBA{0x80, 0x80, 0x80, 0xff}

func (f *Figure) addBars(p *gg.Plot, s *Series) {
	n := len(s.xs)
	xs, ys, bar := make([]float64, 0, 4*n), make([]float64, 0, 4*n), make([]int, 0, 4*n)
	for i, x0 := range s.xs {
		x1, h := x0+s.width, s.ys[i]
		xs = append(xs, x0, x0, x1, x1)
		ys = append(ys, 0, h, h, 0)
		bar = append(bar, i, i, i, i)
	}
	c := s.Color
	if c == nil {
		c = defaultBarFill
	}
	p.SetData(table.NewBuilder(nil).Add("x", xs).Add("y", ys).Add("bar", bar).Done())
	col := p.Const(c)
	p.GroupBy("bar")
	p.Add(gg.LayerPaths{X: "x", Y: "y", Color: col, Fill: col})
}

func hasMarker(attrs decor.Attrs) bool {
	switch m := attrs["marker"].(type) {
	case nil:
		return false
	case string:
		return m != "" && m != "None"
	}
	return true
}

// WriteSVG renders f as SVG to w.
func (f *Figure) WriteSVG(w io.Writer) error {
	return f.Plot().WriteSVG(w, f.Width, f.Height)
}

// Write renders f to w in format. Only "svg" is supported.
func (f *Figure) Write(w io.Writer, format string) error {
	if format != "svg" {
		return fmt.Errorf("unsupported figure format %q", format)
	}
	return f.WriteSVG(w)
}
