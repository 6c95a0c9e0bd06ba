// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "github.com/decorplot/go-decor/decor"

// An Artifact is a handle to something a Surface drew. Its concrete
// type is up to the Surface; Plotter returns it unchanged.
type Artifact interface{}

// A Surface is something that can draw series. Attribute values are
// passed through uninterpreted; a Surface may ignore attributes it
// does not understand.
type Surface interface {
	// Line draws ys against xs as a line series.
	Line(xs, ys []float64, attrs decor.Attrs) (Artifact, error)

	// ErrorBar draws ys against xs with error bars. The error
	// magnitudes, if any, are in attrs["yerr"].
	ErrorBar(xs, ys []float64, attrs decor.Attrs) (Artifact, error)

	// Bar draws one bar per element of heights. xs gives the left
	// edge of each bar.
	Bar(xs, heights []float64, width float64, attrs decor.Attrs) (Artifact, error)

	// SetXTicks labels the x axis at the given positions.
	SetXTicks(pos []float64, labels []string) error

	// Legend returns the legend entries for the series drawn so
	// far.
	Legend() []LegendEntry
}

// A LegendEntry is one legend handle of a Surface.
type LegendEntry struct {
	Label string
	Attrs decor.Attrs
}

// A Renderer draws one series with a resolved set of attributes.
type Renderer interface {
	Draw(xs, ys []float64, attrs decor.Attrs) (Artifact, error)
}

// LineRenderer draws line series on a Surface.
type LineRenderer struct {
	Surface Surface
}

func (r LineRenderer) Draw(xs, ys []float64, attrs decor.Attrs) (Artifact, error) {
	return r.Surface.Line(xs, ys, attrs)
}

// ErrorBarRenderer draws error-bar series on a Surface.
type ErrorBarRenderer struct {
	Surface Surface
}

func (r ErrorBarRenderer) Draw(xs, ys []float64, attrs decor.Attrs) (Artifact, error) {
	return r.Surface.ErrorBar(xs, ys, attrs)
}

// BarRenderer draws bar series of a fixed width on a Surface.
type BarRenderer struct {
	Surface Surface
	Width   float64
}

func (r BarRenderer) Draw(xs, ys []float64, attrs decor.Attrs) (Artifact, error) {
	return r.Surface.Bar(xs, ys, r.Width, attrs)
}
