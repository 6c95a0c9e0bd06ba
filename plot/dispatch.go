// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot draws series on a Surface using attributes resolved
// from a decor file.
//
// Every plotting call takes an attribute bag. If the bag names a
// decor file (decor.KeyDecorFile) and a label (decor.KeyLabel), the
// label is looked up in that file and the attributes found there are
// merged with the rest of the bag, with the file taking precedence.
// Everything else in the bag is passed through to the Surface.
package plot

import (
	"github.com/aclements/go-gg/palette"
	"github.com/decorplot/go-decor/decor"
	"go.uber.org/zap"
)

// DefaultGap is the fraction of each tick slot left empty between
// groups of bars.
const DefaultGap = 0.2

// A Plotter resolves decor for each series it draws on Surface.
type Plotter struct {
	Surface Surface

	// Parser parses decor files. Its Prefix is set by SetPrefix.
	Parser decor.Parser

	// Gap is the fraction of each slot of a grouped bar chart
	// left between groups.
	Gap float64

	// Ramp supplies colors for bar series that have none.
	Ramp palette.Continuous

	// Cache, if non-nil, holds parsed decor files between calls.
	// If nil, the decor file is re-read by every call.
	Cache *decor.Cache

	// Log receives diagnostics. If nil, zap.L() is used.
	Log *zap.Logger
}

// New returns a Plotter that draws on s with default settings.
func New(s Surface) *Plotter {
	return &Plotter{
		Surface: s,
		Gap:     DefaultGap,
		Ramp:    Viridis,
	}
}

// SetPrefix sets the prefix stripped from labels in decor files to
// the common prefix of labels.
func (p *Plotter) SetPrefix(labels []string) {
	p.Parser.Prefix = decor.CommonPrefix(labels)
}

func (p *Plotter) log() *zap.Logger {
	if p.Log == nil {
		return zap.L().Named("plot")
	}
	return p.Log
}

// table loads the decor file at path.
func (p *Plotter) table(path string) (*decor.Table, error) {
	if p.Cache != nil {
		return p.Cache.Load(&p.Parser, path)
	}
	return p.Parser.ReadFile(path)
}

// Resolve returns the attributes to draw a series with, given the
// caller's attributes kw. The result never contains
// decor.KeyDecorFile.
//
// If kw names both a decor file and a label, and the decor file has
// an entry for the label, Resolve starts from that entry and adds the
// attributes of kw that the entry does not set. Otherwise it returns
// a copy of kw. A label missing from the decor file is not an error.
func (p *Plotter) Resolve(kw decor.Attrs) (decor.Attrs, error) {
	path := kw.DecorFile()
	label, ok := kw.Label()
	if path == "" || !ok {
		attrs := decor.Merge(decor.Attrs{}, kw)
		p.log().Debug("plotting with decor", zap.Stringer("attrs", attrs))
		return attrs, nil
	}

	t, err := p.table(path)
	if err != nil {
		return nil, err
	}
	rec, ok := t.Lookup(p.Parser.StripPrefix(label))
	if !ok {
		attrs := decor.Merge(decor.Attrs{}, kw)
		p.log().Info("no decor for label", zap.String("label", label), zap.String("decorfile", path))
		p.log().Debug("plotting with decor", zap.Stringer("attrs", attrs))
		return attrs, nil
	}
	attrs := decor.Merge(rec.Attrs(), kw)
	p.log().Debug("plotting with decor", zap.String("label", label), zap.Stringer("attrs", attrs))
	return attrs, nil
}

// Dispatch resolves the attributes for kw and draws ys against xs
// with r. It returns whatever r returns.
func (p *Plotter) Dispatch(xs, ys []float64, r Renderer, kw decor.Attrs) (Artifact, error) {
	attrs, err := p.Resolve(kw)
	if err != nil {
		return nil, err
	}
	return r.Draw(xs, ys, attrs)
}

// Line draws ys against xs as a line series.
func (p *Plotter) Line(xs, ys []float64, kw decor.Attrs) (Artifact, error) {
	return p.Dispatch(xs, ys, LineRenderer{p.Surface}, kw)
}

// ErrorBar draws ys against xs with error bars. Error magnitudes are
// passed to the Surface in kw["yerr"].
func (p *Plotter) ErrorBar(xs, ys []float64, kw decor.Attrs) (Artifact, error) {
	return p.Dispatch(xs, ys, ErrorBarRenderer{p.Surface}, kw)
}
