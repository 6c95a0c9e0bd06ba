// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/decorplot/go-decor/decor"
	"go.uber.org/zap"
)

// ErrDimensionMismatch is returned when the series, labels, and ticks
// passed to GroupedBar do not line up.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// barFields are the decor fields that have no meaning for a bar.
var barFields = []decor.Field{decor.MarkerSize, decor.Marker, decor.LineWidth}

// BarGeometry returns the width of each bar and the offset of each
// series within a slot when nseries series share a unit-wide slot,
// leaving a fraction gap of the slot empty.
func BarGeometry(nseries int, gap float64) (width float64, offsets []float64) {
	if nseries <= 0 {
		return 0, nil
	}
	width = (1 - gap) / float64(nseries)
	offsets = make([]float64, nseries)
	for i := range offsets {
		offsets[i] = float64(i) * width
	}
	return width, offsets
}

func checkBarDims(series [][]float64, rawLabels, tickLabels []string) error {
	if len(series) == 0 {
		return fmt.Errorf("%w: no series", ErrDimensionMismatch)
	}
	n := len(series[0])
	for i, s := range series {
		if len(s) != n {
			return fmt.Errorf("%w: series %d has %d values, series 0 has %d", ErrDimensionMismatch, i, len(s), n)
		}
	}
	if len(rawLabels) != len(series) {
		return fmt.Errorf("%w: %d labels for %d series", ErrDimensionMismatch, len(rawLabels), len(series))
	}
	if len(tickLabels) != n {
		return fmt.Errorf("%w: %d tick labels for %d values per series", ErrDimensionMismatch, len(tickLabels), n)
	}
	return nil
}

// GroupedBar draws a grouped bar chart. series[i][j] is the height of
// the bar for series i in group j. rawLabels gives the label of each
// series and tickLabels the label of each group.
//
// Each series label is stripped of p.Parser.Prefix. If kw names a
// decor file, the stripped label is looked up in it for its display
// label and colors. Marker and line width attributes are
// dropped. Series left without a color get one from p.Ramp.
//
// GroupedBar checks all dimensions before drawing anything and
// returns an error wrapping ErrDimensionMismatch if they disagree.
func (p *Plotter) GroupedBar(series [][]float64, rawLabels, tickLabels []string, kw decor.Attrs) error {
	if err := checkBarDims(series, rawLabels, tickLabels); err != nil {
		return err
	}

	var t *decor.Table
	if path := kw.DecorFile(); path != "" {
		var err error
		t, err = p.table(path)
		if err != nil {
			return err
		}
		if p.Cache != nil {
			// Don't strip fields from the shared table.
			t = t.Clone()
		}
		t.CleanFields(barFields...)
	}
	keys := make([]string, len(rawLabels))
	for i, l := range rawLabels {
		keys[i] = p.Parser.StripPrefix(l)
	}
	labels := decor.FixLabels(keys, t)

	width, offsets := BarGeometry(len(series), p.Gap)
	colors := RampColors(p.Ramp, len(series))
	r := BarRenderer{p.Surface, width}
	for i, ys := range series {
		attrs := decor.Attrs{}
		if rec, ok := t.Lookup(strings.Replace(keys[i], "_", "-", -1)); ok {
			attrs = rec.Attrs()
		}
		attrs[decor.KeyLabel] = labels[i]
		attrs = decor.Merge(attrs, kw)
		if _, ok := attrs["color"]; !ok && colors != nil {
			attrs["color"] = colors[i]
		}
		p.log().Debug("plotting bars with decor", zap.Stringer("attrs", attrs))

		xs := make([]float64, len(ys))
		for j := range xs {
			xs[j] = float64(j) + offsets[i]
		}
		if _, err := r.Draw(xs, ys, attrs); err != nil {
			return err
		}
	}

	pos := make([]float64, len(tickLabels))
	for j := range pos {
		pos[j] = float64(j) + (1-p.Gap)/2
	}
	return p.Surface.SetXTicks(pos, tickLabels)
}
