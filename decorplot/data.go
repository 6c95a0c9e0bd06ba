// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/decorplot/go-decor/decor"
)

// A Dataset is a table of series read from a data file.
//
// A data file is whitespace-separated, with shell-style quoting and #
// comments. The first line names the columns. The first column gives
// the x value or tick label of each row and every other column is a
// series. A column named "S.err" gives the error magnitudes of series
// S and must follow it.
type Dataset struct {
	// Ticks are the first-column values of each row.
	Ticks []string
	// Xs are the parsed first-column values, or nil if any of them
	// is not a number.
	Xs     []float64
	Series []*Series
}

// A Series is one column of a Dataset.
type Series struct {
	Label string
	Ys    []float64
	// Yerr is nil if the series has no ".err" column.
	Yerr []float64
}

// Labels returns the label of each series.
func (d *Dataset) Labels() []string {
	labels := make([]string, len(d.Series))
	for i, s := range d.Series {
		labels[i] = s.Label
	}
	return labels
}

// Positions returns the x position of each row: Xs if the first column
// is numeric, otherwise the row index.
func (d *Dataset) Positions() []float64 {
	if d.Xs != nil {
		return d.Xs
	}
	pos := make([]float64, len(d.Ticks))
	for i := range pos {
		pos[i] = float64(i)
	}
	return pos
}

// Values returns the values of each series, one slice per series.
func (d *Dataset) Values() [][]float64 {
	vals := make([][]float64, len(d.Series))
	for i, s := range d.Series {
		vals[i] = s.Ys
	}
	return vals
}

// ParseData reads a Dataset from r.
func ParseData(r io.Reader) (*Dataset, error) {
	var d Dataset
	// cols maps each data column to its slice.
	var cols []*[]float64
	numeric := true

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		fields, err := decor.Tokenize(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		if len(fields) == 0 {
			continue
		}

		if cols == nil {
			// Header.
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: header needs at least two columns", lineno)
			}
			for _, name := range fields[1:] {
				if base := strings.TrimSuffix(name, ".err"); base != name {
					var last *Series
					if n := len(d.Series); n > 0 {
						last = d.Series[n-1]
					}
					if last == nil || last.Label != base || last.Yerr != nil {
						return nil, fmt.Errorf("line %d: column %q does not follow column %q", lineno, name, base)
					}
					last.Yerr = []float64{}
					cols = append(cols, &last.Yerr)
					continue
				}
				s := &Series{Label: name}
				d.Series = append(d.Series, s)
				cols = append(cols, &s.Ys)
			}
			continue
		}

		if len(fields) != len(cols)+1 {
			return nil, fmt.Errorf("line %d: want %d columns, got %d", lineno, len(cols)+1, len(fields))
		}
		d.Ticks = append(d.Ticks, fields[0])
		if x, err := strconv.ParseFloat(fields[0], 64); err == nil {
			d.Xs = append(d.Xs, x)
		} else {
			numeric = false
		}
		for i, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			*cols[i] = append(*cols[i], v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if cols == nil {
		return nil, fmt.Errorf("no header line")
	}
	if !numeric {
		d.Xs = nil
	}
	return &d, nil
}
