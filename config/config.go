// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads figure style settings from TOML files.
//
// A style file looks like:
//
//	[figure]
//	width = 500
//	height = 500
//	title = "Throughput"
//
//	[font]
//	family = "serif"
//	size = 26
//
//	[bars]
//	gap = 0.2
//	ramp = "viridis"
//
// Settings missing from the file keep their defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Style holds the visual defaults for a figure.
type Style struct {
	Figure FigureStyle `toml:"figure"`
	Font   FontStyle   `toml:"font"`
	Bars   BarStyle    `toml:"bars"`
}

type FigureStyle struct {
	// Width and Height are the figure size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	Title  string `toml:"title"`
	XLabel string `toml:"xlabel"`
	YLabel string `toml:"ylabel"`
}

type FontStyle struct {
	Family string  `toml:"family"`
	Size   float64 `toml:"size"`
}

type BarStyle struct {
	// Gap is the fraction of each group slot left empty.
	Gap float64 `toml:"gap"`

	// Ramp names the palette bar series are colored from.
	Ramp string `toml:"ramp"`
}

// Default returns the default style: a 5x5 figure at 100 pixels per
// unit, a 26 point serif font, and viridis-colored bars.
func Default() *Style {
	return &Style{
		Figure: FigureStyle{
			Width:  500,
			Height: 500,
			XLabel: "TBD",
			YLabel: "DO FILL IN",
		},
		Font: FontStyle{Family: "serif", Size: 26},
		Bars: BarStyle{Gap: 0.2, Ramp: "viridis"},
	}
}

// Decode reads a style from r on top of the defaults. Unknown keys
// are an error.
func Decode(r io.Reader) (*Style, error) {
	s := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%d:%d: %w", row, col, err)
		}
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the style file at path. If path is "", it returns the
// default style.
func Load(path string) (*Style, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks that s describes a drawable figure.
func (s *Style) Validate() error {
	if s.Figure.Width <= 0 || s.Figure.Height <= 0 {
		return fmt.Errorf("figure size %dx%d must be positive", s.Figure.Width, s.Figure.Height)
	}
	if s.Font.Size <= 0 {
		return fmt.Errorf("font size %g must be positive", s.Font.Size)
	}
	if s.Bars.Gap < 0 || s.Bars.Gap >= 1 {
		return fmt.Errorf("bar gap %g must be in [0, 1)", s.Bars.Gap)
	}
	return nil
}
