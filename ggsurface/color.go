// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggsurface

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

// shortColors are the single-letter color codes common in plotting
// scripts.
var shortColors = map[string]color.RGBA{
	"b": {0x00, 0x00, 0xff, 0xff},
	"g": {0x00, 0x80, 0x00, 0xff},
	"r": {0xff, 0x00, 0x00, 0xff},
	"c": {0x00, 0xbf, 0xbf, 0xff},
	"m": {0xbf, 0x00, 0xbf, 0xff},
	"y": {0xbf, 0xbf, 0x00, 0xff},
	"k": {0x00, 0x00, 0x00, 0xff},
	"w": {0xff, 0xff, 0xff, 0xff},
}

// ParseColor parses a color name ("blue", "b") or hex triplet
// ("#0000ff").
func ParseColor(s string) (color.RGBA, bool) {
	if c, ok := shortColors[s]; ok {
		return c, true
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, true
	}
	if c, err := colorful.Hex(s); err == nil {
		return toRGBA(c), true
	}
	return color.RGBA{}, false
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// resolveColor converts a "color" attribute to a color. It returns nil
// for a missing or unrecognized color; unrecognized colors are
// logged.
func (f *Figure) resolveColor(v interface{}) color.Color {
	switch v := v.(type) {
	case nil:
		return nil
	case color.Color:
		return toRGBA(v)
	case string:
		if c, ok := ParseColor(v); ok {
			return c
		}
	}
	f.log().Warn("unknown color; using default", zap.Any("color", v))
	return nil
}

// hex formats c as an SVG color.
func hex(c color.Color) string {
	if c == nil {
		return "black"
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
