// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/vec"
)

// Viridis and Magma are perceptually uniform sequential palettes.
var (
	Viridis = palette.RGBGradient{Colors: []color.RGBA{
		{0x44, 0x01, 0x54, 0xff},
		{0x47, 0x2d, 0x7b, 0xff},
		{0x3b, 0x52, 0x8b, 0xff},
		{0x2c, 0x72, 0x8e, 0xff},
		{0x21, 0x91, 0x8c, 0xff},
		{0x28, 0xae, 0x80, 0xff},
		{0x5e, 0xc9, 0x62, 0xff},
		{0xad, 0xdc, 0x30, 0xff},
		{0xfd, 0xe7, 0x25, 0xff},
	}}

	Magma = palette.RGBGradient{Colors: []color.RGBA{
		{0x00, 0x00, 0x04, 0xff},
		{0x1c, 0x10, 0x44, 0xff},
		{0x4f, 0x12, 0x7b, 0xff},
		{0x81, 0x25, 0x81, 0xff},
		{0xb5, 0x36, 0x7a, 0xff},
		{0xe5, 0x59, 0x64, 0xff},
		{0xfb, 0x87, 0x61, 0xff},
		{0xfe, 0xc2, 0x87, 0xff},
		{0xfc, 0xfd, 0xbf, 0xff},
	}}
)

// Ramps maps palette names to palettes.
var Ramps = map[string]palette.Continuous{
	"viridis": Viridis,
	"magma":   Magma,
}

// RampColors samples n colors evenly from ramp, from one end to the
// other. With fewer than two colors there is nothing to spread over,
// so RampColors returns nil and callers fall back to their defaults.
func RampColors(ramp palette.Continuous, n int) []color.Color {
	if n < 2 || ramp == nil {
		return nil
	}
	cs := make([]color.Color, n)
	for i, x := range vec.Linspace(0, 1, n) {
		cs[i] = ramp.Map(x)
	}
	return cs
}
