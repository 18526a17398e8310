// Copyright 2025 Magnus Pierre
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package encoding

import "image/color"

// ordinalPalette is the fixed cycle of categorical point colors.
var ordinalPalette = []color.NRGBA{
	{R: 0x42, G: 0xa5, B: 0xf5, A: 0xff}, // blue
	{R: 0xef, G: 0x53, B: 0x50, A: 0xff}, // red
	{R: 0x66, G: 0xbb, B: 0x6a, A: 0xff}, // green
	{R: 0xff, G: 0xa7, B: 0x26, A: 0xff}, // orange
	{R: 0xab, G: 0x47, B: 0xbc, A: 0xff}, // purple
	{R: 0x26, G: 0xc6, B: 0xda, A: 0xff}, // cyan
	{R: 0xec, G: 0x40, B: 0x7a, A: 0xff}, // pink
	{R: 0xd4, G: 0xe1, B: 0x57, A: 0xff}, // lime
	{R: 0x8d, G: 0x6e, B: 0x63, A: 0xff}, // brown
	{R: 0x78, G: 0x90, B: 0x9c, A: 0xff}, // blue gray
}

// unknownColor marks points whose categorical value is outside the mapping.
var unknownColor = color.NRGBA{R: 0x61, G: 0x61, B: 0x61, A: 0xff}

// OrdinalColor returns the point color for a categorical ordinal. The
// unknown ordinal (and any other negative ordinal) renders gray; ordinals
// beyond the palette wrap around.
func OrdinalColor(ord int) color.NRGBA {
	if ord < 0 {
		return unknownColor
	}
	return ordinalPalette[ord%len(ordinalPalette)]
}

// scale is a piecewise-linear color ramp.
type scale []color.NRGBA

var scales = map[string]scale{
	"viridis": {
		{R: 0x44, G: 0x01, B: 0x54, A: 0xff},
		{R: 0x3b, G: 0x52, B: 0x8b, A: 0xff},
		{R: 0x21, G: 0x91, B: 0x8c, A: 0xff},
		{R: 0x5e, G: 0xc9, B: 0x62, A: 0xff},
		{R: 0xfd, G: 0xe7, B: 0x25, A: 0xff},
	},
	"plasma": {
		{R: 0x0d, G: 0x08, B: 0x87, A: 0xff},
		{R: 0x7e, G: 0x03, B: 0xa8, A: 0xff},
		{R: 0xcc, G: 0x47, B: 0x78, A: 0xff},
		{R: 0xf8, G: 0x96, B: 0x41, A: 0xff},
		{R: 0xf0, G: 0xf9, B: 0x21, A: 0xff},
	},
}

// defaultScale is used when a continuous descriptor names no colorscale
// or names one this renderer does not know.
const defaultScale = "viridis"

// ScaleColor returns the color at position t in [0,1] on a named scale.
// Out-of-range positions clamp to the ends.
func ScaleColor(name string, t float64) color.NRGBA {
	sc, ok := scales[name]
	if !ok {
		sc = scales[defaultScale]
	}
	if t <= 0 {
		return sc[0]
	}
	if t >= 1 {
		return sc[len(sc)-1]
	}
	pos := t * float64(len(sc)-1)
	i := int(pos)
	frac := pos - float64(i)
	return lerp(sc[i], sc[i+1], frac)
}

func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}
