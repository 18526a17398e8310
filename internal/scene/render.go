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

package scene

import (
	"image"
	"image/color"
	"sort"

	"sampleatlas/internal/dataset"
	"sampleatlas/internal/encoding"
)

var background = color.NRGBA{R: 0x12, G: 0x12, B: 0x16, A: 0xff}

const pointRadius = 3

// Render rasterizes the point cloud through the camera into a w×h image.
// Points draw far-to-near so nearer points overpaint. Categorical colors
// come from the ordinal palette; continuous values normalize over the
// current color range onto the descriptor's scale.
func Render(g *Geometry, cam Camera, desc dataset.Encoding, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, background)
		}
	}

	pts := cam.Project(g, w, h)
	order := make([]int, len(pts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return pts[order[a]].Depth < pts[order[b]].Depth
	})

	colors := pointColors(g, desc)
	for _, i := range order {
		drawDot(img, pts[i].X, pts[i].Y, colors[i])
	}
	return img
}

// pointColors maps the geometry's encoded color values to pixel colors.
func pointColors(g *Geometry, desc dataset.Encoding) []color.NRGBA {
	out := make([]color.NRGBA, len(g.Colors))
	if desc.Type == dataset.EncodingCategorical {
		for i, v := range g.Colors {
			out[i] = encoding.OrdinalColor(int(v))
		}
		return out
	}

	lo, hi := continuousRange(g.Colors)
	for i, v := range g.Colors {
		t := 0.5
		if hi > lo {
			t = (v - lo) / (hi - lo)
		}
		out[i] = encoding.ScaleColor(desc.Colorscale, t)
	}
	return out
}

// ContinuousRange returns the min and max of the geometry's current
// color values; the legend uses it to label the ramp ends.
func (g *Geometry) ContinuousRange() (float64, float64) {
	return continuousRange(g.Colors)
}

func continuousRange(vals []float64) (float64, float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	return minOf(vals), maxOf(vals)
}

func drawDot(img *image.RGBA, cx, cy float64, col color.NRGBA) {
	x0, y0 := int(cx), int(cy)
	for dy := -pointRadius; dy <= pointRadius; dy++ {
		for dx := -pointRadius; dx <= pointRadius; dx++ {
			if dx*dx+dy*dy > pointRadius*pointRadius {
				continue
			}
			x, y := x0+dx, y0+dy
			if image.Pt(x, y).In(img.Bounds()) {
				img.SetRGBA(x, y, color.RGBA{R: col.R, G: col.G, B: col.B, A: col.A})
			}
		}
	}
}
