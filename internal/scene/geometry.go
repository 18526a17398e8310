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

// Package scene derives 3D point-cloud geometry and colors from the
// filtered sample sequence and renders it through an orbitable
// orthographic camera.
package scene

import (
	"sampleatlas/internal/dataset"
	"sampleatlas/internal/encoding"
)

// Projection coordinate attribute names produced by the data pipeline.
const (
	XAttr = "umap_x"
	YAttr = "umap_y"
	ZAttr = "umap_z"
)

// Geometry holds the parallel coordinate and color sequences for one
// plot build, plus the sample sequence that produced them. Point
// identity is positional: index i in every slice refers to samples[i].
type Geometry struct {
	samples []*dataset.Sample

	Xs, Ys, Zs []float64
	Colors     []float64
}

// Build derives geometry from a sample sequence and the active encoding.
// The sequence must be the filtered, load-ordered one: table sorting
// never reorders the plot. A missing coordinate falls back to 0.
func Build(samples []*dataset.Sample, desc dataset.Encoding) *Geometry {
	g := &Geometry{
		samples: samples,
		Xs:      make([]float64, len(samples)),
		Ys:      make([]float64, len(samples)),
		Zs:      make([]float64, len(samples)),
		Colors:  make([]float64, len(samples)),
	}
	for i, s := range samples {
		g.Xs[i] = coord(s, XAttr)
		g.Ys[i] = coord(s, YAttr)
		g.Zs[i] = coord(s, ZAttr)
		g.Colors[i] = encoding.Encode(desc, s)
	}
	return g
}

// Recolor replaces the color sequence for a channel switch without
// touching geometry; this is the cheap path.
func (g *Geometry) Recolor(desc dataset.Encoding) {
	for i, s := range g.samples {
		g.Colors[i] = encoding.Encode(desc, s)
	}
}

// Len returns the number of points.
func (g *Geometry) Len() int { return len(g.samples) }

// SampleAt resolves a positional index back to its sample by indexing
// the exact sequence this geometry was built from.
func (g *Geometry) SampleAt(i int) (*dataset.Sample, bool) {
	if i < 0 || i >= len(g.samples) {
		return nil, false
	}
	return g.samples[i], true
}

// IDAt resolves a positional index to a sample id.
func (g *Geometry) IDAt(i int) (string, bool) {
	s, ok := g.SampleAt(i)
	if !ok {
		return "", false
	}
	return s.ID, true
}

func coord(s *dataset.Sample, attr string) float64 {
	if n, ok := s.Attr(attr).Float(); ok {
		return n
	}
	return 0
}
