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
	"math"

	"gonum.org/v1/gonum/mat"
)

// Camera is an orbiting orthographic camera: yaw and pitch in radians,
// zoom as a unitless multiplier on the fitted scale.
type Camera struct {
	Yaw   float64
	Pitch float64
	Zoom  float64
}

// DefaultCamera returns a slightly tilted starting view.
func DefaultCamera() Camera {
	return Camera{Yaw: math.Pi / 6, Pitch: math.Pi / 8, Zoom: 1}
}

// Orbit adjusts yaw and pitch by the given deltas, clamping pitch short
// of the poles so the view never flips.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	limit := math.Pi/2 - 0.01
	if c.Pitch > limit {
		c.Pitch = limit
	}
	if c.Pitch < -limit {
		c.Pitch = -limit
	}
}

// Scale adjusts the zoom multiplier, keeping it in a usable range.
func (c *Camera) Scale(factor float64) {
	c.Zoom *= factor
	if c.Zoom < 0.1 {
		c.Zoom = 0.1
	}
	if c.Zoom > 20 {
		c.Zoom = 20
	}
}

// rotation builds the combined rotation matrix Rx(pitch) * Ry(yaw).
func (c Camera) rotation() *mat.Dense {
	sy, cy := math.Sin(c.Yaw), math.Cos(c.Yaw)
	sp, cp := math.Sin(c.Pitch), math.Cos(c.Pitch)

	ry := mat.NewDense(3, 3, []float64{
		cy, 0, sy,
		0, 1, 0,
		-sy, 0, cy,
	})
	rx := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, cp, -sp,
		0, sp, cp,
	})

	var r mat.Dense
	r.Mul(rx, ry)
	return &r
}

// ScreenPoint is one projected plot point in pixel coordinates. Depth
// orders the painter's draw: larger is nearer.
type ScreenPoint struct {
	X, Y  float64
	Depth float64
}

// Project rotates the geometry's point cloud and fits it into a w×h
// viewport with a uniform margin. The returned slice is positionally
// parallel to the geometry.
func (c Camera) Project(g *Geometry, w, h int) []ScreenPoint {
	n := g.Len()
	pts := make([]ScreenPoint, n)
	if n == 0 {
		return pts
	}

	// Center the cloud on its bounding-box midpoint before rotating.
	cx := (minOf(g.Xs) + maxOf(g.Xs)) / 2
	cy := (minOf(g.Ys) + maxOf(g.Ys)) / 2
	cz := (minOf(g.Zs) + maxOf(g.Zs)) / 2

	data := make([]float64, 3*n)
	for i := 0; i < n; i++ {
		data[i] = g.Xs[i] - cx
		data[n+i] = g.Ys[i] - cy
		data[2*n+i] = g.Zs[i] - cz
	}
	cloud := mat.NewDense(3, n, data)

	var rotated mat.Dense
	rotated.Mul(c.rotation(), cloud)

	// Fit to the viewport using the pre-rotation cloud extent so the
	// scale stays constant while orbiting.
	extent := math.Max(maxOf(g.Xs)-minOf(g.Xs), math.Max(maxOf(g.Ys)-minOf(g.Ys), maxOf(g.Zs)-minOf(g.Zs)))
	if extent == 0 {
		extent = 1
	}
	const margin = 24.0
	span := math.Min(float64(w), float64(h)) - 2*margin
	if span < 1 {
		span = 1
	}
	scale := c.Zoom * span / extent

	halfW, halfH := float64(w)/2, float64(h)/2
	for i := 0; i < n; i++ {
		pts[i] = ScreenPoint{
			X:     halfW + rotated.At(0, i)*scale,
			Y:     halfH - rotated.At(1, i)*scale,
			Depth: rotated.At(2, i),
		}
	}
	return pts
}

// Pick returns the index of the point nearest to (x, y) within the given
// pixel radius, preferring the nearest in depth on screen-distance ties.
func Pick(pts []ScreenPoint, x, y, radius float64) (int, bool) {
	best := -1
	bestDist := radius * radius
	for i, p := range pts {
		dx, dy := p.X-x, p.Y-y
		d := dx*dx + dy*dy
		if d < bestDist || (d == bestDist && best >= 0 && p.Depth > pts[best].Depth) {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

func minOf(v []float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func maxOf(v []float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
