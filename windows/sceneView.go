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

package windows

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"sampleatlas/internal/dataset"
	"sampleatlas/internal/intent"
	"sampleatlas/internal/scene"
)

const (
	pickRadius  = 8.0
	orbitFactor = 0.008
)

// SceneView is an interactive widget over the projected point cloud.
// Left tap picks the nearest point and selects its sample, right tap
// selects it and requests its spectrum, drag orbits the camera and
// scroll zooms. The widget re-rasterizes on every camera or state change.
type SceneView struct {
	widget.BaseWidget

	dispatch func(intent.Intent)

	geom     *scene.Geometry
	cam      scene.Camera
	desc     dataset.Encoding
	selected string

	raster *canvas.Image
	pts    []scene.ScreenPoint
}

var (
	_ fyne.Tappable          = (*SceneView)(nil)
	_ fyne.SecondaryTappable = (*SceneView)(nil)
	_ fyne.Draggable         = (*SceneView)(nil)
	_ fyne.Scrollable        = (*SceneView)(nil)
)

// NewSceneView creates an empty scene view; geometry arrives later via
// SetGeometry.
func NewSceneView(dispatch func(intent.Intent)) *SceneView {
	s := &SceneView{
		dispatch: dispatch,
		cam:      scene.DefaultCamera(),
	}
	s.raster = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	s.raster.FillMode = canvas.ImageFillStretch
	s.ExtendBaseWidget(s)
	return s
}

// SetGeometry swaps in a new point cloud, keeping the camera.
func (s *SceneView) SetGeometry(g *scene.Geometry, desc dataset.Encoding) {
	s.geom = g
	s.desc = desc
	s.redraw()
}

// SetEncoding switches the color channel without rebuilding geometry.
func (s *SceneView) SetEncoding(desc dataset.Encoding) {
	s.desc = desc
	if s.geom != nil {
		s.geom.Recolor(desc)
	}
	s.redraw()
}

// SetSelected updates the highlighted sample.
func (s *SceneView) SetSelected(id string) {
	s.selected = id
	s.redraw()
}

// ResetCamera returns to the default view.
func (s *SceneView) ResetCamera() {
	s.cam = scene.DefaultCamera()
	s.redraw()
}

func (s *SceneView) CreateRenderer() fyne.WidgetRenderer {
	return &sceneRenderer{view: s}
}

func (s *SceneView) Tapped(e *fyne.PointEvent) {
	if i, ok := scene.Pick(s.pts, float64(e.Position.X), float64(e.Position.Y), pickRadius); ok {
		id, _ := s.geom.IDAt(i)
		s.dispatch(intent.PointActivated{ID: id, Index: i})
	}
}

// TappedSecondary activates the picked point like a primary tap and
// additionally requests its spectrum.
func (s *SceneView) TappedSecondary(e *fyne.PointEvent) {
	if i, ok := scene.Pick(s.pts, float64(e.Position.X), float64(e.Position.Y), pickRadius); ok {
		id, _ := s.geom.IDAt(i)
		s.dispatch(intent.PointActivated{ID: id, Index: i})
		s.dispatch(intent.SpectrumRequested{ID: id})
	}
}

func (s *SceneView) Dragged(e *fyne.DragEvent) {
	s.cam.Orbit(float64(e.Dragged.DX)*orbitFactor, float64(e.Dragged.DY)*orbitFactor)
	s.redraw()
}

func (s *SceneView) DragEnd() {}

func (s *SceneView) Scrolled(e *fyne.ScrollEvent) {
	if e.Scrolled.DY > 0 {
		s.cam.Scale(1.1)
	} else if e.Scrolled.DY < 0 {
		s.cam.Scale(1 / 1.1)
	}
	s.redraw()
}

func (s *SceneView) redraw() {
	size := s.Size()
	w, h := int(size.Width), int(size.Height)
	if s.geom == nil || w < 1 || h < 1 {
		return
	}

	img := scene.Render(s.geom, s.cam, s.desc, w, h)
	s.pts = s.cam.Project(s.geom, w, h)
	s.drawSelectionRing(img)

	s.raster.Image = img
	s.raster.Refresh()
}

// drawSelectionRing marks the selected sample with an outline circle so
// it stays visible whatever its point color is.
func (s *SceneView) drawSelectionRing(img *image.RGBA) {
	if s.selected == "" {
		return
	}
	idx := -1
	for i := 0; i < s.geom.Len(); i++ {
		if id, _ := s.geom.IDAt(i); id == s.selected {
			idx = i
			break
		}
	}
	if idx < 0 || idx >= len(s.pts) {
		return
	}

	cx, cy := int(s.pts[idx].X), int(s.pts[idx].Y)
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	const ring = 6
	for dy := -ring; dy <= ring; dy++ {
		for dx := -ring; dx <= ring; dx++ {
			d := dx*dx + dy*dy
			if d < (ring-1)*(ring-1) || d > ring*ring {
				continue
			}
			if image.Pt(cx+dx, cy+dy).In(img.Bounds()) {
				img.SetRGBA(cx+dx, cy+dy, white)
			}
		}
	}
}

type sceneRenderer struct {
	view *SceneView
}

func (r *sceneRenderer) Layout(size fyne.Size) {
	r.view.raster.Resize(size)
	r.view.redraw()
}

func (r *sceneRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 240)
}

func (r *sceneRenderer) Refresh() {
	r.view.raster.Refresh()
}

func (r *sceneRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.raster}
}

func (r *sceneRenderer) Destroy() {}
