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
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"sampleatlas/internal/dataset"
	"sampleatlas/internal/encoding"
	"sampleatlas/internal/scene"
)

// Legend explains the active color channel: swatches per category for a
// categorical encoding, a labelled ramp for a continuous one.
type Legend struct {
	box *fyne.Container
}

func NewLegend() *Legend {
	return &Legend{box: container.NewHBox()}
}

// Object returns the canvas object to place in the layout.
func (l *Legend) Object() fyne.CanvasObject { return l.box }

// Update rebuilds the legend for the given encoding. The geometry
// supplies the value range a continuous ramp is labelled with.
func (l *Legend) Update(desc dataset.Encoding, g *scene.Geometry) {
	l.box.Objects = nil
	title := widget.NewLabel(desc.Label + ":")
	title.TextStyle = fyne.TextStyle{Bold: true}
	l.box.Add(title)

	if desc.Type == dataset.EncodingCategorical {
		l.addCategories(desc)
	} else {
		l.addRamp(desc, g)
	}
	l.box.Refresh()
}

func (l *Legend) addCategories(desc dataset.Encoding) {
	names := make([]string, 0, len(desc.Mapping))
	for name := range desc.Mapping {
		names = append(names, name)
	}
	sort.Slice(names, func(a, b int) bool {
		return desc.Mapping[names[a]] < desc.Mapping[names[b]]
	})

	for _, name := range names {
		sw := canvas.NewRectangle(encoding.OrdinalColor(desc.Mapping[name]))
		sw.SetMinSize(fyne.NewSize(12, 12))
		l.box.Add(container.NewHBox(sw, widget.NewLabel(name)))
	}
}

func (l *Legend) addRamp(desc dataset.Encoding, g *scene.Geometry) {
	const rampW, rampH = 140, 12
	img := image.NewRGBA(image.Rect(0, 0, rampW, rampH))
	for x := 0; x < rampW; x++ {
		c := encoding.ScaleColor(desc.Colorscale, float64(x)/float64(rampW-1))
		for y := 0; y < rampH; y++ {
			img.Set(x, y, c)
		}
	}
	ramp := canvas.NewImageFromImage(img)
	ramp.FillMode = canvas.ImageFillStretch
	ramp.SetMinSize(fyne.NewSize(rampW, rampH))

	lo, hi := 0.0, 0.0
	if g != nil {
		lo, hi = g.ContinuousRange()
	}
	l.box.Add(widget.NewLabel(strconv.FormatFloat(lo, 'g', 4, 64)))
	l.box.Add(container.New(layout.NewCenterLayout(), ramp))
	l.box.Add(widget.NewLabel(strconv.FormatFloat(hi, 'g', 4, 64)))
}
