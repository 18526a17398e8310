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
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"

	"sampleatlas/internal/dataset"
	"sampleatlas/internal/spectrum"
)

const (
	chartWidth  = 760
	chartHeight = 420
)

// SpectrumWindow shows the stick chart for one sample in a reusable
// secondary window. A request for a sample without a spectrum raises a
// notice and leaves whatever chart is currently shown untouched.
type SpectrumWindow struct {
	app    fyne.App
	parent fyne.Window
	ds     *dataset.Dataset

	w     fyne.Window
	chart *canvas.Image
}

func NewSpectrumWindow(app fyne.App, parent fyne.Window, ds *dataset.Dataset) *SpectrumWindow {
	return &SpectrumWindow{app: app, parent: parent, ds: ds}
}

// Show looks up and renders the spectrum for the given sample id.
func (v *SpectrumWindow) Show(id string) {
	rec, err := spectrum.Lookup(v.ds, id)
	if err != nil {
		if errors.Is(err, spectrum.ErrNotFound) {
			dialog.ShowInformation("No Spectrum",
				fmt.Sprintf("Sample %s has no spectrum data.", id), v.parent)
			return
		}
		dialog.ShowError(err, v.parent)
		return
	}

	title := "Spectrum: " + id
	if s := v.ds.SampleByID(id); s != nil {
		title = "Spectrum: " + s.DisplayName()
	}
	img, err := spectrum.RenderChart(rec, title, chartWidth, chartHeight)
	if err != nil {
		dialog.ShowError(err, v.parent)
		return
	}

	if v.w == nil {
		v.chart = canvas.NewImageFromImage(img)
		v.chart.FillMode = canvas.ImageFillContain
		v.w = v.app.NewWindow(title)
		v.w.SetContent(v.chart)
		v.w.Resize(fyne.NewSize(chartWidth, chartHeight))
		// Closing hides so the window can be reused for the next request.
		v.w.SetCloseIntercept(func() { v.w.Hide() })
	} else {
		v.chart.Image = img
		v.chart.Refresh()
		v.w.SetTitle(title)
	}
	v.w.Show()
}
