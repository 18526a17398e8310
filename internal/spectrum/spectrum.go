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

// Package spectrum looks up and renders per-sample instrument traces as
// stick charts.
package spectrum

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"sampleatlas/internal/dataset"
)

// ErrNotFound is returned when a sample has no captured spectrum. This
// is an expected state, reported to the user as a notice.
var ErrNotFound = errors.New("no spectrum available")

var stickColor = drawing.Color{R: 0x42, G: 0xa5, B: 0xf5, A: 0xff}

// Lookup returns the spectrum record for a sample id.
func Lookup(ds *dataset.Dataset, id string) (*dataset.SpectrumRecord, error) {
	rec, ok := ds.Spectrum(id)
	if !ok {
		return nil, fmt.Errorf("%w for sample %s", ErrNotFound, id)
	}
	return rec, nil
}

// RenderChart draws the paired mz/intensity sequences as a stick chart:
// one vertical line from zero to each intensity at its mz position.
func RenderChart(rec *dataset.SpectrumRecord, title string, w, h int) (image.Image, error) {
	if len(rec.MZ) == 0 {
		return nil, errors.New("spectrum record is empty")
	}

	series := make([]chart.Series, 0, len(rec.MZ))
	for i := range rec.MZ {
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{rec.MZ[i], rec.MZ[i]},
			YValues: []float64{0, rec.Intensity[i]},
			Style:   chart.Style{StrokeWidth: 1.5, StrokeColor: stickColor},
		})
	}

	lo, hi := rec.MZ[0], rec.MZ[0]
	for _, m := range rec.MZ {
		if m < lo {
			lo = m
		}
		if m > hi {
			hi = m
		}
	}
	if hi <= lo {
		hi = lo + 1
	}
	pad := (hi - lo) * 0.02

	ch := chart.Chart{
		Title:      title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: "m/z", Range: &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}},
		YAxis:      chart.YAxis{Name: "intensity"},
		Series:     series,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering spectrum chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decoding spectrum chart: %w", err)
	}
	return img, nil
}
