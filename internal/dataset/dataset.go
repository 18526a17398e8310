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

// Package dataset defines the immutable data model of a loaded project:
// samples with open attribute sets, the visible column list, the color
// encoding recipes and the optional per-sample spectra.
package dataset

import "errors"

// Common errors returned by the dataset package.
var (
	// ErrMissingSamples is returned when the payload has no sample table.
	ErrMissingSamples = errors.New("payload is missing tableData")

	// ErrMissingColumns is returned when the payload has no column list.
	ErrMissingColumns = errors.New("payload is missing visibleCols")

	// ErrMissingEncodings is returned when the payload has no encodings.
	ErrMissingEncodings = errors.New("payload is missing encodings")

	// ErrMissingID is returned when a sample record carries no id.
	ErrMissingID = errors.New("sample record is missing an id")

	// ErrDuplicateID is returned when two samples share the same id.
	ErrDuplicateID = errors.New("duplicate sample id")

	// ErrSpectrumShape is returned when a spectrum's mz and intensity
	// sequences differ in length.
	ErrSpectrumShape = errors.New("spectrum mz/intensity length mismatch")
)

// Encoding type discriminants as they appear in the payload.
const (
	EncodingCategorical = "categorical"
	EncodingContinuous  = "continuous"
)

// Sample is one analyzed specimen: a stable id, an optional display name
// and an open set of named scalar attributes (metadata columns plus the
// projection coordinates).
type Sample struct {
	ID    string
	Name  string
	Attrs map[string]Value
}

// Attr returns the value of a named attribute; missing attributes yield
// Absent, never an error.
func (s *Sample) Attr(name string) Value {
	if v, ok := s.Attrs[name]; ok {
		return v
	}
	return Absent
}

// DisplayName returns the sample's display name, falling back to its id.
func (s *Sample) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}

// Encoding is one named recipe for turning an attribute into a plot color.
type Encoding struct {
	// Label is the human-readable name shown in the channel selector.
	Label string

	// Type is EncodingCategorical or EncodingContinuous.
	Type string

	// Attr is the sample attribute the encoding reads. Defaults to the
	// encoding key when the payload does not name one.
	Attr string

	// Mapping assigns a stable ordinal to every expected categorical
	// value. Values outside the mapping take the unknown ordinal.
	Mapping map[string]int

	// Colorscale optionally names the continuous color scale.
	Colorscale string
}

// SpectrumRecord holds one sample's raw instrument trace as paired
// mass/charge positions and intensities of equal length.
type SpectrumRecord struct {
	MZ        []float64
	Intensity []float64
}

// Dataset is the immutable result of one project load.
type Dataset struct {
	// Samples in payload (load) order. Plot point identity is positional
	// index into derived subsequences of this slice.
	Samples []*Sample

	// Columns is the ordered list of attribute names shown as table columns.
	Columns []string

	// Encodings maps encoding key to its descriptor.
	Encodings map[string]Encoding

	// EncodingKeys lists the encoding keys in a stable order; the first
	// key is the initial color channel.
	EncodingKeys []string

	// Spectra maps sample id to its trace. Absence of an id is a valid,
	// expected state.
	Spectra map[string]*SpectrumRecord
}

// Encoding returns the descriptor for a key and whether it exists.
func (d *Dataset) Encoding(key string) (Encoding, bool) {
	e, ok := d.Encodings[key]
	return e, ok
}

// Spectrum returns the trace for a sample id and whether one exists.
func (d *Dataset) Spectrum(id string) (*SpectrumRecord, bool) {
	r, ok := d.Spectra[id]
	return r, ok
}

// SampleByID returns the sample with the given id, or nil.
func (d *Dataset) SampleByID(id string) *Sample {
	for _, s := range d.Samples {
		if s.ID == id {
			return s
		}
	}
	return nil
}
