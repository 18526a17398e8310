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

package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// LoadError is the fatal error produced when a project's payload cannot be
// retrieved or validated. The session must not proceed on a LoadError; no
// partial dataset is ever returned.
type LoadError struct {
	Project string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading project %q: %v", e.Project, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Loader retrieves and validates dataset payloads over HTTP.
type Loader struct {
	// BaseURL is the root the project document location is derived from.
	BaseURL string

	// Client is the HTTP client used for the single retrieval. Defaults
	// to http.DefaultClient.
	Client *http.Client
}

// payload mirrors the on-the-wire document.
type payload struct {
	TableData   []map[string]interface{}   `json:"tableData"`
	VisibleCols []string                   `json:"visibleCols"`
	Encodings   map[string]payloadEncoding `json:"encodings"`
	SpectraData map[string]payloadSpectrum `json:"spectraData"`
}

type payloadEncoding struct {
	Label      string         `json:"label"`
	Type       string         `json:"type"`
	Attr       string         `json:"attr"`
	Mapping    map[string]int `json:"mapping"`
	Colorscale string         `json:"colorscale"`
}

type payloadSpectrum struct {
	MZ        []float64 `json:"mz"`
	Intensity []float64 `json:"intensity"`
}

// URL returns the deterministic document location for a project id.
func (l *Loader) URL(project string) string {
	return fmt.Sprintf("%s/assets/%s_data.json", strings.TrimRight(l.BaseURL, "/"), url.PathEscape(project))
}

// Load retrieves, parses and validates the dataset payload for a project.
// Any failure yields a *LoadError and no dataset; the load is all-or-nothing.
func (l *Loader) Load(project string) (*Dataset, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Get(l.URL(project))
	if err != nil {
		return nil, &LoadError{Project: project, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{Project: project, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{Project: project, Err: fmt.Errorf("reading payload: %w", err)}
	}

	ds, err := Parse(body)
	if err != nil {
		return nil, &LoadError{Project: project, Err: err}
	}
	return ds, nil
}

// Parse decodes and validates a raw payload document.
func Parse(data []byte) (*Dataset, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing payload: %w", err)
	}

	if p.TableData == nil {
		return nil, ErrMissingSamples
	}
	if p.VisibleCols == nil {
		return nil, ErrMissingColumns
	}
	if p.Encodings == nil {
		return nil, ErrMissingEncodings
	}

	ds := &Dataset{
		Samples:   make([]*Sample, 0, len(p.TableData)),
		Columns:   p.VisibleCols,
		Encodings: make(map[string]Encoding, len(p.Encodings)),
		Spectra:   make(map[string]*SpectrumRecord, len(p.SpectraData)),
	}

	seen := make(map[string]bool, len(p.TableData))
	for i, rec := range p.TableData {
		s, err := parseSample(rec)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
		seen[s.ID] = true
		ds.Samples = append(ds.Samples, s)
	}

	for key, pe := range p.Encodings {
		attr := pe.Attr
		if attr == "" {
			attr = key
		}
		ds.Encodings[key] = Encoding{
			Label:      pe.Label,
			Type:       pe.Type,
			Attr:       attr,
			Mapping:    pe.Mapping,
			Colorscale: pe.Colorscale,
		}
		ds.EncodingKeys = append(ds.EncodingKeys, key)
	}
	// JSON objects carry no order; sort keys so the initial color channel
	// is deterministic across loads.
	sort.Strings(ds.EncodingKeys)

	for id, ps := range p.SpectraData {
		if len(ps.MZ) != len(ps.Intensity) {
			return nil, fmt.Errorf("%w: %s (%d mz, %d intensity)", ErrSpectrumShape, id, len(ps.MZ), len(ps.Intensity))
		}
		ds.Spectra[id] = &SpectrumRecord{MZ: ps.MZ, Intensity: ps.Intensity}
	}

	return ds, nil
}

// parseSample converts one raw record into a Sample. The id attribute is
// required; a name attribute is optional.
func parseSample(rec map[string]interface{}) (*Sample, error) {
	s := &Sample{Attrs: make(map[string]Value, len(rec))}
	for k, raw := range rec {
		v := ValueOf(raw)
		s.Attrs[k] = v
		switch k {
		case "id":
			s.ID = v.Format()
		case "name":
			s.Name = v.Format()
		}
	}
	if s.ID == "" {
		return nil, ErrMissingID
	}
	return s, nil
}
