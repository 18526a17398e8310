package dataset

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const validPayload = `{
	"tableData": [
		{"id": "RA-A031", "name": "Folio 12", "species": "Sheep", "year": 1250, "umap_x": 1.2, "umap_y": -0.4, "umap_z": 0.9},
		{"id": "RA-A032", "species": "Goat", "year": 1310.5, "umap_x": -2.1, "umap_y": 0.3, "umap_z": 1.7}
	],
	"visibleCols": ["id", "species", "year"],
	"encodings": {
		"species": {"label": "Species", "type": "categorical", "mapping": {"Sheep": 0, "Goat": 1}},
		"year": {"label": "Year", "type": "continuous", "colorscale": "viridis"}
	},
	"spectraData": {
		"RA-A031": {"mz": [100.1, 200.2], "intensity": [5, 9]}
	}
}`

func serve(t *testing.T, status int, body string) *Loader {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/assets/") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return &Loader{BaseURL: srv.URL, Client: srv.Client()}
}

func TestLoadValidPayload(t *testing.T) {
	l := serve(t, http.StatusOK, validPayload)
	ds, err := l.Load("parchment")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds.Samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(ds.Samples))
	}
	if ds.Samples[0].ID != "RA-A031" || ds.Samples[0].Name != "Folio 12" {
		t.Fatalf("first sample wrong: %+v", ds.Samples[0])
	}
	if got := ds.Samples[1].Attr("year"); got.Num != 1310.5 {
		t.Fatalf("year attr wrong: %v", got)
	}
	if len(ds.Columns) != 3 || ds.Columns[1] != "species" {
		t.Fatalf("columns wrong: %v", ds.Columns)
	}
	if _, ok := ds.Encoding("species"); !ok {
		t.Fatal("species encoding missing")
	}
	// keys are sorted for a deterministic initial channel
	if ds.EncodingKeys[0] != "species" || ds.EncodingKeys[1] != "year" {
		t.Fatalf("encoding keys wrong: %v", ds.EncodingKeys)
	}
	if _, ok := ds.Spectrum("RA-A031"); !ok {
		t.Fatal("spectrum missing")
	}
	if _, ok := ds.Spectrum("RA-A032"); ok {
		t.Fatal("unexpected spectrum for RA-A032")
	}
}

func TestLoadHTTPFailure(t *testing.T) {
	l := serve(t, http.StatusNotFound, "gone")
	_, err := l.Load("parchment")
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %T: %v", err, err)
	}
	if le.Project != "parchment" {
		t.Fatalf("LoadError project = %q", le.Project)
	}
	if !strings.Contains(le.Error(), "parchment") {
		t.Fatalf("error message should identify the project: %v", le)
	}
}

func TestLoadBadJSON(t *testing.T) {
	l := serve(t, http.StatusOK, "{not json")
	if _, err := l.Load("p"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParseValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"missing tableData", `{"visibleCols":[],"encodings":{}}`, ErrMissingSamples},
		{"missing visibleCols", `{"tableData":[],"encodings":{}}`, ErrMissingColumns},
		{"missing encodings", `{"tableData":[],"visibleCols":[]}`, ErrMissingEncodings},
		{"missing id", `{"tableData":[{"species":"Sheep"}],"visibleCols":[],"encodings":{}}`, ErrMissingID},
		{"duplicate id", `{"tableData":[{"id":"a"},{"id":"a"}],"visibleCols":[],"encodings":{}}`, ErrDuplicateID},
		{"spectrum shape", `{"tableData":[{"id":"a"}],"visibleCols":[],"encodings":{},"spectraData":{"a":{"mz":[1,2],"intensity":[1]}}}`, ErrSpectrumShape},
	}
	for _, c := range cases {
		_, err := Parse([]byte(c.body))
		if !errors.Is(err, c.want) {
			t.Errorf("%s: got %v want %v", c.name, err, c.want)
		}
	}
}

func TestParseSpectraOptional(t *testing.T) {
	ds, err := Parse([]byte(`{"tableData":[{"id":"a"}],"visibleCols":["id"],"encodings":{}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(ds.Spectra) != 0 {
		t.Fatalf("spectra should default empty, got %d", len(ds.Spectra))
	}
}

func TestURLDerivation(t *testing.T) {
	l := &Loader{BaseURL: "http://example.com/"}
	if got := l.URL("parchment"); got != "http://example.com/assets/parchment_data.json" {
		t.Fatalf("URL = %q", got)
	}
}

func TestURLEscapesProjectID(t *testing.T) {
	l := &Loader{BaseURL: "http://example.com"}
	if got := l.URL("my project/v2"); got != "http://example.com/assets/my%20project%2Fv2_data.json" {
		t.Fatalf("URL = %q", got)
	}
}
