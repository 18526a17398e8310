package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"

	"sampleatlas/internal/dataset"
)

func exportRows() []*dataset.Sample {
	return []*dataset.Sample{
		{ID: "RA-A031", Attrs: map[string]dataset.Value{
			"id":     dataset.Text("RA-A031"),
			"year":   dataset.Number(1250),
			"region": dataset.Text("Tuscany"),
		}},
		{ID: "RA-A032", Attrs: map[string]dataset.Value{
			"id":   dataset.Text("RA-A032"),
			"year": dataset.Number(1310.5),
		}},
	}
}

func TestBuildArrowTableColumnTypes(t *testing.T) {
	table, err := BuildArrowTable([]string{"id", "year", "region"}, exportRows())
	if err != nil {
		t.Fatalf("BuildArrowTable: %v", err)
	}
	defer table.Release()

	if table.NumRows() != 2 {
		t.Fatalf("NumRows = %d, want 2", table.NumRows())
	}
	schema := table.Schema()
	if got := schema.Field(0).Type.ID(); got != arrow.STRING {
		t.Errorf("id column type = %v, want STRING", got)
	}
	if got := schema.Field(1).Type.ID(); got != arrow.FLOAT64 {
		t.Errorf("year column type = %v, want FLOAT64", got)
	}
	// region is absent for the second row; the column stays STRING with a null.
	if got := schema.Field(2).Type.ID(); got != arrow.STRING {
		t.Errorf("region column type = %v, want STRING", got)
	}
	if nulls := table.Column(2).Data().NullN(); nulls != 1 {
		t.Errorf("region nulls = %d, want 1", nulls)
	}
}

func TestBuildArrowTableEmpty(t *testing.T) {
	if _, err := BuildArrowTable([]string{"id"}, nil); err == nil {
		t.Fatal("empty row set should not build a table")
	}
}

func TestToCSV(t *testing.T) {
	table, err := BuildArrowTable([]string{"id", "year", "region"}, exportRows())
	if err != nil {
		t.Fatalf("BuildArrowTable: %v", err)
	}
	defer table.Release()

	path := filepath.Join(t.TempDir(), "atlas"+FormatCSV.Ext())
	if err := ToCSV(table, path); err != nil {
		t.Fatalf("ToCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(recs))
	}
	if recs[0][0] != "id" || recs[0][2] != "region" {
		t.Errorf("header = %v", recs[0])
	}
	if recs[1][2] != "Tuscany" {
		t.Errorf("row 1 region = %q", recs[1][2])
	}
	if recs[2][2] != "" {
		t.Errorf("absent value should export empty, got %q", recs[2][2])
	}
}

func TestToJSON(t *testing.T) {
	table, err := BuildArrowTable([]string{"id", "year"}, exportRows())
	if err != nil {
		t.Fatalf("BuildArrowTable: %v", err)
	}
	defer table.Release()

	path := filepath.Join(t.TempDir(), "atlas"+FormatJSON.Ext())
	if err := ToJSON(table, path); err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var records []map[string]interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0]["id"] != "RA-A031" {
		t.Errorf("record 0 id = %v", records[0]["id"])
	}
	if y, ok := records[1]["year"].(float64); !ok || y != 1310.5 {
		t.Errorf("record 1 year = %v, numeric value expected", records[1]["year"])
	}
}

func TestToParquet(t *testing.T) {
	table, err := BuildArrowTable([]string{"id", "year"}, exportRows())
	if err != nil {
		t.Fatalf("BuildArrowTable: %v", err)
	}
	defer table.Release()

	path := filepath.Join(t.TempDir(), "atlas"+FormatParquet.Ext())
	if err := ToParquet(table, path); err != nil {
		t.Fatalf("ToParquet: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("parquet file is empty")
	}
}
