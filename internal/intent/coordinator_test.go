package intent

import (
	"testing"

	"sampleatlas/internal/dataset"
	"sampleatlas/internal/scene"
	"sampleatlas/internal/store"
	"sampleatlas/internal/table"
)

func testStore() *store.Store {
	ds := &dataset.Dataset{
		Samples: []*dataset.Sample{
			{ID: "a", Attrs: map[string]dataset.Value{"id": dataset.Text("a"), "species": dataset.Text("Sheep")}},
			{ID: "b", Attrs: map[string]dataset.Value{"id": dataset.Text("b"), "species": dataset.Text("Goat")}},
			{ID: "c", Attrs: map[string]dataset.Value{"id": dataset.Text("c"), "species": dataset.Text("Sheep")}},
		},
		Columns: []string{"id", "species"},
		Encodings: map[string]dataset.Encoding{
			"species": {Type: dataset.EncodingCategorical, Attr: "species", Mapping: map[string]int{"Sheep": 0, "Goat": 1}},
		},
		EncodingKeys: []string{"species"},
	}
	return store.New(ds)
}

func TestRowSelection(t *testing.T) {
	st := testStore()
	c := NewCoordinator(st)

	var highlighted []string
	c.OnSelect(func(id string) { highlighted = append(highlighted, id) })

	if c.State() != Unselected {
		t.Fatal("initial state should be Unselected")
	}

	c.Dispatch(RowSelected{ID: "b"})
	if c.State() != Selected || c.SelectedID() != "b" {
		t.Fatalf("state = %v id = %q", c.State(), c.SelectedID())
	}
	if st.Selection() != "b" {
		t.Fatalf("store selection = %q want b", st.Selection())
	}
	if len(highlighted) != 1 || highlighted[0] != "b" {
		t.Fatalf("fan-out = %v", highlighted)
	}
}

func TestSelectionIsMonotonic(t *testing.T) {
	st := testStore()
	c := NewCoordinator(st)

	c.Dispatch(RowSelected{ID: "a"})
	// No source event ever returns the machine to Unselected; an empty
	// id is not a deselect affordance.
	c.Dispatch(RowSelected{ID: ""})
	if c.State() != Selected || c.SelectedID() != "a" {
		t.Fatalf("selection must stay, got state=%v id=%q", c.State(), c.SelectedID())
	}

	c.Dispatch(RowSelected{ID: "c"})
	if c.SelectedID() != "c" {
		t.Fatalf("reselection failed: %q", c.SelectedID())
	}
}

func TestSpectrumRequestBypassesSelection(t *testing.T) {
	st := testStore()
	c := NewCoordinator(st)

	var shown []string
	c.OnSpectrum(func(id string) { shown = append(shown, id) })

	c.Dispatch(SpectrumRequested{ID: "a"})
	if c.State() != Unselected {
		t.Fatal("spectrum request must not change selection state")
	}
	if st.Selection() != "" {
		t.Fatal("spectrum request must not mutate store selection")
	}
	if len(shown) != 1 || shown[0] != "a" {
		t.Fatalf("spectrum handler calls = %v", shown)
	}
}

func TestPointActivationResolvesThroughGeometry(t *testing.T) {
	st := testStore()
	c := NewCoordinator(st)
	ds := st.Dataset()

	// Build geometry from the same filtered sequence the plot uses.
	m := table.NewModel(ds)
	rows := m.PlotRows("sheep")
	g := scene.Build(rows, st.ColorEncoding())

	for i := 0; i < g.Len(); i++ {
		id, ok := g.IDAt(i)
		if !ok {
			t.Fatalf("IDAt(%d) failed", i)
		}
		if id != rows[i].ID {
			t.Fatalf("positional identity broken: IDAt(%d)=%q want %q", i, id, rows[i].ID)
		}
		c.Dispatch(PointActivated{ID: id, Index: i})
		if st.Selection() != rows[i].ID {
			t.Fatalf("selection = %q want %q", st.Selection(), rows[i].ID)
		}
	}
}

func TestViewStateIntentsRouteToStore(t *testing.T) {
	st := testStore()
	c := NewCoordinator(st)

	c.Dispatch(SortRequested{Column: "species"})
	if got := st.Sort(); got.Column != "species" || got.Direction != table.SortAscending {
		t.Fatalf("sort intent not applied: %+v", got)
	}

	c.Dispatch(FilterChanged{Text: "goat"})
	if st.Filter() != "goat" {
		t.Fatalf("filter intent not applied: %q", st.Filter())
	}

	c.Dispatch(ColorChannelChanged{Key: "species"})
	if st.ColorKey() != "species" {
		t.Fatalf("color intent not applied: %q", st.ColorKey())
	}
}
