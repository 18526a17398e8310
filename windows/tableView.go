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
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"sampleatlas/internal/dataset"
	"sampleatlas/internal/intent"
	"sampleatlas/internal/store"
	"sampleatlas/internal/table"
)

var rowHighlight = color.NRGBA{R: 0x1e, G: 0x5a, B: 0x96, A: 0x60}

// TableView renders the visible (filtered, sorted) sample rows in a grid
// with clickable column headers. Tapping the id or name cell of a row
// requests that sample's spectrum; tapping any other cell selects the
// row. The view keeps no state of its own beyond the derived row slice.
type TableView struct {
	model    *table.Model
	state    *store.Store
	dispatch func(intent.Intent)

	grid *widget.Table
	rows []*dataset.Sample
}

// NewTableView builds the table over the model's visible columns.
func NewTableView(model *table.Model, state *store.Store, dispatch func(intent.Intent)) *TableView {
	t := &TableView{
		model:    model,
		state:    state,
		dispatch: dispatch,
	}
	t.rows = model.VisibleRows(state.Filter(), state.Sort())

	cols := model.Columns()

	t.grid = widget.NewTable(
		func() (int, int) {
			return len(t.rows), len(cols)
		},
		func() fyne.CanvasObject {
			bg := canvas.NewRectangle(color.Transparent)
			label := widget.NewLabel("cell template")
			label.Truncation = fyne.TextTruncateEllipsis
			return container.NewStack(bg, label)
		},
		func(id widget.TableCellID, co fyne.CanvasObject) {
			stack := co.(*fyne.Container)
			bg := stack.Objects[0].(*canvas.Rectangle)
			label := stack.Objects[1].(*widget.Label)

			if id.Row >= len(t.rows) {
				label.SetText("")
				return
			}
			s := t.rows[id.Row]
			label.SetText(t.model.Cells(s)[id.Col])

			if s.ID == t.state.Selection() {
				bg.FillColor = rowHighlight
			} else {
				bg.FillColor = color.Transparent
			}
			bg.Refresh()
		},
	)

	t.grid.ShowHeaderRow = true
	t.grid.CreateHeader = func() fyne.CanvasObject {
		return widget.NewButton("header template", nil)
	}
	t.grid.UpdateHeader = func(id widget.TableCellID, co fyne.CanvasObject) {
		btn := co.(*widget.Button)
		col := cols[id.Col]
		btn.SetText(col + sortIndicator(t.state.Sort(), col))
		btn.OnTapped = func() {
			t.dispatch(intent.SortRequested{Column: col})
		}
	}

	t.grid.OnSelected = func(id widget.TableCellID) {
		defer t.grid.UnselectAll()
		if id.Row < 0 || id.Row >= len(t.rows) || id.Col < 0 {
			return
		}
		sampleID := t.rows[id.Row].ID
		switch cols[id.Col] {
		case "id", "name":
			t.dispatch(intent.SpectrumRequested{ID: sampleID})
		default:
			t.dispatch(intent.RowSelected{ID: sampleID})
		}
	}

	for i, col := range cols {
		w := float32(110)
		if col == "name" {
			w = 180
		}
		t.grid.SetColumnWidth(i, w)
	}

	return t
}

// Object returns the canvas object to place in the layout.
func (t *TableView) Object() fyne.CanvasObject { return t.grid }

// Reload re-derives the visible rows from the current view state.
func (t *TableView) Reload() {
	t.rows = t.model.VisibleRows(t.state.Filter(), t.state.Sort())
	t.grid.Refresh()
}

// VisibleCount returns the number of rows currently shown.
func (t *TableView) VisibleCount() int { return len(t.rows) }

// Refresh repaints without re-deriving rows; used when only the
// highlight changed.
func (t *TableView) Refresh() { t.grid.Refresh() }

// ScrollToSample scrolls the row for the given id into view.
func (t *TableView) ScrollToSample(id string) {
	for i, s := range t.rows {
		if s.ID == id {
			t.grid.ScrollTo(widget.TableCellID{Row: i, Col: 0})
			return
		}
	}
}

func sortIndicator(st table.SortState, col string) string {
	if !st.IsSorted() || st.Column != col {
		return ""
	}
	if st.Direction == table.SortDescending {
		return " ↓"
	}
	return " ↑"
}
