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

package table

import (
	"log"
	"sort"
	"strings"

	"sampleatlas/internal/dataset"
)

// Model derives row sequences from a loaded dataset. It holds no view
// state of its own; filter and sort are passed in per derivation so the
// store remains the single owner of session state.
type Model struct {
	ds *dataset.Dataset
}

// NewModel creates a derivation model over a dataset.
func NewModel(ds *dataset.Dataset) *Model {
	return &Model{ds: ds}
}

// Columns returns the visible column names in display order.
func (m *Model) Columns() []string { return m.ds.Columns }

// TotalRows returns the unfiltered sample count.
func (m *Model) TotalRows() int { return len(m.ds.Samples) }

// PlotRows returns the filtered sample sequence in dataset (load) order.
// This is the sequence plot geometry is built from: sorting the table
// never reorders it, so plot point identity stays positional.
func (m *Model) PlotRows(filter string) []*dataset.Sample {
	matches := m.matcher(filter)
	rows := make([]*dataset.Sample, 0, len(m.ds.Samples))
	for _, s := range m.ds.Samples {
		if matches(s) {
			rows = append(rows, s)
		}
	}
	return rows
}

// VisibleRows returns the filtered, sorted sample sequence shown in the
// table. The sort is stable: equal keys keep their filtered order.
func (m *Model) VisibleRows(filter string, st SortState) []*dataset.Sample {
	rows := m.PlotRows(filter)
	if !st.IsSorted() {
		return rows
	}

	sort.SliceStable(rows, func(i, j int) bool {
		c := dataset.Compare(rows[i].Attr(st.Column), rows[j].Attr(st.Column))
		if st.Direction == SortDescending {
			return c > 0
		}
		return c < 0
	})
	return rows
}

// Cells returns one formatted cell per visible column for a sample.
// Columns the sample lacks render empty.
func (m *Model) Cells(s *dataset.Sample) []string {
	cells := make([]string, len(m.ds.Columns))
	for i, col := range m.ds.Columns {
		cells[i] = s.Attr(col).Format()
	}
	return cells
}

// matcher builds the row predicate for a filter text. Text containing a
// comparison operator is parsed as a query expression; anything else is a
// case-insensitive substring match over every attribute's string form.
// Queries that do not parse, or that compare an attribute the dataset
// does not have, fall back to substring matching rather than erroring.
func (m *Model) matcher(filter string) func(*dataset.Sample) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return func(*dataset.Sample) bool { return true }
	}

	if HasOperator(filter) {
		q, err := ParseQuery(filter)
		switch {
		case err != nil:
			log.Printf("filter query %q not parseable, using substring match: %v", filter, err)
		case !m.queryAttrsKnown(q):
			log.Printf("filter query %q names an unknown attribute, using substring match", filter)
		default:
			return q.Matches
		}
	}

	needle := strings.ToLower(filter)
	return func(s *dataset.Sample) bool {
		for _, v := range s.Attrs {
			if strings.Contains(strings.ToLower(v.Format()), needle) {
				return true
			}
		}
		return false
	}
}

// queryAttrsKnown reports whether every attribute the query compares
// exists somewhere in the dataset. Operator-looking text over unknown
// names (a literal like "x=1") is treated as plain filter text.
func (m *Model) queryAttrsKnown(q *Query) bool {
	if q == nil {
		return false
	}
	for _, expr := range q.Expressions {
		if !m.knownAttr(expr.Attr) {
			return false
		}
	}
	return true
}

func (m *Model) knownAttr(name string) bool {
	for _, col := range m.ds.Columns {
		if col == name {
			return true
		}
	}
	for _, s := range m.ds.Samples {
		if _, ok := s.Attrs[name]; ok {
			return true
		}
	}
	return false
}
