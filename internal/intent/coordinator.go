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

package intent

import (
	"log"

	"sampleatlas/internal/store"
)

// State is the coordinator's selection state.
type State int

const (
	// Unselected is the initial state; no sample has ever been picked.
	Unselected State = iota
	// Selected means some sample is the current selection. Selection is
	// monotonic for the session: there is no transition back to
	// Unselected from view events.
	Selected
)

// Coordinator is the single authority reconciling selection intents from
// the table and the plot into one selected-sample identity.
type Coordinator struct {
	store *store.Store

	state      State
	selectedID string

	onSelect   []func(id string)
	onSpectrum func(id string)
}

// NewCoordinator creates a coordinator bound to a store.
func NewCoordinator(st *store.Store) *Coordinator {
	return &Coordinator{store: st}
}

// OnSelect registers a fan-out callback invoked after the selection
// changes (table highlight, scroll into view).
func (c *Coordinator) OnSelect(fn func(id string)) {
	c.onSelect = append(c.onSelect, fn)
}

// OnSpectrum registers the handler for spectrum requests.
func (c *Coordinator) OnSpectrum(fn func(id string)) {
	c.onSpectrum = fn
}

// State returns the current selection state.
func (c *Coordinator) State() State { return c.state }

// SelectedID returns the currently selected sample id, "" before the
// first selection.
func (c *Coordinator) SelectedID() string { return c.selectedID }

// Dispatch routes one intent. View-state intents mutate the store;
// selection intents additionally drive the selection state machine and
// fan out; spectrum requests bypass the state machine entirely.
func (c *Coordinator) Dispatch(in Intent) {
	switch in := in.(type) {
	case SortRequested:
		c.store.SetSort(in.Column)
	case FilterChanged:
		c.store.SetFilter(in.Text)
	case ColorChannelChanged:
		c.store.SetColorChannel(in.Key)
	case RowSelected:
		c.selectSample(in.ID)
	case PointActivated:
		c.selectSample(in.ID)
	case SpectrumRequested:
		if c.onSpectrum != nil {
			c.onSpectrum(in.ID)
		}
	default:
		log.Printf("unhandled intent %T", in)
	}
}

func (c *Coordinator) selectSample(id string) {
	if id == "" {
		return
	}
	c.state = Selected
	c.selectedID = id
	c.store.SetSelection(id)
	for _, fn := range c.onSelect {
		fn(id)
	}
}
