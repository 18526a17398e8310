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

// Package intent defines the messages views raise on user interaction
// and the coordinator that reconciles them into one consistent view
// state. Views never mutate the store directly; every click becomes an
// intent dispatched here, which keeps the views decoupled from each
// other.
package intent

// Intent is a user-interaction message raised by a view.
type Intent interface {
	isIntent()
}

// SortRequested is raised by a table header click.
type SortRequested struct {
	Column string
}

// FilterChanged is raised when the filter entry text changes.
type FilterChanged struct {
	Text string
}

// ColorChannelChanged is raised by the color channel selector.
type ColorChannelChanged struct {
	Key string
}

// RowSelected is raised by a table row click.
type RowSelected struct {
	ID string
}

// PointActivated is raised by a plot point click. The id must already be
// resolved by indexing the same sample sequence that produced the plot
// geometry; Index is kept for diagnostics.
type PointActivated struct {
	ID    string
	Index int
}

// SpectrumRequested is raised by a click on a sample's id or name cell,
// or a secondary click on a plot point. It is a one-shot action and does
// not alter the selection.
type SpectrumRequested struct {
	ID string
}

func (SortRequested) isIntent()       {}
func (FilterChanged) isIntent()       {}
func (ColorChannelChanged) isIntent() {}
func (RowSelected) isIntent()         {}
func (PointActivated) isIntent()      {}
func (SpectrumRequested) isIntent()   {}
