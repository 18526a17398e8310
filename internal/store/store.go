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

// Package store owns the loaded dataset and the session's mutable view
// state. All state mutation flows through the Store's operations; views
// read derived state and never keep their own copy of sort, filter or
// selection.
package store

import (
	"log"
	"sync"

	"sampleatlas/internal/dataset"
	"sampleatlas/internal/table"
)

// EventType identifies view-state change events.
type EventType int

const (
	// EventSortChanged fires after SetSort; only the table re-derives.
	EventSortChanged EventType = iota
	// EventFilterChanged fires after SetFilter; table and plot re-derive.
	EventFilterChanged
	// EventColorChanged fires after SetColorChannel; the plot recolors
	// without rebuilding geometry.
	EventColorChanged
	// EventSelectionChanged fires after SetSelection.
	EventSelectionChanged
)

// Listener is called when an event occurs.
type Listener func(data interface{})

// Store holds the immutable dataset plus the session view state.
// Mutations are serialized by the mutex and observable synchronously:
// a getter called after a Set operation returns sees the new state.
type Store struct {
	mu sync.RWMutex

	ds *dataset.Dataset

	sortState table.SortState
	filter    string
	colorKey  string
	selected  string

	listeners map[EventType][]Listener
}

// New creates a store over a loaded dataset. View state starts as
// (no sort, no filter, first encoding key, no selection).
func New(ds *dataset.Dataset) *Store {
	s := &Store{
		ds:        ds,
		listeners: make(map[EventType][]Listener),
	}
	if len(ds.EncodingKeys) > 0 {
		s.colorKey = ds.EncodingKeys[0]
	}
	return s
}

// On registers an event listener for the specified event type.
func (s *Store) On(event EventType, listener Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// emit triggers all listeners for the specified event type.
func (s *Store) emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Dataset returns the loaded dataset.
func (s *Store) Dataset() *dataset.Dataset { return s.ds }

// Sort returns the current sort state.
func (s *Store) Sort() table.SortState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortState
}

// Filter returns the current filter text.
func (s *Store) Filter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// ColorKey returns the active color channel key.
func (s *Store) ColorKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.colorKey
}

// ColorEncoding returns the active encoding descriptor.
func (s *Store) ColorEncoding() dataset.Encoding {
	s.mu.RLock()
	key := s.colorKey
	s.mu.RUnlock()
	e, _ := s.ds.Encoding(key)
	return e
}

// Selection returns the selected sample id, "" when nothing is selected.
func (s *Store) Selection() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// SetSort applies a header click: the active column toggles direction,
// a new column sorts ascending. Sorting only affects the table, never
// plot geometry.
func (s *Store) SetSort(column string) {
	s.mu.Lock()
	s.sortState = s.sortState.Toggled(column)
	st := s.sortState
	s.mu.Unlock()
	s.emit(EventSortChanged, st)
}

// SetFilter replaces the filter text. Empty text means no filter.
func (s *Store) SetFilter(text string) {
	s.mu.Lock()
	s.filter = text
	s.mu.Unlock()
	s.emit(EventFilterChanged, text)
}

// SetColorChannel switches the active encoding. An unknown key is
// ignored and the prior channel stays active; this is a tolerant
// default, not an error.
func (s *Store) SetColorChannel(key string) {
	if _, ok := s.ds.Encoding(key); !ok {
		log.Printf("ignoring unknown color channel %q", key)
		return
	}
	s.mu.Lock()
	s.colorKey = key
	s.mu.Unlock()
	s.emit(EventColorChanged, key)
}

// SetSelection replaces the selected sample id; "" clears the highlight.
func (s *Store) SetSelection(id string) {
	s.mu.Lock()
	s.selected = id
	s.mu.Unlock()
	s.emit(EventSelectionChanged, id)
}
