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

// Package export writes the currently visible (filtered and sorted) rows
// to Parquet, CSV or JSON by way of an Arrow table.
package export

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"sampleatlas/internal/dataset"
)

// BuildArrowTable converts a derived row sequence into an Arrow table
// over the visible columns. A column whose non-absent values are all
// numeric becomes FLOAT64; everything else becomes STRING. Absent values
// become nulls.
func BuildArrowTable(columns []string, rows []*dataset.Sample) (arrow.Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data to export")
	}

	pool := memory.NewGoAllocator()

	fields := make([]arrow.Field, len(columns))
	arrays := make([]arrow.Array, len(columns))
	for i, col := range columns {
		if numericColumn(col, rows) {
			fields[i] = arrow.Field{Name: col, Type: arrow.PrimitiveTypes.Float64, Nullable: true}
			arrays[i] = buildFloatColumn(pool, col, rows)
		} else {
			fields[i] = arrow.Field{Name: col, Type: arrow.BinaryTypes.String, Nullable: true}
			arrays[i] = buildStringColumn(pool, col, rows)
		}
	}

	schema := arrow.NewSchema(fields, nil)
	cols := make([]arrow.Column, len(columns))
	for i, arr := range arrays {
		chunked := arrow.NewChunked(fields[i].Type, []arrow.Array{arr})
		cols[i] = *arrow.NewColumn(fields[i], chunked)
		arr.Release()
	}

	return array.NewTable(schema, cols, int64(len(rows))), nil
}

// numericColumn reports whether every present value in the column is a number.
func numericColumn(col string, rows []*dataset.Sample) bool {
	present := false
	for _, s := range rows {
		v := s.Attr(col)
		if v.IsAbsent() {
			continue
		}
		if _, ok := v.Float(); !ok {
			return false
		}
		present = true
	}
	return present
}

func buildFloatColumn(pool memory.Allocator, col string, rows []*dataset.Sample) arrow.Array {
	b := array.NewFloat64Builder(pool)
	defer b.Release()
	for _, s := range rows {
		if n, ok := s.Attr(col).Float(); ok {
			b.Append(n)
		} else {
			b.AppendNull()
		}
	}
	return b.NewArray()
}

func buildStringColumn(pool memory.Allocator, col string, rows []*dataset.Sample) arrow.Array {
	b := array.NewStringBuilder(pool)
	defer b.Release()
	for _, s := range rows {
		v := s.Attr(col)
		if v.IsAbsent() {
			b.AppendNull()
		} else {
			b.Append(v.Format())
		}
	}
	return b.NewArray()
}
