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
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind discriminates the value variants an attribute can hold.
type Kind int

const (
	// KindAbsent represents a missing or null attribute.
	KindAbsent Kind = iota
	// KindNumber represents a numeric attribute.
	KindNumber
	// KindText represents a textual attribute.
	KindText
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "Absent"
	case KindNumber:
		return "Number"
	case KindText:
		return "Text"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Value is a tagged container for one attribute value.
// Attributes arrive from JSON as numbers, strings, booleans or null;
// tagging them once at load time lets sorting, filtering and formatting
// switch exhaustively instead of re-inspecting interface types.
type Value struct {
	Kind Kind
	Num  float64
	Text string
}

// Absent is the canonical missing value.
var Absent = Value{Kind: KindAbsent}

// ValueOf converts a decoded JSON value into a tagged Value.
func ValueOf(raw interface{}) Value {
	switch v := raw.(type) {
	case nil:
		return Absent
	case float64:
		return Value{Kind: KindNumber, Num: v}
	case int:
		return Value{Kind: KindNumber, Num: float64(v)}
	case bool:
		if v {
			return Value{Kind: KindText, Text: "true"}
		}
		return Value{Kind: KindText, Text: "false"}
	case string:
		return Value{Kind: KindText, Text: v}
	default:
		return Value{Kind: KindText, Text: fmt.Sprintf("%v", v)}
	}
}

// Number builds a numeric Value.
func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// Text builds a textual Value.
func Text(s string) Value { return Value{Kind: KindText, Text: s} }

// IsAbsent reports whether the value is missing.
func (v Value) IsAbsent() bool { return v.Kind == KindAbsent }

// Float returns the numeric value and whether the value is numeric.
func (v Value) Float() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	return v.Num, true
}

// Format returns the display form of the value. Non-integer numbers are
// rendered with two decimal places; integers keep their natural form and
// absent values render empty.
func (v Value) Format() string {
	switch v.Kind {
	case KindAbsent:
		return ""
	case KindNumber:
		if v.Num == math.Trunc(v.Num) && !math.IsInf(v.Num, 0) {
			return strconv.FormatFloat(v.Num, 'f', -1, 64)
		}
		return strconv.FormatFloat(v.Num, 'f', 2, 64)
	default:
		return v.Text
	}
}

// SortKey returns the string used when a textual comparison is required.
// Absent values compare as the empty string.
func (v Value) SortKey() string {
	switch v.Kind {
	case KindAbsent:
		return ""
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	default:
		return v.Text
	}
}

// Compare orders two values: if either side is textual (or absent) the
// comparison is case-insensitive lexicographic, otherwise numeric.
// Returns a negative number, zero, or a positive number.
func Compare(a, b Value) int {
	if a.Kind == KindNumber && b.Kind == KindNumber {
		switch {
		case a.Num < b.Num:
			return -1
		case a.Num > b.Num:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(a.SortKey()), strings.ToLower(b.SortKey()))
}
