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
	"fmt"
	"strconv"
	"strings"

	"sampleatlas/internal/dataset"
)

// Comparison operators
type CompOp int

const (
	OpEqual CompOp = iota
	OpNotEqual
	OpGreater
	OpLess
	OpGreaterEqual
	OpLessEqual
	OpContains
)

// Expression represents a single comparison against one attribute.
type Expression struct {
	Attr     string
	Operator CompOp
	Value    string
}

// LogicalOp represents AND/OR operations
type LogicalOp int

const (
	LogicAND LogicalOp = iota
	LogicOR
)

// Query represents a complete filter query with multiple expressions.
type Query struct {
	Expressions []Expression
	LogicOps    []LogicalOp // Operations between expressions
}

// HasOperator reports whether the filter text contains a comparison
// operator, i.e. whether it should be parsed as a query rather than
// applied as a plain substring filter.
func HasOperator(text string) bool {
	return strings.ContainsAny(text, "=<>~") || strings.Contains(text, "!=")
}

// ParseQuery parses a filter query like `species = Sheep AND year > 1200`.
func ParseQuery(queryStr string) (*Query, error) {
	if strings.TrimSpace(queryStr) == "" {
		return nil, nil
	}

	query := &Query{
		Expressions: make([]Expression, 0),
		LogicOps:    make([]LogicalOp, 0),
	}

	for _, part := range splitByLogicOps(queryStr) {
		if part.isOperator {
			if strings.EqualFold(part.text, "AND") {
				query.LogicOps = append(query.LogicOps, LogicAND)
			} else {
				query.LogicOps = append(query.LogicOps, LogicOR)
			}
			continue
		}
		expr, err := parseExpression(part.text)
		if err != nil {
			return nil, err
		}
		query.Expressions = append(query.Expressions, expr)
	}

	// Should have N expressions and N-1 operators
	if len(query.LogicOps) != len(query.Expressions)-1 {
		return nil, fmt.Errorf("invalid query: mismatched expressions and operators")
	}

	return query, nil
}

type queryPart struct {
	text       string
	isOperator bool
}

// splitByLogicOps splits the query by AND/OR while preserving the operators.
func splitByLogicOps(query string) []queryPart {
	parts := make([]queryPart, 0)
	current := ""
	i := 0

	flush := func() {
		if strings.TrimSpace(current) != "" {
			parts = append(parts, queryPart{text: strings.TrimSpace(current)})
			current = ""
		}
	}

	for i < len(query) {
		if word, n := logicOpAt(query, i); n > 0 {
			flush()
			parts = append(parts, queryPart{text: word, isOperator: true})
			i += n
			continue
		}
		current += string(query[i])
		i++
	}
	flush()

	return parts
}

// logicOpAt reports whether an AND/OR keyword starts at position i on a
// word boundary, returning the keyword and its length.
func logicOpAt(query string, i int) (string, int) {
	for _, word := range []string{"AND", "OR"} {
		n := len(word)
		if i+n > len(query) || !strings.EqualFold(query[i:i+n], word) {
			continue
		}
		if (i == 0 || isWhitespace(query[i-1])) && (i+n >= len(query) || isWhitespace(query[i+n])) {
			return word, n
		}
	}
	return "", 0
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// parseExpression parses a single expression like "column = value".
func parseExpression(exprStr string) (Expression, error) {
	exprStr = strings.TrimSpace(exprStr)

	// Ordered by symbol length so >= matches before =
	operators := []struct {
		op     CompOp
		symbol string
	}{
		{OpGreaterEqual, ">="},
		{OpLessEqual, "<="},
		{OpNotEqual, "!="},
		{OpEqual, "="},
		{OpGreater, ">"},
		{OpLess, "<"},
		{OpContains, "~"},
	}

	for _, opInfo := range operators {
		idx := strings.Index(exprStr, opInfo.symbol)
		if idx > 0 {
			attr := strings.TrimSpace(exprStr[:idx])
			value := strings.TrimSpace(exprStr[idx+len(opInfo.symbol):])
			value = strings.Trim(value, "\"'")

			return Expression{Attr: attr, Operator: opInfo.op, Value: value}, nil
		}
	}

	return Expression{}, fmt.Errorf("no comparison operator in %q", exprStr)
}

// Matches evaluates the query against one sample.
func (q *Query) Matches(s *dataset.Sample) bool {
	if q == nil || len(q.Expressions) == 0 {
		return true
	}

	result := evaluateExpression(q.Expressions[0], s)
	for i := 0; i < len(q.LogicOps); i++ {
		next := evaluateExpression(q.Expressions[i+1], s)
		switch q.LogicOps[i] {
		case LogicAND:
			result = result && next
		case LogicOR:
			result = result || next
		}
	}
	return result
}

// evaluateExpression evaluates a single expression against a sample.
func evaluateExpression(expr Expression, s *dataset.Sample) bool {
	cell := s.Attr(expr.Attr).Format()

	switch expr.Operator {
	case OpEqual:
		return strings.EqualFold(cell, expr.Value)
	case OpNotEqual:
		return !strings.EqualFold(cell, expr.Value)
	case OpContains:
		return strings.Contains(strings.ToLower(cell), strings.ToLower(expr.Value))
	case OpGreater, OpLess, OpGreaterEqual, OpLessEqual:
		return compareOrdered(cell, expr.Value, expr.Operator)
	}
	return false
}

// compareOrdered compares numerically when both sides parse as numbers,
// falling back to case-insensitive string comparison.
func compareOrdered(cellValue, compareValue string, op CompOp) bool {
	cell, err1 := strconv.ParseFloat(strings.TrimSpace(cellValue), 64)
	compare, err2 := strconv.ParseFloat(strings.TrimSpace(compareValue), 64)

	var cmp int
	if err1 != nil || err2 != nil {
		cmp = strings.Compare(strings.ToLower(cellValue), strings.ToLower(compareValue))
	} else {
		switch {
		case cell < compare:
			cmp = -1
		case cell > compare:
			cmp = 1
		}
	}

	switch op {
	case OpGreater:
		return cmp > 0
	case OpLess:
		return cmp < 0
	case OpGreaterEqual:
		return cmp >= 0
	case OpLessEqual:
		return cmp <= 0
	}
	return false
}
