package table

import "testing"

func TestParseQuerySingleExpression(t *testing.T) {
	q, err := ParseQuery("species = Sheep")
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if len(q.Expressions) != 1 {
		t.Fatalf("expected 1 expression, got %d", len(q.Expressions))
	}
	e := q.Expressions[0]
	if e.Attr != "species" || e.Operator != OpEqual || e.Value != "Sheep" {
		t.Fatalf("expression wrong: %+v", e)
	}
}

func TestParseQueryOperatorPrecedence(t *testing.T) {
	// >= must win over > and =
	q, err := ParseQuery("year >= 1300")
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if q.Expressions[0].Operator != OpGreaterEqual || q.Expressions[0].Value != "1300" {
		t.Fatalf("expression wrong: %+v", q.Expressions[0])
	}
}

func TestParseQueryLogicOps(t *testing.T) {
	q, err := ParseQuery("a = 1 AND b = 2 OR c ~ x")
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if len(q.Expressions) != 3 || len(q.LogicOps) != 2 {
		t.Fatalf("got %d expressions, %d ops", len(q.Expressions), len(q.LogicOps))
	}
	if q.LogicOps[0] != LogicAND || q.LogicOps[1] != LogicOR {
		t.Fatalf("logic ops wrong: %v", q.LogicOps)
	}
}

func TestParseQueryQuotedValue(t *testing.T) {
	q, err := ParseQuery(`name = "Folio 12"`)
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if q.Expressions[0].Value != "Folio 12" {
		t.Fatalf("quotes should be stripped: %q", q.Expressions[0].Value)
	}
}

func TestParseQueryAndInsideWordIsNotAnOperator(t *testing.T) {
	q, err := ParseQuery("region ~ Flanders")
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if len(q.Expressions) != 1 || q.Expressions[0].Value != "Flanders" {
		t.Fatalf("AND inside a word must not split: %+v", q.Expressions)
	}
}

func TestParseQueryErrors(t *testing.T) {
	for _, bad := range []string{"= 1", "a = 1 AND", "AND a = 1", "noop"} {
		if _, err := ParseQuery(bad); err == nil {
			t.Errorf("ParseQuery(%q) should fail", bad)
		}
	}
}

func TestParseQueryEmpty(t *testing.T) {
	q, err := ParseQuery("   ")
	if err != nil || q != nil {
		t.Fatalf("blank query should parse to nil, got %v, %v", q, err)
	}
	if !q.Matches(mkSample("a", nil)) {
		t.Fatal("nil query must match everything")
	}
}
