package dataset

import "testing"

func TestValueFormat(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"absent", Absent, ""},
		{"integer", Number(3), "3"},
		{"negative integer", Number(-17), "-17"},
		{"fraction", Number(1.5), "1.50"},
		{"long fraction", Number(0.123456), "0.12"},
		{"text", Text("Sheep"), "Sheep"},
	}
	for _, c := range cases {
		if got := c.v.Format(); got != c.want {
			t.Errorf("%s: Format() = %q want %q", c.name, got, c.want)
		}
	}
}

func TestValueOf(t *testing.T) {
	if v := ValueOf(nil); !v.IsAbsent() {
		t.Fatalf("nil should be absent, got %v", v)
	}
	if v := ValueOf(2.5); v.Kind != KindNumber || v.Num != 2.5 {
		t.Fatalf("float64 mis-tagged: %v", v)
	}
	if v := ValueOf("RA-A031"); v.Kind != KindText || v.Text != "RA-A031" {
		t.Fatalf("string mis-tagged: %v", v)
	}
	if v := ValueOf(true); v.Kind != KindText || v.Text != "true" {
		t.Fatalf("bool mis-tagged: %v", v)
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want int
	}{
		{"numeric less", Number(1), Number(3), -1},
		{"numeric equal", Number(2), Number(2), 0},
		{"numeric greater", Number(3), Number(2), 1},
		{"text case-insensitive equal", Text("sheep"), Text("SHEEP"), 0},
		{"text ordering", Text("goat"), Text("sheep"), -1},
		{"mixed number and text compares as text", Number(10), Text("2"), -1},
		{"absent sorts as empty string", Absent, Text("a"), -1},
	}
	for _, c := range cases {
		got := Compare(c.a, c.b)
		if sign(got) != c.want {
			t.Errorf("%s: Compare = %d want sign %d", c.name, got, c.want)
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func TestSampleAttrMissing(t *testing.T) {
	s := &Sample{ID: "a", Attrs: map[string]Value{"x": Number(1)}}
	if v := s.Attr("nope"); !v.IsAbsent() {
		t.Fatalf("missing attribute should be absent, got %v", v)
	}
}

func TestDisplayNameFallback(t *testing.T) {
	s := &Sample{ID: "RA-A031"}
	if s.DisplayName() != "RA-A031" {
		t.Fatalf("expected id fallback, got %q", s.DisplayName())
	}
	s.Name = "Folio 12"
	if s.DisplayName() != "Folio 12" {
		t.Fatalf("expected name, got %q", s.DisplayName())
	}
}
