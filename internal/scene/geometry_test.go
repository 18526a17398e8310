package scene

import (
	"testing"

	"sampleatlas/internal/dataset"
	"sampleatlas/internal/encoding"
)

func mkSample(id string, x, y, z interface{}, species string) *dataset.Sample {
	attrs := map[string]dataset.Value{"id": dataset.Text(id)}
	if x != nil {
		attrs[XAttr] = dataset.Number(x.(float64))
	}
	if y != nil {
		attrs[YAttr] = dataset.Number(y.(float64))
	}
	if z != nil {
		attrs[ZAttr] = dataset.Number(z.(float64))
	}
	if species != "" {
		attrs["species"] = dataset.Text(species)
	}
	return &dataset.Sample{ID: id, Attrs: attrs}
}

var catDesc = dataset.Encoding{
	Type:    dataset.EncodingCategorical,
	Attr:    "species",
	Mapping: map[string]int{"Sheep": 0, "Goat": 1},
}

func TestBuildGeometry(t *testing.T) {
	samples := []*dataset.Sample{
		mkSample("a", 1.0, 2.0, 3.0, "Sheep"),
		mkSample("b", -1.0, 0.5, 2.0, "Goat"),
	}
	g := Build(samples, catDesc)

	if g.Len() != 2 {
		t.Fatalf("Len = %d", g.Len())
	}
	if g.Xs[0] != 1 || g.Ys[0] != 2 || g.Zs[0] != 3 {
		t.Fatalf("coords wrong: %v %v %v", g.Xs[0], g.Ys[0], g.Zs[0])
	}
	if g.Colors[0] != 0 || g.Colors[1] != 1 {
		t.Fatalf("colors wrong: %v", g.Colors)
	}
}

func TestBuildMissingCoordinateFallsBackToZero(t *testing.T) {
	g := Build([]*dataset.Sample{mkSample("a", nil, 2.0, nil, "")}, catDesc)
	if g.Xs[0] != 0 || g.Zs[0] != 0 {
		t.Fatalf("missing coords should be 0, got x=%v z=%v", g.Xs[0], g.Zs[0])
	}
	if g.Ys[0] != 2 {
		t.Fatalf("present coord lost: %v", g.Ys[0])
	}
}

func TestBuildUnmappedSpeciesGetsUnknownOrdinal(t *testing.T) {
	g := Build([]*dataset.Sample{mkSample("a", 0.0, 0.0, 0.0, "Cow")}, catDesc)
	if g.Colors[0] != encoding.UnknownOrdinal {
		t.Fatalf("unmapped value color = %v want %v", g.Colors[0], encoding.UnknownOrdinal)
	}
}

func TestRecolorKeepsGeometry(t *testing.T) {
	samples := []*dataset.Sample{
		mkSample("a", 1.0, 2.0, 3.0, "Sheep"),
	}
	samples[0].Attrs["year"] = dataset.Number(1250)

	g := Build(samples, catDesc)
	x, y, z := g.Xs[0], g.Ys[0], g.Zs[0]

	g.Recolor(dataset.Encoding{Type: dataset.EncodingContinuous, Attr: "year"})
	if g.Colors[0] != 1250 {
		t.Fatalf("recolor value = %v want 1250", g.Colors[0])
	}
	if g.Xs[0] != x || g.Ys[0] != y || g.Zs[0] != z {
		t.Fatal("recolor must not touch coordinates")
	}
}

func TestIDAtBounds(t *testing.T) {
	g := Build([]*dataset.Sample{mkSample("a", 0.0, 0.0, 0.0, "")}, catDesc)
	if id, ok := g.IDAt(0); !ok || id != "a" {
		t.Fatalf("IDAt(0) = %q, %v", id, ok)
	}
	if _, ok := g.IDAt(1); ok {
		t.Fatal("IDAt out of range should fail")
	}
	if _, ok := g.IDAt(-1); ok {
		t.Fatal("IDAt negative should fail")
	}
}
