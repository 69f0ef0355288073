package resolve

import (
	"encoding/json"
	"testing"
)

func TestParseGeometryKind(t *testing.T) {
	tests := []struct {
		in   string
		want GeometryKind
	}{
		{"Point", GeometryPoint},
		{"MultiPoint", GeometryMultiPoint},
		{"LineString", GeometryLineString},
		{"MultiLineString", GeometryMultiLineString},
		{"Polygon", GeometryPolygon},
		{"MultiPolygon", GeometryMultiPolygon},
		{"GeometryCollection", GeometryUnknown},
		{"polygon", GeometryUnknown},
		{"", GeometryUnknown},
	}

	for _, tt := range tests {
		if got := ParseGeometryKind(tt.in); got != tt.want {
			t.Errorf("ParseGeometryKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGeometryKindPredicates(t *testing.T) {
	for k := GeometryUnknown; k <= GeometryMultiPolygon; k++ {
		poly := k == GeometryPolygon || k == GeometryMultiPolygon
		line := k == GeometryLineString || k == GeometryMultiLineString
		if k.IsPolygonal() != poly {
			t.Errorf("%v.IsPolygonal() = %v", k, k.IsPolygonal())
		}
		if k.IsLinear() != line {
			t.Errorf("%v.IsLinear() = %v", k, k.IsLinear())
		}
	}
	if GeometryKind(99).String() != "Unknown" {
		t.Errorf("out-of-range kind String() = %q", GeometryKind(99).String())
	}
}

func TestFeatureJSON(t *testing.T) {
	in := `{"geometry":"MultiLineString","layer":"roads","kind":"highway"}`
	var f Feature
	if err := json.Unmarshal([]byte(in), &f); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := Feature{Geometry: GeometryMultiLineString, Layer: "roads", Kind: "highway"}
	if f != want {
		t.Errorf("Unmarshal = %+v, want %+v", f, want)
	}

	out, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != in {
		t.Errorf("Marshal = %s, want %s", out, in)
	}

	var unknown Feature
	if err := json.Unmarshal([]byte(`{"geometry":"Circle","layer":"x"}`), &unknown); err != nil {
		t.Fatalf("Unmarshal unknown geometry: %v", err)
	}
	if unknown.Geometry != GeometryUnknown {
		t.Errorf("unknown geometry = %v", unknown.Geometry)
	}
}
