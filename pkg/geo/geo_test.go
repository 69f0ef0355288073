package geo

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"

	"github.com/matzehuels/tilestyle/pkg/errors"
	"github.com/matzehuels/tilestyle/pkg/resolve"
)

const sampleCollection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,0]]]},
     "properties": {"layer": "water"}},
    {"type": "Feature", "geometry": {"type": "MultiLineString", "coordinates": [[[0,0],[1,1]]]},
     "properties": {"layer": "roads", "kind": "highway"}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [1,2]},
     "properties": {"layer": "places", "name": "Oslo", "kind": 7}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [0,0]}, "properties": null}
  ]
}`

func TestReadGeoJSON(t *testing.T) {
	got, err := ReadGeoJSON(strings.NewReader(sampleCollection))
	if err != nil {
		t.Fatalf("ReadGeoJSON() error: %v", err)
	}

	want := []resolve.Feature{
		{Geometry: resolve.GeometryPolygon, Layer: "water"},
		{Geometry: resolve.GeometryMultiLineString, Layer: "roads", Kind: "highway"},
		{Geometry: resolve.GeometryPoint, Layer: "places", Name: "Oslo", Kind: "7"},
		{Geometry: resolve.GeometryPoint},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d features, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("feature %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReadGeoJSONInvalid(t *testing.T) {
	_, err := ReadGeoJSON(strings.NewReader(`{"type": "FeatureCollection", "features": [`))
	if err == nil {
		t.Fatal("expected error for truncated input")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		geom orb.Geometry
		want resolve.GeometryKind
	}{
		{"nil", nil, resolve.GeometryUnknown},
		{"point", orb.Point{1, 2}, resolve.GeometryPoint},
		{"multipoint", orb.MultiPoint{{1, 2}}, resolve.GeometryMultiPoint},
		{"linestring", orb.LineString{{0, 0}, {1, 1}}, resolve.GeometryLineString},
		{"multilinestring", orb.MultiLineString{{{0, 0}, {1, 1}}}, resolve.GeometryMultiLineString},
		{"ring", orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 0}}, resolve.GeometryPolygon},
		{"polygon", orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}, resolve.GeometryPolygon},
		{"multipolygon", orb.MultiPolygon{{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}}, resolve.GeometryMultiPolygon},
		{"bound", orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}, resolve.GeometryPolygon},
		{"collection", orb.Collection{orb.Point{1, 2}}, resolve.GeometryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.geom); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func testTile(t *testing.T) mvt.Layers {
	t.Helper()

	roads := geojson.NewFeatureCollection()
	hw := geojson.NewFeature(orb.LineString{{0, 0}, {100, 100}})
	hw.Properties["kind"] = "highway"
	hw.Properties["layer"] = "ignored"
	roads.Append(hw)
	minor := geojson.NewFeature(orb.LineString{{10, 0}, {10, 100}})
	minor.Properties["kind"] = "minor_road"
	roads.Append(minor)

	places := geojson.NewFeatureCollection()
	city := geojson.NewFeature(orb.Point{50, 50})
	city.Properties["name"] = "Vienna"
	places.Append(city)

	return mvt.NewLayers(map[string]*geojson.FeatureCollection{
		"roads":  roads,
		"places": places,
	})
}

func TestDecodeMVT(t *testing.T) {
	for _, gzipped := range []bool{false, true} {
		layers := testTile(t)

		var (
			data []byte
			err  error
		)
		if gzipped {
			data, err = mvt.MarshalGzipped(layers)
		} else {
			data, err = mvt.Marshal(layers)
		}
		if err != nil {
			t.Fatalf("marshal tile: %v", err)
		}

		features, err := DecodeMVT(data, gzipped)
		if err != nil {
			t.Fatalf("DecodeMVT(gzipped=%v) error: %v", gzipped, err)
		}

		counts := LayerCounts(features)
		if counts["roads"] != 2 || counts["places"] != 1 || len(counts) != 2 {
			t.Errorf("layer counts = %v", counts)
		}

		for _, f := range features {
			switch f.Layer {
			case "roads":
				if f.Geometry != resolve.GeometryLineString {
					t.Errorf("road geometry = %v", f.Geometry)
				}
				if f.Kind != "highway" && f.Kind != "minor_road" {
					t.Errorf("road kind = %q", f.Kind)
				}
			case "places":
				if f.Geometry != resolve.GeometryPoint || f.Name != "Vienna" {
					t.Errorf("place = %+v", f)
				}
			default:
				t.Errorf("unexpected layer %q", f.Layer)
			}
		}
	}
}

func TestDecodeMVTInvalid(t *testing.T) {
	_, err := DecodeMVT([]byte("not a tile"), true)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("DecodeMVT(garbage) error = %v, want %v", err, errors.ErrCodeInvalidFormat)
	}
}

func TestSummary(t *testing.T) {
	features := []resolve.Feature{
		{Layer: "water"}, {Layer: "roads"}, {Layer: "water"}, {Layer: "places"},
	}
	if got, want := Summary(features), "water=2 roads=1 places=1"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
	if got := Summary(nil); got != "" {
		t.Errorf("Summary(nil) = %q, want empty", got)
	}
}

func TestTag(t *testing.T) {
	props := geojson.Properties{
		"str":    "Oslo",
		"float":  42.0,
		"frac":   1.5,
		"int":    int64(-3),
		"uint":   uint64(9),
		"f32":    float32(2),
		"zero":   0.0,
		"true":   true,
		"false":  false,
		"null":   nil,
		"object": map[string]any{"a": 1},
		"array":  []any{"a"},
	}
	tests := []struct {
		key  string
		want string
	}{
		{"str", "Oslo"},
		{"float", "42"},
		{"frac", "1.5"},
		{"int", "-3"},
		{"uint", "9"},
		{"f32", "2"},
		{"zero", ""},
		{"true", "true"},
		{"false", ""},
		{"null", ""},
		{"object", ""},
		{"array", ""},
		{"missing", ""},
	}
	for _, tt := range tests {
		if got := Tag(props, tt.key); got != tt.want {
			t.Errorf("Tag(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
	if got := Tag(nil, "name"); got != "" {
		t.Errorf("Tag(nil) = %q, want empty", got)
	}
}

func TestReadGeoJSONNumericTags(t *testing.T) {
	const input = `{"type": "FeatureCollection", "features": [
		{"type": "Feature", "geometry": {"type": "Point", "coordinates": [0,0]},
		 "properties": {"layer": 5, "kind": 2, "name": 42}}
	]}`
	got, err := ReadGeoJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadGeoJSON() error: %v", err)
	}
	want := resolve.Feature{Geometry: resolve.GeometryPoint, Layer: "5", Kind: "2", Name: "42"}
	if len(got) != 1 || got[0] != want {
		t.Errorf("ReadGeoJSON() = %+v, want [%+v]", got, want)
	}
}

func TestDecodeMVTNumericTags(t *testing.T) {
	places := geojson.NewFeatureCollection()
	stop := geojson.NewFeature(orb.Point{10, 10})
	stop.Properties["name"] = 101.0
	stop.Properties["kind"] = 3.0
	places.Append(stop)

	data, err := mvt.Marshal(mvt.NewLayers(map[string]*geojson.FeatureCollection{"places": places}))
	if err != nil {
		t.Fatalf("marshal tile: %v", err)
	}
	features, err := DecodeMVT(data, false)
	if err != nil {
		t.Fatalf("DecodeMVT() error: %v", err)
	}
	if len(features) != 1 {
		t.Fatalf("got %d features, want 1", len(features))
	}
	if f := features[0]; f.Layer != "places" || f.Name != "101" || f.Kind != "3" {
		t.Errorf("feature = %+v", f)
	}
}
