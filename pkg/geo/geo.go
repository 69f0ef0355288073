package geo

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"

	"github.com/matzehuels/tilestyle/pkg/errors"
	"github.com/matzehuels/tilestyle/pkg/resolve"
)

// Property keys read from feature tags.
const (
	PropLayer = "layer"
	PropKind  = "kind"
	PropName  = "name"
)

// KindOf returns the geometry kind of g. A nil geometry and collections are
// GeometryUnknown.
func KindOf(g orb.Geometry) resolve.GeometryKind {
	if g == nil {
		return resolve.GeometryUnknown
	}
	return resolve.ParseGeometryKind(g.GeoJSONType())
}

// FromGeoJSON builds a feature description from a GeoJSON feature. The layer
// tag is read from the "layer" property. Tags are read with [Tag].
func FromGeoJSON(f *geojson.Feature) resolve.Feature {
	return resolve.Feature{
		Geometry: KindOf(f.Geometry),
		Layer:    Tag(f.Properties, PropLayer),
		Kind:     Tag(f.Properties, PropKind),
		Name:     Tag(f.Properties, PropName),
	}
}

// Tag returns property key as text. Strings are returned as-is and numbers
// and booleans are formatted, so a numeric name still labels its feature.
// Absent keys, null, zero, false, objects and arrays yield "".
func Tag(p geojson.Properties, key string) string {
	switch v := p[key].(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
	case float64:
		if v != 0 && !math.IsNaN(v) {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	case float32:
		if v != 0 && !math.IsNaN(float64(v)) {
			return strconv.FormatFloat(float64(v), 'f', -1, 32)
		}
	case int64:
		if v != 0 {
			return strconv.FormatInt(v, 10)
		}
	case uint64:
		if v != 0 {
			return strconv.FormatUint(v, 10)
		}
	case int:
		if v != 0 {
			return strconv.Itoa(v)
		}
	}
	return ""
}

// FromCollection converts every feature of fc, preserving order.
func FromCollection(fc *geojson.FeatureCollection) []resolve.Feature {
	out := make([]resolve.Feature, 0, len(fc.Features))
	for _, f := range fc.Features {
		out = append(out, FromGeoJSON(f))
	}
	return out
}

// ReadGeoJSON decodes a GeoJSON FeatureCollection from r.
func ReadGeoJSON(r io.Reader) ([]resolve.Feature, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read geojson")
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode geojson")
	}
	return FromCollection(fc), nil
}

// FromLayers flattens decoded tile layers into feature descriptions, layer by
// layer. Each feature's layer tag is the name of the layer it came from.
func FromLayers(layers mvt.Layers) []resolve.Feature {
	var n int
	for _, l := range layers {
		n += len(l.Features)
	}
	out := make([]resolve.Feature, 0, n)
	for _, l := range layers {
		for _, f := range l.Features {
			feat := FromGeoJSON(f)
			feat.Layer = l.Name
			out = append(out, feat)
		}
	}
	return out
}

// DecodeMVT decodes a Mapbox Vector Tile, optionally gzip-compressed, and
// returns its features in layer order.
func DecodeMVT(data []byte, gzipped bool) ([]resolve.Feature, error) {
	var (
		layers mvt.Layers
		err    error
	)
	if gzipped {
		layers, err = mvt.UnmarshalGzipped(data)
	} else {
		layers, err = mvt.Unmarshal(data)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode vector tile")
	}
	return FromLayers(layers), nil
}

// LayerCounts tallies features per layer tag, for logging.
func LayerCounts(features []resolve.Feature) map[string]int {
	counts := make(map[string]int)
	for _, f := range features {
		counts[f.Layer]++
	}
	return counts
}

// Summary formats LayerCounts as "layer=n" pairs in first-seen order.
func Summary(features []resolve.Feature) string {
	counts := LayerCounts(features)
	var out string
	seen := make(map[string]bool, len(counts))
	for _, f := range features {
		if seen[f.Layer] {
			continue
		}
		seen[f.Layer] = true
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%s=%d", f.Layer, counts[f.Layer])
	}
	return out
}
