package resolve

// GeometryKind identifies the geometry type of a rendered feature.
type GeometryKind int

const (
	GeometryUnknown GeometryKind = iota
	GeometryPoint
	GeometryMultiPoint
	GeometryLineString
	GeometryMultiLineString
	GeometryPolygon
	GeometryMultiPolygon
)

var geometryNames = map[GeometryKind]string{
	GeometryUnknown:         "Unknown",
	GeometryPoint:           "Point",
	GeometryMultiPoint:      "MultiPoint",
	GeometryLineString:      "LineString",
	GeometryMultiLineString: "MultiLineString",
	GeometryPolygon:         "Polygon",
	GeometryMultiPolygon:    "MultiPolygon",
}

var geometryByName = map[string]GeometryKind{
	"Point":           GeometryPoint,
	"MultiPoint":      GeometryMultiPoint,
	"LineString":      GeometryLineString,
	"MultiLineString": GeometryMultiLineString,
	"Polygon":         GeometryPolygon,
	"MultiPolygon":    GeometryMultiPolygon,
}

// ParseGeometryKind converts a GeoJSON geometry type name ("Point",
// "MultiPolygon", ...) to a GeometryKind. Unrecognized names, including
// "GeometryCollection", yield GeometryUnknown.
func ParseGeometryKind(name string) GeometryKind {
	return geometryByName[name]
}

func (k GeometryKind) String() string {
	if s, ok := geometryNames[k]; ok {
		return s
	}
	return geometryNames[GeometryUnknown]
}

// IsPolygonal reports whether k is Polygon or MultiPolygon.
func (k GeometryKind) IsPolygonal() bool {
	return k == GeometryPolygon || k == GeometryMultiPolygon
}

// IsLinear reports whether k is LineString or MultiLineString.
func (k GeometryKind) IsLinear() bool {
	return k == GeometryLineString || k == GeometryMultiLineString
}

// MarshalText encodes k as its GeoJSON type name.
func (k GeometryKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a GeoJSON type name. Unknown names decode to
// GeometryUnknown rather than failing.
func (k *GeometryKind) UnmarshalText(text []byte) error {
	*k = ParseGeometryKind(string(text))
	return nil
}
