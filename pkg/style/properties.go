package style

// Top-level configuration keys.
const (
	KeyWater      = "water"
	KeyBackground = "background"
	KeyBuildings  = "buildings"
	KeyRoads      = "roads"
	KeyLanduse    = "landuse"
)

// Dotted keys of the nested color leaves.
const (
	KeyRoadsHighway      = "roads.highway"
	KeyRoadsMajor        = "roads.major"
	KeyRoadsMinor        = "roads.minor"
	KeyLandusePark       = "landuse.park"
	KeyLanduseIndustrial = "landuse.industrial"
	KeyLanduseHospital   = "landuse.hospital"
)

const propertyFallback = "Map style property"

var propertyKeys = []string{
	KeyWater,
	KeyBackground,
	KeyBuildings,
	KeyRoadsHighway,
	KeyRoadsMajor,
	KeyRoadsMinor,
	KeyLandusePark,
	KeyLanduseIndustrial,
	KeyLanduseHospital,
}

var propertyDescriptions = map[string]string{
	KeyWater:             "Color of water bodies like rivers, lakes and oceans",
	KeyBackground:        "Base color for the map background",
	KeyBuildings:         "Color of building structures",
	KeyRoadsHighway:      "Color of major highways and expressways",
	KeyRoadsMajor:        "Color of main roads and arteries",
	KeyRoadsMinor:        "Color of smaller streets and roads",
	KeyLandusePark:       "Color of parks, forests and natural reserves",
	KeyLanduseIndustrial: "Color of industrial zones and areas",
	KeyLanduseHospital:   "Color of hospitals and healthcare facilities",
}

// PropertyKeys returns the editable color keys in display order.
func PropertyKeys() []string {
	return append([]string(nil), propertyKeys...)
}

// PropertyInfo returns a human-readable description of a dotted property key.
// Unknown keys get a generic description.
func PropertyInfo(key string) string {
	if d, ok := propertyDescriptions[key]; ok {
		return d
	}
	return propertyFallback
}

// IsPropertyKey reports whether key is one of the documented color keys.
func IsPropertyKey(key string) bool {
	_, ok := propertyDescriptions[key]
	return ok
}
