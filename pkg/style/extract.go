package style

// Colors is the flat set of themeable colors in a configuration.
// Empty strings mark colors the configuration does not define.
type Colors struct {
	Water      string        `json:"water,omitempty"`
	Background string        `json:"background,omitempty"`
	Buildings  string        `json:"buildings,omitempty"`
	Roads      RoadColors    `json:"roads"`
	Landuse    LanduseColors `json:"landuse"`
}

// RoadColors holds the road stroke colors.
type RoadColors struct {
	Highway string `json:"highway,omitempty"`
	Major   string `json:"major,omitempty"`
	Minor   string `json:"minor,omitempty"`
}

// LanduseColors holds the landuse fill colors.
type LanduseColors struct {
	Park       string `json:"park,omitempty"`
	Industrial string `json:"industrial,omitempty"`
	Hospital   string `json:"hospital,omitempty"`
}

// ColorEntry pairs a dotted property key with its color.
type ColorEntry struct {
	Key   string `json:"key"`
	Color string `json:"color"`
}

// ExtractColors projects cfg onto its color leaves. Missing sections yield
// empty leaves; cfg is not modified.
func ExtractColors(cfg Config) Colors {
	return Colors{
		Water:      cfg.Color(KeyWater),
		Background: cfg.Color(KeyBackground),
		Buildings:  cfg.Color(KeyBuildings),
		Roads: RoadColors{
			Highway: cfg.Color(KeyRoadsHighway),
			Major:   cfg.Color(KeyRoadsMajor),
			Minor:   cfg.Color(KeyRoadsMinor),
		},
		Landuse: LanduseColors{
			Park:       cfg.Color(KeyLandusePark),
			Industrial: cfg.Color(KeyLanduseIndustrial),
			Hospital:   cfg.Color(KeyLanduseHospital),
		},
	}
}

// Entries lists the colors in [PropertyKeys] order, unset ones included.
func (c Colors) Entries() []ColorEntry {
	return []ColorEntry{
		{KeyWater, c.Water},
		{KeyBackground, c.Background},
		{KeyBuildings, c.Buildings},
		{KeyRoadsHighway, c.Roads.Highway},
		{KeyRoadsMajor, c.Roads.Major},
		{KeyRoadsMinor, c.Roads.Minor},
		{KeyLandusePark, c.Landuse.Park},
		{KeyLanduseIndustrial, c.Landuse.Industrial},
		{KeyLanduseHospital, c.Landuse.Hospital},
	}
}
