package style

import (
	"maps"
	"slices"
)

// Built-in preset names.
const (
	PresetDefault = "default"
	PresetLight   = "light"
	PresetDark    = "dark"
)

// DarkBackground is the background color of the dark preset. Resolvers
// compare a configuration's background against it verbatim to pick light
// label colors.
const DarkBackground = "#212121"

func builtinPresets() map[string]Config {
	return map[string]Config{
		PresetDefault: {
			KeyWater: "#80deea",
			KeyLanduse: map[string]any{
				"park":       "#9cd3b4",
				"industrial": "#d1dde1",
				"hospital":   "#e4dad9",
			},
			KeyBuildings: "rgba(204, 204, 204, 0.5)",
			KeyRoads: map[string]any{
				"highway": "#ffffff",
				"major":   "#ffffff",
				"minor":   "#ebebeb",
			},
			KeyBackground: "#e2dfda",
		},
		PresetLight: {
			KeyWater: "#b3e5fc",
			KeyLanduse: map[string]any{
				"park":       "#c5e1a5",
				"industrial": "#eceff1",
				"hospital":   "#f5f5f5",
			},
			KeyBuildings: "rgba(224, 224, 224, 0.4)",
			KeyRoads: map[string]any{
				"highway": "#ffffff",
				"major":   "#fafafa",
				"minor":   "#f5f5f5",
			},
			KeyBackground: "#ffffff",
		},
		PresetDark: {
			KeyWater: "#263238",
			KeyLanduse: map[string]any{
				"park":       "#2e7d32",
				"industrial": "#37474f",
				"hospital":   "#37474f",
			},
			KeyBuildings: "rgba(66, 66, 66, 0.5)",
			KeyRoads: map[string]any{
				"highway": "#9e9e9e",
				"major":   "#757575",
				"minor":   "#616161",
			},
			KeyBackground: DarkBackground,
		},
	}
}

// Registry is an immutable set of named presets.
// Its entries are never returned directly; every accessor hands out a clone.
type Registry struct {
	presets map[string]Config
}

// NewRegistry creates a registry holding deep copies of presets.
func NewRegistry(presets map[string]Config) *Registry {
	r := &Registry{presets: make(map[string]Config, len(presets))}
	for name, cfg := range presets {
		r.presets[name] = cfg.Clone()
	}
	return r
}

// With returns a new registry that contains r's presets plus cfg under name,
// replacing any preset already registered under that name. r is unchanged.
func (r *Registry) With(name string, cfg Config) *Registry {
	next := &Registry{presets: maps.Clone(r.presets)}
	if next.presets == nil {
		next.presets = map[string]Config{}
	}
	next.presets[name] = cfg.Clone()
	return next
}

// Names returns the registered preset names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.presets))
}

// Lookup returns a copy of the named preset and whether it exists.
func (r *Registry) Lookup(name string) (Config, bool) {
	cfg, ok := r.presets[name]
	if !ok {
		return nil, false
	}
	return cfg.Clone(), true
}

// NewCustom returns an editable copy of the named preset. Unknown names fall
// back to the registry's "default" preset, and to the built-in default if the
// registry has none.
func (r *Registry) NewCustom(name string) Config {
	if cfg, ok := r.Lookup(name); ok {
		return cfg
	}
	if cfg, ok := r.Lookup(PresetDefault); ok {
		return cfg
	}
	return builtin.presets[PresetDefault].Clone()
}

var builtin = NewRegistry(builtinPresets())

// Presets returns the process-wide registry of built-in presets.
func Presets() *Registry { return builtin }

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string { return builtin.Names() }

// LookupPreset returns a copy of the named built-in preset and whether it
// exists.
func LookupPreset(name string) (Config, bool) { return builtin.Lookup(name) }

// NewCustom returns an editable copy of the named built-in preset, falling
// back to "default" for unknown names. It never fails.
func NewCustom(name string) Config { return builtin.NewCustom(name) }

// Default returns a copy of the built-in default preset.
func Default() Config { return builtin.NewCustom(PresetDefault) }
