// Package style defines map style configurations and the operations used to
// build them.
//
// # Overview
//
// A style configuration is a small tree of color values that controls how
// vector-tile features are painted:
//
//	water       = "#80deea"
//	background  = "#e2dfda"
//	buildings   = "rgba(204, 204, 204, 0.5)"
//	roads       = { highway, major, minor }
//	landuse     = { park, industrial, hospital }
//
// Color values are opaque strings in `#rrggbb`, `#rgb` or `rgba(...)` form.
// They are never validated; whatever a configuration holds is handed to the
// renderer as-is.
//
// # Presets
//
// The package ships three presets ("default", "light" and "dark") in a
// read-only [Registry]. Registry entries are never handed out directly:
// [NewCustom] and [Registry.Lookup] always return a fresh [Config.Clone], so
// callers may edit the result freely.
//
//	cfg := style.NewCustom("dark")
//	cfg.Set("roads.highway", "#ff9800")
//
// An unknown preset name silently falls back to "default". Use
// [LookupPreset] when the caller needs to know whether the name existed.
//
// # Merging
//
// [Merge] layers an override tree on top of a base configuration. Object
// overrides are merged exactly one level deep:
//
//	merged := style.Merge(style.NewCustom("light"), style.Config{
//	    "water": "#0288d1",
//	    "roads": map[string]any{"minor": "#eeeeee"},
//	})
//	// merged["roads"] keeps the light preset's highway and major colors.
//
// Deeper objects inside an override replace their base counterpart wholesale.
//
// # UI Helpers
//
// [PropertyKeys], [PropertyInfo] and [ExtractColors] expose plain data for
// style editors: the editable keys in display order, a description per key
// and the flat set of themeable colors. [HexToRGBA] converts hex colors for
// translucent previews.
package style
