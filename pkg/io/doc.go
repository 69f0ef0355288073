// Package io reads and writes style configuration files.
//
// # Overview
//
// Style configurations can be stored as TOML, YAML or JSON. All three decode
// into the same [style.Config] tree, so a file written in one format can be
// re-read in another:
//
//	cfg, err := io.ImportStyle("night.toml")
//	err = io.ExportStyle("night.yaml", cfg)
//
// The format is chosen from the file extension (.toml, .yaml, .yml, .json)
// by [FormatFromPath], or given explicitly to [ReadStyle] and [WriteStyle].
//
// # File Layout
//
// Files mirror the configuration tree. In TOML:
//
//	water = "#263238"
//	background = "#212121"
//	buildings = "rgba(66, 66, 66, 0.5)"
//
//	[roads]
//	highway = "#9e9e9e"
//	major = "#757575"
//	minor = "#616161"
//
//	[landuse]
//	park = "#2e7d32"
//
// Partial files are fine: a file only needs the keys it wants to set, and is
// typically merged over a preset with [style.Merge].
//
// # Normalization
//
// Decoders produce slightly different Go types for nested data (YAML may
// yield map[any]any, TOML yields []map[string]any for arrays of tables).
// Decoded trees are normalized so nested sections are always map[string]any
// and lists are always []any.
package io
