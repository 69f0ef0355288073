// Package pkg provides the core libraries for tilestyle map styling.
//
// # Overview
//
// Tilestyle turns a small tree of map colors into concrete drawing styles
// for vector tile features. The pkg directory is organized as:
//
//  1. [style] - Style configurations, presets, merging and hex→rgba colors
//  2. [resolve] - Per-feature style resolution (fill, stroke, width, labels)
//  3. [geo] - GeoJSON and Mapbox Vector Tile input adapters
//  4. [io] - TOML, YAML and JSON style files
//  5. [errors] - Structured error codes
//  6. [observability] - Optional instrumentation hooks
//
// # Architecture
//
// The typical data flow:
//
//	Preset (default, light, dark, user presets)
//	         ↓
//	    [style.Merge] with style files and overrides
//	         ↓
//	    [resolve.New] precomputes colors from the configuration
//	         ↓
//	    [resolve.Resolver.Resolve] per feature
//	         ↓
//	    Style{Fill, Stroke, StrokeWidth, Label}
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/tilestyle/pkg/resolve"
//	    "github.com/matzehuels/tilestyle/pkg/style"
//	)
//
//	cfg := style.Merge(style.NewCustom(style.PresetDark), style.Config{
//	    "roads": map[string]any{"highway": "#ffab00"},
//	})
//	r := resolve.New(cfg)
//	s := r.Resolve(resolve.Feature{
//	    Geometry: resolve.GeometryLineString,
//	    Layer:    resolve.LayerRoads,
//	    Kind:     "highway",
//	})
//	// s.Stroke == "#ffab00", s.StrokeWidth == 5
//
// [style]: https://pkg.go.dev/github.com/matzehuels/tilestyle/pkg/style
// [resolve]: https://pkg.go.dev/github.com/matzehuels/tilestyle/pkg/resolve
// [geo]: https://pkg.go.dev/github.com/matzehuels/tilestyle/pkg/geo
// [io]: https://pkg.go.dev/github.com/matzehuels/tilestyle/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/tilestyle/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/tilestyle/pkg/observability
package pkg
