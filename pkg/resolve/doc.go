// Package resolve maps rendered vector-tile features to concrete styles.
//
// # Overview
//
// A [Resolver] is built once from a [style.Config] and then called once per
// feature. Each [Feature] carries the geometry kind and the tags the rules
// look at (layer, kind, name); the result is a [Style] with fill, stroke,
// stroke width and an optional [Label].
//
//	r := resolve.New(style.NewCustom("dark"))
//	s := r.Resolve(resolve.Feature{
//	    Geometry: resolve.GeometryLineString,
//	    Layer:    "roads",
//	    Kind:     "highway",
//	})
//	// s.Stroke == "#9e9e9e", s.StrokeWidth == 5
//
// # Rules
//
// Rules are checked in a fixed order and the first match wins:
//
//  1. Polygons: water, landuse (park, nature_reserve, forest, industrial,
//     hospital), buildings and earth layers take their fill from the
//     configuration.
//  2. Lines on the roads layer: highway (width 5), major_road (3),
//     minor_road (2), any other kind (1).
//  3. Points on the places layer: a label with the feature name.
//
// Anything else keeps the neutral defaults ([DefaultFill], [DefaultStroke],
// width 1). Colors missing from the configuration are replaced by fixed
// per-rule fallbacks, so a partial configuration never breaks resolution.
//
// # Label Colors
//
// Label text is white with a black halo when the configuration's background
// is exactly [style.DarkBackground], and dark grey with a white halo
// otherwise. The check is a string comparison, not a luminance test.
//
// # Concurrency
//
// A Resolver copies its configuration on construction and never mutates
// state afterwards, so a single Resolver may be shared by any number of
// goroutines.
package resolve
