// Package geo turns decoded vector data into [resolve.Feature] values.
//
// Decoding itself is delegated to github.com/paulmach/orb: GeoJSON through
// orb/geojson and Mapbox Vector Tiles through orb/encoding/mvt. This package
// only reads the geometry type and the "layer", "kind" and "name" tags that
// the resolver needs.
//
// For vector tiles, the tile layer name is used as the feature's layer tag,
// the same way tile renderers tag features when they flatten a tile.
//
//	data, _ := os.ReadFile("14_8716_8015.mvt")
//	features, err := geo.DecodeMVT(data, false)
//	styles := resolve.New(style.NewCustom("dark")).ResolveAll(features)
package geo
