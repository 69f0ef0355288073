package resolve_test

import (
	"fmt"

	"github.com/matzehuels/tilestyle/pkg/resolve"
	"github.com/matzehuels/tilestyle/pkg/style"
)

func ExampleResolver_Resolve() {
	r := resolve.New(style.NewCustom("dark"))

	road := r.Resolve(resolve.Feature{
		Geometry: resolve.GeometryLineString,
		Layer:    "roads",
		Kind:     "major_road",
	})
	fmt.Println(road.Stroke, road.StrokeWidth)

	city := r.Resolve(resolve.Feature{
		Geometry: resolve.GeometryPoint,
		Layer:    "places",
		Name:     "Lisbon",
	})
	fmt.Println(city.Label.Text, city.Label.Fill, city.Label.Halo)

	other := r.Resolve(resolve.Feature{Geometry: resolve.GeometryPolygon, Layer: "boundaries"})
	fmt.Println(other.Fill)
	// Output:
	// #757575 3
	// Lisbon #ffffff #000000
	// rgba(200, 200, 200, 0.6)
}
