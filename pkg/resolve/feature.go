package resolve

// Feature describes one rendered feature: its geometry kind and the tags the
// styling rules inspect. Kind and Name are optional and empty when absent.
type Feature struct {
	Geometry GeometryKind `json:"geometry"`
	Layer    string       `json:"layer"`
	Kind     string       `json:"kind,omitempty"`
	Name     string       `json:"name,omitempty"`
}

// Style is the resolved appearance of a single feature.
type Style struct {
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"stroke_width"`
	Label       *Label  `json:"label,omitempty"`
}

// Label is the text drawn for a point feature.
type Label struct {
	Text      string  `json:"text"`
	Font      string  `json:"font"`
	Fill      string  `json:"fill"`
	Halo      string  `json:"halo"`
	HaloWidth float64 `json:"halo_width"`
}
