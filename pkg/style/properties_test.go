package style

import "testing"

func TestPropertyInfo(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"water", "Color of water bodies like rivers, lakes and oceans"},
		{"background", "Base color for the map background"},
		{"buildings", "Color of building structures"},
		{"roads.highway", "Color of major highways and expressways"},
		{"roads.major", "Color of main roads and arteries"},
		{"roads.minor", "Color of smaller streets and roads"},
		{"landuse.park", "Color of parks, forests and natural reserves"},
		{"landuse.industrial", "Color of industrial zones and areas"},
		{"landuse.hospital", "Color of hospitals and healthcare facilities"},
		{"roads", "Map style property"},
		{"unknown.key", "Map style property"},
		{"", "Map style property"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := PropertyInfo(tt.key); got != tt.want {
				t.Errorf("PropertyInfo(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestPropertyKeys(t *testing.T) {
	keys := PropertyKeys()
	if len(keys) != 9 {
		t.Fatalf("PropertyKeys() returned %d keys, want 9", len(keys))
	}
	for _, k := range keys {
		if !IsPropertyKey(k) {
			t.Errorf("IsPropertyKey(%q) = false", k)
		}
	}

	keys[0] = "mutated"
	if PropertyKeys()[0] != KeyWater {
		t.Error("PropertyKeys() exposes internal slice")
	}
}
