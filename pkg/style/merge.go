package style

// Merge returns a new configuration with overrides layered on top of base.
//
// base is deep-cloned first, then each key of overrides is applied:
//
//   - An object override is merged into the section of the same name one
//     level deep: its keys replace the section's keys and keys it does not
//     mention are kept. If the base value is not an object it is discarded
//     and the merge starts from an empty section. This includes slices: an
//     object override over a slice yields only the override's keys, and the
//     slice elements are not carried over as index-keyed entries.
//   - Any other override (string, number, nil, slice) replaces the base
//     value.
//
// Objects nested below that first level are not merged recursively; an
// override's nested object replaces the base's nested object as a whole.
// Neither input is modified and the result shares nothing with either.
func Merge(base, overrides Config) Config {
	result := base.Clone()
	if result == nil {
		result = Config{}
	}

	for key, override := range overrides {
		obj, ok := asObject(override)
		if !ok {
			result[key] = cloneValue(override)
			continue
		}

		section, ok := asObject(result[key])
		if !ok {
			section = map[string]any{}
		}
		merged := make(map[string]any, len(section)+len(obj))
		for k, v := range section {
			merged[k] = v
		}
		for k, v := range obj {
			merged[k] = cloneValue(v)
		}
		result[key] = merged
	}

	return result
}
