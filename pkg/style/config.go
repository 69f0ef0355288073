package style

import "strings"

// Config is a style configuration tree.
//
// Nested sections are map[string]any values and leaves are usually color
// strings. A Config is a value object: [Config.Clone], [Merge] and the preset
// constructors always return trees that share no maps or slices with their
// inputs.
type Config map[string]any

// Clone returns a deep copy of c. Nested maps and slices are copied; scalar
// leaves are shared since they are immutable. Cloning a nil Config returns nil.
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}
	return Config(cloneObject(c))
}

// Lookup returns the value at a dotted path such as "roads.highway".
// It reports false if any segment is missing or an intermediate value is not
// an object.
func (c Config) Lookup(path string) (any, bool) {
	var cur any = map[string]any(c)
	for _, part := range strings.Split(path, ".") {
		obj, ok := asObject(cur)
		if !ok {
			return nil, false
		}
		cur, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Color returns the string at path, or "" if the path is absent or holds a
// non-string value.
func (c Config) Color(path string) string {
	v, ok := c.Lookup(path)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// ColorOr returns the color at path, or fallback when that color is unset or
// empty.
func (c Config) ColorOr(path, fallback string) string {
	if s := c.Color(path); s != "" {
		return s
	}
	return fallback
}

// Set stores value at a dotted path, creating intermediate sections as
// needed. A non-object value standing in the way of the path is replaced by
// an empty section. Set panics if c is nil.
func (c Config) Set(path string, value any) {
	parts := strings.Split(path, ".")
	obj := map[string]any(c)
	for _, part := range parts[:len(parts)-1] {
		next, ok := asObject(obj[part])
		if !ok {
			next = map[string]any{}
			obj[part] = next
		}
		obj = next
	}
	obj[parts[len(parts)-1]] = value
}

// asObject reports whether v is a non-nil style section.
func asObject(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, t != nil
	case Config:
		return map[string]any(t), t != nil
	}
	return nil, false
}

func cloneObject(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if t == nil {
			return nil
		}
		return cloneObject(t)
	case Config:
		if t == nil {
			return nil
		}
		return cloneObject(t)
	case []any:
		if t == nil {
			return nil
		}
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []map[string]any:
		if t == nil {
			return nil
		}
		out := make([]map[string]any, len(t))
		for i, e := range t {
			if e != nil {
				out[i] = cloneObject(e)
			}
		}
		return out
	case []string:
		if t == nil {
			return nil
		}
		return append([]string(nil), t...)
	default:
		return v
	}
}
