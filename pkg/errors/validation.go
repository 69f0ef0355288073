package errors

import (
	"regexp"
	"unicode"
)

// maxPresetNameLength bounds user-defined preset names.
const maxPresetNameLength = 64

var presetNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidatePresetName validates the name of a user-defined preset.
// Names are lowercase letters, digits, dashes and underscores, starting with
// a letter or digit, at most 64 characters long.
func ValidatePresetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPreset, "preset name cannot be empty")
	}
	if len(name) > maxPresetNameLength {
		return New(ErrCodeInvalidPreset, "preset name too long (max %d characters)", maxPresetNameLength)
	}
	if !presetNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPreset, "invalid preset name: %q", name)
	}
	return nil
}

var propertyKeyRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*(\.[A-Za-z_][A-Za-z0-9_-]*)*$`)

// ValidatePropertyKey validates a dotted style property key such as
// "roads.highway". Keys need not be documented properties; they only have to
// be well-formed so they can be used as a path into a style tree.
func ValidatePropertyKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidProperty, "property key cannot be empty")
	}
	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidProperty, "property key contains invalid control characters")
		}
	}
	if !propertyKeyRegex.MatchString(key) {
		return New(ErrCodeInvalidProperty, "invalid property key: %q", key)
	}
	return nil
}
