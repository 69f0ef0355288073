package io

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/tilestyle/pkg/errors"
)

// Format is a style file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists the supported formats.
var Formats = []Format{FormatTOML, FormatYAML, FormatJSON}

var formatByExt = map[string]Format{
	".toml": FormatTOML,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".json": FormatJSON,
}

// ParseFormat parses a format name such as "toml" or "yml".
func ParseFormat(s string) (Format, error) {
	if f, ok := formatByExt["."+strings.ToLower(s)]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'toml', 'yaml' or 'json')", s)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := formatByExt[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported style file extension %q (want .toml, .yaml, .yml or .json)", ext)
}
