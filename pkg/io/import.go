package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tilestyle/pkg/errors"
	"github.com/matzehuels/tilestyle/pkg/style"
)

// ReadStyle decodes a style configuration in format f from r.
//
// The document must be a mapping at the top level. Empty input yields an empty
// configuration. Nested values are normalized (see the package
// documentation). ReadStyle does not close r.
func ReadStyle(r io.Reader, f Format) (style.Config, error) {
	raw := map[string]any{}
	var err error
	switch f {
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&raw)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&raw)
		if err == io.EOF {
			err = nil
		}
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&raw)
		if err == io.EOF {
			err = nil
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", f)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidStyle, err, "decode %s style", f)
	}

	return Normalize(raw), nil
}

// Normalize converts a decoded tree into a [style.Config] whose nested
// sections are map[string]any and whose lists are []any. A nil tree yields an
// empty configuration.
func Normalize(tree map[string]any) style.Config {
	cfg := make(style.Config, len(tree))
	for k, v := range tree {
		cfg[k] = normalize(v)
	}
	return cfg
}

// ImportStyle reads the style file at path, choosing the format from its
// extension. A missing file yields an error with code FILE_NOT_FOUND.
func ImportStyle(path string) (style.Config, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "style file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	cfg, err := ReadStyle(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// normalize rewrites decoder-specific container types into map[string]any
// and []any.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalize(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	default:
		return v
	}
}
