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

// WriteStyle encodes cfg in format f and writes it to w.
// Keys are written in sorted order by every encoder, so output is stable.
func WriteStyle(w io.Writer, cfg style.Config, f Format) error {
	tree := map[string]any(cfg)
	if tree == nil {
		tree = map[string]any{}
	}

	var err error
	switch f {
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(tree)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(tree); err == nil {
			err = enc.Close()
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(tree)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", f)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidStyle, err, "encode %s style", f)
	}
	return nil
}

// ExportStyle writes cfg to path, choosing the format from its extension.
func ExportStyle(path string, cfg style.Config) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteStyle(file, cfg, f); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return file.Close()
}
