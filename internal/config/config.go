// Package config loads the tilestyle application configuration.
//
// The configuration is a TOML file that selects a base preset, an optional
// style file, inline overrides, extra user presets and server settings:
//
//	preset = "dark"
//	style_file = "night.yaml"
//
//	[server]
//	addr = ":8080"
//
//	[overrides]
//	water = "#0d47a1"
//
//	[overrides.roads]
//	highway = "#ffab00"
//
//	[presets.sepia]
//	water = "#c8b79a"
//	background = "#f4ecd8"
package config

import (
	"context"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tilestyle/pkg/errors"
	styleio "github.com/matzehuels/tilestyle/pkg/io"
	"github.com/matzehuels/tilestyle/pkg/observability"
	"github.com/matzehuels/tilestyle/pkg/style"
)

const (
	appName = "tilestyle"

	// DefaultAddr is the listen address used by the HTTP server when none is
	// configured.
	DefaultAddr = ":8080"
)

// Config is the application configuration read from config.toml.
type Config struct {
	Preset    string                    `toml:"preset"`
	StyleFile string                    `toml:"style_file"`
	Server    Server                    `toml:"server"`
	Overrides map[string]any            `toml:"overrides"`
	Presets   map[string]map[string]any `toml:"presets"`

	path string // file the config was read from, empty for defaults
}

// Server holds HTTP server settings.
type Server struct {
	Addr string `toml:"addr"`
}

// Defaults returns the configuration used when no config file is found.
func Defaults() *Config {
	return &Config{
		Preset: style.PresetDefault,
		Server: Server{Addr: DefaultAddr},
	}
}

// Load loads configuration from an explicit path or the first existing search
// path. When no path is given and no file is found, defaults are returned
// without error. An explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	chosen := path
	if chosen == "" {
		for _, p := range searchPaths() {
			if _, err := os.Stat(p); err == nil {
				chosen = p
				break
			}
		}
	}
	if chosen == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(chosen)
	if os.IsNotExist(err) {
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", chosen)
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInternal, err, "read config")
	}
	if _, err := toml.Decode(string(data), cfg); err != nil { // decode overlays onto defaults
		return Defaults(), errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", chosen)
	}
	cfg.path = chosen
	cfg.normalize()
	return cfg, nil
}

func searchPaths() []string {
	var out []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		out = append(out, filepath.Join(xdg, appName, "config.toml"))
	}
	if home, _ := os.UserHomeDir(); home != "" {
		out = append(out, filepath.Join(home, ".config", appName, "config.toml"))
	}
	return out
}

// Path returns the file the configuration was loaded from, or "" when the
// defaults are in use.
func (c *Config) Path() string { return c.path }

func (c *Config) normalize() {
	if c.Preset == "" {
		c.Preset = style.PresetDefault
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	// style_file is relative to the config file.
	if c.StyleFile != "" && !filepath.IsAbs(c.StyleFile) && c.path != "" {
		c.StyleFile = filepath.Join(filepath.Dir(c.path), c.StyleFile)
	}
}

// Registry returns the built-in presets extended with the user presets from
// [presets.<name>] tables. User presets replace built-ins of the same name.
func (c *Config) Registry() (*style.Registry, error) {
	reg := style.Presets()
	for _, name := range slices.Sorted(maps.Keys(c.Presets)) {
		if err := errors.ValidatePresetName(name); err != nil {
			return nil, err
		}
		reg = reg.With(name, styleio.Normalize(c.Presets[name]))
	}
	return reg, nil
}

// Style assembles the effective style configuration: the selected preset,
// then the style file (if any) merged over it, then the inline overrides.
// An unknown preset name is an error.
func (c *Config) Style(ctx context.Context, reg *style.Registry) (cfg style.Config, err error) {
	start := time.Now()
	defer func() {
		observability.Style().OnStyleLoad(ctx, c.source(), len(cfg), time.Since(start), err)
	}()

	base, ok := reg.Lookup(c.Preset)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidPreset, "unknown preset %q", c.Preset)
	}
	if c.StyleFile != "" {
		file, err := styleio.ImportStyle(c.StyleFile)
		if err != nil {
			return nil, err
		}
		base = style.Merge(base, file)
	}
	if len(c.Overrides) > 0 {
		base = style.Merge(base, styleio.Normalize(c.Overrides))
	}
	return base, nil
}

func (c *Config) source() string {
	if c.StyleFile != "" {
		return c.StyleFile
	}
	return c.Preset
}
