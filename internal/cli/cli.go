// Package cli implements the tilestyle command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tilestyle/internal/config"
	"github.com/matzehuels/tilestyle/pkg/buildinfo"
	"github.com/matzehuels/tilestyle/pkg/errors"
	"github.com/matzehuels/tilestyle/pkg/style"
)

// =============================================================================
// Constants
// =============================================================================

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "tilestyle",
		Short:        "Tilestyle resolves map feature styles from color presets",
		Long:         `Tilestyle manages map color presets and style overrides, and resolves the fill, stroke and label of vector tile features against them.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tilestyle/config.toml)")

	// Register all subcommands
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.propertiesCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.mergeCommand())
	root.AddCommand(c.rgbaCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config Loading
// =============================================================================

// loadConfig reads the application config and builds the preset registry
// including user presets.
func (c *CLI) loadConfig(ctx context.Context) (*config.Config, *style.Registry, error) {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Path() != "" {
		logger.Debug("Loaded config", "path", cfg.Path())
	} else {
		logger.Debug("No config file found, using defaults")
	}

	reg, err := cfg.Registry()
	if err != nil {
		return nil, nil, err
	}
	return cfg, reg, nil
}

// styleFlags selects the effective style for commands that resolve one.
// Flags take precedence over the config file.
type styleFlags struct {
	preset    string
	styleFile string
	sets      []string // "key=value" overrides
}

func (f *styleFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "base preset (default from config, else \"default\")")
	cmd.Flags().StringVarP(&f.styleFile, "style", "s", "", "style file merged over the preset (.toml, .yaml, .json)")
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, "override a property, e.g. --set roads.highway=#ff0000 (repeatable)")
}

// effectiveStyle loads the config, applies the flags and returns the
// resulting style together with the registry it was built from.
func (c *CLI) effectiveStyle(ctx context.Context, f *styleFlags) (style.Config, *style.Registry, *config.Config, error) {
	cfg, reg, err := c.loadConfig(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	if f.preset != "" {
		cfg.Preset = f.preset
	}
	if f.styleFile != "" {
		cfg.StyleFile = f.styleFile
	}

	st, err := cfg.Style(ctx, reg)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, kv := range f.sets {
		key, value, err := parseSet(kv)
		if err != nil {
			return nil, nil, nil, err
		}
		st.Set(key, value)
	}
	return st, reg, cfg, nil
}

// parseSet splits a "key=value" override.
func parseSet(s string) (string, string, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", errors.New(errors.ErrCodeInvalidInput, "invalid --set %q (want key=value)", s)
	}
	key = strings.TrimSpace(key)
	if err := errors.ValidatePropertyKey(key); err != nil {
		return "", "", fmt.Errorf("--set %q: %w", s, err)
	}
	return key, value, nil
}
