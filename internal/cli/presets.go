package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilestyle/pkg/errors"
	"github.com/matzehuels/tilestyle/pkg/style"
)

// presetsCommand lists presets, or shows the colors of one preset.
func (c *CLI) presetsCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "List color presets or show one preset",
		Long: `List the available color presets with color swatches.

With a name, show every color of that preset. Unknown names fall back to the
"default" preset unless --strict is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reg, err := c.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 0 {
				listPresets(cmd, reg)
				return nil
			}
			return showPreset(cmd, reg, args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on unknown preset names instead of falling back")
	return cmd
}

func listPresets(cmd *cobra.Command, reg *style.Registry) {
	w := cmd.OutOrStdout()
	for _, name := range reg.Names() {
		cfg, _ := reg.Lookup(name)
		colors := style.ExtractColors(cfg)
		fmt.Fprintf(w, "%-12s %s\n", name, swatches(
			colors.Background,
			colors.Water,
			colors.Landuse.Park,
			colors.Roads.Highway,
			colors.Roads.Minor,
		))
	}
}

func showPreset(cmd *cobra.Command, reg *style.Registry, name string, strict bool) error {
	w := cmd.OutOrStdout()
	cfg, ok := reg.Lookup(name)
	if !ok {
		if strict {
			return errors.New(errors.ErrCodeNotFound, "unknown preset %q (available: %v)", name, reg.Names())
		}
		printWarning(cmd.ErrOrStderr(), "Unknown preset %q, showing %q", name, style.PresetDefault)
		cfg = reg.NewCustom(name)
	}

	fmt.Fprintln(w, StyleTitle.Render(name))
	for _, e := range style.ExtractColors(cfg).Entries() {
		printColor(w, e.Key, e.Color)
	}
	return nil
}
