package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	styleio "github.com/matzehuels/tilestyle/pkg/io"
	"github.com/matzehuels/tilestyle/pkg/style"
)

// writeStyle prints cfg in format, or writes it to output when set. An empty
// format means TOML on stdout and the extension's format for files.
func writeStyle(cmd *cobra.Command, cfg style.Config, format, output string) error {
	if output != "" && format == "" {
		if err := styleio.ExportStyle(output, cfg); err != nil {
			return err
		}
		printFile(cmd.ErrOrStderr(), output)
		return nil
	}

	f := styleio.FormatTOML
	if format != "" {
		var err error
		if f, err = styleio.ParseFormat(format); err != nil {
			return err
		}
	}
	if output == "" {
		return styleio.WriteStyle(cmd.OutOrStdout(), cfg, f)
	}
	if err := writeFile(output, func(w io.Writer) error { return styleio.WriteStyle(w, cfg, f) }); err != nil {
		return err
	}
	printFile(cmd.ErrOrStderr(), output)
	return nil
}

// writeFile creates path and streams write into it.
func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// showCommand prints the effective style configuration.
func (c *CLI) showCommand() *cobra.Command {
	var (
		flags  styleFlags
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective style configuration",
		Long: `Print the effective style configuration.

The style is assembled from the selected preset, the style file merged over
it, the [overrides] table of the config file and finally --set flags.`,
		Example: `  tilestyle show --preset dark --set roads.highway=#ffab00
  tilestyle show --style night.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := c.effectiveStyle(cmd.Context(), &flags)
			if err != nil {
				return err
			}
			return writeStyle(cmd, cfg, format, output)
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: toml (default), yaml, json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

// mergeCommand merges an override style file over a base style file.
func (c *CLI) mergeCommand() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "merge <base> <overrides>",
		Short: "Merge an override style file over a base style file",
		Long: `Merge an override style file over a base style file.

Top-level values in the overrides replace the base. Sections (such as roads or
landuse) are merged one level deep, so an override that sets only
roads.highway keeps the base's other road colors.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			base, err := styleio.ImportStyle(args[0])
			if err != nil {
				return err
			}
			overrides, err := styleio.ImportStyle(args[1])
			if err != nil {
				return err
			}
			logger.Debug("Merging", "base", args[0], "overrides", args[1], "keys", len(overrides))

			if format == "" && output == "" {
				if f, err := styleio.FormatFromPath(args[0]); err == nil {
					format = string(f)
				}
			}
			return writeStyle(cmd, style.Merge(base, overrides), format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: toml, yaml, json (default: format of <base>)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
