package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tilestyle/internal/server"
)

// serveCommand serves the HTTP API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags styleFlags
		addr  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve presets, merging and feature resolution over HTTP",
		Long: `Serve the HTTP API.

The effective style (preset, style file, config overrides and --set flags)
becomes the server's default for requests that do not choose their own.
User presets from the config file are served alongside the built-ins.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, reg, cfg, err := c.effectiveStyle(ctx, &flags)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}
			c.Logger.Info("Starting server", "preset", cfg.Preset, "presets", len(reg.Names()))
			return server.New(reg, st, c.Logger).ListenAndServe(ctx, addr)
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else :8080)")
	return cmd
}
