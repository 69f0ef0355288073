package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilestyle/pkg/style"
)

// rgbaCommand converts a hex color to an rgba() string.
func (c *CLI) rgbaCommand() *cobra.Command {
	alpha := style.OpaqueAlpha

	cmd := &cobra.Command{
		Use:   "rgba <hex>",
		Short: "Convert a hex color to rgba()",
		Example: `  tilestyle rgba '#80deea'
  tilestyle rgba '#fff' --alpha 0.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), style.HexToRGBA(args[0], alpha))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&alpha, "alpha", "a", alpha, "alpha channel")
	return cmd
}
