package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tilestyle/pkg/errors"
	"github.com/matzehuels/tilestyle/pkg/style"
)

// propertiesCommand describes the documented style properties.
func (c *CLI) propertiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "properties [key]",
		Short: "Describe style properties",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, key := range style.PropertyKeys() {
					printKeyValue(w, key, style.PropertyInfo(key))
				}
				return nil
			}

			key := args[0]
			if err := errors.ValidatePropertyKey(key); err != nil {
				return err
			}
			printKeyValue(w, key, style.PropertyInfo(key))
			if !style.IsPropertyKey(key) {
				printDetail(w, "not a documented property")
			}
			return nil
		},
	}
}
