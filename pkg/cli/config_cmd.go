package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewConfigCmd returns the `config` cobra command.
func NewConfigCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "display effective settings",
		Long: `Display the settings after defaults, the settings file and ITEMCFG_*
environment variables have been applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := deps.Tool.Config(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), output)
			return err
		},
	}
}
