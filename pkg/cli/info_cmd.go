package cli

import (
	"fmt"

	"github.com/jlrickert/itemcfg/pkg/itemcfg"
	"github.com/spf13/cobra"
)

// NewInfoCmd constructs the `info` subcommand.
func NewInfoCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "info MOD",
		Short: "show every field of the cfg file of a mod",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := deps.Tool.Info(cmd.Context(), itemcfg.InfoOptions{Mod: args[0]})
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}
