package cli

import (
	"fmt"

	"github.com/jlrickert/itemcfg/pkg/itemcfg"
	"github.com/spf13/cobra"
)

// NewPathCmd constructs the `path` subcommand, printing the cfg path of a mod.
func NewPathCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "path MOD",
		Short: "print the cfg file path of a mod",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := deps.Tool.Path(cmd.Context(), itemcfg.PathOptions{Mod: args[0]})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}

// NewDirCmd constructs the `dir` subcommand, printing the cfg directory of a mod.
func NewDirCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "dir MOD",
		Short: "print the directory holding the cfg file of a mod",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := deps.Tool.Dir(cmd.Context(), itemcfg.PathOptions{Mod: args[0]})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), dir)
			return err
		},
	}
}
