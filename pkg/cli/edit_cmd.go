package cli

import (
	"github.com/jlrickert/itemcfg/pkg/itemcfg"
	"github.com/spf13/cobra"
)

// NewEditCmd constructs the `edit` subcommand.
func NewEditCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "edit MOD",
		Short: "edit the cfg file of a mod in $EDITOR",
		Long: `Open the cfg file of a mod in $VISUAL or $EDITOR.

Every save is checked before it replaces the cfg: the file must parse and
must still define the content and preview keys. Input piped on stdin
replaces the cfg without opening an editor.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return deps.Tool.Edit(cmd.Context(), itemcfg.EditOptions{
				Mod:    args[0],
				Stream: deps.Runtime.Stream(),
			})
		},
	}
}
