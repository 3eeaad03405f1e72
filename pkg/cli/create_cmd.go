package cli

import (
	"github.com/jlrickert/itemcfg/pkg/itemcfg"
	"github.com/spf13/cobra"
)

// NewCreateCmd constructs the `create` subcommand.
//
// Usage examples:
//
//	itemcfg create my_mod --title "My Mod" --tags "weapons; ui"
//	itemcfg create my_mod --title "My Mod" --content bundle --visibility public --force
func NewCreateCmd(deps *Deps) *cobra.Command {
	var opts itemcfg.CreateOptions

	cmd := &cobra.Command{
		Use:     "create MOD",
		Short:   "write the cfg file of a mod",
		Aliases: []string{"c"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Mod = args[0]
			opts.Out = cmd.OutOrStdout()
			_, err := deps.Tool.Create(cmd.Context(), opts)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "item title")
	cmd.Flags().StringVar(&opts.Description, "description", "", "item description")
	cmd.Flags().StringVar(&opts.Tags, "tags", "", "tags separated by ';'")
	cmd.Flags().StringVar(&opts.Content, "content", "", "content bundle dir (default from settings)")
	cmd.Flags().StringVar(&opts.Language, "language", "", "item language (default from settings)")
	cmd.Flags().StringVar(&opts.Visibility, "visibility", "", "item visibility (default from settings)")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "overwrite an existing cfg")

	return cmd
}
