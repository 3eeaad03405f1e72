package cli

import (
	"fmt"

	"github.com/jlrickert/itemcfg/pkg/cfg"
	"github.com/jlrickert/itemcfg/pkg/itemcfg"
	"github.com/spf13/cobra"
)

// NewGetCmd constructs the `get` subcommand.
//
// Usage examples:
//
//	itemcfg get my_mod title
//	itemcfg get my_mod published_id --type number
//	itemcfg get my_mod --mapped bundleDir
func NewGetCmd(deps *Deps) *cobra.Command {
	var (
		typ    string
		mapped string
	)

	cmd := &cobra.Command{
		Use:   "get MOD [KEY]",
		Short: "print one value from the cfg file of a mod",
		Args: func(cmd *cobra.Command, args []string) error {
			if mapped != "" {
				return cobra.ExactArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := itemcfg.GetOptions{
				Mod:    args[0],
				Type:   cfg.ValueType(typ),
				Mapped: cfg.MappedKey(mapped),
			}
			if len(args) > 1 {
				opts.Key = args[1]
			}
			value, err := deps.Tool.Get(cmd.Context(), opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}

	cmd.Flags().StringVarP(&typ, "type", "t", string(cfg.TypeString), "value type: number or string")
	cmd.Flags().StringVarP(&mapped, "mapped", "m", "", "read a mapped key (bundleDir, itemPreview)")

	_ = cmd.RegisterFlagCompletionFunc("type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(cfg.TypeNumber), string(cfg.TypeString)}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("mapped", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(cfg.MappedKeys()))
		for _, name := range cfg.MappedKeys() {
			names = append(names, string(name))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
