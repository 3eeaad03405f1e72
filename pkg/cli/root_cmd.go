package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/jlrickert/itemcfg/pkg/itemcfg"
	"github.com/jlrickert/itemcfg/pkg/log"
	"github.com/spf13/cobra"
)

type Deps struct {
	Runtime *toolkit.Runtime

	// CfgPath is the --cfg override: a cfg path fragment without extension.
	CfgPath    string
	ConfigPath string
	LogFile    string
	LogLevel   string
	LogJSON    bool

	Tool *itemcfg.Tool

	closeLog func() error
}

// Close releases the log file opened for --log-file. It is safe to call more
// than once.
func (d *Deps) Close() error {
	if d.closeLog == nil {
		return nil
	}
	closeLog := d.closeLog
	d.closeLog = nil
	return closeLog()
}

// openLogFile opens path for appending inside the runtime's view of the
// filesystem, creating missing parent directories.
func openLogFile(rt *toolkit.Runtime, path string) (*os.File, error) {
	hostPath, err := itemcfg.HostPath(rt, path)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve log file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(hostPath), 0o755); err != nil {
		return nil, fmt.Errorf("unable to create log dir: %w", err)
	}
	return os.OpenFile(hostPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// NewRootCmd builds the root command. PersistentPreRunE loads settings and
// builds the Tool; a logger already on the command context (tests) is kept.
func NewRootCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = &Deps{}
	}

	cmd := &cobra.Command{
		Use:           itemcfg.DefaultAppName,
		Short:         "read and write item cfg files of mods",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt := deps.Runtime
			if rt == nil {
				return fmt.Errorf("runtime is required")
			}

			if !log.HasLogger(ctx) {
				var out io.Writer = cmd.ErrOrStderr()
				if deps.LogFile != "" {
					f, err := openLogFile(rt, deps.LogFile)
					if err != nil {
						return err
					}
					out = f
					deps.closeLog = f.Close
				}
				ctx = log.WithLogger(ctx, log.NewLogger(log.LoggerConfig{
					Out:     out,
					Level:   log.ParseLevel(deps.LogLevel),
					JSON:    deps.LogJSON,
					Version: Version,
				}))
			}

			tool, err := itemcfg.NewTool(ctx, itemcfg.ToolOptions{
				Runtime:      rt,
				SettingsPath: deps.ConfigPath,
				CfgOverride:  deps.CfgPath,
			})
			if err != nil {
				_ = deps.Close()
				return err
			}
			deps.Tool = tool

			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return deps.Close()
		},
	}

	cmd.PersistentFlags().StringVar(&deps.CfgPath, "cfg", "", "custom cfg path without extension, relative to the mod dir")
	cmd.PersistentFlags().StringVarP(&deps.ConfigPath, "config", "c", "", "path to settings file (default ~/.config/itemcfg/config.yaml)")
	cmd.PersistentFlags().StringVar(&deps.LogFile, "log-file", "", "write logs to file (default stderr)")
	cmd.PersistentFlags().StringVar(&deps.LogLevel, "log-level", "warn", "minimum log level")
	cmd.PersistentFlags().BoolVar(&deps.LogJSON, "log-json", false, "output logs as JSON")

	cmd.AddCommand(
		NewPathCmd(deps),
		NewDirCmd(deps),
		NewCreateCmd(deps),
		NewGetCmd(deps),
		NewInfoCmd(deps),
		NewEditCmd(deps),
		NewConfigCmd(deps),
	)

	return cmd
}
