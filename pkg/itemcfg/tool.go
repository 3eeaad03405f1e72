package itemcfg

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/jlrickert/itemcfg/pkg/cfg"
	"github.com/jlrickert/itemcfg/pkg/mods"
	"github.com/jlrickert/itemcfg/pkg/settings"
)

const DefaultAppName = "itemcfg"

// Tool ties the cfg manager to the runtime and the loaded settings.
type Tool struct {
	// Runtime carries process-level dependencies.
	Runtime  *toolkit.Runtime
	Settings *settings.Settings
	Manager  *cfg.Manager

	// SettingsPath is the settings file that was consulted.
	SettingsPath string
}

type ToolOptions struct {
	Runtime *toolkit.Runtime

	// SettingsPath overrides DefaultSettingsPath. An explicit path must
	// exist.
	SettingsPath string

	// CfgOverride is a cfg path fragment without extension, relative to the
	// mod directory or absolute.
	CfgOverride string
}

func NewTool(ctx context.Context, opts ToolOptions) (*Tool, error) {
	rt := opts.Runtime
	if rt == nil {
		var err error
		rt, err = toolkit.NewRuntime()
		if err != nil {
			return nil, fmt.Errorf("unable to create runtime: %w", err)
		}
	}
	if err := rt.Validate(); err != nil {
		return nil, fmt.Errorf("invalid runtime: %w", err)
	}

	settingsPath := opts.SettingsPath
	required := settingsPath != ""
	if !required {
		settingsPath = DefaultSettingsPath(rt)
	}
	settingsPath, err := absPath(rt, settingsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve settings path: %w", err)
	}
	s, err := settings.Load(ctx, rt, rt, settingsPath, required)
	if err != nil {
		return nil, err
	}

	modsRoot, err := absPath(rt, s.ModsDir)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve mods dir: %w", err)
	}

	manager := &cfg.Manager{
		Location: cfg.NewLocation(opts.CfgOverride, s.GameNumber),
		Defaults: s.CfgDefaults(),
		Mods:     &mods.Resolver{Root: modsRoot, FS: rt},
		FS:       rt,
	}
	return &Tool{
		Runtime:      rt,
		Settings:     s,
		Manager:      manager,
		SettingsPath: settingsPath,
	}, nil
}

// absPath expands ~ and environment references and anchors relative paths
// at the runtime's working directory.
func absPath(rt *toolkit.Runtime, path string) (string, error) {
	expanded, err := toolkit.ExpandPath(rt, toolkit.ExpandEnv(rt, path))
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	wd, err := rt.Getwd()
	if err != nil {
		return "", fmt.Errorf("unable to determine working directory: %w", err)
	}
	return filepath.Join(wd, expanded), nil
}
