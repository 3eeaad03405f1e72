package itemcfg

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/jlrickert/itemcfg/pkg/settings"
)

// DefaultSettingsPath returns the settings file location for rt.
//
// Behavior:
//   - Windows: %APPDATA%\itemcfg\config.yaml when APPDATA is set.
//   - Unix-like systems: $XDG_CONFIG_HOME/itemcfg/config.yaml when
//     XDG_CONFIG_HOME is set.
//   - Otherwise settings.DefaultPath, which lives under ~/.config.
func DefaultSettingsPath(rt *toolkit.Runtime) string {
	if runtime.GOOS == "windows" {
		if appData := strings.TrimSpace(rt.Get("APPDATA")); appData != "" {
			return filepath.Join(appData, DefaultAppName, "config.yaml")
		}
		return settings.DefaultPath
	}
	if xdg := strings.TrimSpace(rt.Get("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, DefaultAppName, "config.yaml")
	}
	return settings.DefaultPath
}

// HostPath maps a runtime path to the path a host process sees. ~ and
// environment references are expanded and relative paths are anchored at the
// working directory. A jailed runtime gets its jail prefixed. The file need
// not exist.
func HostPath(rt *toolkit.Runtime, path string) (string, error) {
	resolved, err := rt.ResolvePath(path, false)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	if jail := strings.TrimSpace(rt.GetJail()); jail != "" {
		return filepath.Join(jail, strings.TrimPrefix(resolved, string(filepath.Separator))), nil
	}
	return resolved, nil
}
