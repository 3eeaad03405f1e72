package itemcfg_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/jlrickert/itemcfg/pkg/itemcfg"
	"github.com/jlrickert/itemcfg/pkg/settings"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsPath(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("xdg layout only")
	}
	rt, err := toolkit.NewTestRuntime(t.TempDir(), "/home/testuser", "testuser")
	require.NoError(t, err)

	rt.Unset("XDG_CONFIG_HOME")
	require.Equal(t, settings.DefaultPath, itemcfg.DefaultSettingsPath(rt))

	require.NoError(t, rt.Set("XDG_CONFIG_HOME", "/xdg"))
	require.Equal(t, "/xdg/itemcfg/config.yaml", itemcfg.DefaultSettingsPath(rt))
}

func TestHostPath_PrefixesJail(t *testing.T) {
	t.Parallel()
	jail := t.TempDir()
	rt, err := toolkit.NewTestRuntime(jail, "/home/testuser", "testuser")
	require.NoError(t, err)

	p, err := itemcfg.HostPath(rt, "~/logs/itemcfg.log")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(jail, "home/testuser/logs/itemcfg.log"), p)
}
