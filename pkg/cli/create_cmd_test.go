package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateCommand_WritesCfg(t *testing.T) {
	t.Parallel()
	sb := NewModderSandbox(t)

	res := NewProcess(t, false,
		"create", "beta",
		"--title", "T",
		"--description", "D",
		"--tags", "a; b; ;c",
		"--language", "en",
		"--visibility", "public",
	).Run(sb.Context(), sb.Runtime())
	require.NoError(t, res.Err, "stderr: %s", string(res.Stderr))

	stdout := string(res.Stdout)
	require.Contains(t, stdout, "itemV2.cfg:\n  title = \"T\";")
	require.Contains(t, stdout, `  tags = ["a", "b", "c"]`)

	content := string(sb.MustReadFile("~/mods/beta/itemV2.cfg"))
	require.Equal(t, `title = "T";
description = "D";
preview = "preview.png";
content = "bundleV2";
language = "en";
visibility = "public";
tags = ["a", "b", "c"]`, content)
}

func TestCreateCommand_UsesSettingsDefaults(t *testing.T) {
	t.Parallel()
	sb := NewModderSandbox(t)

	res := NewProcess(t, false, "create", "beta", "--title", "T", "--content", "my_bundle").
		Run(sb.Context(), sb.Runtime())
	require.NoError(t, res.Err, "stderr: %s", string(res.Stderr))

	content := string(sb.MustReadFile("~/mods/beta/itemV2.cfg"))
	require.Contains(t, content, `content = "my_bundle";`)
	require.Contains(t, content, `language = "english";`)
	require.Contains(t, content, `visibility = "private";`)
	require.Contains(t, content, `tags = []`)
}

func TestCreateCommand_CustomCfgPath(t *testing.T) {
	t.Parallel()
	sb := NewModderSandbox(t)

	res := NewProcess(t, false, "--cfg", "cfgs/item", "create", "beta", "--title", "T").
		Run(sb.Context(), sb.Runtime())
	require.NoError(t, res.Err, "stderr: %s", string(res.Stderr))
	require.Contains(t, string(res.Stdout), "item.cfg:")

	content := string(sb.MustReadFile("~/mods/beta/cfgs/item.cfg"))
	require.Contains(t, content, `title = "T";`)
}

func TestCreateCommand_RefusesOverwrite(t *testing.T) {
	t.Parallel()
	sb := NewModderSandbox(t)

	res := NewProcess(t, false, "create", "alpha", "--title", "New").Run(sb.Context(), sb.Runtime())
	require.Error(t, res.Err)
	require.Contains(t, string(res.Stderr), "already exists")
	require.Contains(t, string(sb.MustReadFile("~/mods/alpha/itemV2.cfg")), `title = "Alpha";`)

	res = NewProcess(t, false, "create", "alpha", "--title", "New", "--force").Run(sb.Context(), sb.Runtime())
	require.NoError(t, res.Err, "stderr: %s", string(res.Stderr))
	require.Contains(t, string(sb.MustReadFile("~/mods/alpha/itemV2.cfg")), `title = "New";`)
}

func TestCreateCommand_RejectsQuotes(t *testing.T) {
	t.Parallel()
	sb := NewModderSandbox(t)

	res := NewProcess(t, false, "create", "beta", "--title", `The "Best" Mod`).Run(sb.Context(), sb.Runtime())
	require.Error(t, res.Err)
	require.Contains(t, string(res.Stderr), "title")
	require.Contains(t, string(res.Stderr), "double quote")
}
