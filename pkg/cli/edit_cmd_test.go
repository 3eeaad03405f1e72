package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEdit_PipedStdinReplacesCfg(t *testing.T) {
	t.Parallel()
	sb := NewModderSandbox(t)
	require.NoError(t, sb.Runtime().Set("EDITOR", "/bin/false"))
	sb.Runtime().Unset("VISUAL")

	stdin := strings.NewReader(`title = "Piped";
preview = "p.png";
content = "piped_bundle";
tags = ["x"]
`)
	res := NewProcess(t, false, "edit", "alpha").RunWithIO(sb.Context(), sb.Runtime(), stdin)
	require.NoError(t, res.Err, "stderr: %s", string(res.Stderr))

	content := string(sb.MustReadFile("~/mods/alpha/itemV2.cfg"))
	require.Contains(t, content, `title = "Piped";`)
	require.Contains(t, content, `content = "piped_bundle";`)
}

func TestEdit_PipedStdinMissingMappedKey(t *testing.T) {
	t.Parallel()
	sb := NewModderSandbox(t)
	require.NoError(t, sb.Runtime().Set("EDITOR", "/bin/false"))
	sb.Runtime().Unset("VISUAL")

	res := NewProcess(t, false, "edit", "alpha").
		RunWithIO(sb.Context(), sb.Runtime(), strings.NewReader(`title = "No content";`))
	require.Error(t, res.Err)
	require.Contains(t, string(res.Stderr), "No 'content' value specified")

	content := string(sb.MustReadFile("~/mods/alpha/itemV2.cfg"))
	require.Contains(t, content, `title = "Alpha";`)
}

func TestEdit_PipedStdinSyntaxError(t *testing.T) {
	t.Parallel()
	sb := NewModderSandbox(t)
	require.NoError(t, sb.Runtime().Set("EDITOR", "/bin/false"))
	sb.Runtime().Unset("VISUAL")

	res := NewProcess(t, false, "edit", "alpha").
		RunWithIO(sb.Context(), sb.Runtime(), strings.NewReader("title = \"x\" oops"))
	require.Error(t, res.Err)
	require.Contains(t, string(res.Stderr), "invalid cfg")
}

func TestEdit_EditorSaveIsApplied(t *testing.T) {
	t.Parallel()
	sb := NewModderSandbox(t)

	jail := sb.Runtime().GetJail()
	require.NotEmpty(t, jail)
	resolvedJail, err := filepath.EvalSymlinks(jail)
	require.NoError(t, err)
	require.NoError(t, sb.Runtime().SetJail(resolvedJail))
	jail = resolvedJail

	scriptPath := filepath.Join(jail, "edit-cfg.sh")
	script := `#!/bin/sh
cat > "$1" <<'EOF'
title = "Edited";
preview = "edited.png";
content = "edited_bundle";
tags = ["edited"]
EOF
`
	require.NoError(t, os.WriteFile(scriptPath, []byte(script), 0o755))
	require.NoError(t, sb.Runtime().Set("EDITOR", "/bin/sh "+scriptPath))
	sb.Runtime().Unset("VISUAL")

	res := NewProcess(t, false, "edit", "alpha").RunWithIO(sb.Context(), sb.Runtime(), strings.NewReader(""))
	require.NoError(t, res.Err, "stderr: %s", string(res.Stderr))

	content := string(sb.MustReadFile("~/mods/alpha/itemV2.cfg"))
	require.Contains(t, content, `title = "Edited";`)
	require.Contains(t, content, `content = "edited_bundle";`)
}

func TestEdit_UnknownMod(t *testing.T) {
	t.Parallel()
	sb := NewModderSandbox(t)

	res := NewProcess(t, false, "edit", "ghost").RunWithIO(sb.Context(), sb.Runtime(), strings.NewReader(""))
	require.Error(t, res.Err)
	require.Contains(t, string(res.Stderr), `mod "ghost" not found`)
}
