package cli_test

import (
	"context"
	"embed"
	"testing"

	tu "github.com/jlrickert/cli-toolkit/sandbox"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/jlrickert/itemcfg/pkg/cli"
)

// testdata holds the fixtures copied into the sandbox home. The "modder"
// fixture carries a settings file pointing modsDir at ~/mods and three mods:
// alpha (complete cfg), beta (no cfg) and broken (cfg without mapped keys).
//
//go:embed all:data/**
var testdata embed.FS

func NewSandbox(t *testing.T, opts ...tu.Option) *tu.Sandbox {
	return tu.NewSandbox(t, &tu.Options{
		Data: testdata,
		Home: "/home/testuser",
		User: "testuser",
	}, opts...)
}

func NewModderSandbox(t *testing.T) *tu.Sandbox {
	sb := NewSandbox(t, tu.WithFixture("modder", "~"))
	if err := sb.Runtime().Set("XDG_CONFIG_HOME", "/home/testuser/.config"); err != nil {
		t.Fatalf("set XDG_CONFIG_HOME: %v", err)
	}
	return sb
}

func NewProcess(t *testing.T, isTTY bool, args ...string) *tu.Process {
	return tu.NewProcess(func(ctx context.Context, rt *toolkit.Runtime) (int, error) {
		return cli.Run(ctx, rt, args)
	}, isTTY)
}
