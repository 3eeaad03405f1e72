package itemcfg

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/jlrickert/itemcfg/pkg/cfg"
	"github.com/jlrickert/itemcfg/pkg/log"
)

type EditOptions struct {
	Mod    string
	Stream *toolkit.Stream
}

// Edit opens the cfg of a mod in the user's editor. Each save that parses
// and still carries every mapped key is written back; piped input replaces
// the file without starting an editor.
func (t *Tool) Edit(ctx context.Context, opts EditOptions) error {
	path, err := t.Manager.Path(opts.Mod)
	if err != nil {
		return err
	}
	original, err := t.Manager.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("unable to read cfg: %w", err)
	}

	apply := func(raw []byte) error {
		return t.applyEditedCfg(ctx, path, raw)
	}

	if opts.Stream != nil && opts.Stream.IsPiped {
		piped, err := io.ReadAll(opts.Stream.In)
		if err != nil {
			return fmt.Errorf("unable to read piped input: %w", err)
		}
		if len(bytes.TrimSpace(piped)) > 0 {
			return apply(piped)
		}
	}

	tempPath, err := newEditorTempFilePath(t.Runtime, "itemcfg-edit-"+opts.Mod+"-", cfg.Ext)
	if err != nil {
		return fmt.Errorf("unable to create temp file path: %w", err)
	}
	if err := t.Runtime.WriteFile(tempPath, []byte(original), 0o600); err != nil {
		return fmt.Errorf("unable to write temp edit file: %w", err)
	}
	defer func() {
		_ = t.Runtime.Remove(tempPath, false)
	}()

	if err := editWithLiveSaves(ctx, t.Runtime, tempPath, apply); err != nil {
		return fmt.Errorf("unable to edit cfg: %w", err)
	}
	return nil
}

func (t *Tool) applyEditedCfg(ctx context.Context, path string, raw []byte) error {
	data := string(raw)
	if _, err := cfg.Parse(data); err != nil {
		return fmt.Errorf("invalid cfg: %w", err)
	}
	for _, name := range cfg.MappedKeys() {
		if _, err := cfg.GetMappedValue(path, data, name); err != nil {
			return err
		}
	}
	if err := t.Runtime.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("unable to save cfg: %w", err)
	}
	log.FromContext(ctx).Info("cfg saved", "path", path)
	return nil
}
