package itemcfg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jlrickert/itemcfg/pkg/cfg"
	"github.com/jlrickert/itemcfg/pkg/log"
)

// CreateOptions are the fields of a new cfg. Empty Language and Visibility
// take the settings defaults; an empty Content takes the default bundle dir.
type CreateOptions struct {
	Mod         string
	Title       string
	Description string
	Tags        string
	Content     string
	Language    string
	Visibility  string

	// Force overwrites an existing cfg.
	Force bool

	// Out receives the echo of the written file.
	Out io.Writer
}

// Create writes the cfg file of a mod and returns its path.
func (t *Tool) Create(ctx context.Context, opts CreateOptions) (string, error) {
	lg := log.FromContext(ctx)

	path, err := t.Manager.Path(opts.Mod)
	if err != nil {
		return "", err
	}

	if !opts.Force {
		if _, err := t.Runtime.Stat(path, false); err == nil {
			return "", &CfgExistsError{Path: path}
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("unable to check %s: %w", path, err)
		}
	}

	if err := t.Runtime.Mkdir(filepath.Dir(path), 0o755, true); err != nil {
		return "", fmt.Errorf("unable to create cfg dir: %w", err)
	}

	params := cfg.WriteParams{
		Title:       opts.Title,
		Description: opts.Description,
		Tags:        opts.Tags,
		Content:     opts.Content,
		Language:    opts.Language,
		Visibility:  opts.Visibility,
		FilePath:    path,
	}
	if params.Language == "" {
		params.Language = t.Settings.Language
	}
	if params.Visibility == "" {
		params.Visibility = t.Settings.Visibility
	}

	m := *t.Manager
	m.Out = opts.Out
	if err := m.WriteFile(ctx, params); err != nil {
		return "", err
	}
	lg.Info("cfg created", "mod", opts.Mod, "path", path)
	return path, nil
}
