package cfg

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jlrickert/itemcfg/pkg/log"
)

// FileSystem is the file I/O the manager needs. *toolkit.Runtime satisfies
// it.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
}

// Manager reads and writes the cfg files of mods.
type Manager struct {
	Location Location
	Defaults Defaults
	Mods     ModDirs
	FS       FileSystem

	// Out receives a readable copy of every written file. Nil discards it.
	Out io.Writer
}

// Dir resolves the directory holding the cfg file of mod.
func (m *Manager) Dir(mod string) (string, error) {
	return m.Location.Dir(m.Mods, mod)
}

// Path resolves the cfg file of mod.
func (m *Manager) Path(mod string) (string, error) {
	return m.Location.Path(m.Mods, mod)
}

// WriteFile renders params and writes the result to params.FilePath. Errors
// from the filesystem are returned as is.
func (m *Manager) WriteFile(ctx context.Context, params WriteParams) error {
	lg := log.FromContext(ctx)
	if strings.TrimSpace(params.FilePath) == "" {
		return fmt.Errorf("write cfg: empty file path")
	}

	text, err := Render(params, m.Defaults)
	if err != nil {
		lg.Debug("refusing to render cfg", "path", params.FilePath, "err", err)
		return err
	}

	if m.Out != nil {
		indented := strings.ReplaceAll(strings.TrimSpace(text), "\n", "\n  ")
		if _, err := fmt.Fprintf(m.Out, "%s:\n  %s\n", m.Location.Base, indented); err != nil {
			return err
		}
	}
	lg.Debug("writing cfg", "path", params.FilePath, "base", m.Location.Base, "bytes", len(text))

	return m.FS.WriteFile(params.FilePath, []byte(text), 0o644)
}

// ReadFile returns the text of the cfg file at path. Errors from the
// filesystem are returned as is.
func (m *Manager) ReadFile(ctx context.Context, path string) (string, error) {
	data, err := m.FS.ReadFile(path)
	if err != nil {
		log.FromContext(ctx).Debug("failed to read cfg", "path", path, "err", err)
		return "", err
	}
	return string(data), nil
}

// ReadMappedValue reads the cfg of mod and returns the value of name.
func (m *Manager) ReadMappedValue(ctx context.Context, mod string, name MappedKey) (string, error) {
	path, err := m.Path(mod)
	if err != nil {
		return "", err
	}
	data, err := m.ReadFile(ctx, path)
	if err != nil {
		return "", err
	}
	return GetMappedValue(path, data, name)
}
