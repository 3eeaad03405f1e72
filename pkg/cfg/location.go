package cfg

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Ext is the extension of item config files.
const Ext = ".cfg"

// ModDirs resolves the absolute directory of a mod.
type ModDirs interface {
	ModDir(name string) (string, error)
}

// Location says where a mod's cfg file lives: a file name and a directory
// relative to the mod directory. An empty RelativeDir means the mod directory
// itself. Location is a value; the With* methods return modified copies.
type Location struct {
	Base        string
	RelativeDir string
}

// DefaultBase is the file name used when no override is given.
func DefaultBase(gameNumber int) string {
	return fmt.Sprintf("itemV%d%s", gameNumber, Ext)
}

// NewLocation builds the location used for a run. A non-empty override is a
// path fragment without extension, such as "cfgs/item"; otherwise the default
// base for gameNumber is used next to the mod.
func NewLocation(override string, gameNumber int) Location {
	override = strings.TrimSpace(override)
	if override == "" {
		return Location{Base: DefaultBase(gameNumber)}
	}

	dir, base := filepath.Split(filepath.FromSlash(override + Ext))
	if dir != "" {
		dir = filepath.Clean(dir)
	}
	return Location{Base: base, RelativeDir: dir}
}

// WithBase returns a copy of l with Base replaced.
func (l Location) WithBase(base string) Location {
	l.Base = base
	return l
}

// WithRelativeDir returns a copy of l with RelativeDir replaced.
func (l Location) WithRelativeDir(dir string) Location {
	l.RelativeDir = dir
	return l
}

// Dir resolves the directory holding the cfg file of mod. Failures of the mod
// lookup are returned wrapped.
func (l Location) Dir(mods ModDirs, mod string) (string, error) {
	modDir, err := mods.ModDir(mod)
	if err != nil {
		return "", fmt.Errorf("resolve mod %q: %w", mod, err)
	}
	if filepath.IsAbs(l.RelativeDir) {
		return filepath.Clean(l.RelativeDir), nil
	}
	return filepath.Join(modDir, l.RelativeDir), nil
}

// Path is Dir joined with Base.
func (l Location) Path(mods ModDirs, mod string) (string, error) {
	dir, err := l.Dir(mods, mod)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, l.Base), nil
}
