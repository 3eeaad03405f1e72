// Package mods locates mod directories under a mods root.
package mods

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrModNotFound indicates a mod name does not resolve to a directory.
var ErrModNotFound = errors.New("mods: mod not found")

// ModNotFoundError carries the requested name and where it was looked for.
type ModNotFoundError struct {
	Name string
	Dir  string
	Msg  string
}

func (e *ModNotFoundError) Error() string {
	msg := fmt.Sprintf("mod %q not found", e.Name)
	if e.Dir != "" {
		msg += fmt.Sprintf(" at %s", e.Dir)
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	return msg
}

func (e *ModNotFoundError) Is(target error) bool { return target == ErrModNotFound }

func (e *ModNotFoundError) Unwrap() error { return ErrModNotFound }

// IsModNotFound reports whether err is (or wraps) a mod-not-found condition.
func IsModNotFound(err error) bool {
	return errors.Is(err, ErrModNotFound)
}

// Stater is the slice of the runtime used to check directories.
// *toolkit.Runtime satisfies it.
type Stater interface {
	Stat(path string, followSymlinks bool) (os.FileInfo, error)
}

// Resolver maps a mod name to Root/<name>.
type Resolver struct {
	Root string
	FS   Stater
}

// ModDir returns the absolute directory of the mod called name.
func (r *Resolver) ModDir(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", &ModNotFoundError{Name: name, Msg: "invalid mod name"}
	}

	root := r.Root
	if root == "" {
		root = "."
	}
	dir, err := filepath.Abs(filepath.Join(root, name))
	if err != nil {
		return "", fmt.Errorf("resolve mod dir: %w", err)
	}

	info, err := r.FS.Stat(dir, true)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &ModNotFoundError{Name: name, Dir: dir}
		}
		return "", fmt.Errorf("stat mod dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", &ModNotFoundError{Name: name, Dir: dir, Msg: "not a directory"}
	}
	return dir, nil
}
