package cfg_test

import (
	"fmt"
	"os"
	"sync"
)

// memFS is an in-memory cfg.FileSystem.
type memFS struct {
	mu       sync.Mutex
	files    map[string][]byte
	writeErr error
}

func newMemFS() *memFS {
	return &memFS{files: map[string][]byte{}}
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (m *memFS) WriteFile(path string, data []byte, _ os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[path] = append([]byte(nil), data...)
	return nil
}

// staticMods resolves mods from a fixed table.
type staticMods map[string]string

func (s staticMods) ModDir(name string) (string, error) {
	dir, ok := s[name]
	if !ok {
		return "", fmt.Errorf("mod %q not found", name)
	}
	return dir, nil
}
