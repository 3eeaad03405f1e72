package itemcfg

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jlrickert/cli-toolkit/toolkit"
)

const saveSettle = 120 * time.Millisecond

// saveTracker applies each distinct saved version of a file once.
type saveTracker struct {
	path    string
	onSave  func([]byte) error
	warn    func(error)
	hasHash bool
	last    [sha256.Size]byte

	attempted bool
	applied   bool
	lastErr   error
}

func (s *saveTracker) prime() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read edit file: %w", err)
	}
	s.last = sha256.Sum256(raw)
	s.hasHash = true
	return nil
}

func (s *saveTracker) process() {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	if err != nil {
		s.attempted = true
		s.lastErr = fmt.Errorf("unable to read edited file: %w", err)
		s.warn(s.lastErr)
		return
	}

	sum := sha256.Sum256(raw)
	if s.hasHash && sum == s.last {
		return
	}
	s.last, s.hasHash = sum, true
	s.attempted = true

	if err := s.onSave(raw); err != nil {
		s.lastErr = err
		s.warn(err)
		return
	}
	s.applied = true
	s.lastErr = nil
}

// result is nil when the last save was applied or nothing was saved.
func (s *saveTracker) result() error {
	if s.attempted && s.lastErr != nil {
		return s.lastErr
	}
	return nil
}

// editWithLiveSaves runs the user's editor on path and calls onSave whenever
// the file is saved with new content. A save rejected by onSave is reported
// as a warning; if the final save is rejected its error is returned.
func editWithLiveSaves(ctx context.Context, rt *toolkit.Runtime, path string, onSave func([]byte) error) error {
	if rt == nil {
		return fmt.Errorf("runtime is required")
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty filepath")
	}

	hostPath, err := HostPath(rt, path)
	if err != nil {
		return fmt.Errorf("resolve edit path: %w", err)
	}

	editor := strings.TrimSpace(rt.Get("VISUAL"))
	if editor == "" {
		editor = strings.TrimSpace(rt.Get("EDITOR"))
	}
	if editor == "" {
		editor = toolkit.DefaultEditor
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("invalid editor command %q", editor)
	}

	stream := rt.Stream()
	cmd := exec.CommandContext(ctx, parts[0], append(parts[1:], hostPath)...)
	cmd.Stdin = stream.In
	cmd.Stdout = stream.Out
	cmd.Stderr = stream.Err
	cmd.Env = rt.Environ()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch edit file: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()
	if err := watcher.Add(filepath.Dir(hostPath)); err != nil {
		return fmt.Errorf("watch edit directory: %w", err)
	}

	tracker := &saveTracker{
		path:   hostPath,
		onSave: onSave,
		warn: func(err error) {
			_, _ = fmt.Fprintf(stream.Err, "Warning: %v\n", err)
		},
	}
	if err := tracker.prime(); err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("running editor %q: %w", editor, err)
	}
	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	var (
		pending     bool
		pendingFrom time.Time
	)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if pending && time.Since(pendingFrom) >= saveSettle {
				tracker.process()
				pending = false
			}
		case event, ok := <-watcher.Events:
			if !ok {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(hostPath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Chmod) != 0 {
				pending = true
				pendingFrom = time.Now()
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				continue
			}
			_, _ = fmt.Fprintf(stream.Err, "Warning: editor file watcher error: %v\n", watchErr)
		case err := <-done:
			tracker.process()
			if err != nil {
				return fmt.Errorf("running editor %q: %w", editor, err)
			}
			return tracker.result()
		case <-ctx.Done():
			if err := <-done; err != nil {
				return fmt.Errorf("running editor %q: %w", editor, err)
			}
			return ctx.Err()
		}
	}
}

// newEditorTempFilePath picks an unused path for an editor buffer. Inside a
// jail the buffer lives under the jailed home so the editor can reach it.
func newEditorTempFilePath(rt *toolkit.Runtime, prefix string, suffix string) (string, error) {
	base := strings.TrimSpace(rt.GetTempDir())
	if strings.TrimSpace(rt.GetJail()) != "" {
		base = "/tmp"
		if home, err := rt.GetHome(); err == nil && strings.TrimSpace(home) != "" {
			base = filepath.Join(home, ".cache", DefaultAppName, "tmp")
		}
	}
	if base == "" {
		base = os.TempDir()
	}

	dir, err := absPath(rt, base)
	if err != nil {
		return "", err
	}
	if err := rt.Mkdir(dir, 0o755, true); err != nil {
		return "", err
	}

	for i := 0; i < 64; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%s%d-%02d%s", prefix, time.Now().UnixNano(), i, suffix))
		_, err := rt.Stat(path, false)
		if errors.Is(err, os.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("unable to allocate temp file path")
}
