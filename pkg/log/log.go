package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// LoggerConfig is a minimal, convenient set of options.
type LoggerConfig struct {
	Version string

	// If Out is nil, stderr is used so logs never mix with command output.
	Out io.Writer

	Level slog.Level
	JSON  bool // true => JSON output, false => text
}

// NewLogger creates a configured *slog.Logger.
func NewLogger(cfg LoggerConfig) *slog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}
	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler).With(
		slog.String("app", "itemcfg"),
		slog.String("version", cfg.Version),
	)
}

// ParseLevel maps a user supplied level name to a slog.Level. Unknown names
// fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// nopHandler is a tiny no-op slog.Handler.
type nopHandler struct{}

func (n *nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (n *nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (n *nopHandler) WithAttrs(attrs []slog.Attr) slog.Handler  { return n }
func (n *nopHandler) WithGroup(name string) slog.Handler        { return n }

// NewNopLogger returns a logger that discards all log events.
func NewNopLogger() *slog.Logger {
	return slog.New(&nopHandler{})
}

var _ slog.Handler = (*nopHandler)(nil)

///////////////////////////////////////////////////////////////////////////////
// Context helpers
///////////////////////////////////////////////////////////////////////////////

type ctxKeyType struct{}

var ctxKey ctxKeyType

// WithLogger stores lg on ctx.
func WithLogger(ctx context.Context, lg *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, lg)
}

// FromContext returns the logger stored on ctx or a no-op logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return NewNopLogger()
	}
	if lg, ok := ctx.Value(ctxKey).(*slog.Logger); ok && lg != nil {
		return lg
	}
	return NewNopLogger()
}

// HasLogger reports whether ctx already carries a logger.
func HasLogger(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	lg, ok := ctx.Value(ctxKey).(*slog.Logger)
	return ok && lg != nil
}

///////////////////////////////////////////////////////////////////////////////
// Test handler
///////////////////////////////////////////////////////////////////////////////

type LoggedEntry struct {
	Level slog.Level
	Msg   string
	Attrs map[string]any
}

// testingT is a tiny subset of *testing.T used for optional logging.
type testingT interface {
	Logf(format string, args ...any)
}

// TestHandler captures structured entries for assertions.
type TestHandler struct {
	mu      sync.Mutex
	entries []LoggedEntry
	T       testingT
}

func (h *TestHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *TestHandler) Handle(_ context.Context, r slog.Record) error {
	e := LoggedEntry{
		Level: r.Level,
		Msg:   r.Message,
		Attrs: map[string]any{},
	}
	r.Attrs(func(a slog.Attr) bool {
		e.Attrs[a.Key] = a.Value.Any()
		return true
	})
	h.mu.Lock()
	h.entries = append(h.entries, e)
	h.mu.Unlock()

	if h.T != nil {
		h.T.Logf("LOG %s %v %v", e.Msg, e.Level, e.Attrs)
	}
	return nil
}

func (h *TestHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *TestHandler) WithGroup(_ string) slog.Handler      { return h }

// Entries returns a copy of the captured entries.
func (h *TestHandler) Entries() []LoggedEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]LoggedEntry(nil), h.entries...)
}

// FindEntries returns the captured entries with the given message.
func (h *TestHandler) FindEntries(msg string) []LoggedEntry {
	out := make([]LoggedEntry, 0)
	for _, e := range h.Entries() {
		if e.Msg == msg {
			out = append(out, e)
		}
	}
	return out
}

// NewTestLogger returns a logger backed by a TestHandler.
func NewTestLogger(t testingT) (*slog.Logger, *TestHandler) {
	th := &TestHandler{T: t}
	return slog.New(th), th
}

var _ slog.Handler = (*TestHandler)(nil)
