package glsandbox

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger shared by glsandbox and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by glsandbox:
//   - [slog.LevelDebug]: per-glyph rasterization and upload details
//   - [slog.LevelInfo]: lifecycle events (window opened, glyphs loaded, atlas exported)
//   - [slog.LevelWarn]: non-fatal issues (glyph overwritten, glyph missing from font)
//
// Example:
//
//	glsandbox.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// ComponentLogger returns Logger() tagged with a "component" attribute.
// Sub-packages call it once per operation rather than caching the result,
// so a later SetLogger takes effect.
func ComponentLogger(name string) *slog.Logger {
	return Logger().With(slog.String("component", name))
}
