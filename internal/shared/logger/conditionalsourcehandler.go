package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type conditionalSourceHandler struct {
	handler     slog.Handler
	sourceLevel map[slog.Level]bool
}

// NewConditionalSourceHandler attaches source location only at the given
// levels. The wrapped handler must run with AddSource disabled, otherwise
// the location is emitted twice.
func NewConditionalSourceHandler(handler slog.Handler, levels ...slog.Level) slog.Handler {
	m := make(map[slog.Level]bool, len(levels))
	for _, level := range levels {
		m[level] = true
	}
	return &conditionalSourceHandler{handler: handler, sourceLevel: m}
}

func (h *conditionalSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.sourceLevel[r.Level] && r.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := fs.Next()
		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: f.Function,
				File:     f.File,
				Line:     f.Line,
			}),
		})
	}
	return h.handler.Handle(ctx, r)
}

func (h *conditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &conditionalSourceHandler{handler: h.handler.WithAttrs(attrs), sourceLevel: h.sourceLevel}
}

func (h *conditionalSourceHandler) WithGroup(name string) slog.Handler {
	return &conditionalSourceHandler{handler: h.handler.WithGroup(name), sourceLevel: h.sourceLevel}
}

func (h *conditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}
