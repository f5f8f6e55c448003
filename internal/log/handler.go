package log

import (
	"context"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
)

// ContextHandler adds the attributes attached with WithAttrs to every record
// logged with a context.
type ContextHandler struct {
	slog.Handler
}

// Handle implements slog.Handler.
func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs := Attrs(ctx); len(attrs) > 0 {
		r.AddAttrs(attrs...)
	}

	return h.Handler.Handle(ctx, r)
}

// WithAttrs implements slog.Handler.
func (h ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ContextHandler{h.Handler.WithAttrs(attrs)}
}

// WithGroup implements slog.Handler.
func (h ContextHandler) WithGroup(name string) slog.Handler {
	return ContextHandler{h.Handler.WithGroup(name)}
}

// NewLogger returns a logger honoring both the attributes attached with
// WithAttrs and those attached with slogx.
func NewLogger(handler slog.Handler) *slog.Logger {
	return slog.New(ContextHandler{
		Handler: slogx.ContextHandler{
			Handler: handler,
		},
	})
}

var _ slog.Handler = ContextHandler{}
