package log

import (
	"context"
	"log/slog"
)

type contextKey string

const keyAttrs contextKey = "logAttrs"

// WithAttrs returns a context carrying the given attributes in addition to
// the ones already attached to ctx.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	existing := Attrs(ctx)

	merged := make([]slog.Attr, 0, len(existing)+len(attrs))
	merged = append(merged, existing...)
	merged = append(merged, attrs...)

	return context.WithValue(ctx, keyAttrs, merged)
}

func Attrs(ctx context.Context) []slog.Attr {
	attrs, ok := ctx.Value(keyAttrs).([]slog.Attr)
	if !ok {
		return nil
	}

	return attrs
}
