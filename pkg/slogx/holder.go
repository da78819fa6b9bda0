package slogx

import (
	"context"
	"log/slog"
	"net/http"
)

type holderKey struct{}

type loggerHolder struct {
	logger *slog.Logger
}

func withHolder(ctx context.Context, h *loggerHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}

// Annotate extends the request logger with args, both for downstream handlers
// and for the access log line written by HTTPMiddleware. It returns the
// request to pass on.
func Annotate(r *http.Request, args ...any) *http.Request {
	ctx := With(r.Context(), args...)
	if h, ok := ctx.Value(holderKey{}).(*loggerHolder); ok {
		h.logger = FromContext(ctx)
	}
	return r.WithContext(ctx)
}
