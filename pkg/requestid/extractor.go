package requestid

import (
	"context"
	"log/slog"
)

// LogExtractor returns a logger.ContextExtractor compatible function that
// adds "request_id" to records carrying one.
func LogExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return slog.String("request_id", id), true
		}
		return slog.Attr{}, false
	}
}
