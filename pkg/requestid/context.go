package requestid

import "context"

type contextKey struct{}

// WithContext stores id on ctx.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the stored request id or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// Propagate copies the request id from ctx onto an outgoing request header.
// Requests without an id in ctx are left untouched.
func Propagate(ctx context.Context, h interface{ Set(key, value string) }) {
	if id := FromContext(ctx); id != "" {
		h.Set(Header, id)
	}
}
