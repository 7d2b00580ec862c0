package clientip

import "net/http"

// Middleware stores the resolved client address in the request context.
// Pass header names to override DefaultHeaders, e.g. when only one proxy
// header can be trusted.
func Middleware(headers ...string) func(http.Handler) http.Handler {
	if len(headers) == 0 {
		headers = DefaultHeaders
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := resolve(r, headers)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), ip)))
		})
	}
}

// Key returns the client address for r, preferring the one in the context.
// It fits ratelimiter.KeyFunc.
func Key(r *http.Request) string {
	if ip := FromContext(r.Context()); ip != "" {
		return ip
	}
	return FromRequest(r)
}
