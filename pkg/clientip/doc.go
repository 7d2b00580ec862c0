// Package clientip resolves the originating client address of a request
// served behind reverse proxies.
//
// Proxy headers are examined in order (CF-Connecting-IP, X-Forwarded-For,
// X-Real-IP by default) and the first valid IP wins; RemoteAddr is the
// fallback. The result is normalized through net.ParseIP, so malformed
// header values are skipped rather than trusted.
//
// Middleware stores the address in the request context, where rate limiting
// (Key) and logging (LogExtractor) pick it up.
package clientip
