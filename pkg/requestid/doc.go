// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware accepts a client supplied X-Request-ID when it is short and made
// of [a-zA-Z0-9_-], otherwise it generates a UUIDv4. The id is stored in the
// request context, echoed in the response header, added to log records by
// LogExtractor and forwarded to upstream services with Propagate.
//
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LogExtractor()))
//
//	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
//	requestid.Propagate(ctx, req.Header)
package requestid
