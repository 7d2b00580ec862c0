// Package web serves the GST return checker over HTTP.
//
// Routes:
//
//	GET  /gst-return-checker/              search page
//	GET  /gst-return-checker/search?gstin= validate and redirect
//	POST /gst-return-checker/              validate and redirect (form)
//	GET  /gst-return-checker/{slug}/       lookup result, canonicalised with 301
//	GET  /api/lookup/{gstin}               lookup result as JSON
//	GET  /health/live, /health/ready       probes
//	GET  /metrics                          Prometheus, when configured
//
// Pages answer DataStar requests with SSE element patches of the same
// content, so the form and results update in place.
package web
