// Package handler provides typed HTTP handlers with pluggable binders and
// responses that adapt to DataStar clients.
//
// A HandlerFunc receives a Context and a request struct filled by the
// configured binders, and returns a Response. Wrap turns it into an
// http.HandlerFunc:
//
//	type searchRequest struct {
//		GSTIN string `query:"gstin" form:"gstin"`
//	}
//
//	r.Get("/gst-return-checker/search", handler.Wrap(h.search,
//		handler.WithBinders[handler.Context, searchRequest](binder.Query()),
//		handler.WithErrorHandler[handler.Context, searchRequest](errHandler),
//	))
//
// Responses:
//
//   - Templ, TemplStatus and TemplPartial render templ components as HTML, or
//     as SSE element patches when the request came from DataStar.
//   - Redirect and RedirectWithCode issue HTTP redirects, or a client-side
//     redirect over SSE for DataStar.
//   - JSON and JSONError render {"data", "meta", "error"} bodies.
//
// Errors returned by binders or Render go to the ErrorHandler.
// NewErrorHandler maps HTTPError and ValidationError to status codes, logs
// with the request id and renders a page or a toast.
package handler
