package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures how a component is patched for DataStar requests.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the component is patched into.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

type templResponse struct {
	status  int
	partial templ.Component
	full    templ.Component
	options []TemplOption
}

// Render patches the partial over SSE for DataStar requests and writes the
// full component as HTML otherwise. SSE responses always use 200.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(t.partial, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 && t.status != http.StatusOK {
		w.WriteHeader(t.status)
	}
	return t.full.Render(r.Context(), w)
}

// Templ renders component with status 200.
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{partial: component, full: component, options: opts}
}

// TemplStatus renders component with the given HTTP status for regular
// requests, e.g. a not-found page with 404.
func TemplStatus(status int, component templ.Component, opts ...TemplOption) Response {
	return templResponse{status: status, partial: component, full: component, options: opts}
}

// TemplPartial sends partial to DataStar clients and full to everyone else.
func TemplPartial(status int, partial, full templ.Component, opts ...TemplOption) Response {
	return templResponse{status: status, partial: partial, full: full, options: opts}
}
