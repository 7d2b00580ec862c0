package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

type redirectResponse struct {
	url  string
	code int
}

// Render issues an HTTP redirect, or a client-side one over SSE for DataStar.
func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if IsDataStar(req) {
		return datastar.NewSSE(w, req).Redirect(r.url)
	}
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect redirects with 303 See Other.
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}

// RedirectWithCode redirects with an explicit 3xx status, e.g. 301 for
// canonical URLs.
func RedirectWithCode(url string, code int) Response {
	return redirectResponse{url: url, code: code}
}
