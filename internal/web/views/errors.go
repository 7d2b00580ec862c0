package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/gstcheck/handler"
)

// ErrorPage is the full-page error used by the error handler.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	body := component(func(_ context.Context, h *html) {
		h.raw(`<section class="error-page"><h1>`)
		h.raw(strconv.Itoa(p.StatusCode))
		h.raw(`</h1><p>`)
		h.text(p.Error)
		h.raw(`</p>`)
		if p.StatusCode >= 500 && p.RetryURL != "" {
			h.raw(`<a href="`)
			h.text(p.RetryURL)
			h.raw(`">Try again</a>`)
		}
		if p.RequestID != "" {
			h.raw(`<p class="request-id">Request ID: `)
			h.text(p.RequestID)
			h.raw(`</p>`)
		}
		h.raw(`<a href="/gst-return-checker/">Back to search</a></section>`)
	})
	return Layout("Error", body)
}

// Toast is patched into #toast-container for DataStar requests.
func Toast(p handler.ErrorToastParams) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<div class="toast toast-`)
		h.text(p.Type)
		h.raw(`" role="alert">`)
		h.text(p.Message)
		h.raw(`</div>`)
	})
}
