package views

import (
	"context"

	"github.com/a-h/templ"
)

// SearchData fills the search form.
type SearchData struct {
	Action string
	Input  string
	Error  string
}

// SearchForm is the form alone, used for DataStar patches of #gst-search.
func SearchForm(d SearchData) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<form id="gst-search" method="post" action="`)
		h.text(d.Action)
		h.raw(`" data-on-submit="@post('`)
		h.text(d.Action)
		h.raw(`', {contentType: 'form'})">`)
		h.raw(`<label for="gstin">GSTIN</label>`)
		h.raw(`<input id="gstin" name="gstin" maxlength="20" autocomplete="off" placeholder="27AABCU9603R1ZM" value="`)
		h.text(d.Input)
		h.raw(`"`)
		if d.Error != "" {
			h.raw(` aria-invalid="true" aria-describedby="gstin-error"`)
		}
		h.raw(`>`)
		if d.Error != "" {
			h.raw(`<p id="gstin-error" class="error">`)
			h.text(d.Error)
			h.raw(`</p>`)
		}
		h.raw(`<button type="submit">Check returns</button></form>`)
	})
}

// SearchPage is the checker landing page.
func SearchPage(d SearchData) templ.Component {
	body := component(func(ctx context.Context, h *html) {
		h.raw(`<h1>GST Return Checker</h1>`)
		h.raw(`<p>Enter a 15-character GSTIN to see the filing history of a business.</p>`)
		h.component(ctx, SearchForm(d))
		h.raw(`<section id="result"></section>`)
	})
	return Layout("GST Return Checker", body)
}
