package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/gstcheck/internal/gstapi"
	"github.com/dmitrymomot/gstcheck/pkg/gstin"
)

// ResultData describes a finished lookup.
type ResultData struct {
	GSTIN   gstin.GSTIN
	Summary *gstapi.Summary
	Source  string
	Demo    bool
	// Message is shown for not-found and error results.
	Message  string
	RetryURL string
	Search   SearchData
}

// ResultSection renders the #result element for a found taxpayer.
func ResultSection(d ResultData) templ.Component {
	return component(func(_ context.Context, h *html) {
		s := d.Summary
		h.raw(`<section id="result" class="result">`)
		h.raw(`<h2>`)
		h.text(s.DisplayName())
		h.raw(`</h2><dl>`)
		field(h, "GSTIN", d.GSTIN.String())
		field(h, "Legal name", s.LegalName)
		field(h, "Trade name", s.TradeName)
		field(h, "Status", s.Status)
		field(h, "State", d.GSTIN.Region())
		field(h, "Jurisdiction", s.StateJurisdiction)
		field(h, "Taxpayer type", s.TaxpayerType)
		field(h, "Registered on", s.RegistrationDate)
		h.raw(`</dl>`)

		c := s.Compliance
		h.raw(`<h3>Compliance</h3><ul class="compliance">`)
		h.printf(`<li>Total returns: %d</li>`, c.TotalReturns)
		h.printf(`<li>Filed on time: %d (%s%%)</li>`, c.FiledOnTime, percent(c.OnTimePercent))
		h.printf(`<li>Filed late: %d</li>`, c.FiledLate)
		h.printf(`<li>Pending: %d</li>`, c.Pending)
		h.printf(`<li>Filed overall: %s%%</li>`, percent(c.FiledPercent))
		h.raw(`</ul>`)

		if len(s.Filings) > 0 {
			h.raw(`<h3>Filing history</h3><table><thead><tr>`)
			h.raw(`<th>Return</th><th>Period</th><th>Filed on</th><th>Status</th><th>ARN</th>`)
			h.raw(`</tr></thead><tbody>`)
			for _, f := range s.Filings {
				h.raw(`<tr>`)
				for _, v := range []string{f.ReturnType, f.Period, f.DateOfFiling, f.Status, f.ARN} {
					h.raw(`<td>`)
					h.text(v)
					h.raw(`</td>`)
				}
				h.raw(`</tr>`)
			}
			h.raw(`</tbody></table>`)
		}

		if d.Demo {
			h.raw(`<p class="notice">Sample data shown.</p>`)
		}
		if d.Source != "" {
			h.raw(`<p class="source">Source: `)
			h.text(d.Source)
			h.raw(`</p>`)
		}
		h.raw(`</section>`)
	})
}

// NotFoundSection tells the user the API has no record.
func NotFoundSection(d ResultData) templ.Component {
	return messageSection("not-found", d, false)
}

// ErrorSection offers a retry link; a retry is a fresh lookup.
func ErrorSection(d ResultData) templ.Component {
	return messageSection("error", d, true)
}

func messageSection(class string, d ResultData, retry bool) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<section id="result" class="` + class + `"><p>`)
		h.text(d.Message)
		h.raw(`</p>`)
		if d.GSTIN != "" {
			h.raw(`<p>GSTIN: `)
			h.text(d.GSTIN.String())
			h.raw(`</p>`)
		}
		if retry && d.RetryURL != "" {
			h.raw(`<a class="retry" href="`)
			h.text(d.RetryURL)
			h.raw(`">Try again</a>`)
		}
		h.raw(`</section>`)
	})
}

// ResultPage is the full page around one of the sections.
func ResultPage(title string, d ResultData, section templ.Component) templ.Component {
	body := component(func(ctx context.Context, h *html) {
		h.raw(`<h1>GST Return Checker</h1>`)
		h.component(ctx, SearchForm(d.Search))
		h.component(ctx, section)
	})
	return Layout(title, body)
}

func field(h *html, label, value string) {
	if value == "" {
		return
	}
	h.raw(`<dt>`)
	h.text(label)
	h.raw(`</dt><dd>`)
	h.text(value)
	h.raw(`</dd>`)
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
