package views

import (
	"context"

	"github.com/a-h/templ"
)

// DataStarScript is the client bundle matching datastar-go v1.
const DataStarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// Layout wraps body in the page shell. Toasts are patched into
// #toast-container and lookup results into #result.
func Layout(title string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title><script type="module" src="` + DataStarScript + `"></script></head>`)
		h.raw(`<body><div id="toast-container"></div><main id="content">`)
		h.component(ctx, body)
		h.raw(`</main></body></html>`)
	})
}
