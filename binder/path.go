package binder

import (
	"fmt"
	"net/http"
)

// Path binds router path parameters into fields tagged `path:"name"` using
// extractor, typically chi.URLParam.
//
//	r.Get("/api/lookup/{gstin}", handler.Wrap(h,
//		handler.WithBinders[handler.Context, lookupRequest](binder.Path(chi.URLParam)),
//	))
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}
		return bindToStruct(v, "path", func(name string) []string {
			if val := extractor(r, name); val != "" {
				return []string{val}
			}
			return nil
		}, ErrInvalidPath)
	}
}
