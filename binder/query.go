package binder

import "net/http"

// Query binds URL query parameters into fields tagged `query:"name"`.
// Slices collect repeated parameters; pointers mark optional values.
//
//	type searchRequest struct {
//		GSTIN string `query:"gstin"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		q := r.URL.Query()
		return bindToStruct(v, "query", func(name string) []string { return q[name] }, ErrInvalidQuery)
	}
}
