package binder

import (
	"fmt"
	"mime"
	"net/http"
)

const maxFormMemory = 1 << 20

// Form binds url-encoded or multipart form fields tagged `form:"name"`.
// Requests without a body-bearing method return ErrBinderNotApplicable, so
// the same request struct can be served by GET (query) and POST (form).
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			return ErrBinderNotApplicable
		}

		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
		}

		switch mediaType {
		case "application/x-www-form-urlencoded":
			err = r.ParseForm()
		case "multipart/form-data":
			err = r.ParseMultipartForm(maxFormMemory)
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}

		return bindToStruct(v, "form", func(name string) []string { return r.PostForm[name] }, ErrInvalidForm)
	}
}
