package binder

import "errors"

var (
	// ErrBinderNotApplicable tells handler.Wrap to skip a binder, e.g. the
	// form binder on a GET request.
	ErrBinderNotApplicable  = errors.New("binder not applicable to request")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidQuery         = errors.New("invalid query parameter")
	ErrInvalidPath          = errors.New("invalid path parameter")
)
