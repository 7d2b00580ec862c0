package lookup

import "errors"

var (
	// ErrInvalidInput wraps the validation errors of a rejected identifier.
	ErrInvalidInput = errors.New("lookup: invalid identifier")
	// ErrCacheMiss is returned by Store.Get for unknown identifiers.
	ErrCacheMiss = errors.New("lookup: cache miss")
	// ErrCorruptEntry marks a cached entry that cannot be served.
	ErrCorruptEntry  = errors.New("lookup: corrupt cache entry")
	ErrInvalidConfig = errors.New("lookup: invalid config")
)
