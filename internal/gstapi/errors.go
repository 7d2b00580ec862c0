package gstapi

import (
	"errors"
	"fmt"
)

// GenericMessage is shown when the API gave no usable error text.
const GenericMessage = "failed to fetch GST return data"

var (
	// ErrNotFound means the API has no record for the identifier.
	ErrNotFound = errors.New("gstapi: no record for identifier")
	// ErrTransport covers network failures and unreadable responses.
	ErrTransport = errors.New("gstapi: transport failure")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("gstapi: invalid config")
)

// APIError is a failure reported by the API itself: a non-2xx status or an
// envelope with success=false and an error message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gstapi: status %d", e.Status)
	}
	return fmt.Sprintf("gstapi: status %d: %s", e.Status, e.Message)
}

// Message returns the text to show users for err: the server-provided
// message when there is one, GenericMessage otherwise.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return GenericMessage
}
