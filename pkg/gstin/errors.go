package gstin

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when the normalized input is not 15 characters long.
	ErrInvalidLength = errors.New("gstin: must be exactly 15 characters")

	// ErrInvalidFormat is returned when a character violates the positional grammar.
	ErrInvalidFormat = errors.New("gstin: invalid format")
)

// FormatError reports the first position that broke the grammar.
// It unwraps to ErrInvalidFormat.
type FormatError struct {
	Pos  int // zero-based
	Got  rune
	Want Class
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("gstin: character %d must be %s, got %q", e.Pos+1, e.Want, e.Got)
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}
