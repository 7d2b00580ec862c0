package lookup

import (
	"github.com/dmitrymomot/gstcheck/internal/gstapi"
	"github.com/dmitrymomot/gstcheck/pkg/gstin"
	"github.com/dmitrymomot/gstcheck/pkg/statemachine"
)

// NotFoundMessage is shown when the API has no record.
const NotFoundMessage = "No GST return data found for this GSTIN"

// Request is one user lookup.
type Request struct {
	// Input is the raw identifier as typed or taken from the URL.
	Input string
	// CurrentPath is the path the user is on. When set, a successful lookup
	// on a non-canonical path reports RedirectTo.
	CurrentPath string
}

// Outcome is the final state of a single lookup.
type Outcome struct {
	State statemachine.StringState
	GSTIN gstin.GSTIN
	// Result is set in StateSuccess.
	Result *gstapi.Envelope
	// Message is the user-facing text for every state but StateSuccess.
	Message string
	// Err is the underlying cause in StateIdle and StateError.
	Err error
	// CanonicalPath is set in StateSuccess.
	CanonicalPath string
	RedirectTo    string
	// Cache names the tier that served the result, empty when fetched.
	Cache string
}

// Rejected reports whether the input never passed validation.
func (o Outcome) Rejected() bool {
	return o.State == StateIdle
}
