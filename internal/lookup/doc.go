// Package lookup runs the GST return lookup flow for one request.
//
// Every call to Service.Lookup drives a fresh state machine:
//
//	idle -> validating -> fetching -> success | not_found | error
//	            \-> idle (rejected input)
//
// Identifiers that fail validation never reach the API. Valid ones are served
// from an in-memory LRU, then from an optional shared Store (RedisStore), and
// only then fetched; concurrent lookups of the same identifier share one
// upstream request. Success and not_found results are cached with their own
// TTLs. Errors are not, so trying again performs a new request. There is no
// automatic retry.
//
// A successful lookup carries the canonical checker path; when the request
// came from a different path, Outcome.RedirectTo tells the caller where to
// send the user.
package lookup
