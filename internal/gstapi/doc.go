// Package gstapi is the client for the external GST return lookup API,
// GET {base}/api/gst-returns/{gstin}.
//
// Fetch maps every response onto one of three outcomes. A 2xx envelope with
// success and data is returned as is. A 404, or a 2xx envelope that is
// unsuccessful without an error message or carries no data, is ErrNotFound.
// Anything else is an error: *APIError when the server answered, with its
// error text when it sent one, and ErrTransport when the request or the
// decoding failed. Message turns any of these into user-facing text.
//
// The client does not retry; callers decide whether to try again.
package gstapi
