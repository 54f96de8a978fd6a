// Package api implements the HTTP handlers of the service.
//
// Handlers have the shape func(*http.Request) (any, error) and never write the
// response themselves: Handle maps their error through MapError and writes the
// result as a shared.Envelope. Business failures (missing field, unknown id,
// not the owner) are error envelopes at HTTP 200.
package api
