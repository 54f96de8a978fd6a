// Package shared holds what every handler and middleware agrees on: the response
// envelope, the typed API error, request-scoped context values and request data parsing.
package shared
