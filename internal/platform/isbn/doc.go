// Package isbn looks up book metadata by ISBN from the third-party book service.
// The upstream body is passed through untouched; this package only checks that
// it is JSON and turns transport failures into ErrUpstream.
package isbn
