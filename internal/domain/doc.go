// Package domain contains the core business entities of the book catalogue:
// books, users, categories, favorites, comments and feedback. It is independent
// of storage and transport.
package domain
