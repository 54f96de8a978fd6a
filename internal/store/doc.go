// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the API layer, which only ever sees domain entities, filter expressions
// and the sentinel errors declared here.
package store
