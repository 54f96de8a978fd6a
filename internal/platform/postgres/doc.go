// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
// It compiles filter expressions into parameterized WHERE clauses, handles
// query execution, and maps rows and driver errors back into domain terms.
package postgres
