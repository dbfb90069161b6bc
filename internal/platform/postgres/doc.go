// Package postgres contains the PostgreSQL implementations of the store
// interfaces, along with the goose SQL migrations that define the schema.
package postgres
