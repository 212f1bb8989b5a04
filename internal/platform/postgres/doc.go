// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
//
// The stores execute statements composed by internal/query, map rows onto
// domain read models, batch-load tags for whole pages, and translate driver
// failures into store.ErrUnavailable so that a failed read is never mistaken
// for an empty result.
package postgres
