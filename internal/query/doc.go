// Package query composes the SQL statements used by the read paths.
//
// Values supplied by clients only ever reach a statement as bound
// parameters. Identifiers that cannot be bound (the ORDER BY column and
// direction) are taken from closed lookup tables after whitelist
// resolution, so raw input is never interpolated into SQL text.
package query
