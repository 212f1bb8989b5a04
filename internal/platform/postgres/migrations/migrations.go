// Package migrations embeds the SQL schema of the content tables. The API
// only reads; these files exist so that integration tests can build a
// database with the expected shape.
package migrations

import "embed"

// FS holds the goose migration files.
//
//go:embed *.sql
var FS embed.FS
