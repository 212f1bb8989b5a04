// Package testdb provides utilities specifically for database testing.
//
// Integration tests are compiled only with the integration build tag and run
// against the PostgreSQL database named by QUILL_TEST_DATABASE_URL. The
// schema is applied from the embedded goose migrations, every test starts
// from empty tables, and the seed helpers insert users, posts and tags
// directly so that the read-only stores have something to read.
package testdb
