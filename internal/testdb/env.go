package testdb

import (
	"os"
	"time"
)

// DatabaseURLEnv names the variable holding the integration database URL.
const DatabaseURLEnv = "QUILL_TEST_DATABASE_URL"

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 10 * time.Second

// GetTestDatabaseURL returns the database URL for integration tests, or an
// empty string when none is configured.
func GetTestDatabaseURL() string {
	return os.Getenv(DatabaseURLEnv)
}

// IsIntegrationTestEnvironment reports whether a test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// ShouldSkipDatabaseTest returns true if the database connection environment variables
// are not set, indicating that database integration tests should be skipped.
func ShouldSkipDatabaseTest() bool {
	return !IsIntegrationTestEnvironment()
}
