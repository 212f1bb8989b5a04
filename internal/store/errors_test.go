package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrPostNotFound(t *testing.T) {
	assert.ErrorIs(t, ErrPostNotFound, ErrNotFound)
	assert.ErrorIs(t, fmt.Errorf("lookup: %w", ErrPostNotFound), ErrNotFound)
	assert.NotErrorIs(t, ErrUnavailable, ErrNotFound)
}

func TestStoreError_ErrorWithoutWrappedError(t *testing.T) {
	storeErr := &StoreError{
		Entity:    "post",
		Operation: "list",
		Message:   "scan failed",
	}

	assert.Equal(t, "list operation on post failed: scan failed", storeErr.Error())
}

func TestStoreError_ErrorWithWrappedError(t *testing.T) {
	originalErr := errors.New("database connection failed")
	storeErr := NewStoreError("tag", "count", "database error", originalErr)

	assert.Equal(t, "count operation on tag failed: database error: database connection failed", storeErr.Error())
	assert.Equal(t, originalErr, storeErr.Unwrap())
	assert.True(t, errors.Is(storeErr, originalErr))

	var target *StoreError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", storeErr), &target))
	assert.Equal(t, "tag", target.Entity)
}
