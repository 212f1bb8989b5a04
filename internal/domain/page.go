package domain

import (
	"unicode/utf8"
)

// Bounds and defaults for paginated reads.
const (
	MaxLimit         = 100
	MaxOffset        = 10_000
	MaxSearchLength  = 200
	MaxOrderByLength = 64

	DefaultPostLimit   = 10
	DefaultTagLimit    = 50
	DefaultRandomLimit = 6
)

// PageRequest carries the loosely typed listing parameters supplied by a
// client. OrderBy and OrderDirection are resolved against an allow-list
// when the query is composed, so any string is acceptable here as long as
// it is not malformed.
type PageRequest struct {
	Offset         int
	Limit          int
	Search         string
	OrderBy        string
	OrderDirection string
}

// Validate checks the request bounds. Out-of-range values are rejected,
// never clamped.
func (r PageRequest) Validate() error {
	if r.Offset < 0 || r.Offset > MaxOffset {
		return NewValidationError("offset", "must be between 0 and 10000", ErrOutOfRange)
	}

	if r.Limit < 1 || r.Limit > MaxLimit {
		return NewValidationError("limit", "must be between 1 and 100", ErrOutOfRange)
	}

	if utf8.RuneCountInString(r.Search) > MaxSearchLength {
		return NewValidationError("search", "must be at most 200 characters", ErrTooLong)
	}

	if len(r.OrderBy) > MaxOrderByLength {
		return NewValidationError("orderBy", "is malformed", ErrTooLong)
	}

	if len(r.OrderDirection) > MaxOrderByLength {
		return NewValidationError("orderDirection", "is malformed", ErrTooLong)
	}

	return nil
}

// Page is one page of a listing together with the total number of matching
// items, independent of pagination.
type Page[T any] struct {
	Items  []T
	Total  int64
	Limit  int64
	Offset int64
}

// NewPage builds a Page, replacing a nil item slice with an empty one so that
// an empty page serializes as [] rather than null.
func NewPage[T any](items []T, total int64, limit, offset int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:  items,
		Total:  total,
		Limit:  int64(limit),
		Offset: int64(offset),
	}
}

// TotalPages returns ceil(Total / Limit), or 0 when Limit is not positive.
func (p Page[T]) TotalPages() int64 {
	return TotalPages(p.Total, p.Limit)
}

// TotalPages returns ceil(total / limit) when limit > 0, else 0.
func TotalPages(total, limit int64) int64 {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
