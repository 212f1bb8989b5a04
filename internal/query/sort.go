package query

import (
	"strings"
)

// SortField is a post column clients may order by.
type SortField string

// Sortable post fields.
const (
	SortByID        SortField = "id"
	SortByTitle     SortField = "title"
	SortByCreatedAt SortField = "created_at"
	SortByUpdatedAt SortField = "updated_at"
	SortByViewCount SortField = "view_count"
	SortByLikeCount SortField = "like_count"
)

// DefaultSortField is used when the requested field is absent or not allowed.
const DefaultSortField = SortByID

// sortColumns is the allow-list. Only these literals are ever written into
// an ORDER BY clause.
var sortColumns = map[SortField]string{
	SortByID:        "p.id",
	SortByTitle:     "p.title",
	SortByCreatedAt: "p.created_at",
	SortByUpdatedAt: "p.updated_at",
	SortByViewCount: "p.view_count",
	SortByLikeCount: "p.like_count",
}

// Direction is an ORDER BY direction.
type Direction string

// Supported directions.
const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

func (d Direction) keyword() string {
	if d == Descending {
		return "DESC"
	}
	return "ASC"
}

// Sort is a validated (field, direction) pair.
type Sort struct {
	Field     SortField
	Direction Direction
}

// DefaultSort orders by id ascending.
var DefaultSort = Sort{Field: DefaultSortField, Direction: Ascending}

// ResolveSort maps a requested field and direction onto the allow-list.
// Unknown or empty fields resolve to id; unknown or empty directions
// resolve to ascending. It never fails.
func ResolveSort(field, direction string) Sort {
	sort := DefaultSort

	if _, ok := sortColumns[SortField(field)]; ok {
		sort.Field = SortField(field)
	}

	if strings.EqualFold(strings.TrimSpace(direction), string(Descending)) {
		sort.Direction = Descending
	}

	return sort
}

// OrderBy renders the ORDER BY expression list (without the keyword).
// Ordering by anything other than id adds p.id as a tie-breaker so that
// pages are stable.
func (s Sort) OrderBy() string {
	column, ok := sortColumns[s.Field]
	if !ok {
		column = sortColumns[DefaultSortField]
	}

	clause := column + " " + s.Direction.keyword()
	if column != sortColumns[SortByID] {
		clause += ", p.id ASC"
	}
	return clause
}
