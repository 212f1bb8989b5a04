package query

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// PostColumns is the column list every post read selects, in the order the
// materializer scans it.
const PostColumns = `p.id, p.title, p.body, p.created_by, p.slug, COALESCE(p.photo_url, ''), ` +
	`p.created_at, p.updated_at, p.published, p.view_count, p.like_count, u.id, u.username`

const (
	postSource = `posts p INNER JOIN users u ON p.created_by = u.id`

	visiblePredicate = `p.published = true AND p.deleted_at IS NULL`

	tagPredicate = `EXISTS (SELECT 1 FROM posts_to_tags ptt INNER JOIN tags t ON ptt.tag_id = t.id ` +
		`WHERE ptt.post_id = p.id AND t.name = %s)`
)

// Statement is SQL text plus its positional arguments.
type Statement struct {
	SQL  string
	Args []any
}

// args accumulates bound values and hands out their placeholders.
type args struct {
	values []any
}

func (a *args) bind(v any) string {
	a.values = append(a.values, v)
	return "$" + strconv.Itoa(len(a.values))
}

// PostFilter narrows a post listing. Zero values mean "no filter".
type PostFilter struct {
	Tag    string
	Search string
}

// PostListQuery is the pair of statements behind one paginated listing.
// Fetch.Args always starts with Count.Args and ends with limit and offset.
type PostListQuery struct {
	Count Statement
	Fetch Statement
}

// ComposePostList builds the count and fetch statements for a post listing.
// Both apply the same predicates in the same order (visibility, tag,
// search), so the total and the page are computed over the same rows.
// limit and offset are expected to be validated by the caller.
func ComposePostList(filter PostFilter, sort Sort, limit, offset int) PostListQuery {
	var a args
	predicates := []string{visiblePredicate}

	if filter.Tag != "" {
		predicates = append(predicates, fmt.Sprintf(tagPredicate, a.bind(filter.Tag)))
	}

	if pattern, ok := SearchPattern(filter.Search); ok {
		predicates = append(predicates, searchPredicate(a.bind(pattern)))
	}

	where := strings.Join(predicates, " AND ")
	shared := slices.Clone(a.values)

	count := Statement{
		SQL:  "SELECT COUNT(*) FROM " + postSource + " WHERE " + where,
		Args: shared,
	}

	limitPlaceholder := a.bind(limit)
	offsetPlaceholder := a.bind(offset)

	fetch := Statement{
		SQL: fmt.Sprintf(
			"SELECT %s FROM %s WHERE %s ORDER BY %s LIMIT %s OFFSET %s",
			PostColumns, postSource, where, sort.OrderBy(), limitPlaceholder, offsetPlaceholder,
		),
		Args: a.values,
	}

	return PostListQuery{Count: count, Fetch: fetch}
}

// PostBySlug looks up a single visible post by its author's username and
// its slug.
func PostBySlug(username, slug string) Statement {
	var a args
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE u.username = %s AND p.slug = %s AND %s",
		PostColumns, postSource, a.bind(username), a.bind(slug), visiblePredicate,
	)
	return Statement{SQL: sql, Args: a.values}
}

// RandomPosts samples up to limit visible posts in random order.
func RandomPosts(limit int) Statement {
	var a args
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ORDER BY RANDOM() LIMIT %s",
		PostColumns, postSource, visiblePredicate, a.bind(limit),
	)
	return Statement{SQL: sql, Args: a.values}
}

// TagsForPost selects the tags of one post ordered by name.
func TagsForPost(postID uuid.UUID) Statement {
	var a args
	sql := "SELECT t.id, t.name, t.created_at FROM tags t " +
		"INNER JOIN posts_to_tags ptt ON t.id = ptt.tag_id " +
		"WHERE ptt.post_id = " + a.bind(postID) + " ORDER BY t.name"
	return Statement{SQL: sql, Args: a.values}
}

// TagsForPosts selects (post id, tag) pairs for a whole page of posts in
// one round trip, ordered by tag name so that grouping preserves order.
func TagsForPosts(postIDs []uuid.UUID) Statement {
	var a args
	sql := "SELECT ptt.post_id, t.id, t.name, t.created_at FROM tags t " +
		"INNER JOIN posts_to_tags ptt ON t.id = ptt.tag_id " +
		"WHERE ptt.post_id = ANY(" + a.bind(postIDs) + ") ORDER BY t.name, t.id"
	return Statement{SQL: sql, Args: a.values}
}

// TagListQuery is the pair of statements behind the tag listing.
type TagListQuery struct {
	Count Statement
	Fetch Statement
}

// ComposeTagList builds the count and fetch statements for the tag listing,
// ordered by name.
func ComposeTagList(limit, offset int) TagListQuery {
	var a args
	fetch := fmt.Sprintf(
		"SELECT id, name, created_at FROM tags ORDER BY name LIMIT %s OFFSET %s",
		a.bind(limit), a.bind(offset),
	)
	return TagListQuery{
		Count: Statement{SQL: "SELECT COUNT(*) FROM tags"},
		Fetch: Statement{SQL: fetch, Args: a.values},
	}
}
