package query

import (
	"fmt"
	"strings"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchPattern turns a free-text term into an ILIKE pattern matching the
// term as a substring. LIKE metacharacters in the term are escaped. ok is
// false when the term is empty after trimming, meaning no predicate applies.
func SearchPattern(term string) (pattern string, ok bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", false
	}
	return "%" + likeEscaper.Replace(term) + "%", true
}

// searchPredicate matches the bound pattern against the post title, the
// post body and the author's username. The three comparisons share one
// placeholder.
func searchPredicate(placeholder string) string {
	return fmt.Sprintf(
		"(p.title ILIKE %[1]s OR p.body ILIKE %[1]s OR u.username ILIKE %[1]s)",
		placeholder,
	)
}
