package query

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// ResolveEntities returns the ids of up to the configured number of nodes
// whose id is contained in query or contains query. Matches are ordered by
// id length in characters, then lexicographically. An empty query matches
// nothing.
func (c *LocalQueryClient) ResolveEntities(query string) []string {
	seeds := resolve(c.graph.NodeIDs(), query, c.maxSeeds)
	RecordSeeds(c.trace, seeds...)
	return seeds
}

func resolve(ids []string, query string, limit int) []string {
	if query == "" {
		return nil
	}

	matches := make([]string, 0, limit)
	for _, id := range ids {
		if id == "" {
			continue
		}
		if strings.Contains(query, id) || strings.Contains(id, query) {
			matches = append(matches, id)
		}
	}

	slices.SortFunc(matches, func(a, b string) int {
		if la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b); la != lb {
			return la - lb
		}
		return strings.Compare(a, b)
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
