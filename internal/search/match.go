package search

import "strings"

// MatchOptions tunes the prefix match.
type MatchOptions struct {
	// IgnoreCase folds both sides to lower case before comparing. Off by
	// default: matching is case-sensitive and whitespace-literal.
	IgnoreCase bool
}

// Match returns every candidate that starts with query, in candidate order.
// The result is never nil, so "no matches" is still a renderable list.
func Match(candidates []string, query string, opts MatchOptions) []string {
	if opts.IgnoreCase {
		query = strings.ToLower(query)
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		s := c
		if opts.IgnoreCase {
			s = strings.ToLower(s)
		}
		if strings.HasPrefix(s, query) {
			out = append(out, c)
		}
	}
	return out
}
