package search

import (
	"strings"

	"atlas/internal/domain"
)

// Matches checks if a country matches the given query. The match is an
// exact case-insensitive substring test against the name, code, region
// and capital fields.
func Matches(c domain.Country, query string) bool {
	q := strings.ToLower(query)

	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Code), q) ||
		strings.Contains(strings.ToLower(c.Region), q) ||
		strings.Contains(strings.ToLower(c.Capital), q)
}

// Filter returns the countries matching query, preserving relative order.
// An empty query returns no results by convention: callers treat "no
// query" as browse mode rather than an empty search.
func Filter(countries []domain.Country, query string) []domain.Country {
	if query == "" {
		return nil
	}

	var matched []domain.Country
	for _, c := range countries {
		if Matches(c, query) {
			matched = append(matched, c)
		}
	}
	return matched
}
