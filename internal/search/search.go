package search

import (
	"strings"

	"github.com/nikbrunner/domsel/internal/model"
	"github.com/sahilm/fuzzy"
)

// FilterEntries returns the entries whose URL contains query, ignoring case.
// An empty query returns all entries. The input slice is never modified.
func FilterEntries(entries []model.Entry, query string) []model.Entry {
	needle := strings.ToLower(query)
	result := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if needle == "" || strings.Contains(strings.ToLower(e.URL), needle) {
			result = append(result, e)
		}
	}
	return result
}

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Entry          model.Entry
	MatchedIndexes []int
	Score          int
}

// entryURLs implements fuzzy.Source over entry URLs.
type entryURLs []model.Entry

func (eu entryURLs) String(i int) string {
	return eu[i].URL
}

func (eu entryURLs) Len() int {
	return len(eu)
}

// FuzzySearchEntries matches entries by URL using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchEntries(entries []model.Entry, query string) []SearchResult {
	if query == "" {
		return nil
	}

	source := entryURLs(entries)
	matches := fuzzy.FindFrom(query, source)

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Entry:          source[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
