package search

import (
	"strings"

	"github.com/savormap/savormap-api/internal/models"
)

// MatchCuisine returns the subsequence of restaurants whose cuisine field
// contains queryText, compared case-insensitively. Order is preserved.
// The query is used verbatim: no tokenization, stemming, or fuzzy matching.
// Records with an empty cuisine field never match.
func MatchCuisine(restaurants []models.Restaurant, queryText string) []models.Restaurant {
	query := strings.ToLower(queryText)

	matched := []models.Restaurant{}
	for _, r := range restaurants {
		if r.Cuisine == "" {
			continue
		}
		if strings.Contains(strings.ToLower(r.Cuisine), query) {
			matched = append(matched, r)
		}
	}
	return matched
}
