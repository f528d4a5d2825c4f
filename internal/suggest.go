package internal

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestionDistance is the largest edit distance still offered as a suggestion
const maxSuggestionDistance = 3

// Categories returns the distinct categories in txs, compared case-insensitively,
// sorted alphabetically. The first spelling seen is kept.
func Categories(txs []Transaction) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, tx := range txs {
		c := strings.TrimSpace(tx.Category)
		key := strings.ToLower(c)
		if c == "" || seen[key] {
			continue
		}
		seen[key] = true
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return strings.ToLower(categories[i]) < strings.ToLower(categories[j])
	})
	return categories
}

// HasCategory reports whether category is one of categories, ignoring case
func HasCategory(categories []string, category string) bool {
	for _, c := range categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// SuggestCategory returns the known category closest to input by edit distance,
// or "" if none is close enough.
func SuggestCategory(categories []string, input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}

	best := ""
	bestDist := maxSuggestionDistance + 1
	for _, c := range categories {
		d := levenshtein.ComputeDistance(input, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
