package ui

import (
	"sort"
	"strings"
)

const (
	// maxDistance is the maximum edit distance to consider for suggestions
	maxDistance = 3
	// maxSuggestions is the maximum number of suggestions to return
	maxSuggestions = 3
)

type suggestion struct {
	value    string
	distance int
}

// FindSimilar finds selectors similar to the target using Levenshtein
// distance, closest first. Matching is case-insensitive.
//
// Example:
//
//	FindSimilar("login-frm", []string{"login-form", "menu-item"})
//	// Returns: ["login-form"]
func FindSimilar(target string, candidates []string) []string {
	lowered := strings.ToLower(target)

	var matches []suggestion
	for _, candidate := range candidates {
		dist := levenshtein(lowered, strings.ToLower(candidate))
		if dist <= maxDistance {
			matches = append(matches, suggestion{value: candidate, distance: dist})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].value < matches[j].value
	})

	result := make([]string, 0, maxSuggestions)
	for i := 0; i < len(matches) && i < maxSuggestions; i++ {
		result = append(result, matches[i].value)
	}
	return result
}

// levenshtein calculates the minimum number of single-character edits
// required to change one string into the other.
func levenshtein(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := 0; j <= len(s2); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
