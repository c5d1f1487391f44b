package config

import "slices"

// ParamKeys are the review-tool options that take a value.
var ParamKeys = []string{
	"server",
	"target-groups",
	"target-people",
	"summary",
	"description",
	"description-file",
	"testing-done",
	"branch",
	"change-description",
	"revision-range",
	"submit-as",
	"username",
	"password",
	"parent",
	"tracking-branch",
	"repository-url",
	"diff-filename",
	"http-username",
	"http-password",
}

// FlagKeys are the review-tool options that only take a boolean.
var FlagKeys = []string{
	"new",
	"reopen",
	"guess-summary",
	"guess-description",
	"disable-proxy",
	"diff-only",
}

// IsParamKey reports whether key takes a value.
func IsParamKey(key string) bool {
	return slices.Contains(ParamKeys, key)
}

// IsFlagKey reports whether key only takes a boolean.
func IsFlagKey(key string) bool {
	return slices.Contains(FlagKeys, key)
}

// IsKnownKey reports whether key is a param key or a flag key.
func IsKnownKey(key string) bool {
	return IsParamKey(key) || IsFlagKey(key)
}

// Suggest returns the known key closest to key, or "" if none is close.
func Suggest(key string) string {
	return findSimilar(key, append(slices.Clone(ParamKeys), FlagKeys...))
}

// findSimilar finds the most similar string from candidates using Levenshtein distance.
// Returns empty string if no candidate is similar enough (threshold: 3 edits).
func findSimilar(input string, candidates []string) string {
	const maxDistance = 3
	bestMatch := ""
	bestDistance := maxDistance + 1

	for _, candidate := range candidates {
		dist := levenshtein(input, candidate)
		if dist < bestDistance {
			bestDistance = dist
			bestMatch = candidate
		}
	}

	if bestDistance <= maxDistance {
		return bestMatch
	}
	return ""
}

// levenshtein calculates the Levenshtein distance between two strings.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
