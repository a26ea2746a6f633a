package analytics

import "strings"

// FuzzyMatch reports whether text contains query as a case-insensitive
// substring or as an in-order subsequence of characters.
func FuzzyMatch(query, text string) bool {
	if query == "" || text == "" {
		return false
	}
	query = strings.ToLower(query)
	text = strings.ToLower(text)

	if strings.Contains(text, query) {
		return true
	}

	q := []rune(query)
	qi := 0
	for _, r := range text {
		if qi < len(q) && r == q[qi] {
			qi++
		}
	}
	return qi == len(q)
}

// FuzzyScore ranks how well query matches text: 1000 for an exact
// match, 500 for a substring hit, otherwise 10 points per subsequence
// character plus a growing bonus for unbroken runs. 0 means no match.
func FuzzyScore(query, text string) int {
	if query == "" || text == "" {
		return 0
	}
	query = strings.ToLower(query)
	text = strings.ToLower(text)

	if text == query {
		return 1000
	}
	if strings.Contains(text, query) {
		return 500
	}

	q := []rune(query)
	score := 0
	qi := 0
	consecutive := 0
	for _, r := range text {
		if qi >= len(q) {
			break
		}
		if r == q[qi] {
			score += 10
			consecutive++
			if consecutive > 1 {
				score += consecutive * 5
			}
			qi++
		} else {
			consecutive = 0
		}
	}

	if qi != len(q) {
		return 0
	}
	return score
}
