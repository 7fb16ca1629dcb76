package filter

import "strings"

// CountSkills returns how many distinct vocabulary terms appear in text.
// Matching is case-insensitive substring; each term counts at most once.
func CountSkills(text string, vocabulary []string) int {
	if text == "" {
		return 0
	}
	text = strings.ToLower(text)

	count := 0
	for _, skill := range vocabulary {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		if strings.Contains(text, skill) {
			count++
		}
	}
	return count
}

// HasSkills reports whether at least minCount distinct vocabulary terms
// appear in text.
func HasSkills(text string, vocabulary []string, minCount int) bool {
	return CountSkills(text, vocabulary) >= minCount
}
