// Experience extraction heuristics shared by all job families.
// Pure functions, no state.

package filter

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	//"3-5 years", "3 to 7 years", "3 – 5 years"
	rangeYearsRegex = regexp.MustCompile(`(\d{1,2})\s*(?:-|–|to)\s*(\d{1,2})\s*\+?\s*years?`)
	//"5+ years"
	plusYearsRegex = regexp.MustCompile(`(\d{1,2})\s*\+\s*years?`)
	//"minimum of 5 years", "at least 5 years"
	minimumYearsRegex = regexp.MustCompile(`(?:minimum\s*(?:of\s*)?|at\s*least\s*)(\d{1,2})\s*years?`)
	//"5 years of professional experience" - experience/exp must appear within a few words
	bareYearsRegex = regexp.MustCompile(`(\d{1,2})\s*years?(?:\s+\w+){0,3}?\s+(?:experience|exp)\b`)
)

// ExperienceRange is a stated requirement extracted from free text.
type ExperienceRange struct {
	MinYears int
	MaxYears int
	//OpenEnded marks requirements with no stated upper bound ("5+ years")
	OpenEnded bool
}

// ExtractExperience scans free text for a stated years-of-experience
// requirement. Patterns are tried in priority order and the first match
// wins. Single-value requirements come back open ended.
func ExtractExperience(text string) (ExperienceRange, bool) {
	if text == "" {
		return ExperienceRange{}, false
	}
	text = strings.ToLower(text)

	if m := rangeYearsRegex.FindStringSubmatch(text); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if hi < lo {
			lo, hi = hi, lo
		}
		return ExperienceRange{MinYears: lo, MaxYears: hi}, true
	}

	for _, re := range []*regexp.Regexp{plusYearsRegex, minimumYearsRegex, bareYearsRegex} {
		if m := re.FindStringSubmatch(text); m != nil {
			years, _ := strconv.Atoi(m[1])
			return ExperienceRange{MinYears: years, OpenEnded: true}, true
		}
	}

	return ExperienceRange{}, false
}

// InExperienceRange reports whether the requirement stated in text overlaps
// [minRequired, maxRequired]. Listings that state no requirement pass:
// absence of information is not disqualifying.
func InExperienceRange(text string, minRequired, maxRequired int) bool {
	stated, ok := ExtractExperience(text)
	if !ok {
		return true
	}

	if stated.MinYears > maxRequired {
		return false
	}
	if !stated.OpenEnded && stated.MaxYears < minRequired {
		return false
	}
	return true
}
