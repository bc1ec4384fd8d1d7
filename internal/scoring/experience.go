package scoring

import (
	"regexp"
	"strconv"
	"strings"

	"resume-scorer/internal/keywords"
)

// Year-requirement patterns, applied to normalized text. The maximum N
// across all matches wins for each side.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`experience\s*:?\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:in|with)\b`),
}

var leadershipVerbs = []string{"led", "managed", "directed", "supervised", "mentored"}

// extractYears returns the maximum year figure claimed or required by the
// text, or 0 when no pattern matches.
func extractYears(text string) int {
	normalized := keywords.Normalize(text)
	max := 0
	for _, p := range yearPatterns {
		for _, m := range p.FindAllStringSubmatch(normalized, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > max {
				max = n
			}
		}
	}
	return max
}

// scoreExperienceRelevance compares claimed years against required years
// and layers on action-verb and leadership bonuses.
func scoreExperienceRelevance(resumeText, jobText string, resumeKW keywords.KeywordSet) (float64, int, int) {
	requiredYears := extractYears(jobText)
	resumeYears := extractYears(resumeText)

	score := 70.0
	switch {
	case requiredYears > 0 && resumeYears == 0:
		score = 50
	case requiredYears > 0 && resumeYears >= requiredYears:
		score = 100
	case requiredYears > 0 && float64(resumeYears) >= 0.75*float64(requiredYears):
		score = 80
	case requiredYears > 0:
		score = 60
	case resumeYears > 0:
		score = 85
	default:
		score = 70
	}

	if len(resumeKW.ActionVerbs) >= 5 {
		score = clamp(score + 10)
	}
	normalized := keywords.Normalize(resumeText)
	for _, verb := range leadershipVerbs {
		if strings.Contains(normalized, verb) {
			score = clamp(score + 5)
			break
		}
	}
	return clamp(score), requiredYears, resumeYears
}
