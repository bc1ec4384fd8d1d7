package scoring

import (
	"math"
	"regexp"
	"strings"
)

const wordsPerPage = 500

// Quantifiable-achievement pattern families: percentages, dollar amounts,
// scaled-number words, explicit "changed by N" claims, and time periods.
var achievementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(?:\.\d+)?\s*(?:%|percent)`),
	regexp.MustCompile(`\$\s?\d[\d,]*(?:\.\d+)?\s*(?:k|m|b|million|billion)?`),
	regexp.MustCompile(`\b\d+(?:\.\d+)?\s*(?:thousand|million|billion)\b`),
	regexp.MustCompile(`(?:increased?|decreased?|improved?|reduced?|grew|saved|cut|boosted)\s+(?:\w+\s+){0,4}by\s+\d+`),
	regexp.MustCompile(`\b\d+\s*(?:years?|months?|weeks?|days?|hours?)\b`),
}

var (
	emailPattern    = regexp.MustCompile(`[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)
	phonePattern    = regexp.MustCompile(`(?:\+?1[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	locationPattern = regexp.MustCompile(`(?i)\b(?:location|address|relocate)\b|\b[A-Z][a-z]+,\s*[A-Z]{2}\b`)
)

// countQuantifiableAchievements counts matches across the fixed achievement
// pattern families on lowercased text.
func countQuantifiableAchievements(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, p := range achievementPatterns {
		count += len(p.FindAllString(lower, -1))
	}
	return count
}

func countWords(text string) int {
	return len(strings.Fields(text))
}

func estimatePages(wordCount int) int {
	if wordCount == 0 {
		return 0
	}
	return int(math.Ceil(float64(wordCount) / wordsPerPage))
}

func detectContactInfo(text string) ContactInfo {
	lower := strings.ToLower(text)
	return ContactInfo{
		HasEmail:    emailPattern.MatchString(lower),
		HasPhone:    phonePattern.MatchString(text),
		HasLinkedIn: strings.Contains(lower, "linkedin.com"),
		HasLocation: locationPattern.MatchString(text),
	}
}
