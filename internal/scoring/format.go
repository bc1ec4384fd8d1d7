package scoring

import (
	"fmt"
	"regexp"
	"strings"
)

// Header-keyword patterns for the four required resume sections.
var sectionPatterns = map[string]*regexp.Regexp{
	"contact":    regexp.MustCompile(`(?im)^\s*(contact|contact information|personal information)\b|\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`),
	"experience": regexp.MustCompile(`(?im)^\s*(experience|work experience|employment|work history|professional experience|professional background)\b`),
	"education":  regexp.MustCompile(`(?im)^\s*(education|academic background|academics|qualifications)\b`),
	"skills":     regexp.MustCompile(`(?im)^\s*(skills|technical skills|core competencies|competencies|technologies)\b`),
}

var sectionOrder = []string{"contact", "experience", "education", "skills"}

var (
	bulletLine  = regexp.MustCompile(`(?m)^\s*[-•*]\s+`)
	numberToken = regexp.MustCompile(`\$?\d[\d,]*(?:\.\d+)?%?`)
)

const specialChars = "™®©♦●◆▪"

// scoreFormatReadability builds the format score additively: section
// presence, word count band, bullet usage, number density, and a penalty
// for decorative special characters that trip ATS parsers.
func scoreFormatReadability(resumeText string, wordCount int) (float64, FormatAnalysis) {
	lower := strings.ToLower(resumeText)

	analysis := FormatAnalysis{
		SectionsPresent: []string{},
		SectionsMissing: []string{},
		Issues:          []string{},
	}

	for _, section := range sectionOrder {
		if sectionPatterns[section].MatchString(lower) {
			analysis.SectionsPresent = append(analysis.SectionsPresent, section)
		} else {
			analysis.SectionsMissing = append(analysis.SectionsMissing, section)
		}
	}

	score := 40 * float64(len(analysis.SectionsPresent)) / float64(len(sectionOrder))
	if len(analysis.SectionsMissing) > 0 {
		analysis.Issues = append(analysis.Issues,
			fmt.Sprintf("Missing sections: %s", strings.Join(analysis.SectionsMissing, ", ")))
	}

	switch {
	case wordCount >= 300 && wordCount <= 1000:
		score += 20
	case wordCount < 300:
		score += 10
		analysis.Issues = append(analysis.Issues, "Resume is shorter than the typical 300-1000 word range")
	default:
		score += 15
		analysis.Issues = append(analysis.Issues, "Resume is longer than the typical 300-1000 word range")
	}

	analysis.BulletPoints = len(bulletLine.FindAllString(resumeText, -1))
	if analysis.BulletPoints >= 5 {
		score += 15
	} else {
		score += 5
		analysis.Issues = append(analysis.Issues, "Few bullet points; use bulleted lists for achievements")
	}

	analysis.NumberTokens = len(numberToken.FindAllString(resumeText, -1))
	if analysis.NumberTokens >= 5 {
		score += 15
	} else {
		score += 5
	}

	analysis.HasSpecialChars = strings.ContainsAny(resumeText, specialChars)
	if analysis.HasSpecialChars {
		score -= 10
		analysis.Issues = append(analysis.Issues, "Decorative special characters may confuse ATS parsers")
	} else {
		score += 10
	}

	return clamp(score), analysis
}
