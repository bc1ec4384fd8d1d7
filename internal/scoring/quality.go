package scoring

import (
	"regexp"
	"strings"

	"resume-scorer/internal/keywords"
)

// STAR-method pattern families (situation, task, action, result). Three or
// more matches across the families flag STAR usage.
var starPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:faced|challenged|situation|context|confronted)\b`),
	regexp.MustCompile(`\b(?:responsible for|tasked with|goal|objective|assigned)\b`),
	regexp.MustCompile(`\b(?:implemented|developed|led|designed|built|executed|created)\b`),
	regexp.MustCompile(`\b(?:resulting in|achieved|delivered|increased|decreased|improved|saved)\b`),
}

var sentenceEnd = regexp.MustCompile(`[.!?]+(?:\s+|$)`)

// analyzeContentQuality derives sentence-level writing signals from the
// resume text and the already-extracted action verbs.
func analyzeContentQuality(resumeText string, resumeKW keywords.KeywordSet) ContentQuality {
	quality := ContentQuality{ReadabilityScore: 100}

	sentences := splitSentences(resumeText)
	if len(sentences) == 0 {
		quality.ReadabilityScore = 0
		return quality
	}

	totalWords := 0
	for _, s := range sentences {
		totalWords += len(strings.Fields(s))
	}
	quality.AvgSentenceLength = float64(totalWords) / float64(len(sentences))

	verbMatches := 0
	for _, v := range resumeKW.ActionVerbs {
		verbMatches += v.Count
	}
	quality.ActiveVoiceRatio = float64(verbMatches) / float64(len(sentences))

	lower := strings.ToLower(resumeText)
	starMatches := 0
	for _, p := range starPatterns {
		starMatches += len(p.FindAllString(lower, -1))
	}
	quality.UsesSTARMethod = starMatches >= 3

	readability := 100.0
	switch {
	case quality.AvgSentenceLength > 25:
		readability -= 20
	case quality.AvgSentenceLength > 20:
		readability -= 10
	}
	if quality.AvgSentenceLength < 10 {
		readability -= 15
	}
	if quality.ActiveVoiceRatio > 0.5 {
		readability += 10
	}
	quality.ReadabilityScore = clamp(readability)
	return quality
}

func splitSentences(text string) []string {
	parts := sentenceEnd.Split(strings.TrimSpace(text), -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
