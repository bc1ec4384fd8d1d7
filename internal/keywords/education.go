package keywords

import "regexp"

// Degree detection patterns, checked against normalized text. Order is
// highest rank first so HighestDegree falls out of the first hit.
var degreePatterns = []struct {
	degree  string
	pattern *regexp.Regexp
}{
	{DegreePhD, regexp.MustCompile(`\bph\.?\s?d\b|\bdoctorate\b|\bdoctoral\b`)},
	{DegreeMasters, regexp.MustCompile(`\bmaster(?:'s|s)?\b|\bm\.?s\.?c?\b|\bm\.?b\.?a\b|\bm\.?eng\b`)},
	{DegreeBachelors, regexp.MustCompile(`\bbachelor(?:'s|s)?\b|\bb\.?s\.?c?\b|\bb\.?a\b|\bb\.?tech\b|\bb\.?eng\b`)},
	{DegreeAssociates, regexp.MustCompile(`\bassociate(?:'s|s)?\s+(?:degree|of)\b|\ba\.?a\.?s\b`)},
}

// ExtractEducation detects degree levels and fields of study in a text.
// A text with no degree signal yields an EducationInfo with empty degrees
// and HighestDegree "".
func ExtractEducation(text string) EducationInfo {
	normalized := Normalize(text)
	info := EducationInfo{
		HighestDegree: DegreeNone,
		Degrees:       []string{},
		FieldOfStudy:  []string{},
	}
	if normalized == "" {
		return info
	}

	for _, dp := range degreePatterns {
		if dp.pattern.MatchString(normalized) {
			info.Degrees = append(info.Degrees, dp.degree)
			if info.HighestDegree == DegreeNone {
				info.HighestDegree = dp.degree
			}
		}
	}

	for _, field := range fieldsOfStudy {
		if countWholeWord(normalized, field) > 0 {
			info.FieldOfStudy = append(info.FieldOfStudy, field)
		}
	}
	return info
}
