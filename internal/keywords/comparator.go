package keywords

import "strings"

// Compare checks every job keyword against the resume keyword list.
// Membership is case-insensitive; absent keywords get a second chance via
// bidirectional substring containment so plural and compound variants still
// match ("manage" vs "management"). The fallback is intentionally
// permissive; behavior parity with known false positives is preferred over
// tightening. Result order follows the job keyword order.
func Compare(resumeKeywords, jobKeywords []string) ComparisonResult {
	resumeSet := make(map[string]struct{}, len(resumeKeywords))
	resumeLower := make([]string, 0, len(resumeKeywords))
	for _, kw := range resumeKeywords {
		lower := strings.ToLower(strings.TrimSpace(kw))
		if lower == "" {
			continue
		}
		if _, dup := resumeSet[lower]; dup {
			continue
		}
		resumeSet[lower] = struct{}{}
		resumeLower = append(resumeLower, lower)
	}

	matched := make([]string, 0, len(jobKeywords))
	missing := make([]string, 0, len(jobKeywords))
	for _, kw := range jobKeywords {
		lower := strings.ToLower(strings.TrimSpace(kw))
		if lower == "" {
			continue
		}
		if _, ok := resumeSet[lower]; ok {
			matched = append(matched, kw)
			continue
		}
		if fuzzyContains(resumeLower, lower) {
			matched = append(matched, kw)
			continue
		}
		missing = append(missing, kw)
	}

	total := len(matched) + len(missing)
	rate := 0.0
	if total > 0 {
		rate = float64(len(matched)) / float64(total) * 100
	}
	return ComparisonResult{
		Matched:          matched,
		Missing:          missing,
		MatchRatePercent: rate,
		MatchedCount:     len(matched),
		MissingCount:     len(missing),
	}
}

func fuzzyContains(resumeKeywords []string, jobKeyword string) bool {
	for _, rk := range resumeKeywords {
		if strings.Contains(rk, jobKeyword) || strings.Contains(jobKeyword, rk) {
			return true
		}
	}
	return false
}
