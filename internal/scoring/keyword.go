package scoring

import "resume-scorer/internal/keywords"

// scoreKeywordMatch scores keyword coverage of the job description. The
// base score is the comparator match rate over the full keyword sets; a +10
// bonus applies when the skills-only sub-match-rate exceeds 70%.
func scoreKeywordMatch(resumeKW, jobKW keywords.KeywordSet) (float64, KeywordAnalysis, keywords.ComparisonResult) {
	full := keywords.Compare(resumeKW.Keywords, jobKW.Keywords)
	skillsOnly := keywords.Compare(skillNames(resumeKW.Skills), skillNames(jobKW.Skills))

	score := full.MatchRatePercent
	if len(jobKW.Skills) > 0 && skillsOnly.MatchRatePercent > 70 {
		score = clamp(score + 10)
	}

	analysis := KeywordAnalysis{
		Matched:                full.Matched,
		Missing:                full.Missing,
		MatchRatePercent:       full.MatchRatePercent,
		SkillsMatchRatePercent: skillsOnly.MatchRatePercent,
	}
	return clamp(score), analysis, full
}

func skillNames(records []keywords.SkillRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Skill)
	}
	return out
}
