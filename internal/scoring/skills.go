package scoring

import "resume-scorer/internal/keywords"

// skillsDefaultScore applies when the job text yields no detected skills;
// a neutral default rather than a failure (zero-information input).
const skillsDefaultScore = 75

// scoreSkillsAlignment scores dictionary-skill coverage. Matching is exact
// lowercase equality only; no fuzzy fallback. A +10 bonus applies when the
// resume carries 5 or more extra unmatched skills and coverage is above 50%.
func scoreSkillsAlignment(resumeKW, jobKW keywords.KeywordSet) (float64, SkillsAnalysis) {
	resumeSkills := make(map[string]struct{}, len(resumeKW.Skills))
	for _, s := range resumeKW.Skills {
		resumeSkills[s.Skill] = struct{}{}
	}

	analysis := SkillsAnalysis{
		MatchedSkills: []string{},
		MissingSkills: []string{},
		ExtraSkills:   []string{},
	}

	jobSkills := make(map[string]struct{}, len(jobKW.Skills))
	for _, s := range jobKW.Skills {
		jobSkills[s.Skill] = struct{}{}
		if _, ok := resumeSkills[s.Skill]; ok {
			analysis.MatchedSkills = append(analysis.MatchedSkills, s.Skill)
		} else {
			analysis.MissingSkills = append(analysis.MissingSkills, s.Skill)
		}
	}
	for _, s := range resumeKW.Skills {
		if _, ok := jobSkills[s.Skill]; !ok {
			analysis.ExtraSkills = append(analysis.ExtraSkills, s.Skill)
		}
	}

	if len(jobSkills) == 0 {
		analysis.CoveragePercent = 0
		return skillsDefaultScore, analysis
	}

	coverage := float64(len(analysis.MatchedSkills)) / float64(len(jobSkills)) * 100
	analysis.CoveragePercent = coverage

	score := coverage
	if len(analysis.ExtraSkills) >= 5 && coverage > 50 {
		score = clamp(score + 10)
	}
	return clamp(score), analysis
}
