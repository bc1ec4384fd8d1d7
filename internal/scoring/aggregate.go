package scoring

import (
	"math"

	"resume-scorer/internal/keywords"
)

// DefaultIndustry is used when the caller does not name one.
const DefaultIndustry = "general"

// CalculateScore runs the five sub-score calculators over the two texts and
// their extracted keyword sets, then combines them by fixed weights into
// the aggregate result. It is total over its inputs: any pair of strings,
// including empty ones, yields a definite integer score in [0,100].
func CalculateScore(resumeText, jobText string, resumeKW, jobKW keywords.KeywordSet, industry string) ScoreResult {
	if industry == "" {
		industry = DefaultIndustry
	}

	keywordScore, keywordAnalysis, comparison := scoreKeywordMatch(resumeKW, jobKW)
	skillsScore, skillsAnalysis := scoreSkillsAlignment(resumeKW, jobKW)
	experienceScore, requiredYears, resumeYears := scoreExperienceRelevance(resumeText, jobText, resumeKW)
	educationScore, _, _ := scoreEducationMatch(resumeText, jobText)

	wordCount := countWords(resumeText)
	formatScore, formatAnalysis := scoreFormatReadability(resumeText, wordCount)
	formatAnalysis.Contact = detectContactInfo(resumeText)

	breakdown := Breakdown{
		KeywordMatch:        component(keywordScore, WeightKeywordMatch),
		SkillsAlignment:     component(skillsScore, WeightSkillsAlignment),
		ExperienceRelevance: component(experienceScore, WeightExperienceRelevance),
		EducationMatch:      component(educationScore, WeightEducationMatch),
		FormatReadability:   component(formatScore, WeightFormatReadability),
	}

	weightedSum := breakdown.KeywordMatch.WeightedScore +
		breakdown.SkillsAlignment.WeightedScore +
		breakdown.ExperienceRelevance.WeightedScore +
		breakdown.EducationMatch.WeightedScore +
		breakdown.FormatReadability.WeightedScore
	overall := int(math.Round(weightedSum))

	return ScoreResult{
		OverallScore: overall,
		ScoreGrade:   gradeFor(overall),
		Industry:     industry,
		Breakdown:    breakdown,
		Metrics: Metrics{
			WordCount:                wordCount,
			PageCount:                estimatePages(wordCount),
			QuantifiableAchievements: countQuantifiableAchievements(resumeText),
			ActionVerbCount:          len(resumeKW.ActionVerbs),
			MatchedKeywords:          comparison.MatchedCount,
			MissingKeywords:          comparison.MissingCount,
			MatchedSkills:            len(skillsAnalysis.MatchedSkills),
			MissingSkills:            len(skillsAnalysis.MissingSkills),
			RequiredYears:            requiredYears,
			ResumeYears:              resumeYears,
		},
		KeywordAnalysis: keywordAnalysis,
		SkillsAnalysis:  skillsAnalysis,
		ContentQuality:  analyzeContentQuality(resumeText, resumeKW),
		FormatAnalysis:  formatAnalysis,
	}
}

func component(score, weight float64) ComponentScore {
	return ComponentScore{
		Score:         score,
		Weight:        weight,
		WeightedScore: score * weight / 100,
	}
}

// gradeFor maps the overall score to a letter grade. Pure step function:
// 90..100 A, 80..89 B, 70..79 C, 60..69 D, below F.
func gradeFor(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
