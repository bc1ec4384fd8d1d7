package recommendations

import (
	"fmt"
	"sort"
	"strings"

	"resume-scorer/internal/scoring"
)

const subScoreThreshold = 70

// Generate builds the prioritized recommendation list from an aggregate
// score result. Each rule is evaluated independently; the final list is
// sorted by priority rank with insertion order preserved within a rank.
// An empty list is a valid output and signals a strong resume.
func Generate(result scoring.ScoreResult, resumeText, jobText string) []Recommendation {
	out := make([]Recommendation, 0, 8)
	rules := []func(scoring.ScoreResult) []Recommendation{
		fromKeywordScore,
		fromSkillsScore,
		fromActionVerbs,
		fromQuantifiableResults,
		fromFormatScore,
		fromWordCount,
		fromContactInfo,
		fromEducationScore,
	}
	for _, rule := range rules {
		out = append(out, rule(result)...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return priorityRank(out[i].Priority) < priorityRank(out[j].Priority)
	})
	return out
}

func priorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

func fromKeywordScore(result scoring.ScoreResult) []Recommendation {
	if result.Breakdown.KeywordMatch.Score >= subScoreThreshold {
		return nil
	}
	missing := firstN(result.KeywordAnalysis.Missing, 5)
	description := "Your resume covers too few of the job description's keywords."
	if len(missing) > 0 {
		description = fmt.Sprintf("Your resume is missing keywords the job description emphasizes: %s.",
			strings.Join(missing, ", "))
	}
	return []Recommendation{{
		Priority:    PriorityHigh,
		Category:    "keywords",
		Title:       "Improve Keyword Match",
		Description: description,
		Action:      "Work the missing keywords into your experience bullets where they honestly apply.",
	}}
}

func fromSkillsScore(result scoring.ScoreResult) []Recommendation {
	if result.Breakdown.SkillsAlignment.Score >= subScoreThreshold ||
		len(result.SkillsAnalysis.MissingSkills) == 0 {
		return nil
	}
	missing := firstN(result.SkillsAnalysis.MissingSkills, 5)
	return []Recommendation{{
		Priority:    PriorityHigh,
		Category:    "skills",
		Title:       "Add Missing Skills",
		Description: fmt.Sprintf("The job asks for skills your resume does not mention: %s.", strings.Join(missing, ", ")),
		Action:      "List the skills you actually have in a dedicated skills section.",
	}}
}

func fromActionVerbs(result scoring.ScoreResult) []Recommendation {
	if result.Metrics.ActionVerbCount >= 5 {
		return nil
	}
	return []Recommendation{{
		Priority:    PriorityMedium,
		Category:    "content",
		Title:       "Use Stronger Action Verbs",
		Description: "Few bullet points start with strong action verbs, which weakens the impact of your experience.",
		Action:      "Open each bullet with verbs like led, implemented, delivered, or optimized.",
	}}
}

func fromQuantifiableResults(result scoring.ScoreResult) []Recommendation {
	if result.Metrics.QuantifiableAchievements >= 3 {
		return nil
	}
	return []Recommendation{{
		Priority:    PriorityHigh,
		Category:    "content",
		Title:       "Add Quantifiable Results",
		Description: "Your resume shows few measurable outcomes; recruiters look for numbers.",
		Action:      "Quantify achievements with percentages, dollar amounts, or time saved.",
	}}
}

func fromFormatScore(result scoring.ScoreResult) []Recommendation {
	if result.Breakdown.FormatReadability.Score >= subScoreThreshold ||
		len(result.FormatAnalysis.Issues) == 0 {
		return nil
	}
	return []Recommendation{{
		Priority:    PriorityMedium,
		Category:    "format",
		Title:       "Fix Formatting Issues",
		Description: strings.Join(result.FormatAnalysis.Issues, " "),
		Action:      "Use a clean single-column layout with standard section headers and bullet points.",
	}}
}

// fromWordCount fires at most one recommendation: expand when too short,
// condense when too long.
func fromWordCount(result scoring.ScoreResult) []Recommendation {
	words := result.Metrics.WordCount
	switch {
	case words < 300:
		return []Recommendation{{
			Priority:    PriorityMedium,
			Category:    "length",
			Title:       "Expand Your Resume",
			Description: fmt.Sprintf("At %d words your resume is thinner than the typical 300-1000 word range.", words),
			Action:      "Add detail to your most relevant roles and projects.",
		}}
	case words > 1000:
		return []Recommendation{{
			Priority:    PriorityLow,
			Category:    "length",
			Title:       "Condense Your Resume",
			Description: fmt.Sprintf("At %d words your resume runs past the typical 300-1000 word range.", words),
			Action:      "Trim older or less relevant roles down to their strongest bullets.",
		}}
	default:
		return nil
	}
}

func fromContactInfo(result scoring.ScoreResult) []Recommendation {
	contact := result.FormatAnalysis.Contact
	missing := make([]string, 0, 3)
	if !contact.HasEmail {
		missing = append(missing, "email")
	}
	if !contact.HasPhone {
		missing = append(missing, "phone")
	}
	if !contact.HasLinkedIn {
		missing = append(missing, "LinkedIn")
	}
	if len(missing) == 0 {
		return nil
	}
	return []Recommendation{{
		Priority:    PriorityHigh,
		Category:    "contact",
		Title:       "Complete Contact Information",
		Description: fmt.Sprintf("Your resume appears to be missing: %s.", strings.Join(missing, ", ")),
		Action:      "Put full contact details at the top of the first page.",
	}}
}

func fromEducationScore(result scoring.ScoreResult) []Recommendation {
	if result.Breakdown.EducationMatch.Score >= subScoreThreshold {
		return nil
	}
	return []Recommendation{{
		Priority:    PriorityMedium,
		Category:    "education",
		Title:       "Strengthen the Education Section",
		Description: "Your education section does not line up with what the job description asks for.",
		Action:      "State your highest degree, field of study, and institution clearly.",
	}}
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
