package scoring

// Sub-score weights. Fixed; they sum to 100.
const (
	WeightKeywordMatch        = 40.0
	WeightSkillsAlignment     = 20.0
	WeightExperienceRelevance = 15.0
	WeightEducationMatch      = 10.0
	WeightFormatReadability   = 15.0
)

// ComponentScore is one weighted entry in the score breakdown.
type ComponentScore struct {
	Score         float64 `json:"score"`
	Weight        float64 `json:"weight"`
	WeightedScore float64 `json:"weightedScore"`
}

// Breakdown holds the five weighted sub-scores.
type Breakdown struct {
	KeywordMatch        ComponentScore `json:"keywordMatch"`
	SkillsAlignment     ComponentScore `json:"skillsAlignment"`
	ExperienceRelevance ComponentScore `json:"experienceRelevance"`
	EducationMatch      ComponentScore `json:"educationMatch"`
	FormatReadability   ComponentScore `json:"formatReadability"`
}

// Metrics is the flat set of derived counters computed alongside the
// sub-scores.
type Metrics struct {
	WordCount                int `json:"wordCount"`
	PageCount                int `json:"pageCount"`
	QuantifiableAchievements int `json:"quantifiableAchievements"`
	ActionVerbCount          int `json:"actionVerbCount"`
	MatchedKeywords          int `json:"matchedKeywords"`
	MissingKeywords          int `json:"missingKeywords"`
	MatchedSkills            int `json:"matchedSkills"`
	MissingSkills            int `json:"missingSkills"`
	RequiredYears            int `json:"requiredYears"`
	ResumeYears              int `json:"resumeYears"`
}

// KeywordAnalysis reports keyword coverage against the job description.
type KeywordAnalysis struct {
	Matched                []string `json:"matched"`
	Missing                []string `json:"missing"`
	MatchRatePercent       float64  `json:"matchRatePercent"`
	SkillsMatchRatePercent float64  `json:"skillsMatchRatePercent"`
}

// SkillsAnalysis reports dictionary-skill coverage. Matching here is exact
// lowercase equality; the fuzzy fallback does not apply to skills.
type SkillsAnalysis struct {
	MatchedSkills   []string `json:"matchedSkills"`
	MissingSkills   []string `json:"missingSkills"`
	ExtraSkills     []string `json:"extraSkills"`
	CoveragePercent float64  `json:"coveragePercent"`
}

// ContactInfo flags which contact details were found in the resume.
type ContactInfo struct {
	HasEmail    bool `json:"hasEmail"`
	HasPhone    bool `json:"hasPhone"`
	HasLinkedIn bool `json:"hasLinkedIn"`
	HasLocation bool `json:"hasLocation"`
}

// ContentQuality holds writing-quality signals derived from the resume.
type ContentQuality struct {
	AvgSentenceLength float64 `json:"avgSentenceLength"`
	ActiveVoiceRatio  float64 `json:"activeVoiceRatio"`
	UsesSTARMethod    bool    `json:"usesStarMethod"`
	ReadabilityScore  float64 `json:"readabilityScore"`
}

// FormatAnalysis holds structure and readability signals plus the issue
// list surfaced to the recommendation generator.
type FormatAnalysis struct {
	SectionsPresent []string    `json:"sectionsPresent"`
	SectionsMissing []string    `json:"sectionsMissing"`
	BulletPoints    int         `json:"bulletPoints"`
	NumberTokens    int         `json:"numberTokens"`
	HasSpecialChars bool        `json:"hasSpecialChars"`
	Issues          []string    `json:"issues"`
	Contact         ContactInfo `json:"contact"`
}

// ScoreResult is the aggregate produced by CalculateScore. It is created
// once per analysis and consumed read-only afterwards.
type ScoreResult struct {
	OverallScore    int             `json:"overallScore"`
	ScoreGrade      string          `json:"scoreGrade"`
	Industry        string          `json:"industry"`
	Breakdown       Breakdown       `json:"breakdown"`
	Metrics         Metrics         `json:"metrics"`
	KeywordAnalysis KeywordAnalysis `json:"keywordAnalysis"`
	SkillsAnalysis  SkillsAnalysis  `json:"skillsAnalysis"`
	ContentQuality  ContentQuality  `json:"contentQuality"`
	FormatAnalysis  FormatAnalysis  `json:"formatAnalysis"`
}
