package keywords

// KeywordSet is the full extraction output for one input text. It is
// produced once per text and never mutated afterwards.
type KeywordSet struct {
	Keywords    []string      `json:"keywords"`
	Skills      []SkillRecord `json:"skills"`
	ActionVerbs []VerbRecord  `json:"actionVerbs"`
	Phrases     []string      `json:"phrases"`
	Entities    []Entity      `json:"entities"`
}

// SkillRecord is a dictionary skill detected in the text. Skill is always a
// lowercase canonical dictionary entry, never user-supplied text.
type SkillRecord struct {
	Skill    string `json:"skill"`
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// VerbRecord is an action verb detected in the text with its count.
type VerbRecord struct {
	Verb  string `json:"verb"`
	Count int    `json:"count"`
}

// Entity is a lightweight named-entity hint.
type Entity struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ComparisonResult reports how a job-side keyword list is covered by a
// resume-side keyword list. matched and missing partition the job keywords.
type ComparisonResult struct {
	Matched          []string `json:"matched"`
	Missing          []string `json:"missing"`
	MatchRatePercent float64  `json:"matchRatePercent"`
	MatchedCount     int      `json:"matchedCount"`
	MissingCount     int      `json:"missingCount"`
}

// EducationInfo summarizes degree signals detected in a text.
type EducationInfo struct {
	HighestDegree string   `json:"highestDegree"`
	Degrees       []string `json:"degrees"`
	FieldOfStudy  []string `json:"fieldOfStudy"`
}
