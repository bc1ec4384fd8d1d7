package scoring

import (
	"testing"

	"resume-scorer/internal/keywords"
)

func TestExtractYears(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{name: "years_of_experience", text: "5 years of experience in backend work", want: 5},
		{name: "plus_suffix", text: "3+ years experience required", want: 3},
		{name: "experience_colon", text: "Experience: 7 years", want: 7},
		{name: "years_in", text: "4 years in data engineering", want: 4},
		{name: "max_wins", text: "2 years of experience plus 8 years in consulting", want: 8},
		{name: "no_signal", text: "seasoned engineer", want: 0},
		{name: "empty", text: "", want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractYears(tc.text); got != tc.want {
				t.Fatalf("extractYears(%q) = %d, want %d", tc.text, got, tc.want)
			}
		})
	}
}

func TestScoreExperienceRelevanceTiers(t *testing.T) {
	cases := []struct {
		name   string
		resume string
		job    string
		want   float64
	}{
		{
			name:   "meets_requirement",
			resume: "5 years of experience",
			job:    "3+ years of experience required",
			want:   100,
		},
		{
			name:   "close_to_requirement",
			resume: "3 years of experience",
			job:    "4 years of experience required",
			want:   80,
		},
		{
			name:   "well_below_requirement",
			resume: "2 years of experience",
			job:    "10 years of experience required",
			want:   60,
		},
		{
			name:   "requirement_without_claim",
			resume: "backend engineer",
			job:    "3 years of experience required",
			want:   50,
		},
		{
			name:   "claim_without_requirement",
			resume: "4 years of experience",
			job:    "backend engineer wanted",
			want:   85,
		},
		{
			name:   "no_signal_either_side",
			resume: "backend engineer",
			job:    "backend engineer wanted",
			want:   70,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, _, _ := scoreExperienceRelevance(tc.resume, tc.job, keywords.KeywordSet{})
			if score != tc.want {
				t.Fatalf("score = %v, want %v", score, tc.want)
			}
		})
	}
}

func TestScoreExperienceRelevanceBonuses(t *testing.T) {
	resume := "3 years of experience. Led the platform team."
	resumeKW := keywords.KeywordSet{
		ActionVerbs: []keywords.VerbRecord{
			{Verb: "led", Count: 1}, {Verb: "built", Count: 1}, {Verb: "designed", Count: 1},
			{Verb: "launched", Count: 1}, {Verb: "improved", Count: 1},
		},
	}

	// Base 100, +10 for five distinct verbs, +5 leadership, clamped.
	score, required, claimed := scoreExperienceRelevance(resume, "2 years of experience needed", resumeKW)
	if score != 100 {
		t.Fatalf("score = %v, want clamped 100", score)
	}
	if required != 2 || claimed != 3 {
		t.Fatalf("years = %d/%d, want 2/3", required, claimed)
	}

	// Base 50 surfaces both bonuses unclamped.
	score, _, _ = scoreExperienceRelevance("Led the platform team.", "4 years of experience needed", resumeKW)
	if score != 65 {
		t.Fatalf("score = %v, want 65 (50 + 10 + 5)", score)
	}
}
