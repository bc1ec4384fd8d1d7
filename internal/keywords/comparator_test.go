package keywords

import (
	"reflect"
	"testing"
)

func TestCompare(t *testing.T) {
	cases := []struct {
		name        string
		resume      []string
		job         []string
		wantMatched []string
		wantMissing []string
		wantRate    float64
	}{
		{
			name:        "exact_match",
			resume:      []string{"python", "sql", "docker"},
			job:         []string{"python", "sql"},
			wantMatched: []string{"python", "sql"},
			wantMissing: []string{},
			wantRate:    100,
		},
		{
			name:        "case_insensitive",
			resume:      []string{"Python"},
			job:         []string{"PYTHON"},
			wantMatched: []string{"PYTHON"},
			wantMissing: []string{},
			wantRate:    100,
		},
		{
			name:        "substring_fallback",
			resume:      []string{"management"},
			job:         []string{"manage"},
			wantMatched: []string{"manage"},
			wantMissing: []string{},
			wantRate:    100,
		},
		{
			name:        "substring_fallback_reversed",
			resume:      []string{"manage"},
			job:         []string{"management"},
			wantMatched: []string{"management"},
			wantMissing: []string{},
			wantRate:    100,
		},
		{
			name:        "partial_match",
			resume:      []string{"python"},
			job:         []string{"python", "kubernetes", "terraform", "golang"},
			wantMatched: []string{"python"},
			wantMissing: []string{"kubernetes", "terraform", "golang"},
			wantRate:    25,
		},
		{
			name:        "empty_resume_all_missing",
			resume:      []string{},
			job:         []string{"python", "sql"},
			wantMatched: []string{},
			wantMissing: []string{"python", "sql"},
			wantRate:    0,
		},
		{
			name:        "empty_job_rate_zero",
			resume:      []string{"python"},
			job:         []string{},
			wantMatched: []string{},
			wantMissing: []string{},
			wantRate:    0,
		},
		{
			name:        "blank_keywords_skipped",
			resume:      []string{"  ", "python"},
			job:         []string{"", "python"},
			wantMatched: []string{"python"},
			wantMissing: []string{},
			wantRate:    100,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Compare(tc.resume, tc.job)
			if !reflect.DeepEqual(got.Matched, tc.wantMatched) {
				t.Fatalf("matched = %v, want %v", got.Matched, tc.wantMatched)
			}
			if !reflect.DeepEqual(got.Missing, tc.wantMissing) {
				t.Fatalf("missing = %v, want %v", got.Missing, tc.wantMissing)
			}
			if got.MatchRatePercent != tc.wantRate {
				t.Fatalf("rate = %v, want %v", got.MatchRatePercent, tc.wantRate)
			}
			if got.MatchedCount != len(tc.wantMatched) || got.MissingCount != len(tc.wantMissing) {
				t.Fatalf("counts = %d/%d, want %d/%d",
					got.MatchedCount, got.MissingCount, len(tc.wantMatched), len(tc.wantMissing))
			}
		})
	}
}

func TestCompareOrderFollowsJobInput(t *testing.T) {
	got := Compare([]string{"sql", "python"}, []string{"python", "aws", "sql", "gcp"})
	wantMatched := []string{"python", "sql"}
	wantMissing := []string{"aws", "gcp"}
	if !reflect.DeepEqual(got.Matched, wantMatched) {
		t.Fatalf("matched = %v, want %v", got.Matched, wantMatched)
	}
	if !reflect.DeepEqual(got.Missing, wantMissing) {
		t.Fatalf("missing = %v, want %v", got.Missing, wantMissing)
	}
}
