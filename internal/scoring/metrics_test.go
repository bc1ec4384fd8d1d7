package scoring

import "testing"

func TestCountQuantifiableAchievements(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "no_digits", text: "Improved the onboarding flow substantially.", want: 0},
		{name: "percentage", text: "Grew signups 25%", want: 1},
		{name: "percent_word", text: "cut churn by 12 percent", want: 2},
		{name: "dollar_amount", text: "Saved $1.2 million in vendor spend", want: 2},
		{name: "time_period", text: "Delivered the migration in 6 months", want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := countQuantifiableAchievements(tc.text); got != tc.want {
				t.Fatalf("count = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestEstimatePages(t *testing.T) {
	cases := []struct {
		words int
		want  int
	}{
		{0, 0}, {1, 1}, {499, 1}, {500, 1}, {501, 2}, {1400, 3},
	}
	for _, tc := range cases {
		if got := estimatePages(tc.words); got != tc.want {
			t.Fatalf("estimatePages(%d) = %d, want %d", tc.words, got, tc.want)
		}
	}
}

func TestDetectContactInfo(t *testing.T) {
	full := detectContactInfo("jane@example.com (555) 123-4567 linkedin.com/in/jane Portland, OR")
	if !full.HasEmail || !full.HasPhone || !full.HasLinkedIn || !full.HasLocation {
		t.Fatalf("expected all contact flags set, got %+v", full)
	}

	none := detectContactInfo("no reachable details here")
	if none.HasEmail || none.HasPhone || none.HasLinkedIn || none.HasLocation {
		t.Fatalf("expected no contact flags, got %+v", none)
	}
}

func TestCountWords(t *testing.T) {
	if got := countWords("  one two\nthree  "); got != 3 {
		t.Fatalf("countWords = %d, want 3", got)
	}
	if got := countWords(""); got != 0 {
		t.Fatalf("countWords empty = %d, want 0", got)
	}
}
