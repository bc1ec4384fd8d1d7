package scoring

// clamp bounds a score to [0,100]. Every bonus and penalty in the
// calculators goes through here so the range invariant survives future
// rule additions.
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
