package scoring

import "resume-scorer/internal/keywords"

// scoreEducationMatch compares degree ranks between resume and job, with a
// +10 bonus when any detected field of study overlaps.
func scoreEducationMatch(resumeText, jobText string) (float64, keywords.EducationInfo, keywords.EducationInfo) {
	resumeEdu := keywords.ExtractEducation(resumeText)
	jobEdu := keywords.ExtractEducation(jobText)

	resumeRank := keywords.DegreeRank(resumeEdu.HighestDegree)
	jobRank := keywords.DegreeRank(jobEdu.HighestDegree)

	var score float64
	switch {
	case jobRank == 0:
		// Job states no degree requirement.
		if resumeRank > 0 {
			score = 90
		} else {
			score = 70
		}
	case resumeRank >= jobRank:
		score = 100
	case resumeRank == jobRank-1:
		score = 75
	case resumeRank > 0:
		score = 60
	default:
		score = 40
	}

	if fieldsOverlap(resumeEdu.FieldOfStudy, jobEdu.FieldOfStudy) {
		score = clamp(score + 10)
	}
	return clamp(score), resumeEdu, jobEdu
}

func fieldsOverlap(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, f := range a {
		set[f] = struct{}{}
	}
	for _, f := range b {
		if _, ok := set[f]; ok {
			return true
		}
	}
	return false
}
