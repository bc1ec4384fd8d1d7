package analyses

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-scorer/internal/keywords"
	"resume-scorer/internal/recommendations"
	"resume-scorer/internal/scoring"
	"resume-scorer/internal/shared/metrics"
	"resume-scorer/internal/shared/telemetry"
)

// Input carries the two plain texts and the optional industry label.
type Input struct {
	ResumeText     string
	JobDescription string
	Industry       string
}

// Analysis is one completed scoring run. Nothing is stored; the ID only
// correlates logs with the response.
type Analysis struct {
	ID              string                           `json:"analysisId"`
	Industry        string                           `json:"industry"`
	Score           scoring.ScoreResult              `json:"score"`
	Recommendations []recommendations.Recommendation `json:"recommendations"`
	ResumeKeywords  keywords.KeywordSet              `json:"resumeKeywords"`
	JobKeywords     keywords.KeywordSet              `json:"jobKeywords"`
}

// Service runs the scoring pipeline. It is stateless and safe for
// concurrent use: every run reads only its arguments and the static
// dictionaries.
type Service struct{}

// NewService constructs a Service.
func NewService() *Service {
	return &Service{}
}

// Analyze runs extraction, scoring, and recommendation generation over the
// input texts. The resume and job description must be non-empty; past that
// gate the pipeline is total and never fails.
func (s *Service) Analyze(input Input) (Analysis, error) {
	if strings.TrimSpace(input.ResumeText) == "" {
		metrics.IncAnalysisFailed()
		return Analysis{}, ErrEmptyResume
	}
	if strings.TrimSpace(input.JobDescription) == "" {
		metrics.IncAnalysisFailed()
		return Analysis{}, ErrEmptyJobDescription
	}

	start := time.Now()
	resumeKW := keywords.Extract(input.ResumeText)
	jobKW := keywords.Extract(input.JobDescription)
	score := scoring.CalculateScore(input.ResumeText, input.JobDescription, resumeKW, jobKW, input.Industry)
	recs := recommendations.Generate(score, input.ResumeText, input.JobDescription)

	analysis := Analysis{
		ID:              uuid.NewString(),
		Industry:        score.Industry,
		Score:           score,
		Recommendations: recs,
		ResumeKeywords:  resumeKW,
		JobKeywords:     jobKW,
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	metrics.ObserveAnalysisScore(score.OverallScore)

	telemetry.Info("analysis.complete", map[string]any{
		"analysis_id":     analysis.ID,
		"industry":        analysis.Industry,
		"overall_score":   score.OverallScore,
		"score_grade":     score.ScoreGrade,
		"resume_words":    score.Metrics.WordCount,
		"recommendations": len(recs),
		"duration_ms":     float64(time.Since(start).Microseconds()) / 1000.0,
	})
	return analysis, nil
}
