package domain

// Metrics is the analytics rollup served by /api/analytics/metrics.
// AverageScore is the mean of all non-null overall evaluation scores, rounded
// to one decimal place; it is 0 when no evaluation carries an overall score.
type Metrics struct {
	TotalInterviews    int     `json:"total_interviews"`
	ActiveCandidates   int     `json:"active_candidates"`
	InterviewsThisWeek int     `json:"interviews_this_week"`
	AverageScore       float64 `json:"average_score"`
}
