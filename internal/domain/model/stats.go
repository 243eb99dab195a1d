package model

// ProblemStats are the submission statistics returned by the
// per-problem stats endpoint.
type ProblemStats struct {
	AcceptanceRate   float64
	TotalAccepted    int64
	TotalSubmissions int64
}
