package model

// Difficulty is LeetCode's assigned difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether d is one of the three known tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Problem is one fetched LeetCode problem with the statistics needed
// for scoring. The frontend id doubles as the release-order proxy:
// higher ids were published later.
type Problem struct {
	ID               int        `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Difficulty       Difficulty `json:"difficulty"`
	AcceptanceRate   float64    `json:"acceptance_rate"`
	TotalAccepted    int64      `json:"total_accepted"`
	TotalSubmissions int64      `json:"total_submissions"`
	Link             string     `json:"link"`
}

// ScoredProblem is a Problem with its calculated difficulty score.
type ScoredProblem struct {
	Problem
	Score float64 `json:"calculated_score"`
}

// DailyChallenge is the daily challenge problem plus presentation
// extras that are not part of the scored corpus.
type DailyChallenge struct {
	Problem
	Content string
	Topics  []string
}
