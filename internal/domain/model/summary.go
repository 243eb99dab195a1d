package model

import "time"

// Spotlight places the daily challenge within the ranked corpus.
type Spotlight struct {
	Daily DailyChallenge
	// Rank is the 1-based position in the ranking, 0 when the daily
	// challenge is not part of the scored corpus.
	Rank  int
	Score float64
}

// RunSummary carries everything the reporters show besides the ranked
// records themselves.
type RunSummary struct {
	TotalRanked int
	Dropped     int
	FromCache   bool
	Stale       bool
	FetchedAt   time.Time
	Spotlight   *Spotlight
	Insight     string
}
