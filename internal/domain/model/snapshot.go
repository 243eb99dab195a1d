package model

import "time"

// Snapshot is a persisted copy of a full fetch: every problem record
// plus the single timestamp of the fetch. It is replaced wholesale on
// each successful live fetch, never merged.
type Snapshot struct {
	FetchedAt time.Time `json:"fetched_at"`
	Records   []Problem `json:"records"`
}

// Fresh reports whether the snapshot's age at now is within maxAge.
// Age exactly equal to maxAge still counts as fresh.
func (s *Snapshot) Fresh(maxAge time.Duration, now time.Time) bool {
	if s == nil {
		return false
	}
	return now.Sub(s.FetchedAt) <= maxAge
}
