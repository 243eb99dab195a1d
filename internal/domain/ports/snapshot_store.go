package ports

import (
	"time"

	"leetrank/internal/domain/model"
)

// SnapshotStore persists the full set of fetched problem records
// between runs.
type SnapshotStore interface {
	// Load returns the stored snapshot, or nil when none is usable.
	// A corrupt or unreadable store reads as absent, not as an error.
	Load() (*model.Snapshot, error)
	// Save replaces any prior snapshot with the given records.
	Save(records []model.Problem, fetchedAt time.Time) error
}
