// Package cache persists fetch snapshots as a single JSON file.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"leetrank/internal/domain/model"
	"leetrank/internal/domain/ports"
)

// FileStore stores the whole snapshot in one JSON file. Writes go
// through a temp file in the same directory followed by a rename, so
// readers never observe a partial snapshot.
type FileStore struct {
	path   string
	logger ports.Logger
}

var _ ports.SnapshotStore = (*FileStore)(nil)

// NewFileStore creates a FileStore backed by the given path.
func NewFileStore(path string, logger ports.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// Load reads the stored snapshot. A missing, unreadable, or corrupt
// file reads as absent (nil, nil); the caller falls back to a live fetch.
func (s *FileStore) Load() (*model.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && s.logger != nil {
			s.logger.Warn(context.Background(), "cache unreadable, treating as absent", "path", s.path, "error", err)
		}
		return nil, nil
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		if s.logger != nil {
			s.logger.Warn(context.Background(), "cache corrupt, treating as absent", "path", s.path, "error", err)
		}
		return nil, nil
	}

	if snap.FetchedAt.IsZero() || snap.Records == nil {
		if s.logger != nil {
			s.logger.Warn(context.Background(), "cache incomplete, treating as absent", "path", s.path)
		}
		return nil, nil
	}

	return &snap, nil
}

// Save atomically replaces the snapshot with the given records.
func (s *FileStore) Save(records []model.Problem, fetchedAt time.Time) error {
	snap := model.Snapshot{FetchedAt: fetchedAt, Records: records}
	if snap.Records == nil {
		snap.Records = []model.Problem{}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp snapshot: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot: %w", err)
	}

	return nil
}
