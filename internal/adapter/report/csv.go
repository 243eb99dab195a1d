package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"leetrank/internal/domain/model"
	"leetrank/internal/domain/ports"
)

var csvHeader = []string{
	"id", "title", "slug", "difficulty", "acceptance_rate",
	"total_accepted", "total_submissions", "calculated_score", "link",
}

// CSVFile exports the full ranked corpus to a CSV file. Like the
// cache snapshot, the file is replaced atomically.
type CSVFile struct {
	path string
}

var _ ports.Exporter = (*CSVFile)(nil)

// NewCSVFile creates a CSV exporter writing to the given path.
func NewCSVFile(path string) *CSVFile {
	return &CSVFile{path: path}
}

// Export writes every record in ranked order, full fidelity.
func (e *CSVFile) Export(ranked []model.ScoredProblem) error {
	dir := filepath.Dir(e.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(e.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmpName := tmp.Name()

	if err := writeCSV(tmp, ranked); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp output: %w", err)
	}

	if err := os.Rename(tmpName, e.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace output: %w", err)
	}
	return nil
}

func writeCSV(f *os.File, ranked []model.ScoredProblem) error {
	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, p := range ranked {
		row := []string{
			strconv.Itoa(p.ID),
			p.Title,
			p.Slug,
			string(p.Difficulty),
			strconv.FormatFloat(p.AcceptanceRate, 'f', 4, 64),
			strconv.FormatInt(p.TotalAccepted, 10),
			strconv.FormatInt(p.TotalSubmissions, 10),
			strconv.FormatFloat(p.Score, 'f', 2, 64),
			p.Link,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row for %d: %w", p.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
