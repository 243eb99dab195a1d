package ports

import (
	"context"

	"leetrank/internal/domain/model"
)

// Reporter renders a human-readable summary of the hardest problems.
type Reporter interface {
	ReportTop(ctx context.Context, ranked []model.ScoredProblem, summary model.RunSummary) error
}

// Exporter writes the complete ranked corpus to a durable output.
type Exporter interface {
	Export(ranked []model.ScoredProblem) error
}
