package ports

import (
	"context"

	"leetrank/internal/domain/model"
)

// InsightWriter synthesizes a short study note about the hardest
// ranked problems.
type InsightWriter interface {
	Compose(ctx context.Context, top []model.ScoredProblem) (string, error)
}
