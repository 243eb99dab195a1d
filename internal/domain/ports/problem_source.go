package ports

import (
	"context"

	"leetrank/internal/domain/model"
)

// ProblemSource defines access to the remote judge's problem data.
type ProblemSource interface {
	// ListProblems returns the full problem list without per-problem
	// statistics filled in, plus the number of entries dropped because
	// they failed validation.
	ListProblems(ctx context.Context) ([]model.Problem, int, error)
	// ProblemStats fetches submission statistics for a single problem.
	ProblemStats(ctx context.Context, slug string) (model.ProblemStats, error)
	// DailyChallenge retrieves today's daily challenge.
	DailyChallenge(ctx context.Context) (*model.DailyChallenge, error)
}
