// Package scoring computes the composite "calculated difficulty" score
// for problems and produces the deterministic ranking.
package scoring

import (
	"math"
	"sort"

	"leetrank/internal/domain/model"
)

// Weights are the modifier coefficients applied to normalized [0,1]
// factors. PopularityDiscount is usually negative: heavily submitted
// problems have more discussion available and get cheaper.
type Weights struct {
	// Applied to (1 - acceptanceRate): low acceptance raises the score.
	AcceptanceImpact float64 `yaml:"acceptance_impact"`
	// Applied to (1 - logNorm(totalAccepted)): few absolute solves
	// raise the score.
	LowSolvePenalty float64 `yaml:"low_solve_penalty"`
	// Applied to logNorm(totalSubmissions).
	PopularityDiscount float64 `yaml:"popularity_discount"`
	// Applied to the normalized frontend id: newer problems are
	// assumed less discussed.
	NewnessPremium float64 `yaml:"newness_premium"`
}

// BaseScores anchor each assigned difficulty tier. Modifiers can move
// a problem across tiers, but not usually by accident.
type BaseScores struct {
	Easy   float64 `yaml:"easy"`
	Medium float64 `yaml:"medium"`
	Hard   float64 `yaml:"hard"`
}

// DefaultWeights returns the stock modifier weights.
func DefaultWeights() Weights {
	return Weights{
		AcceptanceImpact:   300,
		LowSolvePenalty:    150,
		PopularityDiscount: -80,
		NewnessPremium:     70,
	}
}

// DefaultBaseScores returns the stock per-tier anchors.
func DefaultBaseScores() BaseScores {
	return BaseScores{Easy: 80, Medium: 200, Hard: 450}
}

// For returns the anchor score for a tier. Unknown tiers anchor at zero.
func (b BaseScores) For(d model.Difficulty) float64 {
	switch d {
	case model.DifficultyEasy:
		return b.Easy
	case model.DifficultyMedium:
		return b.Medium
	case model.DifficultyHard:
		return b.Hard
	}
	return 0
}

// Norms hold the corpus-wide ranges used to normalize raw statistics
// to [0,1] so every weighted term is comparable in magnitude.
type Norms struct {
	maxID      float64
	logMaxSubs float64
	logMaxAccs float64
}

// NormsFor scans the corpus for its maxima. All maxima are floored so
// normalization never divides by zero, even for an empty corpus.
func NormsFor(records []model.Problem) Norms {
	var maxID int
	var maxSubs, maxAccs int64
	for _, p := range records {
		if p.ID > maxID {
			maxID = p.ID
		}
		if p.TotalSubmissions > maxSubs {
			maxSubs = p.TotalSubmissions
		}
		if p.TotalAccepted > maxAccs {
			maxAccs = p.TotalAccepted
		}
	}
	n := Norms{
		maxID:      float64(maxID),
		logMaxSubs: math.Log1p(float64(maxSubs)),
		logMaxAccs: math.Log1p(float64(maxAccs)),
	}
	if n.maxID < 1 {
		n.maxID = 1
	}
	if n.logMaxSubs <= 0 {
		n.logMaxSubs = 1
	}
	if n.logMaxAccs <= 0 {
		n.logMaxAccs = 1
	}
	return n
}

// Score computes the composite difficulty score for a single problem.
//
// A zero or absent acceptance rate reads as maximally difficult, and
// zero counts are handled by log1p, so the result is always finite.
func Score(p model.Problem, base BaseScores, w Weights, n Norms) float64 {
	score := base.For(p.Difficulty)

	acceptance := clamp01(p.AcceptanceRate)
	score += w.AcceptanceImpact * (1 - acceptance)

	logNormAccs := clamp01(math.Log1p(float64(p.TotalAccepted)) / n.logMaxAccs)
	score += w.LowSolvePenalty * (1 - logNormAccs)

	logNormSubs := clamp01(math.Log1p(float64(p.TotalSubmissions)) / n.logMaxSubs)
	score += w.PopularityDiscount * logNormSubs

	score += w.NewnessPremium * clamp01(float64(p.ID)/n.maxID)

	return score
}

// Rank scores every record against the corpus ranges and returns them
// sorted by score descending, ties broken by ascending id.
func Rank(records []model.Problem, base BaseScores, w Weights) []model.ScoredProblem {
	norms := NormsFor(records)

	scored := make([]model.ScoredProblem, 0, len(records))
	for _, p := range records {
		scored = append(scored, model.ScoredProblem{
			Problem: p,
			Score:   Score(p, base, w, norms),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].ID < scored[j].ID
	})

	return scored
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
