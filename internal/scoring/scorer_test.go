package scoring

import (
	"math"
	"testing"

	"leetrank/internal/domain/model"
)

func sampleCorpus() []model.Problem {
	return []model.Problem{
		{ID: 1, Title: "Two Sum", Slug: "two-sum", Difficulty: model.DifficultyEasy,
			AcceptanceRate: 0.80, TotalAccepted: 10000, TotalSubmissions: 12500},
		{ID: 100, Title: "Same Tree", Slug: "same-tree", Difficulty: model.DifficultyHard,
			AcceptanceRate: 0.25, TotalAccepted: 500, TotalSubmissions: 2000},
		{ID: 50, Title: "Pow(x, n)", Slug: "powx-n", Difficulty: model.DifficultyMedium,
			AcceptanceRate: 0.50, TotalAccepted: 5000, TotalSubmissions: 10000},
	}
}

func TestRank_DefaultWeightsOrdering(t *testing.T) {
	ranked := Rank(sampleCorpus(), DefaultBaseScores(), DefaultWeights())

	got := []int{ranked[0].ID, ranked[1].ID, ranked[2].ID}
	want := []int{100, 50, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rank order = %v, want %v", got, want)
		}
	}
}

func TestRank_Deterministic(t *testing.T) {
	first := Rank(sampleCorpus(), DefaultBaseScores(), DefaultWeights())
	second := Rank(sampleCorpus(), DefaultBaseScores(), DefaultWeights())

	for i := range first {
		if first[i].ID != second[i].ID || first[i].Score != second[i].Score {
			t.Fatalf("run %d: %+v != %+v", i, first[i], second[i])
		}
	}
}

func TestRank_TiesBrokenByAscendingID(t *testing.T) {
	// Identical stats and tier mean identical scores except for the
	// newness term, so zero out the newness weight to force a tie.
	weights := Weights{AcceptanceImpact: 300}
	records := []model.Problem{
		{ID: 7, Difficulty: model.DifficultyMedium, AcceptanceRate: 0.5},
		{ID: 3, Difficulty: model.DifficultyMedium, AcceptanceRate: 0.5},
		{ID: 5, Difficulty: model.DifficultyMedium, AcceptanceRate: 0.5},
	}

	ranked := Rank(records, DefaultBaseScores(), weights)

	want := []int{3, 5, 7}
	for i := range want {
		if ranked[i].ID != want[i] {
			t.Fatalf("tie order = [%d %d %d], want %v", ranked[0].ID, ranked[1].ID, ranked[2].ID, want)
		}
	}
}

func TestScore_LowerAcceptanceNeverScoresLower(t *testing.T) {
	norms := NormsFor(sampleCorpus())
	base := DefaultBaseScores()
	weights := DefaultWeights()

	p := sampleCorpus()[2]
	prev := math.Inf(-1)
	for rate := 1.0; rate >= 0; rate -= 0.05 {
		p.AcceptanceRate = rate
		s := Score(p, base, weights, norms)
		if s < prev {
			t.Fatalf("score dropped to %.4f at acceptance %.2f", s, rate)
		}
		prev = s
	}
}

func TestScore_FiniteWithMissingStatistics(t *testing.T) {
	records := []model.Problem{
		{ID: 1, Difficulty: model.DifficultyHard},
		{ID: 2, Difficulty: model.DifficultyEasy, AcceptanceRate: math.NaN()},
		{ID: 3},
	}

	for _, sp := range Rank(records, DefaultBaseScores(), DefaultWeights()) {
		if math.IsNaN(sp.Score) || math.IsInf(sp.Score, 0) {
			t.Errorf("problem %d: score %v is not finite", sp.ID, sp.Score)
		}
	}
}

func TestScore_ZeroAcceptanceIsMaximumContribution(t *testing.T) {
	norms := NormsFor(sampleCorpus())
	weights := Weights{AcceptanceImpact: 100}
	base := BaseScores{}

	missing := Score(model.Problem{ID: 1}, base, weights, norms)
	full := Score(model.Problem{ID: 1, AcceptanceRate: 1.0}, base, weights, norms)

	if missing != full+100 {
		t.Fatalf("zero acceptance contributed %.2f, want %.2f", missing-full, 100.0)
	}
}

func TestScore_NewnessNormalizedToCorpusRange(t *testing.T) {
	records := []model.Problem{{ID: 10}, {ID: 1000}}
	norms := NormsFor(records)
	weights := Weights{NewnessPremium: 70}
	base := BaseScores{}

	newest := Score(records[1], base, weights, norms)
	if newest != 70 {
		t.Fatalf("newest problem newness term = %.2f, want 70", newest)
	}
	oldest := Score(records[0], base, weights, norms)
	if oldest <= 0 || oldest >= 70 {
		t.Fatalf("oldest problem newness term = %.2f, want within (0, 70)", oldest)
	}
}

func TestRank_EmptyCorpus(t *testing.T) {
	if got := Rank(nil, DefaultBaseScores(), DefaultWeights()); len(got) != 0 {
		t.Fatalf("expected empty ranking, got %d entries", len(got))
	}
}

func TestBaseScores_UnknownTierAnchorsAtZero(t *testing.T) {
	if got := DefaultBaseScores().For("Unknown"); got != 0 {
		t.Fatalf("unknown tier anchored at %.2f, want 0", got)
	}
}
