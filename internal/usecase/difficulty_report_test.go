package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"leetrank/internal/domain/model"
	"leetrank/internal/scoring"
)

type fakeReporter struct {
	calls   int
	ranked  []model.ScoredProblem
	summary model.RunSummary
}

func (f *fakeReporter) ReportTop(_ context.Context, ranked []model.ScoredProblem, summary model.RunSummary) error {
	f.calls++
	f.ranked = ranked
	f.summary = summary
	return nil
}

type fakeExporter struct {
	calls  int
	ranked []model.ScoredProblem
}

func (f *fakeExporter) Export(ranked []model.ScoredProblem) error {
	f.calls++
	f.ranked = ranked
	return nil
}

type fakeNotifier struct {
	calls int
	last  model.Notification
	err   error
}

func (f *fakeNotifier) Send(_ context.Context, n model.Notification) error {
	f.calls++
	f.last = n
	return f.err
}

type dailySource struct {
	fakeSource
	daily    *model.DailyChallenge
	dailyErr error
}

func (d *dailySource) DailyChallenge(ctx context.Context) (*model.DailyChallenge, error) {
	if d.dailyErr != nil {
		return nil, d.dailyErr
	}
	return d.daily, nil
}

func newReport(source *dailySource, reporter *fakeReporter, exporter *fakeExporter, notifier *fakeNotifier) *DifficultyReport {
	store := &fakeStore{}
	fetcher := NewFetcher(source, store, nopLogger{}, FetcherConfig{MaxAge: 24 * time.Hour, Concurrency: 2})
	cfg := DifficultyReportConfig{
		BaseScores: scoring.DefaultBaseScores(),
		Weights:    scoring.DefaultWeights(),
		TopN:       2,
	}
	if notifier == nil {
		return NewDifficultyReport(fetcher, source, reporter, exporter, nil, nil, nopLogger{}, cfg)
	}
	return NewDifficultyReport(fetcher, source, reporter, exporter, nil, notifier, nopLogger{}, cfg)
}

func TestRun_RendersAndExportsRankedCorpus(t *testing.T) {
	source := &dailySource{fakeSource: fakeSource{records: corpus()}, dailyErr: errors.New("down")}
	reporter := &fakeReporter{}
	exporter := &fakeExporter{}

	if err := newReport(source, reporter, exporter, nil).Run(context.Background(), false); err != nil {
		t.Fatalf("run: %v", err)
	}

	if reporter.calls != 1 || exporter.calls != 1 {
		t.Fatalf("reporter calls = %d, exporter calls = %d", reporter.calls, exporter.calls)
	}
	if len(exporter.ranked) != 3 {
		t.Errorf("exported %d records, want 3", len(exporter.ranked))
	}
	for i := 1; i < len(exporter.ranked); i++ {
		if exporter.ranked[i-1].Score < exporter.ranked[i].Score {
			t.Errorf("export not in ranked order at %d", i)
		}
	}
	if reporter.summary.TotalRanked != 3 {
		t.Errorf("summary total = %d, want 3", reporter.summary.TotalRanked)
	}
	// Daily challenge failure leaves the spotlight empty but the run intact.
	if reporter.summary.Spotlight != nil {
		t.Errorf("expected nil spotlight, got %+v", reporter.summary.Spotlight)
	}
}

func TestRun_SpotlightLocatesDailyChallengeInRanking(t *testing.T) {
	source := &dailySource{
		fakeSource: fakeSource{records: corpus()},
		daily: &model.DailyChallenge{
			Problem: model.Problem{ID: 2, Title: "Add Two Numbers", Slug: "add-two-numbers",
				Difficulty: model.DifficultyMedium},
			Topics: []string{"Linked List"},
		},
	}
	reporter := &fakeReporter{}

	if err := newReport(source, reporter, &fakeExporter{}, nil).Run(context.Background(), false); err != nil {
		t.Fatalf("run: %v", err)
	}

	spot := reporter.summary.Spotlight
	if spot == nil {
		t.Fatal("spotlight missing")
	}
	if spot.Rank < 1 || spot.Rank > 3 {
		t.Errorf("spotlight rank = %d", spot.Rank)
	}
	if spot.Daily.Slug != "add-two-numbers" {
		t.Errorf("spotlight slug = %s", spot.Daily.Slug)
	}
}

func TestRun_NotifierReceivesTopProblems(t *testing.T) {
	source := &dailySource{fakeSource: fakeSource{records: corpus()}, dailyErr: errors.New("down")}
	notifier := &fakeNotifier{}

	if err := newReport(source, &fakeReporter{}, &fakeExporter{}, notifier).Run(context.Background(), false); err != nil {
		t.Fatalf("run: %v", err)
	}

	if notifier.calls != 1 {
		t.Fatalf("notifier calls = %d, want 1", notifier.calls)
	}
	if notifier.last.Title == "" || len(notifier.last.Fields) == 0 {
		t.Errorf("notification incomplete: %+v", notifier.last)
	}
}

func TestRun_NotifierFailureIsNotFatal(t *testing.T) {
	source := &dailySource{fakeSource: fakeSource{records: corpus()}, dailyErr: errors.New("down")}
	notifier := &fakeNotifier{err: errors.New("webhook gone")}

	if err := newReport(source, &fakeReporter{}, &fakeExporter{}, notifier).Run(context.Background(), false); err != nil {
		t.Fatalf("run should survive notifier failure: %v", err)
	}
}

func TestRun_FetchErrorIsFatal(t *testing.T) {
	source := &dailySource{fakeSource: fakeSource{listErr: errors.New("network down")}}

	err := newReport(source, &fakeReporter{}, &fakeExporter{}, nil).Run(context.Background(), false)
	if err == nil {
		t.Fatal("expected error")
	}
	var fetchErr *model.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error type = %T, want *model.FetchError", err)
	}
}

func TestRun_EmptyCorpusFails(t *testing.T) {
	source := &dailySource{fakeSource: fakeSource{records: nil}}

	if err := newReport(source, &fakeReporter{}, &fakeExporter{}, nil).Run(context.Background(), false); err == nil {
		t.Fatal("expected error for empty corpus")
	}
}
