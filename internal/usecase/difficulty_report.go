package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"leetrank/internal/domain/model"
	"leetrank/internal/domain/ports"
	"leetrank/internal/scoring"
)

// DifficultyReport orchestrates one full run: fetch the corpus, score
// and rank it, then render the console report, the CSV export, and any
// optional extras (daily challenge spotlight, study note, webhook).
type DifficultyReport struct {
	fetcher  *Fetcher
	source   ports.ProblemSource
	reporter ports.Reporter
	exporter ports.Exporter
	writer   ports.InsightWriter
	notifier ports.Notifier
	logger   ports.Logger

	base    scoring.BaseScores
	weights scoring.Weights
	topN    int
}

// DifficultyReportConfig controls scoring and presentation.
type DifficultyReportConfig struct {
	BaseScores scoring.BaseScores
	Weights    scoring.Weights
	TopN       int
}

// NewDifficultyReport constructs the report use case. The writer and
// notifier may be nil; those steps are skipped.
func NewDifficultyReport(
	fetcher *Fetcher,
	source ports.ProblemSource,
	reporter ports.Reporter,
	exporter ports.Exporter,
	writer ports.InsightWriter,
	notifier ports.Notifier,
	logger ports.Logger,
	cfg DifficultyReportConfig,
) *DifficultyReport {
	return &DifficultyReport{
		fetcher:  fetcher,
		source:   source,
		reporter: reporter,
		exporter: exporter,
		writer:   writer,
		notifier: notifier,
		logger:   logger,
		base:     cfg.BaseScores,
		weights:  cfg.Weights,
		topN:     cfg.TopN,
	}
}

// Run executes the pipeline once. Only a fetch with no usable cache
// fails the run; everything downstream degrades gracefully.
func (d *DifficultyReport) Run(ctx context.Context, forceRefresh bool) error {
	start := time.Now()
	d.logger.Info(ctx, "starting difficulty ranking run", "force_refresh", forceRefresh)

	records, outcome, err := d.fetcher.FetchAll(ctx, forceRefresh)
	if err != nil {
		return err
	}

	ranked := scoring.Rank(records, d.base, d.weights)
	if len(ranked) == 0 {
		return fmt.Errorf("no problems to rank")
	}

	summary := model.RunSummary{
		TotalRanked: len(ranked),
		Dropped:     outcome.Dropped,
		FromCache:   outcome.FromCache,
		Stale:       outcome.Stale,
		FetchedAt:   outcome.FetchedAt,
		Spotlight:   d.fetchSpotlight(ctx, ranked),
		Insight:     d.composeInsight(ctx, ranked),
	}

	if err := d.reporter.ReportTop(ctx, ranked, summary); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if err := d.exporter.Export(ranked); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}

	d.notify(ctx, ranked, summary)

	d.logger.Info(ctx, "run completed",
		"ranked", len(ranked), "dropped", outcome.Dropped,
		"from_cache", outcome.FromCache, "stale", outcome.Stale,
		"duration", time.Since(start))
	return nil
}

func (d *DifficultyReport) fetchSpotlight(ctx context.Context, ranked []model.ScoredProblem) *model.Spotlight {
	daily, err := d.source.DailyChallenge(ctx)
	if err != nil {
		d.logger.Warn(ctx, "daily challenge unavailable", "error", err)
		return nil
	}

	spotlight := &model.Spotlight{Daily: *daily}
	for i, p := range ranked {
		if p.Slug == daily.Slug {
			spotlight.Rank = i + 1
			spotlight.Score = p.Score
			break
		}
	}
	return spotlight
}

func (d *DifficultyReport) composeInsight(ctx context.Context, ranked []model.ScoredProblem) string {
	if d.writer == nil {
		return ""
	}

	insight, err := d.writer.Compose(ctx, topSlice(ranked, d.topN))
	if err != nil {
		d.logger.Warn(ctx, "study note unavailable", "error", err)
		return ""
	}
	return insight
}

func (d *DifficultyReport) notify(ctx context.Context, ranked []model.ScoredProblem, summary model.RunSummary) {
	if d.notifier == nil {
		return
	}

	if err := d.notifier.Send(ctx, buildNotification(topSlice(ranked, d.topN), summary)); err != nil {
		d.logger.Warn(ctx, "digest notification failed", "error", err)
	}
}

func buildNotification(top []model.ScoredProblem, summary model.RunSummary) model.Notification {
	lines := make([]string, 0, len(top))
	for i, p := range top {
		lines = append(lines, fmt.Sprintf("**%d. [%s](%s)**\n   %s · %.1f%% accepted · score %.0f",
			i+1, p.Title, p.Link, p.Difficulty, p.AcceptanceRate*100, p.Score))
	}

	description := fmt.Sprintf("Hardest problems by calculated difficulty across %d ranked problems.", summary.TotalRanked)
	if summary.Stale {
		description += " Based on a stale cache; the live fetch failed."
	}

	fields := []model.NotificationField{{
		Name:  "Hardest right now",
		Value: strings.Join(lines, "\n\n"),
	}}
	if summary.Insight != "" {
		fields = append(fields, model.NotificationField{
			Name:  "Study note",
			Value: summary.Insight,
		})
	}

	return model.Notification{
		Title:       "LeetCode Difficulty Ranking",
		Description: description,
		Fields:      fields,
	}
}

func topSlice(ranked []model.ScoredProblem, n int) []model.ScoredProblem {
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
