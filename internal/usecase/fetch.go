package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"leetrank/internal/domain/model"
	"leetrank/internal/domain/ports"
)

// Fetcher retrieves the full problem corpus, consulting the snapshot
// store before going to the network and falling back to a stale
// snapshot when the network is down.
type Fetcher struct {
	source      ports.ProblemSource
	store       ports.SnapshotStore
	logger      ports.Logger
	maxAge      time.Duration
	concurrency int
	now         func() time.Time
}

// FetchOutcome describes how the records were obtained.
type FetchOutcome struct {
	// FromCache is true when no live retrieval happened.
	FromCache bool
	// Stale is true when the returned snapshot was older than the
	// configured max age (only possible on network fallback).
	Stale bool
	// Dropped counts entries lost to validation or failed stats calls.
	Dropped int
	// FetchedAt is when the returned records were originally fetched.
	FetchedAt time.Time
}

// FetcherConfig controls cache and fetch behaviour.
type FetcherConfig struct {
	MaxAge      time.Duration
	Concurrency int
}

// NewFetcher constructs a Fetcher.
func NewFetcher(source ports.ProblemSource, store ports.SnapshotStore, logger ports.Logger, cfg FetcherConfig) *Fetcher {
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &Fetcher{
		source:      source,
		store:       store,
		logger:      logger,
		maxAge:      cfg.MaxAge,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// FetchAll returns the problem corpus. With forceRefresh false and a
// fresh snapshot on disk, the cached records are returned verbatim and
// no network call is made. A live fetch writes through to the store.
// If the live fetch fails entirely, any snapshot (even stale) is used
// instead; with no snapshot at all the error is a *model.FetchError.
func (f *Fetcher) FetchAll(ctx context.Context, forceRefresh bool) ([]model.Problem, FetchOutcome, error) {
	if !forceRefresh {
		snap, err := f.store.Load()
		if err != nil {
			f.logger.Warn(ctx, "snapshot load failed, fetching live", "error", err)
			snap = nil
		}
		if snap.Fresh(f.maxAge, f.now()) {
			f.logger.Info(ctx, "using cached snapshot", "fetched_at", snap.FetchedAt, "records", len(snap.Records))
			return snap.Records, FetchOutcome{FromCache: true, FetchedAt: snap.FetchedAt}, nil
		}
	}

	records, outcome, liveErr := f.fetchLive(ctx)
	if liveErr == nil {
		return records, outcome, nil
	}

	f.logger.Error(ctx, "live fetch failed", "error", liveErr)
	snap, err := f.store.Load()
	if err == nil && snap != nil {
		now := f.now()
		stale := !snap.Fresh(f.maxAge, now)
		f.logger.Warn(ctx, "falling back to cached snapshot", "fetched_at", snap.FetchedAt, "stale", stale)
		return snap.Records, FetchOutcome{FromCache: true, Stale: stale, FetchedAt: snap.FetchedAt}, nil
	}

	return nil, FetchOutcome{}, &model.FetchError{Err: liveErr}
}

func (f *Fetcher) fetchLive(ctx context.Context) ([]model.Problem, FetchOutcome, error) {
	records, dropped, err := f.source.ListProblems(ctx)
	if err != nil {
		return nil, FetchOutcome{}, err
	}
	f.logger.Info(ctx, "fetched problem list", "records", len(records), "invalid", dropped)

	kept := make([]bool, len(records))
	var statFailures atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)
	for i := range records {
		i := i
		g.Go(func() error {
			stats, err := f.source.ProblemStats(gctx, records[i].Slug)
			if err != nil {
				// One lost record beats a crashed run.
				statFailures.Add(1)
				f.logger.Warn(gctx, "skipping problem after stats failure", "slug", records[i].Slug, "error", err)
				return nil
			}
			records[i].AcceptanceRate = stats.AcceptanceRate
			records[i].TotalAccepted = stats.TotalAccepted
			records[i].TotalSubmissions = stats.TotalSubmissions
			kept[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, FetchOutcome{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, FetchOutcome{}, err
	}

	result := records[:0]
	for i, keep := range kept {
		if keep {
			result = append(result, records[i])
		}
	}
	dropped += int(statFailures.Load())

	fetchedAt := f.now()
	if err := f.store.Save(result, fetchedAt); err != nil {
		f.logger.Warn(ctx, "failed to persist snapshot", "error", err)
	}

	return result, FetchOutcome{Dropped: dropped, FetchedAt: fetchedAt}, nil
}
