package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"leetrank/internal/domain/ports"
	"leetrank/internal/usecase"
)

// App manages the lifecycle of the ranking pipeline: a single run by
// default, or repeated runs on a cron schedule in watch mode.
type App struct {
	cron     *cron.Cron
	report   *usecase.DifficultyReport
	logger   ports.Logger
	schedule string
}

// Options control one invocation of the App.
type Options struct {
	// ForceRefresh bypasses the cache freshness check.
	ForceRefresh bool
	// Watch keeps the process alive and reruns on the cron schedule.
	Watch bool
}

// New constructs an App instance.
func New(report *usecase.DifficultyReport, logger ports.Logger, schedule string) *App {
	return &App{
		cron:     cron.New(),
		report:   report,
		logger:   logger,
		schedule: schedule,
	}
}

// Run executes the pipeline once; in watch mode it then reruns on the
// schedule until the context is cancelled. Scheduled runs always
// refresh, that is what the schedule is for.
func (a *App) Run(ctx context.Context, opts Options) error {
	err := a.report.Run(ctx, opts.ForceRefresh)
	if !opts.Watch {
		return err
	}
	if err != nil {
		a.logger.Error(ctx, "initial run failed", "error", err)
	}

	if err := a.scheduleJob(); err != nil {
		return err
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
		defer cancel()
		if err := a.report.Run(ctx, true); err != nil {
			a.logger.Error(ctx, "scheduled run failed", "error", err)
		}
	})
	return err
}
