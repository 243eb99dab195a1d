package di

import (
	"log/slog"
	"os"

	"leetrank/internal/adapter/cache"
	"leetrank/internal/adapter/discord"
	"leetrank/internal/adapter/leetcode"
	"leetrank/internal/adapter/report"
	"leetrank/internal/adapter/writing"
	"leetrank/internal/config"
	"leetrank/internal/domain/ports"
	"leetrank/internal/usecase"
)

func provideSlogLogger() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

func provideProblemSource(cfg *config.Config, logger ports.Logger) ports.ProblemSource {
	return leetcode.New(cfg.Timeout(), logger)
}

func provideSnapshotStore(cfg *config.Config, logger ports.Logger) ports.SnapshotStore {
	return cache.NewFileStore(cfg.CachePath, logger)
}

func provideFetcher(source ports.ProblemSource, store ports.SnapshotStore, logger ports.Logger, cfg *config.Config) *usecase.Fetcher {
	return usecase.NewFetcher(source, store, logger, usecase.FetcherConfig{
		MaxAge:      cfg.MaxAge(),
		Concurrency: cfg.FetchConcurrency,
	})
}

func provideReporter(cfg *config.Config) ports.Reporter {
	return report.NewConsole(os.Stdout, cfg.TopN)
}

func provideExporter(cfg *config.Config) ports.Exporter {
	return report.NewCSVFile(cfg.OutputCSV)
}

func provideInsightWriter(cfg *config.Config, logger ports.Logger) ports.InsightWriter {
	if cfg.GeminiAPIKey == "" {
		return nil
	}
	return writing.NewGeminiWriter(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.Timeout(), logger)
}

func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	if cfg.DiscordWebhookURL == "" {
		return nil
	}
	return discord.NewWebhook(cfg.DiscordWebhookURL, cfg.Timeout(), logger)
}

func provideReportConfig(cfg *config.Config) usecase.DifficultyReportConfig {
	return usecase.DifficultyReportConfig{
		BaseScores: cfg.BaseScores,
		Weights:    cfg.Weights,
		TopN:       cfg.TopN,
	}
}

func provideSchedule(cfg *config.Config) string {
	return cfg.ScheduleCron
}
