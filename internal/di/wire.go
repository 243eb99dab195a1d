//go:build wireinject

package di

import (
	"github.com/google/wire"

	"leetrank/internal/adapter/logging"
	"leetrank/internal/app"
	"leetrank/internal/config"
	"leetrank/internal/domain/ports"
	"leetrank/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp(configPath string) (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideProblemSource,
		provideSnapshotStore,
		provideFetcher,
		provideReporter,
		provideExporter,
		provideInsightWriter,
		provideNotifier,
		provideReportConfig,
		usecase.NewDifficultyReport,
		app.New,
		provideSchedule,
	)
	return nil, nil
}
