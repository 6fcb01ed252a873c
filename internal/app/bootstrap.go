package app

import (
	"context"

	"go.uber.org/zap"

	"audio-transcriber/internal/app/logging"
	"audio-transcriber/internal/config"
)

// Bootstrap loads configuration, builds the logger and wires the application.
// A missing credential fails here, before any client is created.
func Bootstrap(ctx context.Context, verbose bool) (*Application, error) {
	settings, credential, err := config.InitializeConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewLogger(verbose || !settings.IsProduction())
	if err != nil {
		return nil, err
	}

	application, err := InitializeApplication(ctx, settings, credential, logger)
	if err != nil {
		logger.Error("Startup failed", zap.Error(err))
		_ = logger.Sync()
		return nil, err
	}
	return application, nil
}

// Close flushes buffered log entries
func (a *Application) Close() {
	if a != nil && a.Logger != nil {
		_ = a.Logger.Sync()
	}
}

// ServiceName is the human-readable name of the configured provider
func (a *Application) ServiceName() string {
	return a.ProviderInfo.DisplayName
}
