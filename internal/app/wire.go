//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"audio-transcriber/internal/app/transcription"
	"audio-transcriber/internal/config"
)

// InitializeApplication wires settings, credential and logger into a ready service
func InitializeApplication(ctx context.Context, settings *config.Settings, credential *config.Credential, logger *zap.Logger) (*Application, error) {
	wire.Build(
		provideTranscriptionProvider,
		provideRegistry,
		provideMetrics,
		provideServiceOptions,
		transcription.NewService,
		provideApplication,
	)
	return nil, nil
}
