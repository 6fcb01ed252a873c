package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"audio-transcriber/internal/app/api/gemini"
	"audio-transcriber/internal/app/api/openai"
	"audio-transcriber/internal/app/api/openai/whisper"
	"audio-transcriber/internal/app/api/provider"
	"audio-transcriber/internal/app/transcription"
	"audio-transcriber/internal/config"
)

// Application bundles the wired components shared by the server and the CLI
type Application struct {
	Settings     *config.Settings
	Service      *transcription.Service
	ProviderInfo provider.ProviderInfo
	Registry     *prometheus.Registry
	Logger       *zap.Logger
}

// provideTranscriptionProvider builds the configured backend. The credential is
// only read here and handed straight to the SDK client.
func provideTranscriptionProvider(ctx context.Context, settings *config.Settings, credential *config.Credential, logger *zap.Logger) (provider.TranscriptionProvider, error) {
	if credential == nil || credential.Value() == "" {
		return nil, fmt.Errorf("failed to initialize %s provider: no credential", settings.Provider)
	}

	switch settings.Provider {
	case config.ProviderOpenAI:
		client := openai.NewClient(credential.Value(), settings.BaseURL)
		return whisper.NewRemoteTranscriber(client, settings.Model), nil
	case config.ProviderGemini:
		client, err := gemini.NewClient(ctx, credential.Value(), settings.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize %s provider: %w", settings.Provider, err)
		}
		return gemini.NewProvider(client, settings.Model, logger), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", settings.Provider)
	}
}

func provideRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

func provideMetrics(registry *prometheus.Registry) provider.ProviderMetrics {
	return provider.NewPrometheusMetrics(registry)
}

func provideServiceOptions(settings *config.Settings) transcription.Options {
	return transcription.Options{
		MaxUploadBytes: settings.MaxUploadBytes(),
		Timeout:        settings.RequestTimeout,
		Model:          settings.Model,
	}
}

func provideApplication(settings *config.Settings, credential *config.Credential, service *transcription.Service, p provider.TranscriptionProvider, registry *prometheus.Registry, logger *zap.Logger) *Application {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("Transcription service ready",
		zap.String("provider", settings.Provider),
		zap.String("model", settings.Model),
		zap.Stringer("credential", credential),
	)

	return &Application{
		Settings:     settings,
		Service:      service,
		ProviderInfo: p.GetProviderInfo(),
		Registry:     registry,
		Logger:       logger,
	}
}
