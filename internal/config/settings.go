package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	DefaultGeminiModel = "gemini-1.5-flash"
	DefaultOpenAIModel = "whisper-1"
)

// SupportedProviders lists the transcription backends that can be selected
var SupportedProviders = []string{ProviderGemini, ProviderOpenAI}

// Settings holds process-wide configuration resolved once at startup
type Settings struct {
	Host        string
	Port        string
	Environment string

	Provider    string
	Model       string
	BaseURL     string
	SecretsFile string

	MaxUploadMB    int
	RequestTimeout time.Duration
	ReadTimeout    time.Duration
	IdleTimeout    time.Duration
}

// LoadSettings reads settings from the environment, applying defaults
func LoadSettings() (*Settings, error) {
	provider := strings.ToLower(getEnvOrDefault("TRANSCRIBER_PROVIDER", ProviderGemini))

	defaultModel := DefaultGeminiModel
	if provider == ProviderOpenAI {
		defaultModel = DefaultOpenAIModel
	}

	maxUploadMB, err := getEnvInt("TRANSCRIBER_MAX_UPLOAD_MB", 200)
	if err != nil {
		return nil, err
	}
	timeoutSec, err := getEnvInt("TRANSCRIBER_TIMEOUT_SEC", 300)
	if err != nil {
		return nil, err
	}

	settings := &Settings{
		Host:           getEnvOrDefault("TRANSCRIBER_HOST", "0.0.0.0"),
		Port:           getEnvOrDefault("TRANSCRIBER_PORT", "8501"),
		Environment:    getEnvOrDefault("TRANSCRIBER_ENV", "development"),
		Provider:       provider,
		Model:          getEnvOrDefault("TRANSCRIBER_MODEL", defaultModel),
		BaseURL:        os.Getenv("TRANSCRIBER_BASE_URL"),
		SecretsFile:    getEnvOrDefault("TRANSCRIBER_SECRETS_FILE", DefaultSecretsFile),
		MaxUploadMB:    maxUploadMB,
		RequestTimeout: time.Duration(timeoutSec) * time.Second,
		ReadTimeout:    60 * time.Second,
		IdleTimeout:    120 * time.Second,
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return settings, nil
}

// Validate checks the settings for consistency
func (s *Settings) Validate() error {
	if !lo.Contains(SupportedProviders, s.Provider) {
		return fmt.Errorf("unknown provider %q (supported: %s)", s.Provider, strings.Join(SupportedProviders, ", "))
	}
	if s.Model == "" {
		return fmt.Errorf("model name is required")
	}
	if err := ValidatePort(s.Port, "server"); err != nil {
		return err
	}
	if err := ValidateTimeout(s.RequestTimeout, "transcription"); err != nil {
		return err
	}
	if err := ValidateUploadLimit(s.MaxUploadMB); err != nil {
		return err
	}
	if s.BaseURL != "" {
		if err := ValidateURL(s.BaseURL, "service base"); err != nil {
			return err
		}
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (s *Settings) IsProduction() bool {
	return s.Environment == "production"
}

// Addr returns the listen address
func (s *Settings) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// MaxUploadBytes returns the upload limit in bytes
func (s *Settings) MaxUploadBytes() int64 {
	return int64(s.MaxUploadMB) << 20
}

// WriteTimeout leaves room for the external call to finish before the response is cut off
func (s *Settings) WriteTimeout() time.Duration {
	return s.RequestTimeout + 30*time.Second
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return value, nil
}
