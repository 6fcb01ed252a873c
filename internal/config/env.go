package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "audio-transcriber/internal/app/errors"
)

// CredentialSource tells where an API key was found
type CredentialSource string

const (
	SourceEnv     CredentialSource = "env"
	SourceSecrets CredentialSource = "secrets"
)

// DefaultSecretsFile is the local secret store consulted when the environment has no key
const DefaultSecretsFile = ".secrets/secrets.yaml"

// Credential holds the API key for the external transcription service.
// The value is never printed: String and GoString only report where it came from.
type Credential struct {
	Name   string
	Source CredentialSource
	value  string
}

// NewCredential builds a credential from an already known key (tests, CLI overrides)
func NewCredential(name, value string, source CredentialSource) *Credential {
	return &Credential{Name: name, Source: source, value: value}
}

// Value returns the raw API key
func (c *Credential) Value() string {
	return c.value
}

func (c *Credential) String() string {
	return fmt.Sprintf("%s (from %s)", c.Name, c.Source)
}

func (c *Credential) GoString() string {
	return c.String()
}

// LoadEnv loads environment variables from the first .env file found.
// It returns the path that was loaded, or "" when none exists.
func LoadEnv() (string, error) {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
	}

	// Variables may also be set system-wide, so a missing file is fine
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}

	return "", nil
}

// CredentialNames returns the variable names checked for a provider, in priority order
func CredentialNames(provider string) []string {
	switch provider {
	case ProviderOpenAI:
		return []string{"OPENAI_API_KEY"}
	default:
		return []string{"GOOGLE_API_KEY", "GEMINI_API_KEY"}
	}
}

// LoadSecrets reads the local secret store, a flat YAML mapping of key names to values
func LoadSecrets(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	secrets := make(map[string]string)
	if err := yaml.Unmarshal(data, &secrets); err != nil {
		return nil, fmt.Errorf("failed to parse secrets file %s: %w", path, err)
	}
	return secrets, nil
}

// ResolveCredential finds the API key for provider, checking the environment first
// and the secret store at secretsPath second. It fails when neither has a value.
func ResolveCredential(provider, secretsPath string) (*Credential, error) {
	names := CredentialNames(provider)

	for _, name := range names {
		if value := strings.TrimSpace(os.Getenv(name)); value != "" {
			return NewCredential(name, value, SourceEnv), nil
		}
	}

	if secretsPath == "" {
		secretsPath = DefaultSecretsFile
	}

	secrets, err := LoadSecrets(secretsPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	for _, name := range names {
		if value := strings.TrimSpace(secrets[name]); value != "" {
			return NewCredential(name, value, SourceSecrets), nil
		}
	}

	return nil, apperrors.Wrap(apperrors.ErrMissingAPIKey, missingKeyMessage(provider, names[0], secretsPath))
}

func missingKeyMessage(provider, name, secretsPath string) string {
	service := "Google"
	if provider == ProviderOpenAI {
		service = "OpenAI"
	}
	return fmt.Sprintf("%s API Key not found. Please set it in %s or as an environment variable %s",
		service, secretsPath, name)
}

// InitializeConfig loads the environment, settings and credential.
// This is the main entry point for configuration loading.
func InitializeConfig() (*Settings, *Credential, error) {
	if _, err := LoadEnv(); err != nil {
		return nil, nil, fmt.Errorf("failed to load environment: %w", err)
	}

	settings, err := LoadSettings()
	if err != nil {
		return nil, nil, err
	}

	credential, err := ResolveCredential(settings.Provider, settings.SecretsFile)
	if err != nil {
		return settings, nil, err
	}

	return settings, credential, nil
}
