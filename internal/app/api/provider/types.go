package provider

import (
	"errors"
	"fmt"
	"time"
)

// AudioFormat defines supported audio formats
type AudioFormat string

const (
	FormatWAV AudioFormat = "wav"
)

// ProviderType defines the type of transcription provider
type ProviderType string

const (
	ProviderTypeLocal  ProviderType = "local"
	ProviderTypeRemote ProviderType = "remote"
)

// TranscriptionRequest represents a single transcription request
type TranscriptionRequest struct {
	InputFilePath string `json:"input_file_path"`
	MIMEType      string `json:"mime_type,omitempty"`

	// Model overrides the provider's default model when set
	Model string `json:"model,omitempty"`

	// Prompt is the instruction for generative providers, DefaultPrompt when empty
	Prompt string `json:"prompt,omitempty"`
}

// PromptOrDefault returns the request prompt, falling back to DefaultPrompt
func (r *TranscriptionRequest) PromptOrDefault() string {
	if r.Prompt == "" {
		return DefaultPrompt
	}
	return r.Prompt
}

// TranscriptionResponse represents the response from a transcription provider
type TranscriptionResponse struct {
	Text string `json:"text"`

	ProviderMetadata map[string]interface{} `json:"provider_metadata,omitempty"`

	ProcessingTime time.Duration `json:"processing_time,omitempty"`
	ModelUsed      string        `json:"model_used,omitempty"`
}

// ProviderInfo contains metadata about a transcription provider
type ProviderInfo struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"display_name"`
	Type        ProviderType `json:"type"`

	SupportedFormats []AudioFormat `json:"supported_formats"`
	MaxFileSizeMB    int           `json:"max_file_size_mb,omitempty"` // 0 means no limit

	RequiresInternet bool `json:"requires_internet"`
	RequiresAPIKey   bool `json:"requires_api_key"`

	DefaultModel string `json:"default_model,omitempty"`
}

// Error codes reported by providers
const (
	CodeInvalidInput   = "invalid_input"
	CodeUploadFailed   = "upload_failed"
	CodeGenerateFailed = "generate_failed"
	CodeEmptyResponse  = "empty_response"
	CodeNetworkError   = "network_error"
	CodeAPIError       = "api_error"
	CodeTimeout        = "timeout"
)

// TranscriptionError represents provider-specific errors
type TranscriptionError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Provider string `json:"provider"`
	Cause    error  `json:"-"`
}

func (e *TranscriptionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TranscriptionError) Unwrap() error {
	return e.Cause
}

// ErrorCode extracts the TranscriptionError code from err, or "unknown"
func ErrorCode(err error) string {
	var te *TranscriptionError
	if errors.As(err, &te) && te.Code != "" {
		return te.Code
	}
	return "unknown"
}
