package whisper

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"audio-transcriber/internal/app/api/provider"
)

const providerName = "openai"

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client *openai.Client
	model  string
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client, model string) *RemoteTranscriber {
	if model == "" {
		model = openai.Whisper1
	}
	return &RemoteTranscriber{client: client, model: model}
}

// TranscriptWithOptions uses the OpenAI API for remote transcription.
// Whisper takes no instruction, so request.Prompt is not forwarded.
func (rt *RemoteTranscriber) TranscriptWithOptions(ctx context.Context, request *provider.TranscriptionRequest) (*provider.TranscriptionResponse, error) {
	startTime := time.Now()

	if request == nil || request.InputFilePath == "" {
		return nil, &provider.TranscriptionError{
			Code:     provider.CodeInvalidInput,
			Message:  "input file path is required",
			Provider: providerName,
		}
	}

	model := rt.model
	if request.Model != "" {
		model = request.Model
	}

	resp, err := rt.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    model,
		FilePath: request.InputFilePath,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return nil, classifyError(err)
	}

	if strings.TrimSpace(resp.Text) == "" {
		return nil, &provider.TranscriptionError{
			Code:     provider.CodeEmptyResponse,
			Message:  "model returned no transcript text",
			Provider: providerName,
		}
	}

	return &provider.TranscriptionResponse{
		Text:           resp.Text,
		ModelUsed:      model,
		ProcessingTime: time.Since(startTime),
	}, nil
}

// GetProviderInfo returns information about the OpenAI provider
func (rt *RemoteTranscriber) GetProviderInfo() provider.ProviderInfo {
	return provider.ProviderInfo{
		Name:             providerName,
		DisplayName:      "OpenAI Whisper",
		Type:             provider.ProviderTypeRemote,
		SupportedFormats: []provider.AudioFormat{provider.FormatWAV},
		MaxFileSizeMB:    25,
		RequiresInternet: true,
		RequiresAPIKey:   true,
		DefaultModel:     rt.model,
	}
}

func classifyError(err error) error {
	code := provider.CodeNetworkError

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		code = provider.CodeTimeout
	case errors.As(err, &apiErr), errors.As(err, &reqErr):
		code = provider.CodeAPIError
	}

	return &provider.TranscriptionError{
		Code:     code,
		Message:  "createTranscription failed",
		Provider: providerName,
		Cause:    err,
	}
}
