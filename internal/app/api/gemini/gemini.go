package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"audio-transcriber/internal/app/api/provider"
)

const (
	providerName = "gemini"

	// DefaultModel matches the model the hosted page has always used
	DefaultModel = "gemini-1.5-flash"

	remoteCleanupTimeout = 15 * time.Second
)

// fileService is the part of genai.Files the provider needs
type fileService interface {
	UploadFromPath(ctx context.Context, path string, config *genai.UploadFileConfig) (*genai.File, error)
	Delete(ctx context.Context, name string, config *genai.DeleteFileConfig) (*genai.DeleteFileResponse, error)
}

// modelService is the part of genai.Models the provider needs
type modelService interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Provider transcribes audio with the Gemini API: upload the file, then ask the
// model to transcribe it.
type Provider struct {
	files  fileService
	models modelService
	model  string
	logger *zap.Logger
}

// NewClient creates a Gemini API client for apiKey. baseURL overrides the
// service endpoint when non-empty.
func NewClient(ctx context.Context, apiKey, baseURL string) (*genai.Client, error) {
	config := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		config.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}

// NewProvider creates a provider backed by client
func NewProvider(client *genai.Client, model string, logger *zap.Logger) *Provider {
	return newProvider(client.Files, client.Models, model, logger)
}

func newProvider(files fileService, models modelService, model string, logger *zap.Logger) *Provider {
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		files:  files,
		models: models,
		model:  model,
		logger: logger.With(zap.String("provider", providerName)),
	}
}

// TranscriptWithOptions uploads the staged file and generates its transcript
func (p *Provider) TranscriptWithOptions(ctx context.Context, request *provider.TranscriptionRequest) (*provider.TranscriptionResponse, error) {
	startTime := time.Now()

	if request == nil || request.InputFilePath == "" {
		return nil, &provider.TranscriptionError{
			Code:     provider.CodeInvalidInput,
			Message:  "input file path is required",
			Provider: providerName,
		}
	}

	model := p.model
	if request.Model != "" {
		model = request.Model
	}

	file, err := p.files.UploadFromPath(ctx, request.InputFilePath, &genai.UploadFileConfig{
		MIMEType: request.MIMEType,
	})
	if err != nil {
		return nil, p.wrapError(ctx, provider.CodeUploadFailed, "failed to upload audio", err)
	}
	defer p.deleteRemote(ctx, file.Name)

	p.logger.Debug("Uploaded audio",
		zap.String("file", file.Name),
		zap.String("mime_type", file.MIMEType),
	)

	mimeType := file.MIMEType
	if mimeType == "" {
		mimeType = request.MIMEType
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromURI(file.URI, mimeType),
			genai.NewPartFromText(request.PromptOrDefault()),
		}, genai.RoleUser),
	}

	resp, err := p.models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return nil, p.wrapError(ctx, provider.CodeGenerateFailed, "failed to generate transcript", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return nil, &provider.TranscriptionError{
			Code:     provider.CodeEmptyResponse,
			Message:  "model returned no transcript text",
			Provider: providerName,
		}
	}

	return &provider.TranscriptionResponse{
		Text:           text,
		ModelUsed:      model,
		ProcessingTime: time.Since(startTime),
		ProviderMetadata: map[string]interface{}{
			"file_name": file.Name,
		},
	}, nil
}

// GetProviderInfo returns information about the Gemini provider
func (p *Provider) GetProviderInfo() provider.ProviderInfo {
	return provider.ProviderInfo{
		Name:             providerName,
		DisplayName:      "Google Gemini",
		Type:             provider.ProviderTypeRemote,
		SupportedFormats: []provider.AudioFormat{provider.FormatWAV},
		RequiresInternet: true,
		RequiresAPIKey:   true,
		DefaultModel:     p.model,
	}
}

// deleteRemote removes the uploaded file from the service. The service would
// expire it on its own, so failures are only logged.
func (p *Provider) deleteRemote(ctx context.Context, name string) {
	if name == "" {
		return
	}

	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), remoteCleanupTimeout)
	defer cancel()

	if _, err := p.files.Delete(cleanupCtx, name, nil); err != nil {
		p.logger.Warn("Failed to delete uploaded audio", zap.String("file", name), zap.Error(err))
	}
}

func (p *Provider) wrapError(ctx context.Context, code, message string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		code = provider.CodeTimeout
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		p.logger.Warn("Gemini API error",
			zap.String("code", code),
			zap.Int("status", apiErr.Code),
			zap.String("status_text", apiErr.Status),
		)
	}

	return &provider.TranscriptionError{
		Code:     code,
		Message:  message,
		Provider: providerName,
		Cause:    err,
	}
}
