package testutil

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"audio-transcriber/internal/app/api/provider"
)

// MockProvider is a testify mock of provider.TranscriptionProvider
type MockProvider struct {
	mock.Mock
	Name string
}

// NewMockProvider creates a MockProvider reporting itself as "mock"
func NewMockProvider() *MockProvider {
	return &MockProvider{Name: "mock"}
}

// WithText makes every call succeed with text
func (m *MockProvider) WithText(text string) *MockProvider {
	m.On("TranscriptWithOptions", mock.Anything, mock.Anything).
		Return(&provider.TranscriptionResponse{Text: text, ModelUsed: "mock-model"}, nil)
	return m
}

// WithError makes every call fail with err
func (m *MockProvider) WithError(err error) *MockProvider {
	m.On("TranscriptWithOptions", mock.Anything, mock.Anything).Return(nil, err)
	return m
}

// TranscriptWithOptions implements provider.TranscriptionProvider
func (m *MockProvider) TranscriptWithOptions(ctx context.Context, request *provider.TranscriptionRequest) (*provider.TranscriptionResponse, error) {
	args := m.Called(ctx, request)

	resp, _ := args.Get(0).(*provider.TranscriptionResponse)
	return resp, args.Error(1)
}

// GetProviderInfo implements provider.TranscriptionProvider
func (m *MockProvider) GetProviderInfo() provider.ProviderInfo {
	return provider.ProviderInfo{
		Name:             m.Name,
		DisplayName:      "Mock Provider",
		Type:             provider.ProviderTypeRemote,
		SupportedFormats: []provider.AudioFormat{provider.FormatWAV},
	}
}

// RecordingMetrics keeps every recorded outcome in memory
type RecordingMetrics struct {
	mu        sync.Mutex
	Successes []string
	Failures  []string
	Rejected  []string
}

// RecordSuccess implements provider.ProviderMetrics
func (r *RecordingMetrics) RecordSuccess(providerName string, latencyMs int64, audioLengthSec float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, providerName)
}

// RecordFailure implements provider.ProviderMetrics
func (r *RecordingMetrics) RecordFailure(providerName string, errorType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Failures = append(r.Failures, errorType)
}

// RecordRejected implements provider.ProviderMetrics
func (r *RecordingMetrics) RecordRejected(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Rejected = append(r.Rejected, reason)
}
