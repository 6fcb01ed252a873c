package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"audio-transcriber/internal/app/transcription"
)

// MockTranscriber is a testify mock of transcription.Transcriber
type MockTranscriber struct {
	mock.Mock
}

// NewMockTranscriber creates a MockTranscriber with no expectations
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

// WithTranscript makes every call succeed with text
func (m *MockTranscriber) WithTranscript(text string) *MockTranscriber {
	m.On("Transcribe", mock.Anything, mock.Anything).Return(func(_ context.Context, upload transcription.Upload) *transcription.Result {
		return &transcription.Result{
			Transcript:     text,
			Filename:       upload.Filename,
			Model:          "mock-model",
			Provider:       "mock",
			AudioDuration:  time.Second,
			ProcessingTime: 10 * time.Millisecond,
		}
	}, nil)
	return m
}

// WithError makes every call fail with err
func (m *MockTranscriber) WithError(err error) *MockTranscriber {
	m.On("Transcribe", mock.Anything, mock.Anything).Return(nil, err)
	return m
}

// Transcribe implements transcription.Transcriber
func (m *MockTranscriber) Transcribe(ctx context.Context, upload transcription.Upload) (*transcription.Result, error) {
	args := m.Called(ctx, upload)

	var result *transcription.Result
	switch v := args.Get(0).(type) {
	case func(context.Context, transcription.Upload) *transcription.Result:
		result = v(ctx, upload)
	case *transcription.Result:
		result = v
	}
	return result, args.Error(1)
}

// LastUpload returns the upload from the most recent call
func (m *MockTranscriber) LastUpload() (transcription.Upload, bool) {
	calls := m.Calls
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Method == "Transcribe" {
			return calls[i].Arguments.Get(1).(transcription.Upload), true
		}
	}
	return transcription.Upload{}, false
}
