package provider

import (
	"context"
)

// DefaultPrompt is the fixed instruction sent alongside the audio
const DefaultPrompt = "Transcribe this audio clip"

// TranscriptionProvider turns a staged audio file into text using an external service
type TranscriptionProvider interface {
	// TranscriptWithOptions transcribes the file at request.InputFilePath.
	// The file must stay on disk until the call returns.
	TranscriptWithOptions(ctx context.Context, request *TranscriptionRequest) (*TranscriptionResponse, error)

	// GetProviderInfo returns provider metadata
	GetProviderInfo() ProviderInfo
}

// ProviderMetrics records the outcome of provider calls
type ProviderMetrics interface {
	// RecordSuccess records a successful transcription
	RecordSuccess(provider string, latencyMs int64, audioLengthSec float64)

	// RecordFailure records a failed transcription
	RecordFailure(provider string, errorType string)

	// RecordRejected records an upload refused before any provider call
	RecordRejected(reason string)
}
