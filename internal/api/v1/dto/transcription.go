package dto

import (
	"mime/multipart"

	"audio-transcriber/internal/app/transcription"
)

// Response formats for POST /transcriptions
const (
	FormatJSON = "json"
	FormatText = "text"
)

// TranscriptionForm is the multipart body of a transcription request
type TranscriptionForm struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
}

// TranscriptionQuery selects the response format
type TranscriptionQuery struct {
	Format string `form:"format" binding:"omitempty,oneof=json text"`
}

// FormatOrDefault returns the requested format, json when unset
func (q *TranscriptionQuery) FormatOrDefault() string {
	if q.Format == "" {
		return FormatJSON
	}
	return q.Format
}

// TranscriptionResponse represents a finished transcription in API responses
type TranscriptionResponse struct {
	Transcript       string  `json:"transcript"`
	Filename         string  `json:"filename"`
	DownloadFilename string  `json:"download_filename"`
	Provider         string  `json:"provider"`
	Model            string  `json:"model,omitempty"`
	AudioDuration    float64 `json:"audio_duration_seconds"`
	ProcessingTimeMs int64   `json:"processing_time_ms"`
}

// FromResult converts a service result to an API response
func FromResult(result *transcription.Result) *TranscriptionResponse {
	return &TranscriptionResponse{
		Transcript:       result.Transcript,
		Filename:         result.Filename,
		DownloadFilename: transcription.DownloadFilename,
		Provider:         result.Provider,
		Model:            result.Model,
		AudioDuration:    result.AudioDuration.Seconds(),
		ProcessingTimeMs: result.ProcessingTime.Milliseconds(),
	}
}
