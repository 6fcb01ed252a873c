package transcription

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"go.uber.org/zap"

	"audio-transcriber/internal/app/api/provider"
	"audio-transcriber/internal/app/audio"
	apperrors "audio-transcriber/internal/app/errors"
	"audio-transcriber/internal/app/util/files"
	"audio-transcriber/internal/app/utils"
)

// DownloadFilename is the name offered for the transcript download
const DownloadFilename = "transcript.txt"

// Upload is one user-supplied audio blob
type Upload struct {
	Filename string
	Data     []byte
}

// Result is the outcome of a successful transcription
type Result struct {
	Transcript     string
	Filename       string
	Model          string
	Provider       string
	AudioDuration  time.Duration
	ProcessingTime time.Duration
}

// Transcriber is what the HTTP layers and CLI need from the service
type Transcriber interface {
	Transcribe(ctx context.Context, upload Upload) (*Result, error)
}

// Options configures a Service
type Options struct {
	// StagingDir holds transient upload copies, os.TempDir when empty
	StagingDir string

	// MaxUploadBytes rejects larger uploads before staging, 0 disables the check
	MaxUploadBytes int64

	// Timeout bounds the provider call, 0 means no extra deadline
	Timeout time.Duration

	// Model overrides the provider default when set
	Model string
}

// Service validates an upload, stages it for the provider and returns the transcript
type Service struct {
	provider provider.TranscriptionProvider
	metrics  provider.ProviderMetrics
	logger   *zap.Logger
	opts     Options
}

// NewService creates a transcription service. metrics may be nil.
func NewService(p provider.TranscriptionProvider, metrics provider.ProviderMetrics, logger *zap.Logger, opts Options) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		provider: p,
		metrics:  metrics,
		logger:   logger,
		opts:     opts,
	}
}

// Transcribe runs one upload → staging → provider round trip.
// The staging file is removed on every return path.
func (s *Service) Transcribe(ctx context.Context, upload Upload) (*Result, error) {
	providerName := s.provider.GetProviderInfo().Name
	logger := s.logger.With(
		zap.String("filename", upload.Filename),
		zap.Int("size_bytes", len(upload.Data)),
		zap.String("audio_sha256", utils.ShortHash(upload.Data)),
		zap.String("provider", providerName),
	)

	if s.opts.MaxUploadBytes > 0 && int64(len(upload.Data)) > s.opts.MaxUploadBytes {
		s.recordRejected("too_large")
		return nil, apperrors.Wrap(apperrors.ErrFileTooLarge,
			fmt.Sprintf("%q exceeds the %d MB limit", upload.Filename, s.opts.MaxUploadBytes>>20))
	}

	info, err := audio.ValidateWAV(upload.Filename, upload.Data)
	if err != nil {
		s.recordRejected(rejectReason(err))
		logger.Info("Rejected upload", zap.Error(err))
		return nil, err
	}

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	startTime := time.Now()
	var resp *provider.TranscriptionResponse

	err = files.WithStagedFile(s.opts.StagingDir, upload.Data, ".wav", func(path string) error {
		var callErr error
		resp, callErr = s.provider.TranscriptWithOptions(ctx, &provider.TranscriptionRequest{
			InputFilePath: path,
			MIMEType:      info.MIMEType,
			Model:         s.opts.Model,
			Prompt:        provider.DefaultPrompt,
		})
		return callErr
	})
	elapsed := time.Since(startTime)

	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordFailure(providerName, provider.ErrorCode(err))
		}
		logger.Error("Transcription failed",
			zap.Error(err),
			zap.Duration("elapsed", elapsed),
		)
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordSuccess(providerName, elapsed.Milliseconds(), info.Duration.Seconds())
	}
	logger.Info("Transcription complete",
		zap.Duration("elapsed", elapsed),
		zap.Duration("audio_duration", info.Duration),
		zap.Int("transcript_chars", len(resp.Text)),
	)

	return &Result{
		Transcript:     resp.Text,
		Filename:       upload.Filename,
		Model:          resp.ModelUsed,
		Provider:       providerName,
		AudioDuration:  info.Duration,
		ProcessingTime: elapsed,
	}, nil
}

func (s *Service) recordRejected(reason string) {
	if s.metrics != nil {
		s.metrics.RecordRejected(reason)
	}
}

func rejectReason(err error) string {
	switch {
	case stderrors.Is(err, apperrors.ErrEmptyAudio):
		return "empty"
	case stderrors.Is(err, apperrors.ErrUnsupportedAudio):
		return "unsupported_audio"
	default:
		return "invalid"
	}
}

// ReadUpload reads a multipart file into memory, refusing anything over maxBytes
func ReadUpload(header *multipart.FileHeader, maxBytes int64) (Upload, error) {
	if header == nil {
		return Upload{}, apperrors.ErrMissingFile
	}
	if maxBytes > 0 && header.Size > maxBytes {
		return Upload{}, apperrors.Wrap(apperrors.ErrFileTooLarge,
			fmt.Sprintf("%q exceeds the %d MB limit", header.Filename, maxBytes>>20))
	}

	file, err := header.Open()
	if err != nil {
		return Upload{}, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if maxBytes > 0 {
		reader = io.LimitReader(file, maxBytes+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return Upload{}, fmt.Errorf("read upload: %w", err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return Upload{}, apperrors.Wrap(apperrors.ErrFileTooLarge,
			fmt.Sprintf("%q exceeds the %d MB limit", header.Filename, maxBytes>>20))
	}

	return Upload{Filename: header.Filename, Data: data}, nil
}

// IsUploadError reports whether err was caused by the upload itself rather
// than by the transcription service
func IsUploadError(err error) bool {
	return stderrors.Is(err, apperrors.ErrMissingFile) ||
		stderrors.Is(err, apperrors.ErrEmptyAudio) ||
		stderrors.Is(err, apperrors.ErrUnsupportedAudio) ||
		stderrors.Is(err, apperrors.ErrFileTooLarge)
}

// UserMessage is the generic text shown to a user when Transcribe fails
func UserMessage(err error) string {
	if IsUploadError(err) {
		return fmt.Sprintf("Invalid upload: %v", err)
	}
	return fmt.Sprintf("An error occurred during transcription: %v", err)
}
