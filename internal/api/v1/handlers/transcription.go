package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"audio-transcriber/internal/api/errors"
	"audio-transcriber/internal/api/middleware"
	"audio-transcriber/internal/api/v1/dto"
	"audio-transcriber/internal/app/api/provider"
	apperrors "audio-transcriber/internal/app/errors"
	"audio-transcriber/internal/app/transcription"
)

// TranscriptionHandler handles transcription-related API endpoints
type TranscriptionHandler struct {
	service        transcription.Transcriber
	maxUploadBytes int64
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service transcription.Transcriber, maxUploadBytes int64) *TranscriptionHandler {
	return &TranscriptionHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
	}
}

// Create handles POST /api/v1/transcriptions
// Transcribes an uploaded WAV file synchronously
//
// @Summary Transcribe a WAV file
// @Description Uploads a WAV file, transcribes it and returns the transcript. With format=text the transcript is returned as a transcript.txt attachment.
// @Tags transcriptions
// @Accept multipart/form-data
// @Produce json
// @Produce plain
// @Param file formData file true "WAV audio file"
// @Param format query string false "Response format" Enums(json, text)
// @Success 200 {object} dto.TranscriptionResponse "Transcription complete"
// @Failure 413 {object} errors.APIError "Upload too large"
// @Failure 415 {object} errors.APIError "Not a WAV file"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 502 {object} errors.APIError "Transcription service error"
// @Failure 503 {object} errors.APIError "Transcription service unreachable"
// @Failure 504 {object} errors.APIError "Transcription service timed out"
// @Router /transcriptions [post]
func (h *TranscriptionHandler) Create(c *gin.Context) {
	var query dto.TranscriptionQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	var form dto.TranscriptionForm
	if err := middleware.ValidateForm(c, &form); err != nil {
		middleware.HandleError(c, err)
		return
	}

	upload, err := transcription.ReadUpload(form.File, h.maxUploadBytes)
	if err != nil {
		middleware.HandleError(c, ToAPIError(err))
		return
	}

	result, err := h.service.Transcribe(c.Request.Context(), upload)
	if err != nil {
		middleware.HandleError(c, ToAPIError(err))
		return
	}

	if query.FormatOrDefault() == dto.FormatText {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", transcription.DownloadFilename))
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(result.Transcript))
		return
	}

	c.JSON(http.StatusOK, dto.FromResult(result))
}

// ToAPIError maps a service error to the API error returned to clients
func ToAPIError(err error) *errors.APIError {
	var apiErr *errors.APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case stderrors.Is(err, apperrors.ErrFileTooLarge):
		return errors.NewPayloadTooLargeError(err.Error())
	case stderrors.Is(err, apperrors.ErrUnsupportedAudio):
		return errors.NewUnsupportedMediaError(err.Error())
	case stderrors.Is(err, apperrors.ErrEmptyAudio), stderrors.Is(err, apperrors.ErrMissingFile):
		return errors.NewBadRequestError(err.Error())
	}

	var te *provider.TranscriptionError
	if stderrors.As(err, &te) {
		kind := errors.KindBadGateway
		switch te.Code {
		case provider.CodeTimeout:
			kind = errors.KindGatewayTimeout
		case provider.CodeNetworkError:
			kind = errors.KindServiceUnavailable
		}
		apiErr = errors.WrapError(err, kind, transcription.UserMessage(err))
		apiErr.Code = te.Code
		return apiErr
	}

	return errors.NewInternalError(transcription.UserMessage(err))
}
