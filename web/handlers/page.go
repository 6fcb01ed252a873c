package handlers

import (
	"encoding/base64"
	stderrors "errors"
	"html/template"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "audio-transcriber/internal/app/errors"
	"audio-transcriber/internal/app/transcription"
)

const (
	pageTitle       = "Audio Transcription App"
	introPrefix     = "Upload a WAV file to get its transcript using "
	defaultService  = "Google Gemini"
	pageTemplate    = "index.html"
	downloadURIHead = "data:text/plain;charset=utf-8;base64,"
)

// HTML parsing turns CR and CRLF into LF inside <pre>
var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// PageOptions configures the upload page
type PageOptions struct {
	ServiceName    string
	MaxUploadBytes int64
}

// PageData is rendered by index.html
type PageData struct {
	Title       string
	Intro       string
	MaxUploadMB int64

	Error string

	HasTranscript    bool
	Transcript       string
	DownloadURL      template.URL
	DownloadFilename string
}

// PageHandler serves the single upload, transcribe, display and download flow
type PageHandler struct {
	service transcription.Transcriber
	opts    PageOptions
	logger  *zap.Logger
}

// NewPageHandler creates a page handler
func NewPageHandler(service transcription.Transcriber, opts PageOptions, logger *zap.Logger) *PageHandler {
	if opts.ServiceName == "" {
		opts.ServiceName = defaultService
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{service: service, opts: opts, logger: logger}
}

// Index renders the empty upload form
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, pageTemplate, h.baseData())
}

// Transcribe handles the form post: one upload, one transcription, one result page
func (h *PageHandler) Transcribe(c *gin.Context) {
	data := h.baseData()

	header, err := c.FormFile("file")
	if err != nil {
		h.renderError(c, data, formFileError(err))
		return
	}

	upload, err := transcription.ReadUpload(header, h.opts.MaxUploadBytes)
	if err != nil {
		h.renderError(c, data, err)
		return
	}

	result, err := h.service.Transcribe(c.Request.Context(), upload)
	if err != nil {
		h.renderError(c, data, err)
		return
	}

	transcript := NormalizeTranscript(result.Transcript)
	data.HasTranscript = true
	data.Transcript = transcript
	data.DownloadURL = DownloadURL(transcript)
	data.DownloadFilename = transcription.DownloadFilename

	c.HTML(http.StatusOK, pageTemplate, data)
}

func (h *PageHandler) renderError(c *gin.Context, data PageData, err error) {
	status := uploadErrorStatus(err)
	if transcription.IsUploadError(err) {
		h.logger.Info("Rejected page upload",
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	data.Error = transcription.UserMessage(err)
	c.HTML(status, pageTemplate, data)
}

// NormalizeTranscript converts line endings to LF so the rendered page and the
// download carry the same bytes
func NormalizeTranscript(transcript string) string {
	return lineEndings.Replace(transcript)
}

// DownloadURL encodes transcript as a data URI
func DownloadURL(transcript string) template.URL {
	return template.URL(downloadURIHead + base64.StdEncoding.EncodeToString([]byte(transcript)))
}

func (h *PageHandler) baseData() PageData {
	return PageData{
		Title:       pageTitle,
		Intro:       introPrefix + h.opts.ServiceName,
		MaxUploadMB: h.opts.MaxUploadBytes >> 20,
	}
}

func formFileError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if stderrors.As(err, &maxBytesErr) || stderrors.Is(err, multipart.ErrMessageTooLarge) {
		return apperrors.ErrFileTooLarge
	}
	return apperrors.ErrMissingFile
}

func uploadErrorStatus(err error) int {
	switch {
	case stderrors.Is(err, apperrors.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case transcription.IsUploadError(err):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
