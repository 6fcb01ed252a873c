package handlers_test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"audio-transcriber/internal/api/errors"
	"audio-transcriber/internal/api/middleware"
	"audio-transcriber/internal/api/v1/routes"
	"audio-transcriber/internal/app/api/provider"
	apperrors "audio-transcriber/internal/app/errors"
	"audio-transcriber/internal/app/testutil"
)

func setupTestRouter(t *testing.T, service *testutil.MockTranscriber, maxUploadBytes int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler(zap.NewNop()))
	routes.RegisterRoutes(router.Group("/api/v1"), &routes.ServiceContainer{
		TranscriptionService: service,
		MaxUploadBytes:       maxUploadBytes,
	})
	return router
}

func uploadRequest(t *testing.T, target, field, filename string, data []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestTranscriptionHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*testutil.MockTranscriber)
		target         string
		field          string
		expectedStatus int
		expectCall     bool
		validateBody   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "successful transcription",
			setupMocks:     func(m *testutil.MockTranscriber) { m.WithTranscript(testutil.TranscriptUnicode) },
			target:         "/api/v1/transcriptions",
			field:          "file",
			expectedStatus: http.StatusOK,
			expectCall:     true,
			validateBody: func(t *testing.T, w *httptest.ResponseRecorder) {
				var body map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, testutil.TranscriptUnicode, body["transcript"])
				assert.Equal(t, "clip.wav", body["filename"])
				assert.Equal(t, "transcript.txt", body["download_filename"])
				assert.Equal(t, "mock", body["provider"])
			},
		},
		{
			name:           "plain text attachment",
			setupMocks:     func(m *testutil.MockTranscriber) { m.WithTranscript(testutil.TranscriptMultiline) },
			target:         "/api/v1/transcriptions?format=text",
			field:          "file",
			expectedStatus: http.StatusOK,
			expectCall:     true,
			validateBody: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, testutil.TranscriptMultiline, w.Body.String())
				assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
				assert.Equal(t, `attachment; filename="transcript.txt"`, w.Header().Get("Content-Disposition"))
			},
		},
		{
			name:           "missing file field",
			setupMocks:     func(m *testutil.MockTranscriber) {},
			target:         "/api/v1/transcriptions",
			field:          "audio",
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, w *httptest.ResponseRecorder) {
				var body errors.APIError
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, errors.KindValidation, body.Kind)
				assert.Equal(t, "is required", body.Details["file"])
			},
		},
		{
			name:           "unknown format",
			setupMocks:     func(m *testutil.MockTranscriber) {},
			target:         "/api/v1/transcriptions?format=srt",
			field:          "file",
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "unsupported audio",
			setupMocks: func(m *testutil.MockTranscriber) {
				m.WithError(apperrors.Wrap(apperrors.ErrUnsupportedAudio, `"clip.wav" has content type audio/mpeg`))
			},
			target:         "/api/v1/transcriptions",
			field:          "file",
			expectedStatus: http.StatusUnsupportedMediaType,
			expectCall:     true,
		},
		{
			name: "provider failure",
			setupMocks: func(m *testutil.MockTranscriber) {
				m.WithError(&provider.TranscriptionError{
					Code:     provider.CodeGenerateFailed,
					Message:  "content generation failed",
					Provider: "gemini",
					Cause:    stderrors.New("quota exceeded"),
				})
			},
			target:         "/api/v1/transcriptions",
			field:          "file",
			expectedStatus: http.StatusBadGateway,
			expectCall:     true,
			validateBody: func(t *testing.T, w *httptest.ResponseRecorder) {
				var body errors.APIError
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, provider.CodeGenerateFailed, body.Code)
				assert.Contains(t, body.Message, "An error occurred during transcription: ")
				assert.NotEmpty(t, body.RequestID)
			},
		},
		{
			name: "provider timeout",
			setupMocks: func(m *testutil.MockTranscriber) {
				m.WithError(&provider.TranscriptionError{Code: provider.CodeTimeout, Message: "request timed out"})
			},
			target:         "/api/v1/transcriptions",
			field:          "file",
			expectedStatus: http.StatusGatewayTimeout,
			expectCall:     true,
		},
		{
			name: "provider unreachable",
			setupMocks: func(m *testutil.MockTranscriber) {
				m.WithError(&provider.TranscriptionError{
					Code:     provider.CodeNetworkError,
					Message:  "createTranscription failed",
					Provider: "openai",
					Cause:    stderrors.New("dial tcp: connection refused"),
				})
			},
			target:         "/api/v1/transcriptions",
			field:          "file",
			expectedStatus: http.StatusServiceUnavailable,
			expectCall:     true,
			validateBody: func(t *testing.T, w *httptest.ResponseRecorder) {
				var body errors.APIError
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, errors.KindServiceUnavailable, body.Kind)
				assert.Equal(t, provider.CodeNetworkError, body.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := testutil.NewMockTranscriber()
			tt.setupMocks(service)
			router := setupTestRouter(t, service, 1<<20)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, uploadRequest(t, tt.target, tt.field, "clip.wav", testutil.ShortWAV()))

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectCall {
				service.AssertNumberOfCalls(t, "Transcribe", 1)
				upload, ok := service.LastUpload()
				require.True(t, ok)
				assert.Equal(t, "clip.wav", upload.Filename)
				assert.Equal(t, testutil.ShortWAV(), upload.Data)
			} else {
				service.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything)
			}
			if tt.validateBody != nil {
				tt.validateBody(t, w)
			}
		})
	}
}

func TestTranscriptionHandler_TooLarge(t *testing.T) {
	service := testutil.NewMockTranscriber()
	router := setupTestRouter(t, service, 1024)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "/api/v1/transcriptions", "file", "clip.wav", testutil.WAVBytes(16000, 2)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	service.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything)
}
