package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_HTTPStatus(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected int
	}{
		{KindValidation, http.StatusUnprocessableEntity},
		{KindBadRequest, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindPayloadTooLarge, http.StatusRequestEntityTooLarge},
		{KindUnsupportedMedia, http.StatusUnsupportedMediaType},
		{KindBadGateway, http.StatusBadGateway},
		{KindServiceUnavailable, http.StatusServiceUnavailable},
		{KindGatewayTimeout, http.StatusGatewayTimeout},
		{KindInternal, http.StatusInternalServerError},
		{ErrorKind("something_else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := &APIError{Kind: tt.kind, Message: "boom"}
			assert.Equal(t, tt.expected, err.HTTPStatus())
			assert.Equal(t, "boom", err.Error())
		})
	}
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, KindInternal, "ignored"))

	orig := NewValidationError("bad form", map[string]string{"file": "is required"})
	orig.Code = "missing_file"

	wrapped := WrapError(orig, KindBadRequest, "Invalid upload")
	assert.Equal(t, KindBadRequest, wrapped.Kind)
	assert.Equal(t, "Invalid upload", wrapped.Message)
	assert.Equal(t, "is required", wrapped.Details["file"])
	assert.Equal(t, "missing_file", wrapped.Code)
}
