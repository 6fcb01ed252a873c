package middleware

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"audio-transcriber/internal/api/errors"
)

// Validator interface for domain validation
type Validator interface {
	Validate() error
}

// ValidateForm binds a multipart or urlencoded form and validates struct tags
// and domain rules
func ValidateForm(c *gin.Context, req interface{}) error {
	if err := c.ShouldBind(req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if stderrors.As(err, &maxBytesErr) {
			return errors.NewPayloadTooLargeError("Upload exceeds the size limit")
		}

		var validationErrs validator.ValidationErrors
		if stderrors.As(err, &validationErrs) {
			return errors.NewValidationError("Validation failed", fieldMessages(validationErrs))
		}

		return errors.NewBadRequestError("Invalid form data")
	}

	if v, ok := req.(Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ValidateQuery validates query parameters
func ValidateQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		details := map[string]string{}

		var validationErrs validator.ValidationErrors
		if stderrors.As(err, &validationErrs) {
			details = fieldMessages(validationErrs)
		} else {
			details["query"] = "invalid query parameters"
		}

		return errors.NewValidationError("Invalid query parameters", details)
	}

	if v, ok := req.(Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func fieldMessages(validationErrs validator.ValidationErrors) map[string]string {
	messages := make(map[string]string, len(validationErrs))
	for _, fieldError := range validationErrs {
		field := strings.ToLower(fieldError.Field())

		switch fieldError.Tag() {
		case "required":
			messages[field] = "is required"
		case "oneof":
			messages[field] = "must be one of: " + fieldError.Param()
		case "max":
			messages[field] = "is too long"
		default:
			messages[field] = "is invalid"
		}
	}
	return messages
}
