package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/smart-beneficiary/sbms/internal/app/models/dto"
)

// RespondValidationError converts a binding/validation failure into a 400
// response with per-field error details
func RespondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(ValidationErrorDetail(err)))
}

// ValidationErrorDetail builds a structured error detail from a binding
// error, expanding field-level validator failures when present
func ValidationErrorDetail(err error) *dto.ErrorDetail {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		details := dto.NewValidationErrors()
		for _, fe := range fieldErrors {
			details.AddError(fe.Field(), formatValidationError(fe))
		}
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
			WithDetails(details.Errors)
	}

	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
		WithDetails(err.Error())
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "len":
		return e.Field() + " must be exactly " + e.Param() + " characters"
	case "email":
		return e.Field() + " must be a valid email address"
	case "numeric":
		return e.Field() + " must contain only digits"
	case "datetime":
		return e.Field() + " must be a date in " + e.Param() + " format"
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
