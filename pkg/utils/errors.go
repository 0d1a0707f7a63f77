package utils

import (
	"fmt"
	"net/http"
)

// CustomError represents a custom application error
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// Common error constructors
func NewBadRequestError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewInternalServerError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

func NewValidationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Detail:  detail,
	}
}

// Pipeline specific errors

// NewUnsupportedSourceError returns an error for a source kind outside the
// recognized set. No partial extraction is attempted after it.
func NewUnsupportedSourceError(sourceType string) *CustomError {
	return &CustomError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Unsupported source kind",
		Detail:  fmt.Sprintf("source_type %q is not one of url, pdf, docx, text", sourceType),
	}
}

// NewMalformedRequiredPathsError flags a required-paths set that is not a
// well-formed set of canonical field path strings.
func NewMalformedRequiredPathsError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: "Malformed required paths",
		Detail:  detail,
	}
}

// NewIngestError returns an error when a source document cannot be turned
// into plain text.
func NewIngestError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Ingest failed",
		Detail:  detail,
	}
}

// NewEmptyContentError flags a RawInput whose content is empty after
// normalization.
func NewEmptyContentError() *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: "Empty content",
		Detail:  "raw input content must be non-empty",
	}
}
