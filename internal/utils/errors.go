package utils

import (
	"errors"
	"net/http"
)

const (
	ErrCodeInvalidPayload    = "invalid_payload"
	ErrCodeValidation        = "validation_error"
	ErrCodeNotFound          = "not_found"
	ErrCodeConflict          = "conflict"
	ErrCodeUnprocessable     = "unprocessable"
	ErrCodeRateLimitExceeded = "rate_limit_exceeded"
	ErrCodeInternal          = "internal_server_error"
)

// AppError carries the HTTP shape of a service failure to the controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Details    []string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// HandleAppError writes err as an envelope. Anything that is not an AppError
// becomes a 500 with a generic message.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, appErr.Details, appErr.Err)
		return
	}
	RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
}
