// Package errors provides the structured error type used between the
// upstream clients and the intent handlers.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidEvent ErrorCode = "INVALID_EVENT"
	ErrCodeDecodeFailed ErrorCode = "DECODE_FAILED"

	ErrCodeClassifierFailed ErrorCode = "CLASSIFIER_FAILED"
	ErrCodeGeocodingFailed  ErrorCode = "GEOCODING_FAILED"
	ErrCodeForecastFailed   ErrorCode = "FORECAST_FAILED"
	ErrCodeUpstreamStatus   ErrorCode = "UPSTREAM_STATUS"
	ErrCodeUpstreamTimeout  ErrorCode = "UPSTREAM_TIMEOUT"

	ErrCodeStorageListFailed ErrorCode = "STORAGE_LIST_FAILED"
	ErrCodePresignFailed     ErrorCode = "PRESIGN_FAILED"
	ErrCodeChatFailed        ErrorCode = "CHAT_FAILED"

	ErrCodeHandlerPanic ErrorCode = "HANDLER_PANIC"
	ErrCodeUnknown      ErrorCode = "UNKNOWN_ERROR"
)

// StandardError represents a structured application error. Cause keeps the
// wrapped error reachable through errors.Is / errors.As.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Cause     error                  `json:"-"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.Cause
}

// UserMessage is the text shown after "Error: " in a failed dialog turn.
func (e *StandardError) UserMessage() string {
	if e.Details == "" {
		return e.Message
	}
	return e.Message + ": " + e.Details
}

// ==========================
// 2. Error Constructors
// ==========================

func New(code ErrorCode, message string, cause error) *StandardError {
	stdErr := &StandardError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableErrorCode(code),
		Timestamp: time.Now(),
		Cause:     cause,
	}
	if cause != nil {
		stdErr.Details = cause.Error()
	}
	return stdErr
}

func NewInvalidEventError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidEvent,
		Message:   "invalid intent event",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now(),
	}
}

func NewDecodeError(service string, err error) *StandardError {
	return New(ErrCodeDecodeFailed, fmt.Sprintf("could not decode %s response", service), err)
}

func NewClassifierError(err error) *StandardError {
	return New(ErrCodeClassifierFailed, "image classification failed", err)
}

func NewGeocodingError(err error) *StandardError {
	return New(ErrCodeGeocodingFailed, "geocoding request failed", err)
}

func NewForecastError(err error) *StandardError {
	return New(ErrCodeForecastFailed, "forecast request failed", err)
}

// NewUpstreamStatusError reports a non-success HTTP status from an external
// API.
func NewUpstreamStatusError(service string, status int) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamStatus,
		Message:   fmt.Sprintf("%s returned status %d", service, status),
		Retryable: status >= 500,
		Metadata:  map[string]interface{}{"service": service, "status": status},
		Timestamp: time.Now(),
	}
}

func NewUpstreamTimeoutError(service string, err error) *StandardError {
	return New(ErrCodeUpstreamTimeout, fmt.Sprintf("%s timed out", service), err)
}

func NewStorageListError(prefix string, err error) *StandardError {
	stdErr := New(ErrCodeStorageListFailed, "could not list stored images", err)
	stdErr.Metadata = map[string]interface{}{"prefix": prefix}
	return stdErr
}

func NewPresignError(key string, err error) *StandardError {
	stdErr := New(ErrCodePresignFailed, "could not create image link", err)
	stdErr.Metadata = map[string]interface{}{"key": key}
	return stdErr
}

func NewChatError(err error) *StandardError {
	return New(ErrCodeChatFailed, "could not reach the chat bot", err)
}

func NewPanicError(recovered interface{}) *StandardError {
	return &StandardError{
		Code:      ErrCodeHandlerPanic,
		Message:   fmt.Sprintf("%v", recovered),
		Retryable: false,
		Timestamp: time.Now(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// CodeOf extracts the error code of err, or ErrCodeUnknown.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ErrCodeUnknown
}

// MessageOf returns the user-facing text of err.
func MessageOf(err error) string {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.UserMessage()
	}
	return err.Error()
}

// IsRetryableErrorCode reports whether a caller may reasonably try again.
// Nothing in this module retries; the flag is surfaced in logs only.
func IsRetryableErrorCode(code ErrorCode) bool {
	switch code {
	case ErrCodeClassifierFailed,
		ErrCodeGeocodingFailed,
		ErrCodeForecastFailed,
		ErrCodeUpstreamTimeout,
		ErrCodeStorageListFailed,
		ErrCodeChatFailed:
		return true
	default:
		return false
	}
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "EVENT") || strings.Contains(codeStr, "DECODE"):
		return "VALIDATION"
	case strings.Contains(codeStr, "CLASSIFIER"):
		return "VISION"
	case strings.Contains(codeStr, "GEOCODING") || strings.Contains(codeStr, "FORECAST"):
		return "WEATHER"
	case strings.Contains(codeStr, "UPSTREAM"):
		return "UPSTREAM"
	case strings.Contains(codeStr, "STORAGE") || strings.Contains(codeStr, "PRESIGN"):
		return "STORAGE"
	case strings.Contains(codeStr, "CHAT"):
		return "CHAT"
	default:
		return "OTHER"
	}
}
