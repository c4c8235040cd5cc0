// internal/common/errors/handler.go
package errors

import (
	stderrors "errors"
	"time"

	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/metrics"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/dialog"
)

// ErrorHandler folds handler errors into a failed Close turn. It is the only
// place where an error becomes user-visible text.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// HandleIntentError logs err, counts it and returns
// Close(intent, Failed, "Error: <message>").
func (h *ErrorHandler) HandleIntentError(intentName string, err error) *dialog.Response {
	stdErr := h.normalizeError(err)

	h.logError(intentName, stdErr)
	metrics.IntentErrors.WithLabelValues(intentName, string(stdErr.Code)).Inc()

	return dialog.Failed(intentName, "Error: "+stdErr.UserMessage())
}

// normalizeError ensures we always have a StandardError.
func (h *ErrorHandler) normalizeError(err error) *StandardError {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeUnknown,
		Message:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		Cause:     err,
	}
}

func (h *ErrorHandler) logError(intentName string, stdErr *StandardError) {
	h.logger.Error("intent failed", map[string]interface{}{
		"intent":        intentName,
		"errorCode":     string(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
		"retryable":     stdErr.Retryable,
		"errorCategory": GetErrorCategory(stdErr.Code),
		"metadata":      stdErr.Metadata,
	})
}
