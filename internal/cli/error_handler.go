package cli

import (
	"github.com/charmbracelet/log"

	"task-tracker/internal/errors"
	"task-tracker/internal/validation"
)

// ErrorHandler turns interpreter errors into user-facing text
type ErrorHandler struct {
	logger *log.Logger
}

// NewErrorHandler creates a new error handler. logger may be nil.
func NewErrorHandler(logger *log.Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// UserMessage provides a user-friendly message for validation and other errors
func (eh *ErrorHandler) UserMessage(err error) string {
	// Handle validation errors first
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return validationErr.GetUserFriendlyMessage()
	}

	// Handle AppError types
	if _, ok := errors.AsAppError(err); ok {
		return errors.GetUserMessage(err)
	}

	// Fallback for unknown errors
	return "OOPS!!! " + err.Error()
}

// Log records errors that point at a problem outside the user's input.
func (eh *ErrorHandler) Log(line string, err error) {
	if eh.logger == nil {
		return
	}
	if eh.IsValidationError(err) || !errors.ShouldLogError(err) {
		eh.logger.Debug("command rejected", "line", line, "code", eh.GetErrorCode(err))
		return
	}
	if appErr, ok := errors.AsAppError(err); ok && eh.IsStorageError(err) {
		operation, _ := appErr.GetContext("operation")
		eh.logger.Error("command failed", "line", line, "operation", operation, "err", err)
		return
	}
	eh.logger.Error("command failed", "line", line, "err", err)
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsStorageError checks if an error came from the task store
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorageRead) ||
		errors.IsErrorType(err, errors.ErrorTypeStorageWrite)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
