package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewCommandError creates a command error with a fixed user-facing message
func NewCommandError(code string, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeCommand,
		Message: message,
		Code:    code,
		Context: make(map[string]interface{}),
	}
}

// NewIndexOutOfRangeError creates a command error that reports the valid upper bound
func NewIndexOutOfRangeError(index int, size int) *AppError {
	return &AppError{
		Type:    ErrorTypeCommand,
		Message: fmt.Sprintf("OOPS!!! The task number should be between 1 and %d.", size),
		Code:    CodeIndexOutOfRange,
		Context: map[string]interface{}{
			"index": index,
			"size":  size,
		},
	}
}

// NewStorageReadError creates a new storage read error
func NewStorageReadError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorageRead,
		Message: fmt.Sprintf("storage read failed: %s", operation),
		Code:    "STORAGE_READ_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewStorageWriteError creates a new storage write error
func NewStorageWriteError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorageWrite,
		Message: fmt.Sprintf("storage write failed: %s", operation),
		Code:    "STORAGE_WRITE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// IsCode checks if the error is an AppError carrying the given code
func IsCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation:
			return appErr.Message
		case ErrorTypeCommand:
			return appErr.Message
		case ErrorTypeStorageRead:
			return "Can't read the save file."
		case ErrorTypeStorageWrite:
			return "Your tasks could not be saved. Changes are kept until the program exits."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeCommand:
			return false // These are user errors, not system errors
		case ErrorTypeStorageRead, ErrorTypeStorageWrite:
			return true
		default:
			return true
		}
	}
	return true // Unknown errors should be logged
}
