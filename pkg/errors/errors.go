package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Classification errors: the filesystem does not match any layout a
	// workflow knows how to handle
	ErrUnexpectedState ErrorCode = "UNEXPECTED_STATE"
	ErrNotInitialized  ErrorCode = "NOT_INITIALIZED"

	// FileSystem errors
	ErrIO          ErrorCode = "IO"
	ErrFileAccess  ErrorCode = "FILE_ACCESS"
	ErrDataLoss    ErrorCode = "DATA_LOSS"
	ErrDirNotEmpty ErrorCode = "DIR_NOT_EMPTY"

	// Transaction errors
	ErrRollback ErrorCode = "ROLLBACK_FAILED"
	ErrTxClosed ErrorCode = "TX_CLOSED"

	// Shortcut errors
	ErrShortcutNotFound ErrorCode = "SHORTCUT_NOT_FOUND"
	ErrShortcutExists   ErrorCode = "SHORTCUT_EXISTS"

	// State and configuration errors
	ErrStateLoad  ErrorCode = "STATE_LOAD"
	ErrStateSave  ErrorCode = "STATE_SAVE"
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Platform integration errors
	ErrPlatform ErrorCode = "PLATFORM"
)

// DesksError represents a structured error with code and details
type DesksError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DesksError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DesksError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DesksError) Is(target error) bool {
	var targetErr *DesksError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DesksError with the given code and message
func New(code ErrorCode, message string) *DesksError {
	return &DesksError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DesksError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DesksError {
	return &DesksError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DesksError
func Wrap(err error, code ErrorCode, message string) *DesksError {
	if err == nil {
		return nil
	}
	return &DesksError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DesksError {
	if err == nil {
		return nil
	}
	return &DesksError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DesksError) WithDetail(key string, value interface{}) *DesksError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DesksError) WithDetails(details map[string]interface{}) *DesksError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code anywhere in its chain
func IsErrorCode(err error, code ErrorCode) bool {
	return errors.Is(err, &DesksError{Code: code})
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DesksError
func GetErrorCode(err error) ErrorCode {
	var desksErr *DesksError
	if errors.As(err, &desksErr) {
		return desksErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DesksError
func GetErrorDetails(err error) map[string]interface{} {
	var desksErr *DesksError
	if errors.As(err, &desksErr) {
		return desksErr.Details
	}
	return nil
}
