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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Event errors
	ErrUnregisteredCall  ErrorCode = "UNREGISTERED_CALL"
	ErrSourceSubscribe   ErrorCode = "SOURCE_SUBSCRIBE"
	ErrSourceUnsubscribe ErrorCode = "SOURCE_UNSUBSCRIBE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Watcher errors
	ErrWatchSetup ErrorCode = "WATCH_SETUP"
)

// LibError represents a structured error with code and details
type LibError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LibError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LibError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LibError) Is(target error) bool {
	var targetErr *LibError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LibError with the given code and message
func New(code ErrorCode, message string) *LibError {
	return &LibError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LibError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LibError {
	return &LibError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LibError
func Wrap(err error, code ErrorCode, message string) *LibError {
	if err == nil {
		return nil
	}
	return &LibError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LibError {
	if err == nil {
		return nil
	}
	return &LibError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LibError) WithDetail(key string, value interface{}) *LibError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var libErr *LibError
	if errors.As(err, &libErr) {
		return libErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LibError
func GetErrorCode(err error) ErrorCode {
	var libErr *LibError
	if errors.As(err, &libErr) {
		return libErr.Code
	}
	return ErrUnknown
}
