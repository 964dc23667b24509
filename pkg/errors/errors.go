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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Font errors
	ErrFontNotFound ErrorCode = "FONT_NOT_FOUND"
	ErrFontLoad     ErrorCode = "FONT_LOAD"
	ErrRender       ErrorCode = "RENDER_FAILED"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// Prompt errors
	ErrPrompt ErrorCode = "PROMPT"
)

// FigartError represents a structured error with code and details
type FigartError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FigartError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FigartError) Unwrap() error {
	return e.Wrapped
}

// Is matches any FigartError carrying the same code
func (e *FigartError) Is(target error) bool {
	var targetErr *FigartError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// Cause returns the innermost message, without codes, suitable for
// showing to a user next to a prefix like "Error saving file: ".
func (e *FigartError) Cause() string {
	if e.Wrapped == nil {
		return e.Message
	}
	var inner *FigartError
	if errors.As(e.Wrapped, &inner) {
		return inner.Cause()
	}
	return e.Wrapped.Error()
}

// New creates a new FigartError with the given code and message
func New(code ErrorCode, message string) *FigartError {
	return &FigartError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FigartError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FigartError {
	return &FigartError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FigartError
func Wrap(err error, code ErrorCode, message string) *FigartError {
	if err == nil {
		return nil
	}
	return &FigartError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FigartError {
	if err == nil {
		return nil
	}
	return &FigartError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FigartError) WithDetail(key string, value interface{}) *FigartError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var figErr *FigartError
	if errors.As(err, &figErr) {
		return figErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FigartError
func GetErrorCode(err error) ErrorCode {
	var figErr *FigartError
	if errors.As(err, &figErr) {
		return figErr.Code
	}
	return ErrUnknown
}

// Message returns the user facing message of err. FigartErrors report
// their innermost cause; other errors report Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var figErr *FigartError
	if errors.As(err, &figErr) {
		return figErr.Cause()
	}
	return err.Error()
}
