package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid  = "CONFIG_INVALID"
	CodeInputMissing   = "INPUT_MISSING"
	CodeInputMalformed = "INPUT_MALFORMED"
	CodeDataIntegrity  = "DATA_INTEGRITY"
	CodeRenderFailed   = "RENDER_FAILED"
	CodeFetchFailed    = "FETCH_FAILED"
	CodeInternalError  = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InputMissing(path string) *AppError {
	return New(CodeInputMissing, fmt.Sprintf("input file not found: %s", path))
}

func InputMalformed(message string, cause error) *AppError {
	return &AppError{
		Code:    CodeInputMalformed,
		Message: message,
		Cause:   cause,
	}
}

func DataIntegrity(message string, cause error) *AppError {
	return &AppError{
		Code:    CodeDataIntegrity,
		Message: message,
		Cause:   cause,
	}
}

func RenderFailed(artifact string, cause error) *AppError {
	return &AppError{
		Code:    CodeRenderFailed,
		Message: fmt.Sprintf("rendering %s failed", artifact),
		Cause:   cause,
	}
}

func FetchFailed(url string, cause error) *AppError {
	return &AppError{
		Code:    CodeFetchFailed,
		Message: fmt.Sprintf("fetching %s failed", url),
		Cause:   cause,
	}
}
