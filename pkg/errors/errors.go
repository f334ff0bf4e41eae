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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Path validation errors
	ErrInvalidCharacter         ErrorCode = "INVALID_CHARACTER"
	ErrForbiddenAsciiControl    ErrorCode = "FORBIDDEN_ASCII_CONTROL"
	ErrMustNotEndWithSpaceOrDot ErrorCode = "MUST_NOT_END_WITH_SPACE_OR_DOT"
	ErrReservedWordOrTraversal  ErrorCode = "RESERVED_WORD_OR_TRAVERSAL"

	// Path component errors
	ErrNoParent          ErrorCode = "NO_PARENT"
	ErrNoFileName        ErrorCode = "NO_FILE_NAME"
	ErrCharacterIndexing ErrorCode = "CHARACTER_INDEXING"

	// FileSystem errors
	ErrIO ErrorCode = "IO"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// Detail keys shared by the packages that build errors
const (
	DetailPath   = "path"
	DetailNative = "native"
)

// CrosspathError represents a structured error with code and details
type CrosspathError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CrosspathError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CrosspathError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CrosspathError) Is(target error) bool {
	var targetErr *CrosspathError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CrosspathError with the given code and message
func New(code ErrorCode, message string) *CrosspathError {
	return &CrosspathError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CrosspathError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CrosspathError {
	return &CrosspathError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CrosspathError
func Wrap(err error, code ErrorCode, message string) *CrosspathError {
	if err == nil {
		return nil
	}
	return &CrosspathError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CrosspathError {
	if err == nil {
		return nil
	}
	return &CrosspathError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// InvalidPath builds a validation error for the given code. The offending raw or
// partially normalized string is kept under DetailPath.
func InvalidPath(code ErrorCode, path, reason string) *CrosspathError {
	return Newf(code, "%s: %q", reason, path).WithDetail(DetailPath, path)
}

// IO wraps an OS error raised while operating on path. native is the
// materialized form that was handed to the filesystem.
func IO(err error, op, path, native string) *CrosspathError {
	if err == nil {
		return nil
	}
	return Wrapf(err, ErrIO, "%s %q", op, path).
		WithDetail(DetailPath, path).
		WithDetail(DetailNative, native)
}

// WithDetail adds a detail to the error
func (e *CrosspathError) WithDetail(key string, value interface{}) *CrosspathError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *CrosspathError) WithDetails(details map[string]interface{}) *CrosspathError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cpErr *CrosspathError
	if errors.As(err, &cpErr) {
		return cpErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CrosspathError
func GetErrorCode(err error) ErrorCode {
	var cpErr *CrosspathError
	if errors.As(err, &cpErr) {
		return cpErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CrosspathError
func GetErrorDetails(err error) map[string]interface{} {
	var cpErr *CrosspathError
	if errors.As(err, &cpErr) {
		return cpErr.Details
	}
	return nil
}

// GetPath returns the path recorded on err, or "" if there is none.
func GetPath(err error) string {
	if s, ok := GetErrorDetails(err)[DetailPath].(string); ok {
		return s
	}
	return ""
}
