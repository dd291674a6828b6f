package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode identifies the category of an AppError in responses and logs.
type ErrorCode string

const (
	ErrorCodeInternal         ErrorCode = "INTERNAL"
	ErrorCodeInvalidArgument  ErrorCode = "INVALID_ARGUMENT"
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeConflict         ErrorCode = "CONFLICT"
	ErrorCodePermissionDenied ErrorCode = "PERMISSION_DENIED"
	ErrorCodeUnauthenticated  ErrorCode = "UNAUTHENTICATED"

	ErrorCodeAuthInvalidToken       ErrorCode = "AUTH_INVALID_TOKEN"
	ErrorCodeAuthInvalidCredentials ErrorCode = "AUTH_INVALID_CREDENTIALS"

	ErrorCodeRequestNotFound       ErrorCode = "REQUEST_NOT_FOUND"
	ErrorCodeRequestAlreadyDecided ErrorCode = "REQUEST_ALREADY_DECIDED"
	ErrorCodeRequestDuplicate      ErrorCode = "REQUEST_DUPLICATE"
)

func (c ErrorCode) String() string {
	return string(c)
}

// AppError is the custom error type carried from use cases to HTTP responses.
type AppError struct {
	Raw       error             `json:"-"`
	HTTPCode  int               `json:"-"`
	Code      ErrorCode         `json:"error"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	Timestamp time.Time         `json:"timestamp,omitempty"`
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error. Empty values are dropped so
// callers can pass through identifiers they may not have.
func (e AppError) WithDetail(key, value string) AppError {
	if value == "" {
		return e
	}
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCodeInternal,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCodeInvalidArgument,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCodeNotFound,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrConflict(message string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCodeConflict,
		Message:  message,
	}
}

func ErrPermissionDenied(action string) AppError {
	return AppError{
		HTTPCode: http.StatusForbidden,
		Code:     ErrorCodePermissionDenied,
		Message:  fmt.Sprintf("Permission denied: %s", action),
	}
}

func ErrUnauthenticated() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCodeUnauthenticated,
		Message:  "Authentication required",
	}
}

// Authentication Errors

func ErrInvalidToken() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCodeAuthInvalidToken,
		Message:  "Invalid authentication token",
	}
}

func ErrInvalidCredentials() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCodeAuthInvalidCredentials,
		Message:  "Invalid email or password",
	}
}

// Room Request Errors

func ErrRequestNotFound(requestID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCodeRequestNotFound,
		Message:  "Room request not found",
	}.WithDetail("request_id", requestID)
}

func ErrRequestAlreadyDecided(requestID string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCodeRequestAlreadyDecided,
		Message:  "Room request has already been decided",
	}.WithDetail("request_id", requestID)
}

func ErrDuplicateActiveRequest() AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCodeRequestDuplicate,
		Message:  "An active room request already exists for this user",
	}
}
