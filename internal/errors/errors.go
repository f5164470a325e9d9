package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeInternal indicates an unexpected client-side failure.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeCanceled indicates the operation was canceled.
	ErrCodeCanceled ErrorCode = "canceled"
	// ErrCodeNetwork indicates the remote service could not be reached (transport error or timeout).
	ErrCodeNetwork ErrorCode = "network"
	// ErrCodeRejected indicates the remote service answered with a non-success status.
	ErrCodeRejected ErrorCode = "rejected"
	// ErrCodeMalformedToken indicates a session token whose claims could not be decoded.
	ErrCodeMalformedToken ErrorCode = "malformed_token"
	// ErrCodeInvalidCredential indicates a login attempted with an absent or placeholder token.
	ErrCodeInvalidCredential ErrorCode = "invalid_credential"
)

// AppError represents a structured application error with a code, message, and optional cause.
// It supports error wrapping and unwrapping for use with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field that caused the error (optional, for validation errors)
	Field string
	// Status is the HTTP status returned by the remote service (rejections only)
	Status int
}

// Error implements the error interface.
func (e *AppError) Error() string {
	msg := e.Message
	if msg == "" && e.Code == ErrCodeRejected {
		msg = fmt.Sprintf("remote service rejected request (status %d)", e.Status)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: message,
	}
}

// NotFoundf creates a new NotFound error with formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Field:   field,
	}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
	}
}

// Network wraps a transport failure.
func Network(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeNetwork,
		Message: message,
		Cause:   err,
	}
}

// Rejected creates a RemoteRejection error. message is the text extracted from
// the response body and may be empty when the body carried none.
func Rejected(status int, message string) *AppError {
	return &AppError{
		Code:    ErrCodeRejected,
		Message: message,
		Status:  status,
	}
}

// InvalidCredential creates an InvalidCredentialSubmission error.
func InvalidCredential(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidCredential,
		Message: message,
	}
}

// MalformedToken wraps a claims decoding failure.
func MalformedToken(err error) *AppError {
	return &AppError{
		Code:    ErrCodeMalformedToken,
		Message: "malformed session token",
		Cause:   err,
	}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	return isCode(err, ErrCodeNotFound)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsInternal checks if an error is an Internal error.
func IsInternal(err error) bool {
	return isCode(err, ErrCodeInternal)
}

// IsCanceled checks if an error is a Canceled error.
func IsCanceled(err error) bool {
	return isCode(err, ErrCodeCanceled)
}

// IsNetwork checks if an error is a NetworkFailure.
func IsNetwork(err error) bool {
	return isCode(err, ErrCodeNetwork)
}

// IsRejected checks if an error is a RemoteRejection.
func IsRejected(err error) bool {
	return isCode(err, ErrCodeRejected)
}

// IsMalformedToken checks if an error is a MalformedToken.
func IsMalformedToken(err error) bool {
	return isCode(err, ErrCodeMalformedToken)
}

// IsInvalidCredential checks if an error is an InvalidCredentialSubmission.
func IsInvalidCredential(err error) bool {
	return isCode(err, ErrCodeInvalidCredential)
}

// RemoteMessage returns the message the remote service put in its error body.
// ok is false when err is not a rejection or the body carried no message.
func RemoteMessage(err error) (string, bool) {
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Code != ErrCodeRejected {
		return "", false
	}
	return appErr.Message, appErr.Message != ""
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetField returns the Field from an error, or empty string if not an AppError or no field set.
func GetField(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}
