package apperror

import (
	"fmt"
	"net/http"
)

// Error types exposed to clients in the errorType field.
const (
	TypeInvalidArgument     = "InvalidArgument"
	TypeNoteUnavailable     = "NoteUnavailable"
	TypeValidationError     = "ValidationError"
	TypeRateLimitExceeded   = "RateLimitExceeded"
	TypeNotFound            = "NotFound"
	TypePayloadTooLarge     = "PayloadTooLarge"
	TypeInternalServerError = "InternalServerError"
)

// InternalMessage is the only message a client sees for unexpected failures.
const InternalMessage = "An unexpected error occurred. Please try again later."

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"errorType"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"statusCode"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Withdrawal ----

func InvalidArgument(message string, err error) *AppError {
	return Wrap(TypeInvalidArgument, message, http.StatusBadRequest, err)
}

func NoteUnavailable(message string, err error) *AppError {
	return Wrap(TypeNoteUnavailable, message, http.StatusBadRequest, err)
}

// ---- Request ----

// Validation returns a 400 for malformed or out-of-policy input.
func Validation(message string) *AppError {
	return New(TypeValidationError, message, http.StatusBadRequest)
}

func ErrRateLimitExceeded() *AppError {
	return New(TypeRateLimitExceeded, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
}

func ErrNotFound(entity string) *AppError {
	return New(TypeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrPayloadTooLarge(limit int64) *AppError {
	return New(TypePayloadTooLarge, fmt.Sprintf("Request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}

// ---- System ----

// InternalError hides err behind the generic 500 message.
func InternalError(err error) *AppError {
	return Wrap(TypeInternalServerError, InternalMessage, http.StatusInternalServerError, err)
}
