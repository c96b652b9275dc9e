package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   Validation("Invalid amount"),
			expected: "[ValidationError] Invalid amount",
		},
		{
			name:     "with wrapped error",
			appErr:   InternalError(fmt.Errorf("connection refused")),
			expected: "[InternalServerError] " + InternalMessage + ": connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := NoteUnavailable("Cannot dispense 125", inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := Validation("test")
	assert.Nil(t, appErr.Unwrap())
}

func TestAppError_JSONHidesInternalError(t *testing.T) {
	appErr := InternalError(errors.New("pg: password authentication failed"))

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"errorType":"InternalServerError","message":"An unexpected error occurred. Please try again later.","statusCode":500}`,
		string(raw))
}

func TestErrorTypes(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidArgument", InvalidArgument("negative", nil), TypeInvalidArgument, http.StatusBadRequest},
		{"NoteUnavailable", NoteUnavailable("cannot dispense", nil), TypeNoteUnavailable, http.StatusBadRequest},
		{"Validation", Validation("bad"), TypeValidationError, http.StatusBadRequest},
		{"RateLimit", ErrRateLimitExceeded(), TypeRateLimitExceeded, http.StatusTooManyRequests},
		{"NotFound", ErrNotFound("Route"), TypeNotFound, http.StatusNotFound},
		{"PayloadTooLarge", ErrPayloadTooLarge(1024), TypePayloadTooLarge, http.StatusRequestEntityTooLarge},
		{"Internal", InternalError(nil), TypeInternalServerError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("Route")
	assert.Equal(t, "Route not found", err.Message)
}
