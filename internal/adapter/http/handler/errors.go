package handler

import (
	"errors"
	"io"
	"net/http"

	"atm-withdrawal/internal/core/domain"
	"atm-withdrawal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

const msgTooManyDigits = "Amount has too many digits"

// toAppError maps a calculator failure to its client-facing error, with
// amounts rendered by format.
func toAppError(err error, format domain.AmountFormatter) *apperror.AppError {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var we *domain.WithdrawalError
	if errors.As(err, &we) {
		switch we.Kind {
		case domain.FailureInvalidArgument:
			return apperror.InvalidArgument(we.Describe(format), err)
		case domain.FailureNoteUnavailable:
			return apperror.NoteUnavailable(we.Describe(format), err)
		}
	}
	return apperror.InternalError(err)
}

// bindError maps a request binding failure to a validation error without
// echoing decoder internals.
func bindError(err error, maxBody int64) *apperror.AppError {
	var maxErr *http.MaxBytesError
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &maxErr):
		return apperror.ErrPayloadTooLarge(maxBody)
	case errors.Is(err, io.EOF):
		return apperror.Validation("Request body is required")
	case errors.As(err, &verrs):
		return apperror.Validation(msgTooManyDigits)
	default:
		return apperror.Validation("Amount must be a valid number")
	}
}
