package response

import (
	"errors"
	"net/http"

	"atm-withdrawal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorTypeKey is the gin context key holding the errorType of the last error
// response, read by the audit middleware.
const ErrorTypeKey = "error_type"

// ErrorResponse is the error body returned for every failed request.
type ErrorResponse struct {
	Message    string `json:"message"`
	ErrorType  string `json:"errorType"`
	StatusCode int    `json:"statusCode"`
}

// OK sends a 200 response with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	b := body(err)
	c.Set(ErrorTypeKey, b.ErrorType)
	c.JSON(b.StatusCode, b)
}

// Abort writes the error response and stops the handler chain.
func Abort(c *gin.Context, err error) {
	b := body(err)
	c.Set(ErrorTypeKey, b.ErrorType)
	c.AbortWithStatusJSON(b.StatusCode, b)
}

func body(err error) ErrorResponse {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return ErrorResponse{
			Message:    appErr.Message,
			ErrorType:  appErr.Code,
			StatusCode: appErr.HTTPStatus,
		}
	}

	// Unknown error -> 500
	return ErrorResponse{
		Message:    apperror.InternalMessage,
		ErrorType:  apperror.TypeInternalServerError,
		StatusCode: http.StatusInternalServerError,
	}
}
