package middleware

import (
	"net/http"
	"time"

	"atm-withdrawal/internal/core/domain"
	"atm-withdrawal/internal/core/ports"
	"atm-withdrawal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records the outcome of every request on the routes it wraps.
// Handlers publish the parsed amount and note count through the gin context;
// the error type comes from the error response, if any.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != http.MethodPost {
			return
		}

		status := c.Writer.Status()
		errorType := c.GetString(response.ErrorTypeKey)
		action := domain.AuditActionWithdrawalDispensed
		if errorType != "" || status >= http.StatusBadRequest {
			action = domain.AuditActionWithdrawalRejected
		}

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:         uuid.New(),
			RequestID:  GetRequestID(c),
			Action:     action,
			Amount:     c.GetString(CtxWithdrawalAmount),
			NoteCount:  c.GetInt64(CtxNoteCount),
			StatusCode: status,
			ErrorType:  errorType,
			ClientIP:   c.ClientIP(),
			CreatedAt:  time.Now().UTC(),
		})
	}
}
