package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atm-withdrawal/internal/core/domain"
	"atm-withdrawal/internal/core/ports/mocks"
	"atm-withdrawal/pkg/apperror"
	"atm-withdrawal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func auditRouter(mockAudit *mocks.MockAuditService, h gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.POST("/api/withdrawal", AuditLog(mockAudit), h)
	r.GET("/api/withdrawal/health", AuditLog(mockAudit), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	return r
}

func expectAudit(t *testing.T, mockAudit *mocks.MockAuditService) <-chan *domain.AuditLog {
	t.Helper()
	got := make(chan *domain.AuditLog, 1)
	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry *domain.AuditLog) {
			got <- entry
		},
	)
	return got
}

func waitAudit(t *testing.T, got <-chan *domain.AuditLog) *domain.AuditLog {
	t.Helper()
	select {
	case entry := <-got:
		return entry
	case <-time.After(time.Second):
		t.Fatal("audit not called")
		return nil
	}
}

func TestAuditLog_WithdrawalDispensed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)
	got := expectAudit(t, mockAudit)

	r := auditRouter(mockAudit, func(c *gin.Context) {
		c.Set(CtxWithdrawalAmount, "80")
		c.Set(CtxNoteCount, int64(3))
		c.JSON(http.StatusOK, gin.H{"noteCount": 3})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/withdrawal", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	entry := waitAudit(t, got)
	assert.Equal(t, domain.AuditActionWithdrawalDispensed, entry.Action)
	assert.Equal(t, "req-42", entry.RequestID)
	assert.Equal(t, "80", entry.Amount)
	assert.Equal(t, int64(3), entry.NoteCount)
	assert.Equal(t, http.StatusOK, entry.StatusCode)
	assert.Empty(t, entry.ErrorType)
	assert.NotEmpty(t, entry.ClientIP)
}

func TestAuditLog_WithdrawalRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)
	got := expectAudit(t, mockAudit)

	r := auditRouter(mockAudit, func(c *gin.Context) {
		c.Set(CtxWithdrawalAmount, "125")
		response.Error(c, apperror.NoteUnavailable("Cannot dispense R125.00.", nil))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/withdrawal", nil))

	entry := waitAudit(t, got)
	assert.Equal(t, domain.AuditActionWithdrawalRejected, entry.Action)
	assert.Equal(t, "125", entry.Amount)
	assert.Equal(t, int64(0), entry.NoteCount)
	assert.Equal(t, http.StatusBadRequest, entry.StatusCode)
	assert.Equal(t, apperror.TypeNoteUnavailable, entry.ErrorType)
}

func TestAuditLog_RecordsRequestsStoppedEarlier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)
	got := expectAudit(t, mockAudit)

	r := gin.New()
	r.POST("/api/withdrawal",
		AuditLog(mockAudit),
		func(c *gin.Context) { response.Abort(c, apperror.ErrRateLimitExceeded()) },
		func(c *gin.Context) { t.Error("handler must not run") },
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/withdrawal", nil))

	entry := waitAudit(t, got)
	assert.Equal(t, domain.AuditActionWithdrawalRejected, entry.Action)
	assert.Equal(t, apperror.TypeRateLimitExceeded, entry.ErrorType)
	assert.Empty(t, entry.Amount)
}

func TestAuditLog_SkipsGET(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)
	// No expectations - Log should NOT be called for GET

	r := auditRouter(mockAudit, func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/withdrawal/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
