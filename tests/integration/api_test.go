package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	httpHandler "atm-withdrawal/internal/adapter/http/handler"
	"atm-withdrawal/internal/adapter/http/middleware"
	redisStorage "atm-withdrawal/internal/adapter/storage/redis"
	"atm-withdrawal/internal/core/domain"
	"atm-withdrawal/internal/core/ports"
	"atm-withdrawal/internal/service"
	"atm-withdrawal/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack backed by in-memory Redis
// (miniredis) and an in-memory audit repository. It exercises the real HTTP
// layer, middleware, handlers, calculator, and Redis stores end-to-end.
type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
	audit  *inMemoryAuditRepo
}

type appOptions struct {
	rateLimit int64
}

func newTestApp(t *testing.T, opts appOptions) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// Start miniredis
	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	log := logger.New("debug", false)

	currency, err := domain.NewCurrency("ZAR", "R", "Rands")
	require.NoError(t, err)
	calc, err := service.NewNoteCalculator(domain.DefaultDenominations())
	require.NoError(t, err)

	hasher, err := service.NewClientHasher("integration-test-key")
	require.NoError(t, err)
	auditRepo := newInMemoryAuditRepo()

	limit := opts.rateLimit
	if limit == 0 {
		limit = 1000
	}

	router, err := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Calculator:     calc,
		Currency:       currency,
		MaxAmount:      decimal.NewNullDecimal(decimal.NewFromInt(100000)),
		AllowedOrigins: []string{"http://localhost:5173"},
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		RateLimitRules: middleware.RateLimitRules(limit, time.Hour),
		AuditSvc:       service.NewAuditService(auditRepo, hasher, log),
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		OpenAPISpec:    []byte("openapi: 3.0.3\n"),
		Logger:         log,
	})
	require.NoError(t, err)

	return &testApp{
		server: httptest.NewServer(router),
		redis:  mr,
		audit:  auditRepo,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

func (a *testApp) withdraw(t *testing.T, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(a.server.URL+"/api/withdrawal", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t, appOptions{})
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_HealthCheck_RedisDown(t *testing.T) {
	app := newTestApp(t, appOptions{})
	defer app.close()

	app.redis.SetError("LOADING Redis is loading the dataset in memory")

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestIntegration_Liveness(t *testing.T) {
	app := newTestApp(t, appOptions{})
	defer app.close()

	resp, err := http.Get(app.server.URL + "/api/withdrawal/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"healthy","service":"ATM Withdrawal API"}`, string(data))
}

func TestIntegration_WithdrawalScenarios(t *testing.T) {
	app := newTestApp(t, appOptions{})
	defer app.close()

	tests := []struct {
		amount string
		code   int
		want   string
	}{
		{"30", http.StatusOK, `{"notes":[20,10],"totalAmount":30,"noteCount":2}`},
		{"80", http.StatusOK, `{"notes":[50,20,10],"totalAmount":80,"noteCount":3}`},
		{"280", http.StatusOK, `{"notes":[100,100,50,20,10],"totalAmount":280,"noteCount":5}`},
		{"0", http.StatusOK, `{"notes":[],"totalAmount":0,"noteCount":0}`},
		{"125", http.StatusBadRequest, `{"message":"Cannot dispense R125.00. The amount cannot be formed with available notes (R100.00, R50.00, R20.00, R10.00).","errorType":"NoteUnavailable","statusCode":400}`},
		{"-130", http.StatusBadRequest, `{"message":"Amount cannot be negative. Provided: -R130.00","errorType":"InvalidArgument","statusCode":400}`},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			resp, data := app.withdraw(t, `{"amount": `+tt.amount+`}`)

			assert.Equal(t, tt.code, resp.StatusCode)
			assert.JSONEq(t, tt.want, string(data))
			assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))
		})
	}
}

func TestIntegration_AuditTrail(t *testing.T) {
	app := newTestApp(t, appOptions{})
	defer app.close()

	req, err := http.NewRequest(http.MethodPost, app.server.URL+"/api/withdrawal", strings.NewReader(`{"amount": 170}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderRequestID, "atm-test-0001")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "atm-test-0001", resp.Header.Get(middleware.HeaderRequestID))

	// audit writes are asynchronous
	var entry domain.AuditLog
	require.Eventually(t, func() bool {
		var ok bool
		entry, ok = app.audit.ByRequestID("atm-test-0001")
		return ok
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, domain.AuditActionWithdrawalDispensed, entry.Action)
	assert.Equal(t, "170", entry.Amount)
	assert.Equal(t, int64(3), entry.NoteCount)
	assert.Empty(t, entry.ClientIP)
	assert.Len(t, entry.ClientHash, 32)
}

func TestIntegration_RateLimit(t *testing.T) {
	app := newTestApp(t, appOptions{rateLimit: 3})
	defer app.close()

	for i := 0; i < 3; i++ {
		resp, _ := app.withdraw(t, `{"amount": 10}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "3", resp.Header.Get("X-RateLimit-Limit"))
	}

	resp, data := app.withdraw(t, `{"amount": 10}`)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Contains(t, string(data), `"errorType":"RateLimitExceeded"`)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))

	// rejected requests are audited too
	require.Eventually(t, func() bool { return app.audit.Len() == 4 }, 2*time.Second, 10*time.Millisecond)
}

func TestIntegration_RateLimit_RedisDownAllowsRequests(t *testing.T) {
	app := newTestApp(t, appOptions{rateLimit: 1})
	defer app.close()

	app.redis.SetError("READONLY You can't write against a read only replica.")

	for i := 0; i < 3; i++ {
		resp, _ := app.withdraw(t, `{"amount": 10}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

func TestIntegration_CORS(t *testing.T) {
	app := newTestApp(t, appOptions{})
	defer app.close()

	req, err := http.NewRequest(http.MethodOptions, app.server.URL+"/api/withdrawal", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestIntegration_FormClient(t *testing.T) {
	app := newTestApp(t, appOptions{})
	defer app.close()

	resp, err := http.PostForm(app.server.URL+"/", url.Values{"amount": {"80"}})
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(data), "<strong>R80.00</strong>")
}

func TestIntegration_Swagger(t *testing.T) {
	app := newTestApp(t, appOptions{})
	defer app.close()

	resp, err := http.Get(app.server.URL + "/swagger/spec")
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "openapi: 3.0.3\n", string(data))
}
