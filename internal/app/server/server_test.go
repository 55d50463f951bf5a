package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdash/internal/platform/config"
)

func testConfig() config.Config {
	return config.Config{
		Addr:            "127.0.0.1:0",
		Environment:     "development",
		LogLevel:        "info",
		Timezone:        "Asia/Manila",
		ReviewDueDays:   30,
		ShutdownTimeout: time.Second,
		MetricsEnabled:  true,
	}
}

func TestNewServesFixtures(t *testing.T) {
	app, err := New(context.Background(), testConfig(), nil)
	require.NoError(t, err)
	defer app.Close()

	for _, path := range []string{"/healthz", "/readyz", "/api/v1/dashboard/overview", "/api/v1/dashboard/employees"} {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"), path)
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"), path)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app, err := New(context.Background(), testConfig(), nil)
	require.NoError(t, err)
	defer app.Close()

	app.Router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/payroll/pay-404/payslip", nil))

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data struct {
			RequestsTotal     uint64            `json:"requestsTotal"`
			ClientErrorsTotal uint64            `json:"clientErrorsTotal"`
			RequestsByRoute   map[string]uint64 `json:"requestsByRoute"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, uint64(1), env.Data.RequestsTotal)
	assert.Equal(t, uint64(1), env.Data.ClientErrorsTotal)
	assert.Equal(t, uint64(1), env.Data.RequestsByRoute["GET /api/v1/payroll/{recordID}/payslip"])
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false
	app, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer app.Close()

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewRejectsBadFixturesPath(t *testing.T) {
	cfg := testConfig()
	cfg.FixturesPath = "does/not/exist.yaml"
	_, err := New(context.Background(), cfg, nil)
	require.Error(t, err)
}

func TestRunShutsDownOnCancel(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	cfg := testConfig()
	cfg.Addr = addr
	cfg.ReviewDigestSchedule = "0 8 * * 1"
	app, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer app.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
