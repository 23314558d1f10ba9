package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/ballknowledge-data/internal/api/handler"
	"github.com/albapepper/ballknowledge-data/internal/cache"
	"github.com/albapepper/ballknowledge-data/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		CORSAllowOrigins:  []string{"http://localhost:5173"},
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.New(handler.Deps{Cache: cache.New(true), NFLFirstSeason: 2000, Logger: logger})
	return NewRouter(h, cfg, logger)
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()
	router := newTestRouter(testConfig())

	tests := []struct {
		path   string
		status int
	}{
		{"/", http.StatusOK},
		{"/health", http.StatusOK},
		{"/health/cache", http.StatusOK},
		{"/teams", http.StatusOK},
		{"/random", http.StatusOK},
		{"/career/random", http.StatusServiceUnavailable},
		{"/career/2544", http.StatusServiceUnavailable},
		{"/nfl/health", http.StatusOK},
		{"/nfl/teams", http.StatusOK},
		{"/nfl/random", http.StatusOK},
		{"/nfl/roster/KC/abc", http.StatusBadRequest},
		{"/nfl/career/random", http.StatusServiceUnavailable},
		{"/nfl/career/00-0033873", http.StatusServiceUnavailable},
		{"/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := serve(router, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.status, rec.Code, tt.path)
	}
}

func TestRouter_TimingHeader(t *testing.T) {
	t.Parallel()
	router := newTestRouter(testConfig())

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Regexp(t, `^\d+\.\d{2}ms$`, rec.Header().Get("X-Process-Time"))
}

func TestRouter_CORS(t *testing.T) {
	t.Parallel()
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/teams", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := serve(router, req)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/teams", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = serve(router, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Hour
	router := newTestRouter(cfg)

	// Burst is half the window quota.
	req := func() *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/health", nil)
		r.RemoteAddr = "10.0.0.1:4321"
		return serve(router, r)
	}
	assert.Equal(t, http.StatusOK, req().Code)
	rec := req()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "3600", rec.Header().Get("Retry-After"))

	other := httptest.NewRequest(http.MethodGet, "/health", nil)
	other.RemoteAddr = "10.0.0.2:4321"
	assert.Equal(t, http.StatusOK, serve(router, other).Code)
}
