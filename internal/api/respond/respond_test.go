package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_SourceHeader(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		cached bool
		want   string
	}{
		{false, "MISS"},
		{true, "HIT"},
	} {
		p, err := Encode(map[string]bool{"cached": tt.cached}, time.Hour, SourceOf(tt.cached))
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		Serve(rec, httptest.NewRequest(http.MethodGet, "/", nil), p)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, tt.want, rec.Header().Get("X-Cache"))
		assert.Equal(t, "public, max-age=3600, stale-while-revalidate=1800", rec.Header().Get("Cache-Control"))
		assert.JSONEq(t, string(p.Data), rec.Body.String())
	}
}

func TestServe_NotModified(t *testing.T) {
	t.Parallel()

	p, err := Encode([]int{1, 2, 3}, 0, Cached)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", p.ETag)
	rec := httptest.NewRecorder()
	Serve(rec, req, p)

	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Equal(t, p.ETag, rec.Header().Get("ETag"))
	assert.Empty(t, rec.Body.Bytes())
}

func TestEncode_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := Encode(make(chan int), time.Hour, Fetched)
	assert.Error(t, err)
}

func TestError_Envelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Error(rec, http.StatusTooManyRequests, ErrorBody{Code: "RATE_LIMITED", Message: "Too many requests"})

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "RATE_LIMITED", resp.Error.Code)
	assert.Empty(t, resp.Error.Detail)
}
