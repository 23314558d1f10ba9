// Package nbastats is the HTTP client for the stats.nba.com endpoints the
// roster and career pipelines read.
//
// Every endpoint answers with {"resultSets":[{name, headers, rowSet}]}
// (a few answer with a singular "resultSet"). The host rejects requests
// without browser-like headers and throttles aggressive callers, so calls go
// through a fixed-interval limiter and a circuit breaker.
package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/albapepper/ballknowledge-data/internal/provider"
)

// Client is the shared HTTP client for all stats.nba.com endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// NewClient creates a client that waits at least delay between calls.
func NewClient(baseURL string, delay, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(limit, 1),
		breaker:    provider.NewBreaker("nbastats", logger),
		logger:     logger,
	}
}

// browserHeaders are required by stats.nba.com; without them requests hang.
var browserHeaders = map[string]string{
	"Accept":             "application/json, text/plain, */*",
	"Accept-Language":    "en-US,en;q=0.9",
	"Origin":             "https://www.nba.com",
	"Referer":            "https://www.nba.com/",
	"User-Agent":         "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36",
	"x-nba-stats-origin": "stats",
	"x-nba-stats-token":  "true",
}

type resultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`
}

type envelope struct {
	ResultSets []resultSet `json:"resultSets"`
	ResultSet  *resultSet  `json:"resultSet"`
}

// get performs a throttled GET and decodes every result set.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]*provider.Table, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, endpoint, params)
	})
	if err != nil {
		return nil, provider.BreakerError(endpoint, err)
	}
	return out.([]*provider.Table), nil
}

func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) ([]*provider.Table, error) {
	u := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, provider.Unavailable(endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, provider.Unavailable(endpoint, fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, provider.Unavailable(endpoint,
			fmt.Errorf("returned %d: %s", resp.StatusCode, truncate(body, 200)))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, provider.Unavailable(endpoint, fmt.Errorf("decode response: %w", err))
	}
	sets := env.ResultSets
	if len(sets) == 0 && env.ResultSet != nil {
		sets = []resultSet{*env.ResultSet}
	}

	tables := make([]*provider.Table, 0, len(sets))
	for _, s := range sets {
		tables = append(tables, provider.NewTable(s.Name, s.Headers, s.RowSet))
	}
	return tables, nil
}

// table fetches an endpoint and returns the named result set, or the first
// one when name is empty. An empty or missing set is ErrNoData.
func (c *Client) table(ctx context.Context, endpoint string, params url.Values, name string) (*provider.Table, error) {
	tables, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	for i, t := range tables {
		if (name == "" && i == 0) || t.Name == name {
			if t.Len() == 0 {
				return nil, provider.NoData(endpoint)
			}
			return t, nil
		}
	}
	return nil, provider.NoData(endpoint)
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
