// Package nflverse downloads the nflverse release assets (rosters, season
// stats, schedules) and decodes them into provider tables.
//
// Assets are plain CSV files served from GitHub releases. A year that has no
// asset answers 404, which surfaces as provider.ErrNoData so callers can fall
// back to another source.
package nflverse

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/albapepper/ballknowledge-data/internal/provider"
)

// Client fetches nflverse CSV assets.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	schedulesURL string
	limiter      *rate.Limiter
	breaker      *gobreaker.CircuitBreaker
	logger       *slog.Logger
}

// NewClient creates an nflverse client. baseURL is the releases download root
// (".../nflverse-data/releases/download"); schedulesURL points at games.csv.
func NewClient(baseURL, schedulesURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient:   &http.Client{Timeout: timeout},
		baseURL:      baseURL,
		schedulesURL: schedulesURL,
		// Bulk assets; a small burst is enough to stay polite.
		limiter: rate.NewLimiter(rate.Every(250*time.Millisecond), 2),
		breaker: provider.NewBreaker("nflverse", logger),
		logger:  logger,
	}
}

// getCSV downloads one asset and decodes it into a table named name.
func (c *Client) getCSV(ctx context.Context, name, u string) (*provider.Table, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, name, u)
	})
	if err != nil {
		return nil, provider.BreakerError(name, err)
	}
	tbl := out.(*provider.Table)
	if tbl.Len() == 0 {
		return nil, provider.NoData(name)
	}
	return tbl, nil
}

func (c *Client) fetch(ctx context.Context, name, u string) (*provider.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, */*")

	c.logger.Debug("Downloading nflverse asset", "asset", name, "url", u)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, provider.Unavailable(name, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, provider.NoData(name)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, provider.Unavailable(name, fmt.Errorf("returned %d: %s", resp.StatusCode, body))
	}

	tbl, err := decodeCSV(name, resp.Body)
	if err != nil {
		return nil, provider.Unavailable(name, err)
	}
	return tbl, nil
}

// decodeCSV reads a header row followed by value rows. Values stay strings;
// provider.Row coerces them on read.
func decodeCSV(name string, r io.Reader) (*provider.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	headers, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return provider.NewTable(name, nil, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var rows [][]interface{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(rows)+1, err)
		}
		row := make([]interface{}, len(rec))
		for i, v := range rec {
			row[i] = v
		}
		rows = append(rows, row)
	}
	return provider.NewTable(name, headers, rows), nil
}
