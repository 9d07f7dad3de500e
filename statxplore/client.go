// Package statxplore is a client for the Department for Work and Pensions'
// Stat-Xplore statistical data service. FetchTable retrieves a table for a
// pre-generated JSON query and flattens the multi-dimensional response into a
// two-axis table.
package statxplore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/dp-statxplore-csv-exporter/cube"
	"github.com/ONSdigital/log.go/v2/log"
)

const (
	// DefaultURL is the public Stat-Xplore REST endpoint.
	DefaultURL = "https://stat-xplore.dwp.gov.uk/webapi/rest/v1"

	// DefaultMaxRetries is the total request attempt budget for transient
	// failures.
	DefaultMaxRetries = 3

	// DefaultRetryInterval is the base wait between attempts; the wait grows
	// linearly with the attempt number.
	DefaultRetryInterval = 500 * time.Millisecond

	apiKeyHeader  = "APIKey"
	tablePath     = "/table"
	rateLimitPath = "/rate_limit"
)

//go:generate moq -out mock/http_client.go -pkg mock . HTTPClient

// HTTPClient is the outbound transport capability required by the client.
// dp-net's http.Clienter satisfies it.
type HTTPClient interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Config holds the client configuration. Zero values fall back to the
// defaults above.
type Config struct {
	URL            string
	APIKey         string
	MaxRetries     int
	RetryInterval  time.Duration
	RequestTimeout time.Duration
}

// Client accesses Stat-Xplore. It holds no mutable state, so a single Client
// may be shared across goroutines.
type Client struct {
	url            string
	apiKey         string
	maxRetries     int
	retryInterval  time.Duration
	requestTimeout time.Duration
	httpCli        HTTPClient
}

// NewClient creates a Stat-Xplore client with the given config and transport.
func NewClient(cfg Config, httpCli HTTPClient) *Client {
	c := &Client{
		url:            strings.TrimSuffix(cfg.URL, "/"),
		apiKey:         cfg.APIKey,
		maxRetries:     cfg.MaxRetries,
		retryInterval:  cfg.RetryInterval,
		requestTimeout: cfg.RequestTimeout,
		httpCli:        httpCli,
	}
	if c.url == "" {
		c.url = DefaultURL
	}
	if c.maxRetries <= 0 {
		c.maxRetries = DefaultMaxRetries
	}
	if c.retryInterval <= 0 {
		c.retryInterval = DefaultRetryInterval
	}
	return c
}

// Exchange records the underlying HTTP exchange of a successful call, for
// troubleshooting.
type Exchange struct {
	StatusCode int
	Headers    http.Header
	Elapsed    time.Duration
	Attempts   int
}

// Options control the shape of a FetchTable result. The zero value gives the
// default behaviour: pivot the cube, no geography codes.
type Options struct {
	// RawCube skips the pivot and returns the parsed cube unmodified.
	RawCube bool
	// IncludeCodes appends ONS geography code columns to the pivoted table.
	IncludeCodes bool
}

// FetchResult bundles the table (or raw cube), the unmodified response body
// and the diagnostic record of the HTTP exchange.
type FetchResult struct {
	Table    *cube.Table
	Cube     *cube.Cube
	Body     []byte
	Exchange Exchange
}

// FetchTable gets a table from Stat-Xplore. It either fully succeeds or
// returns one typed error; no partial results are produced.
func (c *Client) FetchTable(ctx context.Context, src QuerySource, opts Options) (*FetchResult, error) {
	payload, err := src.Load()
	if err != nil {
		return nil, err
	}

	body, exchange, err := c.Execute(ctx, payload)
	if err != nil {
		return nil, err
	}

	parsed, err := cube.Parse(body)
	if err != nil {
		return nil, err
	}

	result := &FetchResult{
		Body:     body,
		Exchange: *exchange,
	}

	if opts.RawCube {
		result.Cube = parsed
		return result, nil
	}

	table := parsed.Pivot()
	if opts.IncludeCodes {
		cube.AddGeographyCodes(table, parsed.Fields)
	}
	result.Table = table

	return result, nil
}

// Execute sends the canonical query to the /table endpoint with the API key
// attached, retrying transient failures (gateway errors, connection failures,
// per-attempt timeouts) up to the retry budget with a linearly increasing
// wait. Terminal failures are classified into the typed errors of this
// package. The API key is never logged.
func (c *Client) Execute(ctx context.Context, payload json.RawMessage) ([]byte, *Exchange, error) {
	start := time.Now()

	var lastStatus int
	var lastErr error

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if attempt > 1 {
			wait := time.Duration(attempt-1) * c.retryInterval
			select {
			case <-ctx.Done():
				return nil, nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		status, headers, body, err := c.post(ctx, payload)
		if err != nil {
			if ctx.Err() != nil {
				return nil, nil, ctx.Err()
			}
			// Connection-level failure or per-attempt timeout: transient.
			lastStatus, lastErr = 0, err
			log.Info(ctx, "transient failure sending stat-xplore query, will retry", log.Data{
				"attempt":     attempt,
				"max_retries": c.maxRetries,
				"error":       err.Error(),
			})
			continue
		}

		switch {
		case status >= 200 && status < 300:
			return body, &Exchange{
				StatusCode: status,
				Headers:    headers,
				Elapsed:    time.Since(start),
				Attempts:   attempt,
			}, nil

		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			return nil, nil, &AuthenticationError{StatusCode: status}

		case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
			return nil, nil, &RequestFailedError{StatusCode: status, Detail: errorDetail(body)}

		case status == http.StatusBadGateway || status == http.StatusServiceUnavailable || status == http.StatusGatewayTimeout:
			lastStatus, lastErr = status, nil
			log.Info(ctx, "stat-xplore temporarily unavailable, will retry", log.Data{
				"attempt":     attempt,
				"max_retries": c.maxRetries,
				"status_code": status,
			})
			continue

		default:
			return nil, nil, &UnexpectedResponseError{StatusCode: status, Body: body}
		}
	}

	return nil, nil, &ServiceUnavailableError{
		Attempts:   c.maxRetries,
		StatusCode: lastStatus,
		Err:        lastErr,
	}
}

// post performs a single authenticated POST attempt, honouring the
// per-attempt timeout.
func (c *Client) post(ctx context.Context, payload json.RawMessage) (int, http.Header, []byte, error) {
	if c.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.requestTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+tablePath, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to create stat-xplore request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpCli.Do(ctx, req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer closeResponseBody(ctx, resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to read stat-xplore response body: %w", err)
	}

	return resp.StatusCode, resp.Header, body, nil
}

// Checker probes the rate-limit endpoint and updates the provided healthcheck
// state.
func (c *Client) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+rateLimitPath, http.NoBody)
	if err != nil {
		return state.Update(healthcheck.StatusCritical, err.Error(), 0)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpCli.Do(ctx, req)
	if err != nil {
		return state.Update(healthcheck.StatusCritical, err.Error(), 0)
	}
	defer closeResponseBody(ctx, resp)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return state.Update(healthcheck.StatusOK, "stat-xplore is ok", resp.StatusCode)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return state.Update(healthcheck.StatusCritical, "stat-xplore authentication failed", resp.StatusCode)
	default:
		return state.Update(healthcheck.StatusCritical, "stat-xplore functionality is unavailable or non-functioning", resp.StatusCode)
	}
}

// errorDetail recovers the service's error message from a rejection body.
func errorDetail(body []byte) string {
	var detail struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &detail); err == nil {
		if detail.Message != "" {
			return detail.Message
		}
		if detail.Error != "" {
			return detail.Error
		}
	}
	return strings.TrimSpace(string(body))
}

func closeResponseBody(ctx context.Context, resp *http.Response) {
	if resp.Body == nil {
		return
	}
	if err := resp.Body.Close(); err != nil {
		log.Error(ctx, "error closing http response body", err)
	}
}
