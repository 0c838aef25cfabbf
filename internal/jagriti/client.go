package jagriti

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/JustJay7/jagriti-case-api/internal/config"
	"github.com/JustJay7/jagriti-case-api/pkg/logger"
)

// Client performs HTTP calls against the Jagriti portal API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	maxRetries  int
	backoffBase time.Duration
	logger      *logger.Logger

	// sleep is swapped out in tests to observe backoff delays
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates a client for the configured Jagriti portal
func NewClient(cfg *config.Config, log *logger.Logger) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:     cfg.JagritiBaseURL,
		userAgent:   cfg.UserAgent,
		maxRetries:  cfg.MaxRetries,
		backoffBase: cfg.RetryBackoffBase,
		logger:      log,
		sleep:       sleepContext,
	}
}

// BaseURL returns the configured portal base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// StatesAndCircuitBenches fetches the full state commission directory,
// including inactive entries and circuit benches. Filtering is up to the caller.
func (c *Client) StatesAndCircuitBenches(ctx context.Context) ([]Commission, error) {
	env, err := c.doRequest(ctx, "states", http.MethodGet, statesPath, nil, nil)
	if err != nil {
		return nil, err
	}

	var states []Commission
	if err := json.Unmarshal(env.Data, &states); err != nil {
		return nil, &APIError{Kind: KindMalformed, Op: "states", Err: err}
	}
	return states, nil
}

// DistrictCommissions fetches the district commission directory for a state
func (c *Client) DistrictCommissions(ctx context.Context, stateCommissionID int) ([]Commission, error) {
	params := url.Values{}
	params.Set("commissionId", strconv.Itoa(stateCommissionID))

	env, err := c.doRequest(ctx, "districts", http.MethodGet, districtsPath, params, nil)
	if err != nil {
		return nil, err
	}

	var districts []Commission
	if err := json.Unmarshal(env.Data, &districts); err != nil {
		return nil, &APIError{Kind: KindMalformed, Op: "districts", Err: err}
	}
	return districts, nil
}

// SearchCases executes a case search and returns the raw records in upstream order
func (c *Client) SearchCases(ctx context.Context, payload CaseSearchPayload) ([]CaseDetail, error) {
	env, err := c.doRequest(ctx, "case_search", http.MethodPost, caseSearchPath, nil, payload)
	if err != nil {
		return nil, err
	}

	var cases []CaseDetail
	if err := json.Unmarshal(env.Data, &cases); err != nil {
		return nil, &APIError{Kind: KindMalformed, Op: "case_search", Err: err}
	}
	return cases, nil
}

// doRequest is the shared request primitive. Transport failures are retried
// with exponential backoff up to the configured bound; a received HTTP error
// response or an undecodable body fails immediately.
func (c *Client) doRequest(ctx context.Context, op, method, path string, params url.Values, body interface{}) (*envelope, error) {
	for attempt := 0; ; attempt++ {
		c.logger.Debug("Calling Jagriti API", "op", op, "attempt", attempt+1)

		env, apiErr := c.attempt(ctx, op, method, path, params, body)
		if apiErr == nil {
			return env, nil
		}

		if !apiErr.retryable() || attempt >= c.maxRetries-1 {
			return nil, apiErr
		}

		delay := c.backoffBase << uint(attempt)
		c.logger.Warn("Jagriti request failed, retrying",
			"op", op,
			"attempt", attempt+1,
			"delay", delay.String(),
			"error", apiErr.Err,
		)
		if err := c.sleep(ctx, delay); err != nil {
			return nil, &APIError{Kind: KindUnreachable, Op: op, Err: err}
		}
	}
}

// attempt performs a single round trip and classifies its outcome
func (c *Client) attempt(ctx context.Context, op, method, path string, params url.Values, body interface{}) (*envelope, *APIError) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Kind: KindMalformed, Op: op, Err: fmt.Errorf("failed to encode request body: %w", err)}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, &APIError{Kind: KindUnreachable, Op: op, Err: err}
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.classifyTransportError(op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Kind: KindUnreachable, Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Kind: KindHTTP, Op: op, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, &APIError{Kind: KindMalformed, Op: op, Err: err}
	}
	return &env, nil
}

// classifyTransportError maps a failed round trip onto the error taxonomy.
// Caller cancellation is not retryable.
func (c *Client) classifyTransportError(op string, err error) *APIError {
	if errors.Is(err, context.Canceled) {
		return &APIError{Kind: KindUnreachable, Op: op, Err: err}
	}

	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return &APIError{Kind: KindTimeout, Op: op, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &APIError{Kind: KindTimeout, Op: op, Err: err}
	}
	return &APIError{Kind: KindUnreachable, Op: op, Err: err}
}

// setHeaders applies the fixed browser-like header set the portal expects
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en-GB,en-US;q=0.9,en;q=0.8")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("DNT", "1")
	req.Header.Set("Origin", c.baseURL)
	req.Header.Set("Referer", c.baseURL+"/")
	req.Header.Set("Sec-Fetch-Dest", "empty")
	req.Header.Set("Sec-Fetch-Mode", "cors")
	req.Header.Set("Sec-Fetch-Site", "same-origin")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("sec-ch-ua", `"Not;A=Brand";v="99", "Google Chrome";v="139", "Chromium";v="139"`)
	req.Header.Set("sec-ch-ua-mobile", "?0")
	req.Header.Set("sec-ch-ua-platform", `"macOS"`)
}

// sleepContext waits for d or until the context is cancelled
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
