package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kino-cli/logger"
	"kino-cli/model"
)

const (
	defaultUserAgent   = "kino-cli/1.0"
	defaultTimeout     = 30 * time.Second
	defaultMaxAttempts = 1
	defaultRetryBase   = 200 * time.Millisecond
	defaultRetryCap    = 1200 * time.Millisecond
	errorBodyLimit     = 8 << 10
	fallbackMessage    = "Request failed"
)

// Client wraps HTTP access to the cinema booking backend.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	maxAttempts int
	retryBase   time.Duration
	retryCap    time.Duration
}

// Config configures a Client. Zero values fall back to defaults.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	MaxAttempts int
	HTTPClient  *http.Client
}

// NewClient creates a new API client. MaxAttempts above one enables retries
// for GET requests only.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = defaultMaxAttempts
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:   defaultUserAgent,
		maxAttempts: attempts,
		retryBase:   defaultRetryBase,
		retryCap:    defaultRetryCap,
	}
}

// BaseURL returns the normalized API base the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type request struct {
	method string
	path   string
	query  url.Values
	token  string
	body   any
}

func (r request) endpoint(base string) string {
	endpoint := base + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}
	return endpoint
}

// doJSON sends req and decodes a JSON response into out. A nil out accepts
// any successful response, including 204 No Content.
func (c *Client) doJSON(ctx context.Context, req request, out any) error {
	res, endpoint, err := c.send(ctx, req, "application/json")
	if err != nil {
		return err
	}
	defer res.Body.Close()

	success := res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices
	if success && res.StatusCode == http.StatusNoContent {
		return nil
	}

	contentType := res.Header.Get("Content-Type")
	if !isJSON(contentType) {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, errorBodyLimit))
		if !success {
			return &ResponseError{
				Kind:        KindTransport,
				StatusCode:  res.StatusCode,
				Endpoint:    endpoint,
				ContentType: contentType,
			}
		}
		if out == nil {
			return nil
		}
		return &ResponseError{
			Kind:        KindContentType,
			StatusCode:  res.StatusCode,
			Endpoint:    endpoint,
			ContentType: contentType,
		}
	}

	if !success {
		return newAPIError(res, endpoint)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return nil
}

// doBlob fetches a binary payload. The JSON content guard does not apply.
func (c *Client) doBlob(ctx context.Context, req request) (model.Blob, error) {
	res, endpoint, err := c.send(ctx, req, "*/*")
	if err != nil {
		return model.Blob{}, err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		if isJSON(res.Header.Get("Content-Type")) {
			return model.Blob{}, newAPIError(res, endpoint)
		}
		return model.Blob{}, &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Endpoint:   endpoint,
			Message:    fallbackMessage,
		}
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return model.Blob{}, fmt.Errorf("read response from %s: %w", endpoint, err)
	}
	return model.Blob{ContentType: res.Header.Get("Content-Type"), Data: data}, nil
}

// listJSON decodes a JSON array, failing with a shape error when the payload
// is some other JSON value.
func listJSON[T any](ctx context.Context, c *Client, req request, what string) ([]T, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, req, &raw); err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &ResponseError{
			Kind:     KindShape,
			Endpoint: req.endpoint(c.baseURL),
			Detail:   what,
		}
	}
	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", what, err)
	}
	return items, nil
}

func (c *Client) send(ctx context.Context, req request, accept string) (*http.Response, string, error) {
	endpoint := req.endpoint(c.baseURL)

	var payload []byte
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return nil, endpoint, fmt.Errorf("encode request: %w", err)
		}
		payload = encoded
	}

	maxAttempts := 1
	if req.method == http.MethodGet && c.maxAttempts > 1 {
		maxAttempts = c.maxAttempts
	}

	requestID := logger.NewRequestID()
	log := logger.WithRequestID(requestID).With("method", req.method, "endpoint", endpoint)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, body)
		if err != nil {
			return nil, endpoint, fmt.Errorf("create request: %w", err)
		}
		httpReq.Header.Set("User-Agent", c.userAgent)
		httpReq.Header.Set("Accept", accept)
		httpReq.Header.Set("X-Request-ID", requestID)
		if payload != nil {
			httpReq.Header.Set("Content-Type", "application/json")
		}
		if req.token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+req.token)
		}

		started := time.Now()
		res, err := c.httpClient.Do(httpReq)
		if err != nil {
			log.Warn("request failed", "attempt", attempt, "error", err)
			if c.shouldRetryNetworkError(err) && attempt < maxAttempts {
				if waitErr := c.waitRetry(ctx, attempt); waitErr != nil {
					return nil, endpoint, waitErr
				}
				continue
			}
			return nil, endpoint, fmt.Errorf("request failed: %w", err)
		}
		log.Debug("request completed", "attempt", attempt, "status", res.StatusCode, "duration", time.Since(started))

		if c.shouldRetryStatus(res.StatusCode) && attempt < maxAttempts {
			_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, errorBodyLimit))
			_ = res.Body.Close()
			if waitErr := c.waitRetry(ctx, attempt); waitErr != nil {
				return nil, endpoint, waitErr
			}
			continue
		}
		return res, endpoint, nil
	}

	return nil, endpoint, errors.New("request failed after retries")
}

func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/json")
}

func (c *Client) shouldRetryStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func (c *Client) shouldRetryNetworkError(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (c *Client) waitRetry(ctx context.Context, attempt int) error {
	timer := time.NewTimer(c.retryDelay(attempt))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) retryDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	base := c.retryBase
	if base <= 0 {
		base = defaultRetryBase
	}
	limit := c.retryCap
	if limit <= 0 {
		limit = defaultRetryCap
	}

	delay := base
	for i := 1; i < attempt; i++ {
		if delay >= limit/2 {
			return limit
		}
		delay *= 2
	}
	if delay > limit {
		return limit
	}
	return delay
}
