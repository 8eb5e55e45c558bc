// Package client calls a remote gosolve tool server.
package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/njchilds90/gosolve"
)

const defaultRetryDelay = 200 * time.Millisecond

type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
	retryDelay       time.Duration
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.SetTimeout(d) }
}

// WithRetryDelay sets the base of the exponential backoff between attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) { c.retryDelay = d }
}

func New(baseURL string, retryAttempts uint, opts ...Option) *Client {
	httpClient := resty.New()
	httpClient.SetBaseURL(baseURL)
	httpClient.SetHeader("Content-Type", "application/json")

	c := &Client{
		httpClient:       httpClient,
		maxRetryAttempts: retryAttempts,
		retryDelay:       defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Close() error {
	return c.httpClient.Close()
}

// StatusError is a non-2xx response from the server.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Body)
}

// isRetryableError reports whether a failed attempt is worth repeating:
// transport errors, 5xx and 429.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= http.StatusInternalServerError ||
			statusErr.StatusCode == http.StatusTooManyRequests
	}
	return true
}

func (c *Client) withRetry(ctx context.Context, fn func() error) error {
	return retry.Do(
		func() error {
			err := fn()
			if err != nil && !isRetryableError(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(c.maxRetryAttempts+1),
		retry.Delay(c.retryDelay),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Debug("retrying tool call", "attempt", n+1, "error", err)
		}),
	)
}

func (c *Client) post(ctx context.Context, req gosolve.ToolRequest, result any) error {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(result).
		Post("/tool")
	if err != nil {
		return fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return &StatusError{StatusCode: response.StatusCode(), Body: response.String()}
	}
	return nil
}

// Call runs one tool call on the server.
func (c *Client) Call(ctx context.Context, req gosolve.ToolRequest) (gosolve.ToolResponse, error) {
	var resp gosolve.ToolResponse
	if err := c.withRetry(ctx, func() error {
		resp = gosolve.ToolResponse{}
		return c.post(ctx, req, &resp)
	}); err != nil {
		return gosolve.ToolResponse{}, err
	}
	return resp, nil
}

type solveResponse struct {
	Result gosolve.Result `json:"result"`
	Error  string         `json:"error,omitempty"`
}

// Solve runs the solve tool and decodes its typed Result. A request the
// server rejects outright, such as an unknown mode, is an error; a Result
// with the Error outcome is not.
func (c *Client) Solve(ctx context.Context, latex string, mode gosolve.Mode) (gosolve.Result, error) {
	req := gosolve.ToolRequest{
		Tool:   "solve",
		Params: map[string]interface{}{"latex": latex, "mode": string(mode)},
	}
	var resp solveResponse
	if err := c.withRetry(ctx, func() error {
		resp = solveResponse{}
		return c.post(ctx, req, &resp)
	}); err != nil {
		return gosolve.Result{}, err
	}
	if resp.Result.Outcome == "" && resp.Error != "" {
		return gosolve.Result{}, errors.New(resp.Error)
	}
	return resp.Result, nil
}
