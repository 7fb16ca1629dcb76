// Shared HTTP helper for the job board adapters.
// One GET, JSON decode, small bounded retry on throttling and 5xx.

package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	maxAttempts    = 3
	baseDelay      = 500 * time.Millisecond
)

// HTTPError carries status and body for non-2xx responses.
type HTTPError struct {
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: GET %s status=%d body=%s", e.URL, e.StatusCode, bodySnippet(e.Body))
}

func bodySnippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}

// Client wraps an http.Client with retry behavior suitable for the
// rate-limited job board APIs.
type Client struct {
	hc *http.Client
}

func NewClient() *Client {
	return &Client{hc: &http.Client{Timeout: defaultTimeout}}
}

// GetJSON fetches url and decodes the response body into out.
// 429 and 5xx responses are retried with backoff before giving up.
func (c *Client) GetJSON(ctx context.Context, url string, header http.Header, out any) error {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		for k, vs := range header {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}

		resp, err := c.hc.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("http GET: %w", err)
			if attempt < maxAttempts {
				if err := sleepBackoff(ctx, attempt, 0); err != nil {
					return err
				}
				continue
			}
			return lastErr
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if out == nil {
				return nil
			}
			if err := json.Unmarshal(body, out); err != nil {
				return fmt.Errorf("json unmarshal: %w", err)
			}
			return nil
		}

		herr := &HTTPError{URL: url, StatusCode: resp.StatusCode, Body: body}
		if !retryable(resp.StatusCode) || attempt == maxAttempts {
			return herr
		}
		lastErr = herr
		if err := sleepBackoff(ctx, attempt, retryAfter(resp)); err != nil {
			return err
		}
	}

	return lastErr
}

func retryable(code int) bool {
	return code == http.StatusTooManyRequests || (code >= 500 && code <= 599)
}

func sleepBackoff(ctx context.Context, attempt int, after time.Duration) error {
	delay := after
	if delay <= 0 {
		delay = baseDelay * time.Duration(1<<(attempt-1))
	}
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// retryAfter parses the Retry-After header, seconds form only.
// Returns 0 when missing or invalid.
func retryAfter(resp *http.Response) time.Duration {
	v := strings.TrimSpace(resp.Header.Get("Retry-After"))
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
