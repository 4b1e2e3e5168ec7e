package httpclient

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	jitter = 0.25

	// maxRetryAfter caps how long a Retry-After header can stall a call.
	maxRetryAfter = 30 * time.Second
)

// StatusError reports a retryable status that persisted through every
// attempt.
type StatusError struct {
	Service    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s answered %d %s", e.Service, e.StatusCode, http.StatusText(e.StatusCode))
}

// send performs req with the retry policy. Only reads get more than one
// attempt. Writes are sent once: a failed create must not duplicate, and a
// failed position or auto-save write is handled by its caller.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	var prev *http.Response
	attempt := func() (*http.Response, error) {
		if prev != nil {
			discard(prev)
			prev = nil
		}
		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		prev = resp
		serr := &StatusError{Service: c.service, StatusCode: resp.StatusCode}
		if wait, ok := retryAfter(resp.Header); ok {
			return resp, fmt.Errorf("%w: %w", serr, backoff.RetryAfter(int(wait/time.Second)))
		}
		return resp, serr
	}

	return backoff.Retry(ctx, attempt,
		backoff.WithBackOff(&backoff.ExponentialBackOff{
			InitialInterval:     c.retry.InitialInterval,
			RandomizationFactor: jitter,
			Multiplier:          c.retry.Multiplier,
			MaxInterval:         c.retry.MaxInterval,
		}),
		backoff.WithMaxTries(c.maxTries(req.Method)),
		backoff.WithNotify(func(err error, wait time.Duration) {
			c.logger.WarnContext(ctx, "retrying request",
				slog.String("peer_service", c.service),
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Duration("backoff", wait),
				slog.Any("error", err),
			)
		}),
	)
}

func (c *Client) maxTries(method string) uint {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return uint(max(c.retry.MaxAttempts, 1))
	default:
		return 1
	}
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// retryAfter reads a delay-seconds Retry-After header. HTTP-date values are
// ignored and the regular backoff applies.
func retryAfter(h http.Header) (time.Duration, bool) {
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs < 0 {
		return 0, false
	}
	return min(time.Duration(secs)*time.Second, maxRetryAfter), true
}

// discard drains and closes resp so the connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
