// Package httpclient is the outbound HTTP stack todoctl uses to reach the
// todo board API. Each call passes through a circuit breaker and an
// optional rate limiter, is traced and measured, and idempotent calls are
// retried with exponential backoff:
//
//	c := httpclient.New(&cfg.Client, "todo-board-api", metrics, logger)
//	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL()+"/todos", http.NoBody)
//	resp, err := c.Do(ctx, req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/todo-board/internal/platform/config"
	"github.com/jsamuelsen11/todo-board/internal/platform/logging"
	"github.com/jsamuelsen11/todo-board/internal/platform/telemetry"
)

// ErrCircuitOpen is returned while the breaker rejects calls.
var ErrCircuitOpen = errors.New("circuit breaker open")

// Client sends requests to one downstream service.
type Client struct {
	http    *http.Client
	baseURL string
	service string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter
	retry   config.RetryConfig
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a client for the service named service. metrics may be nil.
func New(cfg *config.ClientConfig, service string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	logger = logging.OrDiscard(logger)

	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		service: service,
		retry:   cfg.Retry,
		metrics: metrics,
		logger:  logger,
	}
	if cfg.RateLimit.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), max(cfg.RateLimit.Burst, 1))
	}

	maxFailures := uint32(clamp(cfg.CircuitBreaker.MaxFailures))
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        service,
		MaxRequests: uint32(clamp(cfg.CircuitBreaker.HalfOpenLimit)),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return maxFailures > 0 && counts.ConsecutiveFailures >= maxFailures
		},
		// A caller giving up says nothing about the service.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("peer_service", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	return c
}

// Do sends req. On success the caller owns resp.Body. When retries run out
// on a retryable status both resp and a *StatusError are returned so the
// caller can still read the server's problem body. Breaker rejections and
// transport failures return a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	ctx, span := c.startSpan(ctx, req)
	defer span.End()

	req = req.WithContext(ctx)
	setIDHeaders(ctx, req.Header)
	injectTraceContext(ctx, req.Header)

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("waiting for rate limiter: %w", err)
			}
		}
		return c.send(ctx, req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%s: %w", c.service, ErrCircuitOpen)
	}

	endSpan(span, resp, err)
	c.record(ctx, req.Method, start, resp, err)
	return resp, err
}

// BaseURL is the configured service root, without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name is the downstream service name.
func (c *Client) Name() string {
	return c.service
}

// HealthCheck reports availability from the breaker state alone; it makes
// no request. A half-open breaker counts as unavailable until a probe
// succeeds.
func (c *Client) HealthCheck(context.Context) error {
	switch st := c.breaker.State(); st {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: recovering (circuit breaker half-open)", c.service)
	default:
		return fmt.Errorf("%s: %w (%s)", c.service, ErrCircuitOpen, st)
	}
}

func clamp(v int) int64 {
	return min(max(int64(v), 0), math.MaxUint32)
}
