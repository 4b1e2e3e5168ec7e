package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Validate checks every section and returns all problems joined, each
// naming the offending key.
func (c *Config) Validate() error {
	var v validator

	v.between("server.port", c.Server.Port, 1, 65535)
	v.positive("server.read_timeout", c.Server.ReadTimeout)
	v.positive("server.write_timeout", c.Server.WriteTimeout)
	v.positive("server.request_timeout", c.Server.RequestTimeout)

	v.oneOf("log.level", c.Log.Level, "debug", "info", "warn", "error")
	v.oneOf("log.format", c.Log.Format, "json", "text")

	v.notBlank("store.path", c.Store.Path)
	v.check(c.Store.BusyTimeout >= 0, "store.busy_timeout must not be negative")

	v.between("projector.reindex_workers", c.Projector.ReindexWorkers, 1, maxReindexWorkers)

	v.notBlank("client.base_url", c.Client.BaseURL)
	v.positive("client.timeout", c.Client.Timeout)
	v.between("client.retry.max_attempts", c.Client.Retry.MaxAttempts, 1, maxRetryAttempts)
	v.check(c.Client.Retry.Multiplier > 0,
		fmt.Sprintf("client.retry.multiplier must be positive, got %g", c.Client.Retry.Multiplier))
	v.between("client.circuit_breaker.max_failures", c.Client.CircuitBreaker.MaxFailures, 1, 1<<16)
	v.check(c.Client.RateLimit.RequestsPerSecond >= 0,
		fmt.Sprintf("client.rate_limit.requests_per_second must not be negative, got %g",
			c.Client.RateLimit.RequestsPerSecond))
	if c.Client.RateLimit.RequestsPerSecond > 0 {
		v.between("client.rate_limit.burst", c.Client.RateLimit.Burst, 1, 1<<16)
	}

	v.positive("ui.autosave_interval", c.UI.AutosaveInterval)

	if c.Telemetry.Enabled {
		v.oneOf("telemetry.exporter", c.Telemetry.Exporter, "stdout", "otlp")
		v.check(c.Telemetry.Exporter != "otlp" || c.Telemetry.Endpoint != "",
			"telemetry.endpoint must not be empty when exporter is otlp")
	}

	return errors.Join(v.errs...)
}

const (
	maxReindexWorkers = 64
	maxRetryAttempts  = 10
)

// validator accumulates configuration problems.
type validator struct {
	errs []error
}

func (v *validator) check(ok bool, msg string) {
	if !ok {
		v.errs = append(v.errs, errors.New(msg))
	}
}

func (v *validator) between(key string, got, lo, hi int) {
	v.check(got >= lo && got <= hi, fmt.Sprintf("%s must be between %d and %d, got %d", key, lo, hi, got))
}

func (v *validator) positive(key string, d time.Duration) {
	v.check(d > 0, fmt.Sprintf("%s must be positive, got %s", key, d))
}

func (v *validator) notBlank(key, s string) {
	v.check(strings.TrimSpace(s) != "", key+" must not be empty")
}

func (v *validator) oneOf(key, got string, allowed ...string) {
	v.check(slices.Contains(allowed, got),
		fmt.Sprintf("%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got))
}
