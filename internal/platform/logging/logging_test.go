package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-board/internal/platform/logging"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level      string
		wantDebug  bool
		wantInfo   bool
		wantSource bool
	}{
		{level: "debug", wantDebug: true, wantInfo: true, wantSource: true},
		{level: "DEBUG", wantDebug: true, wantInfo: true, wantSource: true},
		{level: "info", wantInfo: true},
		{level: " warn ", wantInfo: false},
		{level: "error", wantInfo: false},
		{level: "verbose", wantInfo: true},
		{level: "", wantInfo: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := logging.New(tt.level, "json", &buf)
			ctx := context.Background()

			assert.Equal(t, tt.wantDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.wantInfo, logger.Enabled(ctx, slog.LevelInfo))
			assert.True(t, logger.Enabled(ctx, slog.LevelError))

			logger.Error("sync failed")
			_, hasSource := decodeLine(t, &buf)["source"]
			assert.Equal(t, tt.wantSource, hasSource)
		})
	}
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"msg":"todo created"`},
		{format: "", want: `"msg":"todo created"`},
		{format: "text", want: `msg="todo created"`},
		{format: "TEXT", want: `msg="todo created"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("todo created", slog.String("id", "t1"))

			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "t1")
		})
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization header", attr: slog.String("authorization", "Bearer tok-123"), secret: "tok-123"},
		{name: "api key header", attr: slog.String("x-api-key", "k-999"), secret: "k-999"},
		{name: "password field", attr: slog.String("password", "hunter2"), secret: "hunter2"},
		{name: "secret prefix", attr: slog.String("secret_store_key", "s3cr3t"), secret: "s3cr3t"},
		{name: "bearer in free text", attr: slog.String("detail", "sent Bearer eyJhbGciOiJSUzI1NiJ9"), secret: "eyJhbGciOiJSUzI1NiJ9"},
		{name: "inline api key", attr: slog.String("url", "https://api.local/?api_key=abc123"), secret: "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("outbound call", tt.attr)

			assert.NotContains(t, buf.String(), tt.secret)
			assert.Contains(t, buf.String(), "[REDACTED]")
		})
	}
}

func TestNew_KeepsTodoFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("todo updated",
		slog.String("todo_id", "t1"),
		slog.String("category", "Courses > Alimentaire"),
		slog.String("version", "1.2.3"),
	)

	line := decodeLine(t, &buf)
	assert.Equal(t, "t1", line["todo_id"])
	assert.Equal(t, "Courses > Alimentaire", line["category"])
	assert.Equal(t, "1.2.3", line["version"])
}

func TestIsSensitiveHeader(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"Authorization":       true,
		"authorization":       true,
		"X-Api-Key":           true,
		"Cookie":              true,
		"Set-Cookie":          true,
		"Proxy-Authorization": true,
		"X-Request-ID":        false,
		"Content-Type":        false,
	}

	for name, want := range tests {
		assert.Equal(t, want, logging.IsSensitiveHeader(name), name)
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	assert.Same(t, slog.Default(), logging.FromContext(context.Background()))

	ctx := logging.WithLogger(context.Background(), logger)
	assert.Same(t, logger, logging.FromContext(ctx))

	child := logger.With(slog.String("request_id", "r1"))
	assert.Same(t, child, logging.FromContext(logging.WithLogger(ctx, child)))
}

func TestOrDiscard(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)
	assert.Same(t, logger, logging.OrDiscard(logger))

	discard := logging.OrDiscard(nil)
	require.NotNil(t, discard)
	assert.False(t, discard.Enabled(context.Background(), slog.LevelError))
}
