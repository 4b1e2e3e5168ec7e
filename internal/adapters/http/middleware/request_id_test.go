package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-board/internal/adapters/http/middleware"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		inbound  string
		want     string
		generate bool
	}{
		{name: "missing header", generate: true},
		{name: "inbound reused", inbound: "req-7f3a", want: "req-7f3a"},
		{name: "surrounding space trimmed", inbound: "  req-7f3a ", want: "req-7f3a"},
		{name: "too long replaced", inbound: strings.Repeat("a", 129), generate: true},
		{name: "control characters replaced", inbound: "req\r\nforged=1", generate: true},
		{name: "non-ascii replaced", inbound: "réq", generate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var fromCtx string
			h := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				fromCtx = middleware.RequestIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/todos", http.NoBody)
			if tt.inbound != "" {
				req.Header.Set("X-Request-ID", tt.inbound)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, fromCtx, rec.Header().Get("X-Request-ID"))
			if tt.generate {
				_, err := uuid.Parse(fromCtx)
				require.NoError(t, err, "generated id %q", fromCtx)
				return
			}
			assert.Equal(t, tt.want, fromCtx)
		})
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	h := middleware.RequestID()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	seen := make(map[string]bool)
	for range 50 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))
		id := rec.Header().Get("X-Request-ID")
		require.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.RequestIDFromContext(t.Context()))
}
