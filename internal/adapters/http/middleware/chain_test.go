package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-board/internal/adapters/http/middleware"
)

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name+">")
				next.ServeHTTP(w, r)
				order = append(order, "<"+name)
			})
		}
	}

	tests := []struct {
		name string
		mws  []func(http.Handler) http.Handler
		want []string
	}{
		{
			name: "empty",
			want: []string{"handler"},
		},
		{
			name: "first is outermost",
			mws:  []func(http.Handler) http.Handler{tag("recovery"), tag("request_id"), tag("logging")},
			want: []string{"recovery>", "request_id>", "logging>", "handler", "<logging", "<request_id", "<recovery"},
		},
		{
			name: "nil entries skipped",
			mws:  []func(http.Handler) http.Handler{nil, tag("otel"), nil},
			want: []string{"otel>", "handler", "<otel"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order = nil
			h := middleware.Chain(tt.mws...)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				order = append(order, "handler")
				w.WriteHeader(http.StatusNoContent)
			}))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, tt.want, order)
		})
	}
}

func TestChain_ServerPipeline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := jsonLogger(&buf, slog.LevelInfo)

	var gotReqID, gotCorrID string
	h := todoRouter(func(w http.ResponseWriter, r *http.Request) {
		gotReqID = middleware.RequestIDFromContext(r.Context())
		gotCorrID = middleware.CorrelationIDFromContext(r.Context())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"t1"}`))
	}, middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.OpenTelemetry(nil),
		middleware.Logging(logger),
		middleware.Timeout(5*time.Second),
	))

	req := httptest.NewRequest(http.MethodPut, "/todos/t1", http.NoBody)
	req.Header.Set("X-Correlation-ID", "move-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"t1"}`, rec.Body.String())
	assert.NotEmpty(t, gotReqID)
	assert.Equal(t, gotReqID, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "move-42", gotCorrID)

	done := findLog(logLines(t, &buf), "request completed")
	require.NotNil(t, done)
	assert.Equal(t, "/todos/{id}", done["route"])
	assert.Equal(t, "move-42", done["correlation_id"])
	assert.EqualValues(t, len(`{"id":"t1"}`), done["bytes"])
}
