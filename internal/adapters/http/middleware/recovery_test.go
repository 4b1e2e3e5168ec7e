package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-board/internal/adapters/http/middleware"
)

func TestRecovery_PanicBecomesProblem(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Chain(
		middleware.Recovery(jsonLogger(&buf, slog.LevelInfo)),
		middleware.RequestID(),
	)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("nil todo in category group")
	}))

	req := httptest.NewRequest(http.MethodGet, "/todos", http.NoBody)
	req.Header.Set("X-Request-ID", "req-panic")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	p := decodeProblem(t, rec.Body)
	assert.Equal(t, "Internal server error", p.Message)
	assert.NotContains(t, rec.Body.String(), "nil todo")

	line := findLog(logLines(t, &buf), "panic recovered")
	require.NotNil(t, line)
	assert.Equal(t, "nil todo in category group", line["panic"])
	assert.Equal(t, "req-panic", line["request_id"])
	assert.NotEmpty(t, line["stack"])
}

func TestRecovery_PanicAfterResponseStarted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Recovery(jsonLogger(&buf, slog.LevelInfo))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("[]"))
		panic("late")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
	assert.NotNil(t, findLog(logLines(t, &buf), "panic recovered"))
}

func TestRecovery_NoPanicPassesThrough(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Recovery(jsonLogger(&buf, slog.LevelInfo))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/todos", http.NoBody))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, buf.String())
}

func TestRecovery_AbortHandlerRepanics(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))
	})
}
