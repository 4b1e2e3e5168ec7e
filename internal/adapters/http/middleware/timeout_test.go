package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-board/internal/adapters/http/middleware"
)

func TestTimeout_FinishedHandlerIsCopied(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	h := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
		w.Header().Set("Location", "/todos/t1")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"t1"}`))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/todos", http.NoBody))

	assert.True(t, hasDeadline)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/todos/t1", rec.Header().Get("Location"))
	assert.JSONEq(t, `{"id":"t1"}`, rec.Body.String())
}

func TestTimeout_SlowHandlerGets504(t *testing.T) {
	t.Parallel()

	lateWrite := make(chan error, 1)
	h := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		time.Sleep(20 * time.Millisecond)
		_, err := w.Write([]byte("too late"))
		lateWrite <- err
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/course-expirations/reindex", http.NoBody))

	require.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Equal(t, middleware.MsgRequestTimedOut, decodeProblem(t, rec.Body).Message)

	select {
	case err := <-lateWrite:
		assert.True(t, errors.Is(err, http.ErrHandlerTimeout))
	case <-time.After(time.Second):
		t.Fatal("handler did not return")
	}
	assert.NotContains(t, rec.Body.String(), "too late")
}

func TestTimeout_ZeroDisables(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	h := middleware.Timeout(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/todos/t1", http.NoBody))

	assert.False(t, hasDeadline)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTimeout_PanicReachesRecovery(t *testing.T) {
	t.Parallel()

	h := middleware.Chain(
		middleware.Recovery(nil),
		middleware.Timeout(time.Second),
	)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
