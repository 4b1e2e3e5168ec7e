package todoapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-board/internal/domain"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
	"github.com/jsamuelsen11/todo-board/internal/platform/config"
	"github.com/jsamuelsen11/todo-board/internal/platform/httpclient"
)

// newTestClient creates a Client pointing at the given test server with
// circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	return newRetryingTestClient(t, baseURL, 1)
}

// newRetryingTestClient is newTestClient with attempts tries per read.
func newRetryingTestClient(t *testing.T, baseURL string, attempts int) *Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     attempts,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	logger := slog.New(slog.DiscardHandler)

	return NewClient(httpclient.New(cfg, ServiceName+"-test", nil, logger), logger)
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func TestClient_ListTodos(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/todos" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("category"); got != "Home & Garden" {
			t.Errorf("category = %q, want %q", got, "Home & Garden")
		}
		writeJSON(t, w, http.StatusOK, []map[string]any{{
			"id": "t1", "title": "Mow", "category": "Home & Garden", "assignee": "Emma",
			"checklist": []map[string]any{{"id": "i1", "text": "front", "checked": false, "expirationDate": nil}},
			"position":  12.5,
			"createdAt": "2026-01-02T03:04:05.000Z",
			"updatedAt": nil,
		}})
	}))
	defer ts.Close()

	todos, err := newTestClient(t, ts.URL).ListTodos(context.Background(), todo.Filter{Category: "Home & Garden"})
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if len(todos) != 1 {
		t.Fatalf("len(todos) = %d, want 1", len(todos))
	}
	got := todos[0]
	if got.Position != 12.5 || got.Checklist[0].ID != "i1" {
		t.Errorf("todo = %+v, want position 12.5 and item i1", got)
	}
	want := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	if !got.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want)
	}
	if !got.UpdatedAt.IsZero() {
		t.Errorf("UpdatedAt = %v, want zero", got.UpdatedAt)
	}
}

func TestClient_CreateTodo(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/todos" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"title":"Learn Go"}` {
			t.Errorf("body = %s, want only the title", body)
		}
		writeJSON(t, w, http.StatusCreated, map[string]string{"id": "new", "message": "Todo created successfully"})
	}))
	defer ts.Close()

	title := "Learn Go"
	id, err := newTestClient(t, ts.URL).CreateTodo(context.Background(), todo.Patch{Title: &title})
	if err != nil {
		t.Fatalf("CreateTodo() error = %v", err)
	}
	if id != "new" {
		t.Errorf("id = %q, want %q", id, "new")
	}
}

func TestClient_UpdateTodo_SendsOnlyPosition(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/todos/a b" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"position":7}` {
			t.Errorf("body = %s, want {\"position\":7}", body)
		}
		writeJSON(t, w, http.StatusOK, map[string]string{"id": "a b", "message": "Todo updated successfully"})
	}))
	defer ts.Close()

	pos := 7.0
	if err := newTestClient(t, ts.URL).UpdateTodo(context.Background(), "a b", todo.Patch{Position: &pos}); err != nil {
		t.Fatalf("UpdateTodo() error = %v", err)
	}
}

func TestClient_WritesAreNotRetried(t *testing.T) {
	t.Parallel()

	pos := 3.0
	tests := []struct {
		name      string
		call      func(ctx context.Context, c *Client) error
		wantCalls int32
	}{
		{
			name:      "auto-save update",
			call:      func(ctx context.Context, c *Client) error { return c.UpdateTodo(ctx, "t1", todo.Patch{Position: &pos}) },
			wantCalls: 1,
		},
		{
			name:      "delete",
			call:      func(ctx context.Context, c *Client) error { return c.DeleteTodo(ctx, "t1") },
			wantCalls: 1,
		},
		{
			name: "read is retried",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetTodo(ctx, "t1")
				return err
			},
			wantCalls: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				writeJSON(t, w, http.StatusServiceUnavailable, map[string]any{"status": 503, "error": "down"})
			}))
			defer ts.Close()

			err := tt.call(context.Background(), newRetryingTestClient(t, ts.URL, 3))
			if err == nil {
				t.Fatal("error = nil, want failure")
			}
			if got := calls.Load(); got != tt.wantCalls {
				t.Errorf("server calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestClient_GetTodo_NotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":404,"message":"Todo not found"}`))
	}))
	defer ts.Close()

	_, err := newTestClient(t, ts.URL).GetTodo(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetTodo() error = %v, want ErrNotFound", err)
	}

	var hm domain.HumanMessager
	if !errors.As(err, &hm) || hm.HumanMessage() != "Todo not found" {
		t.Errorf("HumanMessage = %v, want %q", err, "Todo not found")
	}
}

func TestClient_DeleteTodo(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/todos/t1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, map[string]string{"message": "Todo deleted successfully"})
	}))
	defer ts.Close()

	if err := newTestClient(t, ts.URL).DeleteTodo(context.Background(), "t1"); err != nil {
		t.Fatalf("DeleteTodo() error = %v", err)
	}
}

func TestClient_ListCategories_Empty(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"categories": nil})
	}))
	defer ts.Close()

	got, err := newTestClient(t, ts.URL).ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("ListCategories() = %v, want empty slice", got)
	}
}

func TestClient_ListExpirations(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/course-expirations" {
			t.Errorf("path = %s, want /course-expirations", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, []map[string]any{{
			"id": "t1_i1", "todoId": "t1", "todoTitle": "Certs", "itemId": "i1",
			"itemText": "AWS", "expirationDate": "2026-06-01",
			"createdAt": "2026-01-01T00:00:00.000Z", "updatedAt": nil,
		}})
	}))
	defer ts.Close()

	got, err := newTestClient(t, ts.URL).ListExpirations(context.Background())
	if err != nil {
		t.Fatalf("ListExpirations() error = %v", err)
	}
	if len(got) != 1 || got[0].DocID() != "t1_i1" || got[0].CreatedAt == nil || got[0].UpdatedAt != nil {
		t.Errorf("ListExpirations() = %+v, want one record with createdAt only", got)
	}
}

func TestClient_ServerErrorKeepsMessage(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":500,"message":"Failed to fetch todos","error":"database is locked"}`))
	}))
	defer ts.Close()

	_, err := newTestClient(t, ts.URL).ListTodos(context.Background(), todo.Filter{})
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("ListTodos() error = %v, want ErrUnavailable", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("errors.As(*APIError) = false, got %T", err)
	}
	if apiErr.Message != "Failed to fetch todos" || apiErr.Cause != "database is locked" {
		t.Errorf("APIError = %+v, want message and cause from body", apiErr)
	}
}

func TestClient_NameAndHealth(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, "http://127.0.0.1:0")
	if c.Name() != ServiceName {
		t.Errorf("Name() = %q, want %q", c.Name(), ServiceName)
	}
	if err := c.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil for closed breaker", err)
	}
}
