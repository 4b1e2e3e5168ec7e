package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func strPtr(s string) *string { return &s }

func validTodo() todo.Todo {
	return todo.Todo{
		ID:          "t1",
		Title:       "Renew certs",
		Description: "Before summer",
		Category:    "Work",
		SubCategory: "Courses",
		Assignee:    todo.AssigneeEmma,
		Checklist: []todo.ChecklistItem{
			{ID: "i1", Text: "AWS", Checked: true, ExpirationDate: strPtr("2026-06-01")},
		},
		Position:  1700000000000,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result), "body = %s", rec.Body.String())
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	assert.Equal(t, want, rec.Code, "body = %s", rec.Body.String())
}

// requireMessage checks the user-facing message of a problem response.
func requireMessage(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	assert.Equal(t, dto.ContentTypeProblem, rec.Header().Get("Content-Type"))
	assert.Equal(t, want, decodeJSON[dto.Problem](t, rec).Message)
}
