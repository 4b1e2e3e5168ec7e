// Package todoapi is the terminal client's adapter for the todo board HTTP
// API. It translates between the wire representation and domain types and
// maps error responses to domain errors.
package todoapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/todo-board/internal/domain/expiration"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
	"github.com/jsamuelsen11/todo-board/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-board/internal/ports"
)

// ServiceName identifies the API in traces, metrics and health checks.
const ServiceName = "todo-board-api"

// Compile-time interface check.
var _ ports.TodoClient = (*Client)(nil)

// Client implements [ports.TodoClient] over HTTP. The underlying
// [httpclient.Client] provides circuit breaking, rate limiting, retry of
// idempotent calls, and tracing.
type Client struct {
	http *httpclient.Client
	req  *Requester
}

// NewClient creates a Client that sends requests through client.
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{
		http: client,
		req:  NewRequester(client, logger),
	}
}

// ListTodos fetches GET /todos, optionally filtered.
func (c *Client) ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	path := "/todos"
	if q := filter.Query(); len(q) > 0 {
		path += "?" + q.Encode()
	}

	var dtos []TodoDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dtos); err != nil {
		return nil, err
	}
	return ToDomainTodoList(dtos), nil
}

// GetTodo fetches GET /todos/{id}.
func (c *Client) GetTodo(ctx context.Context, id string) (*todo.Todo, error) {
	var dto TodoDTO
	if err := c.req.Do(ctx, http.MethodGet, todoPath(id), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	t := ToDomainTodo(&dto)
	return &t, nil
}

// CreateTodo sends POST /todos and returns the new id.
func (c *Client) CreateTodo(ctx context.Context, fields todo.Patch) (string, error) {
	var resp MutationDTO
	if err := c.req.Do(ctx, http.MethodPost, "/todos", http.StatusCreated, ToWriteRequest(fields), &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// UpdateTodo sends PUT /todos/{id} with the present fields of patch.
func (c *Client) UpdateTodo(ctx context.Context, id string, patch todo.Patch) error {
	var resp MutationDTO
	return c.req.Do(ctx, http.MethodPut, todoPath(id), http.StatusOK, ToWriteRequest(patch), &resp)
}

// DeleteTodo sends DELETE /todos/{id}.
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	return c.req.Do(ctx, http.MethodDelete, todoPath(id), http.StatusOK, nil, nil)
}

// ListCategories fetches GET /categories.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var dto CategoriesDTO
	if err := c.req.Do(ctx, http.MethodGet, "/categories", http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	if dto.Categories == nil {
		return []string{}, nil
	}
	return dto.Categories, nil
}

// ListExpirations fetches the synced index from GET /course-expirations.
func (c *Client) ListExpirations(ctx context.Context) ([]expiration.Record, error) {
	var dtos []SyncedExpirationDTO
	if err := c.req.Do(ctx, http.MethodGet, "/course-expirations", http.StatusOK, nil, &dtos); err != nil {
		return nil, err
	}
	return ToDomainRecords(dtos), nil
}

func todoPath(id string) string {
	return "/todos/" + url.PathEscape(id)
}
