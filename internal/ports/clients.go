package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-board/internal/domain/expiration"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
)

// TodoClient defines the client port for the todo board HTTP API.
// Implemented by the todoapi adapter; called by the terminal client.
type TodoClient interface {
	// ListTodos returns todos matching the filter, highest position first.
	ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// GetTodo returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id string) (*todo.Todo, error)

	// CreateTodo creates a todo and returns its ID.
	CreateTodo(ctx context.Context, fields todo.Patch) (string, error)

	// UpdateTodo sends a partial update. Only the present fields of patch
	// are transmitted.
	UpdateTodo(ctx context.Context, id string, patch todo.Patch) error

	// DeleteTodo deletes a todo by ID.
	DeleteTodo(ctx context.Context, id string) error

	// ListCategories returns the distinct categories in use.
	ListCategories(ctx context.Context) ([]string, error)

	// ListExpirations returns the synced course-expiration index.
	ListExpirations(ctx context.Context) ([]expiration.Record, error)
}
