package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-board/internal/domain/expiration"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
)

// TodoService defines the service port for todo operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// ListTodos returns todos matching the filter, highest position first.
	ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// GetTodo returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id string) (*todo.Todo, error)

	// CreateTodo stores a new todo built from the given fields and returns it
	// with its store-assigned ID.
	// Returns domain.ErrValidation if the todo fails validation.
	CreateTodo(ctx context.Context, fields todo.Patch) (*todo.Todo, error)

	// UpdateTodo applies a partial update and re-syncs the expiration index.
	// Returns domain.ErrValidation for an empty patch or blank title and
	// domain.ErrNotFound if the todo does not exist.
	UpdateTodo(ctx context.Context, id string, patch todo.Patch) (*todo.Todo, error)

	// DeleteTodo removes a todo and its expiration entries. Deleting a todo
	// that does not exist is not an error.
	DeleteTodo(ctx context.Context, id string) error

	// ListCategories returns the distinct non-empty categories in use.
	ListCategories(ctx context.Context) ([]string, error)
}

// ExpirationService defines the service port for the course-expiration report.
type ExpirationService interface {
	// ListLive derives entries from the todos collection, soonest first.
	ListLive(ctx context.Context) ([]expiration.Entry, error)

	// ListSynced returns the persisted index ordered by expiration date.
	ListSynced(ctx context.Context) ([]expiration.Record, error)

	// ItemDates returns the checklist dates of one todo. The result is empty
	// when the todo is missing or does not track expirations.
	ItemDates(ctx context.Context, todoID string) ([]expiration.ItemDate, error)

	// Reindex rebuilds the index for every todo.
	Reindex(ctx context.Context) (*ReindexResult, error)
}

// ReindexResult summarizes a Reindex run.
type ReindexResult struct {
	Total  int
	Synced int
	Failed int
}
