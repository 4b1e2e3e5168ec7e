package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-board/internal/domain/expiration"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
)

// TodoRepository persists todos. Implemented by the document store adapter;
// called by the application layer.
type TodoRepository interface {
	// List returns todos whose category equals filter.Category, or all todos
	// when it is empty. Order is unspecified.
	List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// Get returns a single todo.
	// Returns domain.ErrNotFound if the todo does not exist.
	Get(ctx context.Context, id string) (*todo.Todo, error)

	// Create stores t and returns the assigned ID. Timestamps are set by
	// the store.
	Create(ctx context.Context, t *todo.Todo) (string, error)

	// Update merges the present fields of patch into the stored todo and
	// refreshes its update time.
	// Returns domain.ErrNotFound if the todo does not exist.
	Update(ctx context.Context, id string, patch todo.Patch) error

	// Delete removes a todo. Missing todos are ignored.
	Delete(ctx context.Context, id string) error
}

// ExpirationRepository persists the course-expiration index.
type ExpirationRepository interface {
	// ListByTodo returns the stored entries of one todo.
	ListByTodo(ctx context.Context, todoID string) ([]expiration.Record, error)

	// List returns every stored entry ordered by expiration date.
	List(ctx context.Context) ([]expiration.Record, error)

	// Apply commits plan as a single atomic batch.
	Apply(ctx context.Context, plan expiration.Plan) error

	// DeleteByTodo removes every entry of one todo in a single batch.
	DeleteByTodo(ctx context.Context, todoID string) error
}

// ExpirationProjector keeps the expiration index in line with todo writes.
type ExpirationProjector interface {
	// Sync reconciles the index entries of one todo with its checklist as
	// it exists after a write.
	Sync(ctx context.Context, todoID, title, subCategory string, checklist []todo.ChecklistItem) error

	// DeleteAll removes every index entry of a deleted todo.
	DeleteAll(ctx context.Context, todoID string) error
}
