// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
	"github.com/jsamuelsen11/todo-board/internal/platform/logging"
	"github.com/jsamuelsen11/todo-board/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService. It applies the todo rules from
// the domain package, persists through the repository port, and keeps the
// course-expiration index in step through the projector.
type TodoService struct {
	todos     ports.TodoRepository
	projector ports.ExpirationProjector
	now       func() time.Time
	logger    *slog.Logger
}

// NewTodoService creates a TodoService. A nil logger discards output.
func NewTodoService(todos ports.TodoRepository, projector ports.ExpirationProjector, logger *slog.Logger) *TodoService {
	logger = logging.OrDiscard(logger)
	return &TodoService{
		todos:     todos,
		projector: projector,
		now:       time.Now,
		logger:    logger,
	}
}

// ListTodos returns todos in the given category, or all todos, highest
// position first.
func (s *TodoService) ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	s.logger.InfoContext(ctx, "listing todos", slog.String("category", filter.Category))

	todos, err := s.todos.List(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "ListTodos"),
			slog.Any("error", err),
		)
		return nil, err
	}

	todo.SortByPosition(todos)
	return todos, nil
}

// GetTodo returns a single todo by ID.
func (s *TodoService) GetTodo(ctx context.Context, id string) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "fetching todo", slog.String("id", id))

	t, err := s.todos.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo",
			slog.String("operation", "GetTodo"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return t, nil
}

// CreateTodo validates and stores a new todo, then indexes its dated
// checklist items. An index failure is logged and does not fail the create;
// the reindex operation repairs it.
func (s *TodoService) CreateTodo(ctx context.Context, fields todo.Patch) (*todo.Todo, error) {
	t, err := todo.New(fields, s.now())
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "creating todo", slog.String("title", t.Title))

	id, err := s.todos.Create(ctx, &t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "CreateTodo"),
			slog.Any("error", err),
		)
		return nil, err
	}
	t.ID = id

	if err := s.projector.Sync(ctx, t.ID, t.Title, t.SubCategory, t.Checklist); err != nil {
		s.logger.WarnContext(ctx, "created todo without indexing its expirations",
			slog.String("id", id),
			slog.Any("error", err),
		)
	}
	return &t, nil
}

// UpdateTodo validates patch, merges it into the stored todo and re-syncs
// the expiration index with the merged result.
func (s *TodoService) UpdateTodo(ctx context.Context, id string, patch todo.Patch) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "updating todo", slog.String("id", id))

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	current, err := s.todos.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo for update",
			slog.String("operation", "UpdateTodo"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	write, merged := patch.Resolve(*current, s.now())

	if err := s.todos.Update(ctx, id, write); err != nil {
		s.logger.ErrorContext(ctx, "failed to update todo",
			slog.String("operation", "UpdateTodo"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	if err := s.projector.Sync(ctx, id, merged.Title, merged.SubCategory, merged.Checklist); err != nil {
		return nil, fmt.Errorf("syncing course expirations: %w", err)
	}
	return &merged, nil
}

// DeleteTodo removes a todo and then its expiration entries.
func (s *TodoService) DeleteTodo(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting todo", slog.String("id", id))

	if err := s.todos.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete todo",
			slog.String("operation", "DeleteTodo"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return err
	}

	if err := s.projector.DeleteAll(ctx, id); err != nil {
		return fmt.Errorf("removing course expirations: %w", err)
	}
	return nil
}

// ListCategories returns the distinct non-empty categories across all todos.
func (s *TodoService) ListCategories(ctx context.Context) ([]string, error) {
	todos, err := s.todos.List(ctx, todo.Filter{})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list categories",
			slog.String("operation", "ListCategories"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return todo.DistinctCategories(todos), nil
}
