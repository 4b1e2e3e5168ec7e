// Package repository implements the persistence ports on top of the
// document store.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/todo-board/internal/adapters/docstore"
	"github.com/jsamuelsen11/todo-board/internal/domain"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
	"github.com/jsamuelsen11/todo-board/internal/ports"
)

// Collection names.
const (
	TodosCollection       = "todos"
	ExpirationsCollection = "courseExpirations"
)

// Compile-time interface check.
var _ ports.TodoRepository = (*TodoRepository)(nil)

// TodoRepository stores todos in the "todos" collection.
type TodoRepository struct {
	coll *docstore.Collection
	now  func() time.Time
}

// NewTodoRepository creates a TodoRepository backed by store.
func NewTodoRepository(store *docstore.Store) *TodoRepository {
	return &TodoRepository{coll: store.Collection(TodosCollection), now: time.Now}
}

// List implements ports.TodoRepository.
func (r *TodoRepository) List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	q := r.coll.Query()
	if filter.Category != "" {
		q = q.Where(fieldCategory, filter.Category)
	}
	if filter.SubCategory != "" {
		q = q.Where(fieldSubCategory, filter.SubCategory)
	}
	snaps, err := q.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}

	now := r.now()
	todos := make([]todo.Todo, len(snaps))
	for i := range snaps {
		todos[i] = toDomainTodo(snaps[i], now)
	}
	return todos, nil
}

// Get implements ports.TodoRepository.
func (r *TodoRepository) Get(ctx context.Context, id string) (*todo.Todo, error) {
	snap, err := r.coll.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	t := toDomainTodo(*snap, r.now())
	return &t, nil
}

// Create implements ports.TodoRepository.
func (r *TodoRepository) Create(ctx context.Context, t *todo.Todo) (string, error) {
	id, err := r.coll.Add(ctx, toTodoDocument(t))
	if err != nil {
		return "", fmt.Errorf("creating todo: %w", err)
	}
	return id, nil
}

// Update implements ports.TodoRepository.
func (r *TodoRepository) Update(ctx context.Context, id string, patch todo.Patch) error {
	if err := r.coll.Update(ctx, id, toPatchDocument(&patch)); err != nil {
		return notFound(err, id)
	}
	return nil
}

// Delete implements ports.TodoRepository.
func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	if err := r.coll.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting todo %s: %w", id, err)
	}
	return nil
}

func notFound(err error, id string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.NotFoundError{Entity: "Todo", ID: id}
	}
	return err
}
