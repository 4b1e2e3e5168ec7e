package repository

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/todo-board/internal/adapters/docstore"
	"github.com/jsamuelsen11/todo-board/internal/domain/expiration"
	"github.com/jsamuelsen11/todo-board/internal/ports"
)

// Compile-time interface check.
var _ ports.ExpirationRepository = (*ExpirationRepository)(nil)

// ExpirationRepository stores the course-expiration index in the
// "courseExpirations" collection, one document per dated checklist item.
type ExpirationRepository struct {
	store *docstore.Store
	coll  *docstore.Collection
}

// NewExpirationRepository creates an ExpirationRepository backed by store.
func NewExpirationRepository(store *docstore.Store) *ExpirationRepository {
	return &ExpirationRepository{store: store, coll: store.Collection(ExpirationsCollection)}
}

// ListByTodo implements ports.ExpirationRepository.
func (r *ExpirationRepository) ListByTodo(ctx context.Context, todoID string) ([]expiration.Record, error) {
	snaps, err := r.coll.Where(fieldTodoID, todoID).Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing expirations of todo %s: %w", todoID, err)
	}
	return toRecords(snaps), nil
}

// List implements ports.ExpirationRepository.
func (r *ExpirationRepository) List(ctx context.Context) ([]expiration.Record, error) {
	snaps, err := r.coll.Query().OrderBy(fieldExpirationDate, false).Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing expirations: %w", err)
	}
	return toRecords(snaps), nil
}

// Apply implements ports.ExpirationRepository.
func (r *ExpirationRepository) Apply(ctx context.Context, plan expiration.Plan) error {
	if plan.IsEmpty() {
		return nil
	}
	batch := r.store.Batch()
	for _, u := range plan.Upserts {
		batch.Set(r.coll, u.DocID(), toEntryDocument(u), true)
	}
	for _, id := range plan.Deletes {
		batch.Delete(r.coll, id)
	}
	if err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("applying expiration batch: %w", err)
	}
	return nil
}

// DeleteByTodo implements ports.ExpirationRepository.
func (r *ExpirationRepository) DeleteByTodo(ctx context.Context, todoID string) error {
	records, err := r.ListByTodo(ctx, todoID)
	if err != nil {
		return err
	}
	plan := expiration.Plan{Deletes: make([]string, 0, len(records))}
	for _, rec := range records {
		plan.Deletes = append(plan.Deletes, rec.ID)
	}
	return r.Apply(ctx, plan)
}

func toRecords(snaps []docstore.Snapshot) []expiration.Record {
	out := make([]expiration.Record, len(snaps))
	for i := range snaps {
		out[i] = toDomainRecord(snaps[i])
	}
	return out
}
