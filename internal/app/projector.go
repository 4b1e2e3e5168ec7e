package app

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/todo-board/internal/domain/expiration"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
	"github.com/jsamuelsen11/todo-board/internal/platform/logging"
	"github.com/jsamuelsen11/todo-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-board/internal/ports"
)

// Compile-time check that Projector implements ports.ExpirationProjector.
var _ ports.ExpirationProjector = (*Projector)(nil)

// Projector maintains the course-expiration index. Every call reads the
// stored entries of one todo and writes the difference as one atomic batch.
type Projector struct {
	index   ports.ExpirationRepository
	counter metric.Int64Counter
	logger  *slog.Logger
}

// NewProjector creates a Projector. counter may be nil.
func NewProjector(index ports.ExpirationRepository, counter metric.Int64Counter, logger *slog.Logger) *Projector {
	logger = logging.OrDiscard(logger)
	return &Projector{index: index, counter: counter, logger: logger}
}

// Sync reconciles the index entries of todoID with checklist.
func (p *Projector) Sync(ctx context.Context, todoID, title, subCategory string, checklist []todo.ChecklistItem) error {
	stored, err := p.index.ListByTodo(ctx, todoID)
	if err != nil {
		return p.fail(ctx, "sync", todoID, err)
	}

	plan := expiration.Reconcile(expiration.Desired(todoID, title, subCategory, checklist), stored)
	if plan.IsEmpty() {
		p.record(ctx, "sync", "noop")
		return nil
	}

	if err := p.index.Apply(ctx, plan); err != nil {
		return p.fail(ctx, "sync", todoID, err)
	}

	p.logger.InfoContext(ctx, "synced course expirations",
		slog.String("todo_id", todoID),
		slog.Int("upserts", len(plan.Upserts)),
		slog.Int("deletes", len(plan.Deletes)),
	)
	p.record(ctx, "sync", "success")
	return nil
}

// DeleteAll removes every index entry of todoID.
func (p *Projector) DeleteAll(ctx context.Context, todoID string) error {
	if err := p.index.DeleteByTodo(ctx, todoID); err != nil {
		return p.fail(ctx, "delete_all", todoID, err)
	}
	p.record(ctx, "delete_all", "success")
	return nil
}

func (p *Projector) fail(ctx context.Context, op, todoID string, err error) error {
	p.logger.ErrorContext(ctx, "failed to update course expirations",
		slog.String("operation", op),
		slog.String("todo_id", todoID),
		slog.Any("error", err),
	)
	p.record(ctx, op, "error")
	return fmt.Errorf("%s course expirations for todo %s: %w", op, todoID, err)
}

func (p *Projector) record(ctx context.Context, op, result string) {
	if p.counter == nil {
		return
	}
	p.counter.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrOperation.String(op),
		telemetry.AttrResult.String(result),
	))
}
