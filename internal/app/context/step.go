package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/todo-board/internal/domain"
	"github.com/jsamuelsen11/todo-board/internal/platform/logging"
)

type step interface {
	execute(ctx context.Context) error
	rollback(ctx context.Context, logger *slog.Logger)
	description() string
}

type single struct {
	action domain.Action
}

func (s *single) execute(ctx context.Context) error { return s.action.Execute(ctx) }
func (s *single) description() string              { return s.action.Description() }

func (s *single) rollback(ctx context.Context, logger *slog.Logger) {
	undo(ctx, logger, s.action)
}

// group runs its actions concurrently. completed records, in staging order,
// the actions whose Execute returned nil.
type group struct {
	actions   []domain.Action
	completed []domain.Action
}

func (g *group) execute(ctx context.Context) error {
	if len(g.actions) == 0 {
		return nil
	}

	groupCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make([]error, len(g.actions))
	done := make(chan int, len(g.actions))
	for i, a := range g.actions {
		go func() {
			errs[i] = a.Execute(groupCtx)
			done <- i
		}()
	}

	var firstErr error
	for range g.actions {
		i := <-done
		if errs[i] != nil && firstErr == nil {
			firstErr = errs[i]
			cancel()
		}
	}

	g.completed = g.completed[:0]
	for i, a := range g.actions {
		if errs[i] == nil {
			g.completed = append(g.completed, a)
		}
	}

	if firstErr != nil {
		g.rollback(ctx, logging.FromContext(ctx))
		return firstErr
	}
	return nil
}

// rollback undoes completed actions in reverse staging order.
func (g *group) rollback(ctx context.Context, logger *slog.Logger) {
	for i := len(g.completed) - 1; i >= 0; i-- {
		undo(ctx, logger, g.completed[i])
	}
	g.completed = nil
}

func (g *group) description() string {
	switch len(g.actions) {
	case 0:
		return "empty group"
	case 1:
		return g.actions[0].Description()
	default:
		return fmt.Sprintf("group of %d (%s, ...)", len(g.actions), g.actions[0].Description())
	}
}

func undo(ctx context.Context, logger *slog.Logger, a domain.Action) {
	if err := a.Rollback(ctx); err != nil {
		logger.ErrorContext(ctx, "rollback failed",
			slog.String("action", a.Description()),
			slog.Any("error", err),
		)
	}
}
