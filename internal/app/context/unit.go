// Package appctx provides client-side coordination primitives: a unit of
// work that executes remote writes with compensation, and Ref, a guarded
// holder for state shared between UI events and background work.
//
//	u := appctx.NewUnit()
//	_ = u.AddGroup(moveA, moveB) // run concurrently
//	if err := u.Commit(ctx); err != nil {
//		// completed writes were already rolled back
//	}
package appctx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/todo-board/internal/domain"
	"github.com/jsamuelsen11/todo-board/internal/platform/logging"
)

// ErrAlreadyCommitted is returned when a Unit is modified or committed
// after Commit.
var ErrAlreadyCommitted = errors.New("appctx: unit already committed")

// ErrNilAction is returned when a nil action is staged.
var ErrNilAction = errors.New("appctx: nil action")

// Unit is an ordered list of steps executed by Commit. A step is a single
// action or a group of actions run concurrently. Staging is safe for
// concurrent use; Commit runs once.
type Unit struct {
	mu        sync.Mutex
	steps     []step
	committed bool
}

// NewUnit returns an empty Unit.
func NewUnit() *Unit {
	return &Unit{}
}

// AddAction stages a single action.
func (u *Unit) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return u.push(&single{action: action})
}

// AddGroup stages actions that execute concurrently as one step. When one
// fails the others are cancelled and those that completed are rolled back.
func (u *Unit) AddGroup(actions ...domain.Action) error {
	for _, a := range actions {
		if a == nil {
			return ErrNilAction
		}
	}
	return u.push(&group{actions: actions})
}

// Len returns the number of staged steps.
func (u *Unit) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.steps)
}

func (u *Unit) push(s step) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.committed {
		return ErrAlreadyCommitted
	}
	u.steps = append(u.steps, s)
	return nil
}

// Commit executes the staged steps in order. If a step fails, the steps
// before it are rolled back in reverse order and the step's error is
// returned. Rollback failures are logged. The Unit is committed afterwards
// whatever the outcome.
func (u *Unit) Commit(ctx context.Context) error {
	u.mu.Lock()
	if u.committed {
		u.mu.Unlock()
		return ErrAlreadyCommitted
	}
	u.committed = true
	steps := u.steps
	u.mu.Unlock()

	logger := logging.FromContext(ctx)

	for i, s := range steps {
		logger.DebugContext(ctx, "executing step",
			slog.Int("step", i+1),
			slog.Int("total", len(steps)),
			slog.String("action", s.description()),
		)

		if err := s.execute(ctx); err != nil {
			logger.WarnContext(ctx, "step failed, rolling back",
				slog.String("operation", "Unit.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", s.description()),
				slog.Any("error", err),
			)
			for j := i - 1; j >= 0; j-- {
				steps[j].rollback(ctx, logger)
			}
			return fmt.Errorf("executing %s: %w", s.description(), err)
		}
	}
	return nil
}
