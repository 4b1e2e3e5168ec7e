// Package board holds the terminal client's list view state: todos grouped
// into category tabs, pairwise swap reordering with rollback, and delete.
// It is independent of any UI toolkit; the TUI calls its methods in
// response to key presses.
package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	appctx "github.com/jsamuelsen11/todo-board/internal/app/context"
	"github.com/jsamuelsen11/todo-board/internal/domain"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
	"github.com/jsamuelsen11/todo-board/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-board/internal/platform/logging"
	"github.com/jsamuelsen11/todo-board/internal/ports"
)

// TabAll is the tab showing every category.
const TabAll = "All"

// User-facing messages.
const (
	MsgSelectCategory = "Select a category tab to reorder todos."
	MsgReorderFailed  = "Failed to reorder todo. Please try again."
	MsgLoadFailed     = "Failed to fetch todos"
	MsgDeleteFailed   = "Failed to delete todo"
)

// Direction is the way a todo moves within its category.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// ActionError is a failed user action with a message to display.
type ActionError struct {
	Message string
	Err     error
}

func (e *ActionError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ActionError) Unwrap() error { return e.Err }

// HumanMessage returns Message.
func (e *ActionError) HumanMessage() string { return e.Message }

// State is the board's local copy of the todo list.
type State struct {
	Todos  []todo.Todo
	Labels []string
	Active string
}

// Board is the list view model. It is safe for concurrent use.
type Board struct {
	client ports.TodoClient
	logger *slog.Logger
	state  *appctx.Ref[State]
}

// New creates an empty Board showing the All tab.
func New(client ports.TodoClient, logger *slog.Logger) *Board {
	return &Board{
		client: client,
		logger: logging.OrDiscard(logger),
		state:  appctx.NewRef(State{Active: TabAll}),
	}
}

// Load fetches every todo and rebuilds the category tabs. The active tab
// falls back to All when its category no longer exists.
func (b *Board) Load(ctx context.Context) error {
	todos, err := b.client.ListTodos(ctx, todo.Filter{})
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to load todos",
			slog.String("operation", "Board.Load"),
			slog.Any("error", err),
		)
		return &ActionError{Message: humanMessage(err, MsgLoadFailed), Err: err}
	}

	for i := range todos {
		todos[i].Category = strings.TrimSpace(todos[i].Category)
		todos[i].SubCategory = strings.TrimSpace(todos[i].SubCategory)
	}
	labels := categoryLabels(todos)

	b.state.Update(func(s *State) {
		s.Todos = todos
		s.Labels = labels
		s.Active = resolveTab(s.Active, labels)
	})
	return nil
}

// Snapshot returns a copy of the current state.
func (b *Board) Snapshot() State {
	s := b.state.Get()
	s.Todos = slices.Clone(s.Todos)
	s.Labels = slices.Clone(s.Labels)
	return s
}

// Tabs returns All followed by the category labels in collation order.
func (b *Board) Tabs() []string {
	return append([]string{TabAll}, b.state.Get().Labels...)
}

// Active returns the selected tab.
func (b *Board) Active() string {
	return b.state.Get().Active
}

// SelectTab switches to the named tab and returns the tab actually
// selected. Unknown names select All.
func (b *Board) SelectTab(name string) string {
	var active string
	b.state.Update(func(s *State) {
		s.Active = resolveTab(name, s.Labels)
		active = s.Active
	})
	return active
}

// Groups returns the todos to display. The All tab yields one group per
// category; a category tab yields a single group, possibly empty.
func (b *Board) Groups() []todo.Group {
	s := b.state.Get()
	if s.Active == TabAll {
		return todo.GroupByCategory(s.Todos)
	}
	return []todo.Group{{Label: s.Active, Todos: categoryTodos(s.Todos, s.Active)}}
}

// CanMove reports whether Move would reorder the todo.
func (b *Board) CanMove(id string, dir Direction) bool {
	s := b.state.Get()
	if s.Active == TabAll {
		return false
	}
	_, _, ok := neighbours(categoryTodos(s.Todos, s.Active), id, dir)
	return ok
}

// Move swaps the positions of a todo and its neighbour in the active
// category. The swap is applied locally first, then both positions are
// written concurrently. If either write fails the local state is restored
// and a write that succeeded is reverted on the server.
//
// Moving past either end of the list is a no-op.
func (b *Board) Move(ctx context.Context, id string, dir Direction) error {
	s := b.state.Get()
	if s.Active == TabAll {
		return &ActionError{Message: MsgSelectCategory}
	}

	cur, other, ok := neighbours(categoryTodos(s.Todos, s.Active), id, dir)
	if !ok {
		return nil
	}

	b.state.Update(func(st *State) {
		st.Todos = swapPositions(st.Todos, cur, other)
	})

	// Both position updates share one correlation id on the server.
	ctx = httpclient.WithCorrelationID(ctx, uuid.NewString())

	unit := appctx.NewUnit()
	err := unit.AddGroup(
		&positionUpdate{client: b.client, id: cur.ID, from: cur.Position, to: other.Position},
		&positionUpdate{client: b.client, id: other.ID, from: other.Position, to: cur.Position},
	)
	if err == nil {
		err = unit.Commit(ctx)
	}
	if err != nil {
		b.state.Update(func(st *State) {
			st.Todos = restorePositions(st.Todos, cur, other)
		})
		b.logger.ErrorContext(ctx, "failed to reorder todo",
			slog.String("operation", "Board.Move"),
			slog.String("todo_id", id),
			slog.String("direction", dir.String()),
			slog.Any("error", err),
		)
		return &ActionError{Message: MsgReorderFailed, Err: err}
	}

	b.logger.DebugContext(ctx, "todo reordered",
		slog.String("todo_id", cur.ID),
		slog.String("swapped_with", other.ID),
	)
	return nil
}

// Delete removes a todo on the server and then from the local list.
func (b *Board) Delete(ctx context.Context, id string) error {
	if err := b.client.DeleteTodo(ctx, id); err != nil {
		b.logger.ErrorContext(ctx, "failed to delete todo",
			slog.String("operation", "Board.Delete"),
			slog.String("todo_id", id),
			slog.Any("error", err),
		)
		return &ActionError{Message: humanMessage(err, MsgDeleteFailed), Err: err}
	}

	b.state.Update(func(s *State) {
		s.Todos = slices.DeleteFunc(slices.Clone(s.Todos), func(t todo.Todo) bool {
			return t.ID == id
		})
		s.Labels = categoryLabels(s.Todos)
		s.Active = resolveTab(s.Active, s.Labels)
	})
	return nil
}

func resolveTab(name string, labels []string) string {
	name = strings.TrimSpace(name)
	switch {
	case name == "" || name == TabAll:
		return TabAll
	case name == todo.UncategorizedLabel:
		return name
	case slices.Contains(labels, name):
		return name
	default:
		return TabAll
	}
}

func categoryLabels(todos []todo.Todo) []string {
	seen := make(map[string]struct{})
	labels := make([]string, 0)
	for i := range todos {
		label := todo.CategoryLabel(todos[i].Category)
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	todo.SortLabels(labels)
	return labels
}

// categoryTodos returns the todos under label, highest position first.
func categoryTodos(todos []todo.Todo, label string) []todo.Todo {
	out := make([]todo.Todo, 0)
	for _, t := range todos {
		if todo.CategoryLabel(t.Category) == label {
			out = append(out, t)
		}
	}
	todo.SortByPosition(out)
	return out
}

func neighbours(items []todo.Todo, id string, dir Direction) (cur, other todo.Todo, ok bool) {
	i := slices.IndexFunc(items, func(t todo.Todo) bool { return t.ID == id })
	if i < 0 {
		return todo.Todo{}, todo.Todo{}, false
	}
	j := i + 1
	if dir == Up {
		j = i - 1
	}
	if j < 0 || j >= len(items) {
		return todo.Todo{}, todo.Todo{}, false
	}
	return items[i], items[j], true
}

func swapPositions(todos []todo.Todo, a, b todo.Todo) []todo.Todo {
	out := slices.Clone(todos)
	for i := range out {
		switch out[i].ID {
		case a.ID:
			out[i].Position = b.Position
		case b.ID:
			out[i].Position = a.Position
		}
	}
	return out
}

// restorePositions undoes swapPositions for entries that still hold the
// swapped value. Entries replaced by a reload are left alone.
func restorePositions(todos []todo.Todo, a, b todo.Todo) []todo.Todo {
	out := slices.Clone(todos)
	for i := range out {
		switch {
		case out[i].ID == a.ID && out[i].Position == b.Position:
			out[i].Position = a.Position
		case out[i].ID == b.ID && out[i].Position == a.Position:
			out[i].Position = b.Position
		}
	}
	return out
}

func humanMessage(err error, fallback string) string {
	var hm domain.HumanMessager
	if errors.As(err, &hm) {
		if msg := hm.HumanMessage(); msg != "" {
			return msg
		}
	}
	return fallback
}

// positionUpdate writes a todo's position and restores the previous value
// on rollback.
type positionUpdate struct {
	client ports.TodoClient
	id     string
	from   float64
	to     float64
}

func (p *positionUpdate) Execute(ctx context.Context) error {
	return p.set(ctx, p.to)
}

func (p *positionUpdate) Rollback(ctx context.Context) error {
	return p.set(ctx, p.from)
}

func (p *positionUpdate) Description() string {
	return fmt.Sprintf("set position of todo %s", p.id)
}

func (p *positionUpdate) set(ctx context.Context, position float64) error {
	return p.client.UpdateTodo(ctx, p.id, todo.Patch{Position: &position})
}
