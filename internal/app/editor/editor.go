// Package editor is the create/edit form model of the terminal client. It
// owns the form fields and the checklist, submits them through a
// [ports.TodoClient], and auto-saves edits on an interval.
package editor

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-board/internal/domain"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
	"github.com/jsamuelsen11/todo-board/internal/platform/logging"
	"github.com/jsamuelsen11/todo-board/internal/ports"
)

// Mode tells whether the editor creates a new todo or edits an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Form holds the editable fields.
type Form struct {
	Title       string
	Description string
	Category    string
	SubCategory string
	Assignee    todo.Assignee
	Checklist   []todo.ChecklistItem
}

func (f Form) clone() Form {
	f.Checklist = slices.Clone(f.Checklist)
	return f
}

// Editor is safe for concurrent use; the auto-save goroutine and UI events
// may call it at the same time.
type Editor struct {
	client ports.TodoClient
	logger *slog.Logger
	newID  func() string

	mu        sync.Mutex
	id        string
	form      Form
	lastSaved string

	// saveMu serializes Submit and auto-save.
	saveMu sync.Mutex
}

// NewCreate returns an editor for a new todo.
func NewCreate(client ports.TodoClient, logger *slog.Logger) *Editor {
	e := &Editor{
		client: client,
		logger: logging.OrDiscard(logger),
		newID:  uuid.NewString,
		form:   Form{Assignee: todo.DefaultAssignee, Checklist: []todo.ChecklistItem{}},
	}
	e.lastSaved = serialize(e.form)
	return e
}

// Open fetches a todo and returns an editor for it.
func Open(ctx context.Context, client ports.TodoClient, id string, logger *slog.Logger) (*Editor, error) {
	t, err := client.GetTodo(ctx, id)
	if err != nil {
		return nil, err
	}

	e := &Editor{
		client: client,
		logger: logging.OrDiscard(logger),
		newID:  uuid.NewString,
		id:     t.ID,
		form: Form{
			Title:       t.Title,
			Description: t.Description,
			Category:    t.Category,
			SubCategory: t.SubCategory,
			Assignee:    t.Assignee,
			Checklist:   slices.Clone(t.Checklist),
		},
	}
	if e.form.Checklist == nil {
		e.form.Checklist = []todo.ChecklistItem{}
	}
	for i := range e.form.Checklist {
		if e.form.Checklist[i].ID == "" {
			e.form.Checklist[i].ID = e.newID()
		}
	}
	e.lastSaved = serialize(e.form)
	return e, nil
}

// Mode returns ModeEdit once the todo exists on the server.
func (e *Editor) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.id == "" {
		return ModeCreate
	}
	return ModeEdit
}

// ID returns the todo id, empty in create mode.
func (e *Editor) ID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.id
}

// Form returns a copy of the current form.
func (e *Editor) Form() Form {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.form.clone()
}

// Dirty reports whether the form differs from the last saved state.
func (e *Editor) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return serialize(e.form) != e.lastSaved
}

func (e *Editor) SetTitle(s string)       { e.update(func(f *Form) { f.Title = s }) }
func (e *Editor) SetDescription(s string) { e.update(func(f *Form) { f.Description = s }) }
func (e *Editor) SetCategory(s string)    { e.update(func(f *Form) { f.Category = s }) }

// SetSubCategory changes the sub-category. Leaving Courses clears every
// expiration date.
func (e *Editor) SetSubCategory(s string) {
	e.update(func(f *Form) {
		f.SubCategory = s
		if !todo.IsCoursesSubCategory(s) {
			for i := range f.Checklist {
				f.Checklist[i].ExpirationDate = nil
			}
		}
	})
}

// SetAssignee changes the assignee. Names outside the fixed set are rejected.
func (e *Editor) SetAssignee(a todo.Assignee) error {
	if !a.IsValid() {
		return domain.NewValidationError("assignee", "is not a known assignee", "Unknown assignee")
	}
	e.update(func(f *Form) { f.Assignee = a })
	return nil
}

// AddItem appends an empty unchecked item and returns its id.
func (e *Editor) AddItem() string {
	id := e.newID()
	e.update(func(f *Form) {
		f.Checklist = append(f.Checklist, todo.ChecklistItem{ID: id})
	})
	return id
}

// EditItem replaces an item's text.
func (e *Editor) EditItem(id, text string) {
	e.updateItem(id, func(it *todo.ChecklistItem) { it.Text = text })
}

// ToggleItem flips an item's checked state. Unchecking clears its date.
func (e *Editor) ToggleItem(id string) {
	e.updateItem(id, func(it *todo.ChecklistItem) {
		it.Checked = !it.Checked
		if !it.Checked {
			it.ExpirationDate = nil
		}
	})
}

// DeleteItem removes an item.
func (e *Editor) DeleteItem(id string) {
	e.update(func(f *Form) {
		f.Checklist = slices.DeleteFunc(f.Checklist, func(it todo.ChecklistItem) bool {
			return it.ID == id
		})
	})
}

// Reorder moves the item at index from to index to, shifting the items in
// between. Out of range indexes are ignored.
func (e *Editor) Reorder(from, to int) {
	e.update(func(f *Form) {
		n := len(f.Checklist)
		if from == to || from < 0 || to < 0 || from >= n || to >= n {
			return
		}
		item := f.Checklist[from]
		f.Checklist = slices.Delete(f.Checklist, from, from+1)
		f.Checklist = slices.Insert(f.Checklist, to, item)
	})
}

// ShowsExpiration reports whether the item takes an expiration date: it
// must be checked and the todo's sub-category must be Courses.
func (e *Editor) ShowsExpiration(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	i := e.indexOf(id)
	return i >= 0 && e.form.Checklist[i].Checked && todo.IsCoursesSubCategory(e.form.SubCategory)
}

// SetItemDate sets an item's expiration date from user input. Empty input
// clears it.
func (e *Editor) SetItemDate(id, raw string) error {
	if !e.ShowsExpiration(id) {
		return domain.NewValidationError("expirationDate", "requires a checked item in a Courses todo",
			"Expiration dates apply to checked items in Courses todos")
	}

	var date *string
	if raw = strings.TrimSpace(raw); raw != "" {
		date = todo.NormalizeDate(raw)
		if date == nil {
			return domain.NewValidationError("expirationDate", "must be a date (YYYY-MM-DD)", "Invalid expiration date")
		}
	}
	e.updateItem(id, func(it *todo.ChecklistItem) { it.ExpirationDate = date })
	return nil
}

// Submit saves the form: a create in create mode, a full update in edit
// mode. Items with blank text are not sent. After a successful create the
// editor switches to edit mode. Returns the todo id.
func (e *Editor) Submit(ctx context.Context) (string, error) {
	e.saveMu.Lock()
	defer e.saveMu.Unlock()

	e.mu.Lock()
	id, form := e.id, e.form.clone()
	e.mu.Unlock()

	if strings.TrimSpace(form.Title) == "" {
		return "", domain.NewValidationError("title", domain.MsgRequired, "Title is required.")
	}

	if err := e.save(ctx, &id, form); err != nil {
		e.logger.ErrorContext(ctx, "failed to save todo",
			slog.String("operation", "Editor.Submit"),
			slog.String("todo_id", id),
			slog.Any("error", err),
		)
		return "", err
	}
	return id, nil
}

// Delete deletes the todo being edited.
func (e *Editor) Delete(ctx context.Context) error {
	id := e.ID()
	if id == "" {
		return nil
	}
	if err := e.client.DeleteTodo(ctx, id); err != nil {
		e.logger.ErrorContext(ctx, "failed to delete todo",
			slog.String("operation", "Editor.Delete"),
			slog.String("todo_id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// OnIntervalTick auto-saves an existing todo when the form changed since
// the last save. It does nothing in create mode or when the title is blank.
// Failures are logged and left for the next tick. Reports whether a save
// happened.
func (e *Editor) OnIntervalTick(ctx context.Context) bool {
	if !e.saveMu.TryLock() {
		return false
	}
	defer e.saveMu.Unlock()

	e.mu.Lock()
	id, form := e.id, e.form.clone()
	changed := serialize(e.form) != e.lastSaved
	e.mu.Unlock()

	if id == "" || !changed || strings.TrimSpace(form.Title) == "" {
		return false
	}

	if err := e.save(ctx, &id, form); err != nil {
		e.logger.WarnContext(ctx, "auto-save failed",
			slog.String("operation", "Editor.OnIntervalTick"),
			slog.String("todo_id", id),
			slog.Any("error", err),
		)
		return false
	}

	e.logger.DebugContext(ctx, "auto-saved todo", slog.String("todo_id", id))
	return true
}

// StartAutoSave calls OnIntervalTick every interval until ctx is done or
// the returned stop function is called. onSave, when non-nil, runs after
// each successful save.
func (e *Editor) StartAutoSave(ctx context.Context, interval time.Duration, onSave func()) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if e.OnIntervalTick(ctx) && onSave != nil {
					onSave()
				}
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

// save sends form and records it as the last saved state. id is set on
// create. Callers hold saveMu.
func (e *Editor) save(ctx context.Context, id *string, form Form) error {
	patch := toPatch(form)

	if *id == "" {
		newID, err := e.client.CreateTodo(ctx, patch)
		if err != nil {
			return err
		}
		*id = newID
	} else if err := e.client.UpdateTodo(ctx, *id, patch); err != nil {
		return err
	}

	e.mu.Lock()
	e.id = *id
	e.lastSaved = serialize(form)
	e.mu.Unlock()
	return nil
}

func (e *Editor) update(fn func(*Form)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.form)
}

func (e *Editor) updateItem(id string, fn func(*todo.ChecklistItem)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i := e.indexOf(id); i >= 0 {
		fn(&e.form.Checklist[i])
	}
}

func (e *Editor) indexOf(id string) int {
	return slices.IndexFunc(e.form.Checklist, func(it todo.ChecklistItem) bool {
		return it.ID == id
	})
}

func toPatch(f Form) todo.Patch {
	items := make([]todo.ChecklistItem, 0, len(f.Checklist))
	for _, it := range f.Checklist {
		if strings.TrimSpace(it.Text) != "" {
			items = append(items, it)
		}
	}
	assignee := f.Assignee
	return todo.Patch{
		Title:       &f.Title,
		Description: &f.Description,
		Category:    &f.Category,
		SubCategory: &f.SubCategory,
		Assignee:    &assignee,
		Checklist:   &items,
	}
}

func serialize(f Form) string {
	data, err := json.Marshal(f)
	if err != nil {
		return ""
	}
	return string(data)
}
