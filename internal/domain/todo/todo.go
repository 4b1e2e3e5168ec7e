package todo

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-board/internal/domain"
)

// ChecklistItem is a single line of a todo's checklist. It has no identity
// outside its owning Todo.
type ChecklistItem struct {
	ID      string
	Text    string
	Checked bool
	// ExpirationDate is a YYYY-MM-DD date or nil. It is only kept for checked
	// items of todos whose sub-category tracks expirations.
	ExpirationDate *string
}

// Todo is a task with metadata and an ordered checklist.
type Todo struct {
	ID          string
	Title       string
	Description string
	Category    string
	SubCategory string
	Assignee    Assignee
	Checklist   []ChecklistItem
	// Position orders todos within a category view, highest first.
	Position  float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TracksExpirations reports whether checklist expiration dates apply to t.
func (t *Todo) TracksExpirations() bool {
	return IsCoursesSubCategory(t.SubCategory)
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Todo) Validate() error {
	fields := make(map[string]string)
	var summary string

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
		summary = "Title is required"
	}
	if !t.Assignee.IsValid() {
		fields["assignee"] = fmt.Sprintf("invalid: %q", t.Assignee)
		if summary == "" {
			summary = assigneeMessage()
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields, Message: summary}
	}
	return nil
}

// New builds a normalized Todo from creation input. Fields absent from p get
// their defaults: the first assignee, and a position equal to the creation
// time in epoch milliseconds.
func New(p Patch, now time.Time) (Todo, error) {
	t := Todo{
		Assignee:  DefaultAssignee,
		Position:  float64(now.UnixMilli()),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		t.Category = strings.TrimSpace(*p.Category)
	}
	if p.SubCategory != nil {
		t.SubCategory = strings.TrimSpace(*p.SubCategory)
	}
	if p.Assignee != nil && *p.Assignee != "" {
		t.Assignee = *p.Assignee
	}
	if p.Position != nil {
		t.Position = *p.Position
	}
	if p.Checklist != nil {
		t.Checklist = NormalizeChecklist(*p.Checklist, t.SubCategory, true)
	}
	if t.Checklist == nil {
		t.Checklist = []ChecklistItem{}
	}

	if err := t.Validate(); err != nil {
		return Todo{}, err
	}
	return t, nil
}

func assigneeMessage() string {
	names := make([]string, len(Assignees))
	for i, a := range Assignees {
		names[i] = a.String()
	}
	return "Assignee must be one of: " + strings.Join(names, ", ")
}
