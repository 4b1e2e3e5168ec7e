package todo

import (
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-board/internal/domain"
)

// Patch carries a partial set of todo fields. Nil fields are absent and left
// untouched by an update.
type Patch struct {
	Title       *string
	Description *string
	Category    *string
	SubCategory *string
	Assignee    *Assignee
	Checklist   *[]ChecklistItem
	Position    *float64
}

// IsEmpty reports whether no field is present.
func (p *Patch) IsEmpty() bool {
	return p.Title == nil &&
		p.Description == nil &&
		p.Category == nil &&
		p.SubCategory == nil &&
		p.Assignee == nil &&
		p.Checklist == nil &&
		p.Position == nil
}

// Validate checks the update rules: at least one field, a non-blank title
// when one is given, and a known assignee.
func (p *Patch) Validate() error {
	if p.IsEmpty() {
		return domain.NewValidationError("body", "must contain at least one field", "No data provided for update")
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return domain.NewValidationError("title", domain.MsgBlank, "Title cannot be empty")
	}
	if p.Assignee != nil && !p.Assignee.IsValid() {
		return domain.NewValidationError("assignee", "invalid: "+p.Assignee.String(), assigneeMessage())
	}
	return nil
}

// Resolve normalizes p against the currently stored todo. It returns the
// fields to persist and the todo as it will look once they are applied.
//
// A category change to a different, non-empty value moves the todo to the top
// of its new category by setting Position to -now in epoch milliseconds; this
// overrides any Position supplied in p.
func (p Patch) Resolve(current Todo, now time.Time) (Patch, Todo) {
	out := p
	merged := current
	merged.UpdatedAt = now

	if p.Title != nil {
		out.Title = trimmed(*p.Title)
		merged.Title = *out.Title
	}
	if p.Description != nil {
		merged.Description = *p.Description
	}
	if p.SubCategory != nil {
		out.SubCategory = trimmed(*p.SubCategory)
		merged.SubCategory = *out.SubCategory
	}
	if p.Assignee != nil {
		merged.Assignee = *p.Assignee
	}
	if p.Position != nil {
		merged.Position = *p.Position
	}
	if p.Category != nil {
		out.Category = trimmed(*p.Category)
		next := *out.Category
		if next != "" && next != strings.TrimSpace(current.Category) {
			pos := -float64(now.UnixMilli())
			out.Position = &pos
			merged.Position = pos
		}
		merged.Category = next
	}

	switch {
	case p.Checklist != nil:
		items := NormalizeChecklist(*p.Checklist, merged.SubCategory, true)
		out.Checklist = &items
		merged.Checklist = items
	case p.SubCategory != nil:
		// Dates cleared by a sub-category change are persisted too.
		items := NormalizeChecklist(current.Checklist, merged.SubCategory, false)
		if !slices.EqualFunc(items, current.Checklist, sameItem) {
			out.Checklist = &items
		}
		merged.Checklist = items
	}

	return out, merged
}

func trimmed(s string) *string {
	t := strings.TrimSpace(s)
	return &t
}

func sameItem(a, b ChecklistItem) bool {
	if a.ID != b.ID || a.Text != b.Text || a.Checked != b.Checked {
		return false
	}
	if a.ExpirationDate == nil || b.ExpirationDate == nil {
		return a.ExpirationDate == b.ExpirationDate
	}
	return *a.ExpirationDate == *b.ExpirationDate
}
