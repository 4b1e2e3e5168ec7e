// Package expiration holds the rules for the course-expiration index: which
// checklist items qualify, how index entries are keyed, and how a todo's
// stored entries are reconciled with its current checklist.
package expiration

import (
	"cmp"
	"slices"
	"time"

	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
)

// UntitledTodo is the title reported for todos stored without one.
const UntitledTodo = "Untitled"

// Entry is one dated checklist item of a Courses todo.
type Entry struct {
	TodoID         string
	TodoTitle      string
	ItemID         string
	ItemText       string
	ExpirationDate string
}

// DocID returns the index key of the entry.
func (e Entry) DocID() string {
	return DocID(e.TodoID, e.ItemID)
}

// Record is an Entry as persisted in the index.
type Record struct {
	ID string
	Entry
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// ItemDate is the expiration date of one checklist item, or nil.
type ItemDate struct {
	ItemID         string
	ExpirationDate *string
}

// DocID builds the index key "{todoID}_{itemID}".
func DocID(todoID, itemID string) string {
	return todoID + "_" + itemID
}

// Qualifies reports whether item belongs in the index for a todo with the
// given sub-category.
func Qualifies(subCategory string, item todo.ChecklistItem) bool {
	return item.Checked &&
		item.ExpirationDate != nil &&
		todo.IsValidDate(*item.ExpirationDate) &&
		todo.IsCoursesSubCategory(subCategory)
}

// Desired returns the entries a todo should have in the index.
func Desired(todoID, title, subCategory string, checklist []todo.ChecklistItem) []Entry {
	if !todo.IsCoursesSubCategory(subCategory) {
		return nil
	}
	var out []Entry
	for _, item := range checklist {
		if !Qualifies(subCategory, item) {
			continue
		}
		out = append(out, Entry{
			TodoID:         todoID,
			TodoTitle:      title,
			ItemID:         item.ID,
			ItemText:       item.Text,
			ExpirationDate: *item.ExpirationDate,
		})
	}
	return out
}

// Upsert is an entry to write. New is set when no record exists yet, so the
// writer knows to stamp a creation time.
type Upsert struct {
	Entry
	New bool
}

// Plan is the set of writes that brings the index in line with a todo.
type Plan struct {
	Upserts []Upsert
	Deletes []string
}

// IsEmpty reports whether the plan has no writes.
func (p Plan) IsEmpty() bool {
	return len(p.Upserts) == 0 && len(p.Deletes) == 0
}

// Reconcile diffs the desired entries against the stored records of the same
// todo. Unchanged entries produce no write; stored records with no desired
// counterpart are deleted.
func Reconcile(desired []Entry, stored []Record) Plan {
	byID := make(map[string]Record, len(stored))
	for _, r := range stored {
		byID[r.ID] = r
	}

	var plan Plan
	keep := make(map[string]struct{}, len(desired))
	for _, e := range desired {
		id := e.DocID()
		keep[id] = struct{}{}
		existing, ok := byID[id]
		if ok && existing.Entry == e {
			continue
		}
		plan.Upserts = append(plan.Upserts, Upsert{Entry: e, New: !ok})
	}

	for _, r := range stored {
		if _, ok := keep[r.ID]; !ok {
			plan.Deletes = append(plan.Deletes, r.ID)
		}
	}
	slices.Sort(plan.Deletes)
	return plan
}

// SortEntries orders entries ascending by expiration date. Ties keep their
// input order.
func SortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.ExpirationDate, b.ExpirationDate)
	})
}

// Live derives index entries straight from the todos, for the report that
// does not rely on the synced index.
func Live(todos []todo.Todo) []Entry {
	var out []Entry
	for i := range todos {
		t := &todos[i]
		title := t.Title
		if title == "" {
			title = UntitledTodo
		}
		out = append(out, Desired(t.ID, title, t.SubCategory, t.Checklist)...)
	}
	SortEntries(out)
	return out
}

// ItemDates lists the checklist dates of a todo. It is empty when the todo
// does not track expirations.
func ItemDates(t todo.Todo) []ItemDate {
	if !t.TracksExpirations() {
		return []ItemDate{}
	}
	out := make([]ItemDate, 0, len(t.Checklist))
	for _, item := range t.Checklist {
		out = append(out, ItemDate{ItemID: item.ID, ExpirationDate: item.ExpirationDate})
	}
	return out
}
