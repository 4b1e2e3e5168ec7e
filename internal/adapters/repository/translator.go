package repository

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-board/internal/adapters/docstore"
	"github.com/jsamuelsen11/todo-board/internal/domain/expiration"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
)

// Stored field names. They match the JSON wire names so documents written
// by older deployments decode unchanged.
const (
	fieldTitle          = "title"
	fieldDescription    = "description"
	fieldCategory       = "category"
	fieldSubCategory    = "subCategory"
	fieldAssignee       = "assignee"
	fieldChecklist      = "checklist"
	fieldPosition       = "position"
	fieldCreatedAt      = "createdAt"
	fieldUpdatedAt      = "updatedAt"
	fieldTodoID         = "todoId"
	fieldTodoTitle      = "todoTitle"
	fieldItemID         = "itemId"
	fieldItemText       = "itemText"
	fieldExpirationDate = "expirationDate"

	itemID      = "id"
	itemText    = "text"
	itemChecked = "checked"
)

// toDomainTodo decodes a stored todo. Decoding never fails: missing or
// mistyped fields fall back to their zero value and the normalization rules
// run as they do on write, except that blank checklist items are kept.
func toDomainTodo(snap docstore.Snapshot, now time.Time) todo.Todo {
	d := snap.Data
	t := todo.Todo{
		ID:          snap.ID,
		Title:       strings.TrimSpace(str(d[fieldTitle])),
		Description: str(d[fieldDescription]),
		Category:    strings.TrimSpace(str(d[fieldCategory])),
		SubCategory: strings.TrimSpace(str(d[fieldSubCategory])),
		Assignee:    todo.Assignee(str(d[fieldAssignee])),
		Position:    todo.ResolvePosition(d[fieldPosition], d[fieldCreatedAt], now),
	}
	if t.Assignee == "" {
		t.Assignee = todo.DefaultAssignee
	}
	if ts, ok := todo.ParseTimestamp(d[fieldCreatedAt]); ok {
		t.CreatedAt = ts
	}
	if ts, ok := todo.ParseTimestamp(d[fieldUpdatedAt]); ok {
		t.UpdatedAt = ts
	}

	raw, _ := d[fieldChecklist].([]any)
	items := make([]todo.ChecklistItem, 0, len(raw))
	for _, r := range raw {
		m, ok := r.(map[string]any)
		if !ok {
			continue
		}
		checked, _ := m[itemChecked].(bool)
		items = append(items, todo.ChecklistItem{
			ID:             str(m[itemID]),
			Text:           str(m[itemText]),
			Checked:        checked,
			ExpirationDate: todo.NormalizeDate(m[fieldExpirationDate]),
		})
	}
	t.Checklist = todo.NormalizeChecklist(items, t.SubCategory, false)
	return t
}

func toTodoDocument(t *todo.Todo) docstore.Document {
	return docstore.Document{
		fieldTitle:       t.Title,
		fieldDescription: t.Description,
		fieldCategory:    t.Category,
		fieldSubCategory: t.SubCategory,
		fieldAssignee:    t.Assignee.String(),
		fieldChecklist:   toChecklistValue(t.Checklist),
		fieldPosition:    t.Position,
		fieldCreatedAt:   docstore.ServerTimestamp,
		fieldUpdatedAt:   docstore.ServerTimestamp,
	}
}

// toPatchDocument returns the present fields of p plus a fresh update time.
func toPatchDocument(p *todo.Patch) docstore.Document {
	d := docstore.Document{fieldUpdatedAt: docstore.ServerTimestamp}
	if p.Title != nil {
		d[fieldTitle] = *p.Title
	}
	if p.Description != nil {
		d[fieldDescription] = *p.Description
	}
	if p.Category != nil {
		d[fieldCategory] = *p.Category
	}
	if p.SubCategory != nil {
		d[fieldSubCategory] = *p.SubCategory
	}
	if p.Assignee != nil {
		d[fieldAssignee] = p.Assignee.String()
	}
	if p.Checklist != nil {
		d[fieldChecklist] = toChecklistValue(*p.Checklist)
	}
	if p.Position != nil {
		d[fieldPosition] = *p.Position
	}
	return d
}

func toChecklistValue(items []todo.ChecklistItem) []any {
	out := make([]any, len(items))
	for i, item := range items {
		var date any
		if item.ExpirationDate != nil {
			date = *item.ExpirationDate
		}
		out[i] = map[string]any{
			itemID:              item.ID,
			itemText:            item.Text,
			itemChecked:         item.Checked,
			fieldExpirationDate: date,
		}
	}
	return out
}

func toDomainRecord(snap docstore.Snapshot) expiration.Record {
	d := snap.Data
	r := expiration.Record{
		ID: snap.ID,
		Entry: expiration.Entry{
			TodoID:         str(d[fieldTodoID]),
			TodoTitle:      str(d[fieldTodoTitle]),
			ItemID:         str(d[fieldItemID]),
			ItemText:       str(d[fieldItemText]),
			ExpirationDate: str(d[fieldExpirationDate]),
		},
	}
	if ts, ok := todo.ParseTimestamp(d[fieldCreatedAt]); ok {
		r.CreatedAt = &ts
	}
	if ts, ok := todo.ParseTimestamp(d[fieldUpdatedAt]); ok {
		r.UpdatedAt = &ts
	}
	return r
}

func toEntryDocument(u expiration.Upsert) docstore.Document {
	d := docstore.Document{
		fieldTodoID:         u.TodoID,
		fieldTodoTitle:      u.TodoTitle,
		fieldItemID:         u.ItemID,
		fieldItemText:       u.ItemText,
		fieldExpirationDate: u.ExpirationDate,
		fieldUpdatedAt:      docstore.ServerTimestamp,
	}
	if u.New {
		d[fieldCreatedAt] = docstore.ServerTimestamp
	}
	return d
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
