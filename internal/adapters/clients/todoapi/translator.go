package todoapi

import (
	"time"

	"github.com/jsamuelsen11/todo-board/internal/domain/expiration"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
)

// ToDomainTodo converts a TodoDTO to a domain Todo. Unparseable timestamps
// become the zero time.
func ToDomainTodo(dto *TodoDTO) todo.Todo {
	items := make([]todo.ChecklistItem, len(dto.Checklist))
	for i, it := range dto.Checklist {
		items[i] = todo.ChecklistItem{
			ID:             it.ID,
			Text:           it.Text,
			Checked:        it.Checked,
			ExpirationDate: it.ExpirationDate,
		}
	}

	return todo.Todo{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		Category:    dto.Category,
		SubCategory: dto.SubCategory,
		Assignee:    todo.Assignee(dto.Assignee),
		Checklist:   items,
		Position:    dto.Position,
		CreatedAt:   parseTimestamp(dto.CreatedAt),
		UpdatedAt:   parseTimestamp(dto.UpdatedAt),
	}
}

// ToDomainTodoList converts a list of TodoDTOs, preserving order.
func ToDomainTodoList(dtos []TodoDTO) []todo.Todo {
	todos := make([]todo.Todo, len(dtos))
	for i := range dtos {
		todos[i] = ToDomainTodo(&dtos[i])
	}
	return todos
}

// ToWriteRequest converts a patch to a request body carrying only its
// present fields.
func ToWriteRequest(p todo.Patch) TodoWriteDTO {
	req := TodoWriteDTO{
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Position:    p.Position,
	}
	if p.Assignee != nil {
		a := p.Assignee.String()
		req.Assignee = &a
	}
	if p.Checklist != nil {
		items := make([]ChecklistItemDTO, len(*p.Checklist))
		for i, it := range *p.Checklist {
			items[i] = ChecklistItemDTO{
				ID:             it.ID,
				Text:           it.Text,
				Checked:        it.Checked,
				ExpirationDate: it.ExpirationDate,
			}
		}
		req.Checklist = &items
	}
	return req
}

// ToDomainRecords converts synced index rows.
func ToDomainRecords(dtos []SyncedExpirationDTO) []expiration.Record {
	out := make([]expiration.Record, len(dtos))
	for i, d := range dtos {
		out[i] = expiration.Record{
			ID: d.ID,
			Entry: expiration.Entry{
				TodoID:         d.TodoID,
				TodoTitle:      d.TodoTitle,
				ItemID:         d.ItemID,
				ItemText:       d.ItemText,
				ExpirationDate: d.ExpirationDate,
			},
			CreatedAt: parseTimestampPtr(d.CreatedAt),
			UpdatedAt: parseTimestampPtr(d.UpdatedAt),
		}
	}
	return out
}

func parseTimestamp(s *string) time.Time {
	if t := parseTimestampPtr(s); t != nil {
		return *t
	}
	return time.Time{}
}

func parseTimestampPtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}
