// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/todo-board/internal/domain/expiration"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
	"github.com/jsamuelsen11/todo-board/internal/ports"
)

// TimestampLayout is the ISO-8601 layout of every timestamp in responses.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Response messages.
const (
	MsgTodoCreated = "Todo created successfully"
	MsgTodoUpdated = "Todo updated successfully"
	MsgTodoDeleted = "Todo deleted successfully"
)

// ChecklistItemResponse is a checklist item in HTTP responses.
type ChecklistItemResponse struct {
	ID             string  `json:"id"`
	Text           string  `json:"text"`
	Checked        bool    `json:"checked"`
	ExpirationDate *string `json:"expirationDate"`
}

// TodoResponse is the TodoView returned by list and get.
type TodoResponse struct {
	ID          string                  `json:"id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Category    string                  `json:"category"`
	SubCategory string                  `json:"subCategory"`
	Assignee    string                  `json:"assignee"`
	Checklist   []ChecklistItemResponse `json:"checklist"`
	Position    float64                 `json:"position"`
	CreatedAt   *string                 `json:"createdAt"`
	UpdatedAt   *string                 `json:"updatedAt"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	items := make([]ChecklistItemResponse, len(t.Checklist))
	for i, it := range t.Checklist {
		items[i] = ChecklistItemResponse{
			ID:             it.ID,
			Text:           it.Text,
			Checked:        it.Checked,
			ExpirationDate: it.ExpirationDate,
		}
	}
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		SubCategory: t.SubCategory,
		Assignee:    t.Assignee.String(),
		Checklist:   items,
		Position:    t.Position,
		CreatedAt:   FormatTimestamp(t.CreatedAt),
		UpdatedAt:   FormatTimestamp(t.UpdatedAt),
	}
}

// ToTodoListResponse converts todos to their response DTOs, preserving order.
func ToTodoListResponse(todos []todo.Todo) []TodoResponse {
	out := make([]TodoResponse, len(todos))
	for i := range todos {
		out[i] = ToTodoResponse(&todos[i])
	}
	return out
}

// FormatTimestamp renders t in UTC, or nil for the zero time.
func FormatTimestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(TimestampLayout)
	return &s
}

func formatTimestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return FormatTimestamp(*t)
}

// MutationResponse acknowledges a create or update.
type MutationResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// MessageResponse acknowledges an operation without a resource id.
type MessageResponse struct {
	Message string `json:"message"`
}

// CategoriesResponse lists the distinct categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ExpirationEntryResponse is one row of the live expirations report.
type ExpirationEntryResponse struct {
	TodoID         string `json:"todoId"`
	TodoTitle      string `json:"todoTitle"`
	ItemID         string `json:"itemId"`
	ItemText       string `json:"itemText"`
	ExpirationDate string `json:"expirationDate"`
}

// ToExpirationEntryResponses converts report entries to response DTOs.
func ToExpirationEntryResponses(entries []expiration.Entry) []ExpirationEntryResponse {
	out := make([]ExpirationEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = toEntryResponse(e)
	}
	return out
}

func toEntryResponse(e expiration.Entry) ExpirationEntryResponse {
	return ExpirationEntryResponse{
		TodoID:         e.TodoID,
		TodoTitle:      e.TodoTitle,
		ItemID:         e.ItemID,
		ItemText:       e.ItemText,
		ExpirationDate: e.ExpirationDate,
	}
}

// SyncedExpirationResponse is one row of the persisted expiration index.
type SyncedExpirationResponse struct {
	ID string `json:"id"`
	ExpirationEntryResponse
	CreatedAt *string `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt"`
}

// ToSyncedExpirationResponses converts index records to response DTOs.
func ToSyncedExpirationResponses(records []expiration.Record) []SyncedExpirationResponse {
	out := make([]SyncedExpirationResponse, len(records))
	for i, r := range records {
		out[i] = SyncedExpirationResponse{
			ID:                      r.ID,
			ExpirationEntryResponse: toEntryResponse(r.Entry),
			CreatedAt:               formatTimestampPtr(r.CreatedAt),
			UpdatedAt:               formatTimestampPtr(r.UpdatedAt),
		}
	}
	return out
}

// ItemDateResponse is the expiration date of one checklist item.
type ItemDateResponse struct {
	ItemID         string  `json:"itemId"`
	ExpirationDate *string `json:"expirationDate"`
}

// ToItemDateResponses converts item dates to response DTOs.
func ToItemDateResponses(dates []expiration.ItemDate) []ItemDateResponse {
	out := make([]ItemDateResponse, len(dates))
	for i, d := range dates {
		out[i] = ItemDateResponse{ItemID: d.ItemID, ExpirationDate: d.ExpirationDate}
	}
	return out
}

// ReindexResponse reports the outcome of an index rebuild.
type ReindexResponse struct {
	Total  int `json:"total"`
	Synced int `json:"synced"`
	Failed int `json:"failed"`
}

// ToReindexResponse converts a reindex result to its response DTO.
func ToReindexResponse(r *ports.ReindexResult) ReindexResponse {
	return ReindexResponse{Total: r.Total, Synced: r.Synced, Failed: r.Failed}
}

// Readiness statuses.
const (
	StatusOK       = "ok"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// CheckResult is one dependency in a readiness response.
type CheckResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReadinessResponse is the body of GET /health/ready.
type ReadinessResponse struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
}

// ToReadinessResponse folds registry results into a response and reports
// whether every check passed.
func ToReadinessResponse(results map[string]error) (ReadinessResponse, bool) {
	resp := ReadinessResponse{
		Status: StatusReady,
		Checks: make(map[string]CheckResult, len(results)),
	}
	for name, err := range results {
		if err != nil {
			resp.Status = StatusNotReady
			resp.Checks[name] = CheckResult{Status: StatusNotReady, Error: err.Error()}
			continue
		}
		resp.Checks[name] = CheckResult{Status: StatusOK}
	}
	return resp, resp.Status == StatusReady
}
