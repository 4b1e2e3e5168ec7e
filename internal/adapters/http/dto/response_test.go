package dto_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-board/internal/domain/expiration"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
	"github.com/jsamuelsen11/todo-board/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func stringPtr(s string) *string { return &s }

func validTodo() todo.Todo {
	return todo.Todo{
		ID:          "t1",
		Title:       "Renew certs",
		Description: "Before summer",
		Category:    "Work",
		SubCategory: "Courses",
		Assignee:    todo.AssigneeEmma,
		Checklist: []todo.ChecklistItem{
			{ID: "i1", Text: "AWS", Checked: true, ExpirationDate: stringPtr("2026-06-01")},
			{ID: "i2", Text: "GCP"},
		},
		Position:  1700000000000,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func TestToTodoResponse(t *testing.T) {
	t.Parallel()

	td := validTodo()
	got := dto.ToTodoResponse(&td)

	if got.ID != "t1" {
		t.Errorf("ID = %q, want %q", got.ID, "t1")
	}
	if got.Assignee != "Emma" {
		t.Errorf("Assignee = %q, want %q", got.Assignee, "Emma")
	}
	if got.CreatedAt == nil || *got.CreatedAt != "2026-02-12T15:04:05.000Z" {
		t.Errorf("CreatedAt = %v, want 2026-02-12T15:04:05.000Z", got.CreatedAt)
	}
	if len(got.Checklist) != 2 {
		t.Fatalf("len(Checklist) = %d, want 2", len(got.Checklist))
	}
	if got.Checklist[1].ExpirationDate != nil {
		t.Errorf("Checklist[1].ExpirationDate = %v, want nil", *got.Checklist[1].ExpirationDate)
	}
}

func TestToTodoResponse_ZeroTimestampsAreNull(t *testing.T) {
	t.Parallel()

	td := validTodo()
	td.CreatedAt = time.Time{}
	td.Checklist = nil

	data, err := json.Marshal(dto.ToTodoResponse(&td))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	s := string(data)
	for _, want := range []string{`"createdAt":null`, `"checklist":[]`, `"subCategory":"Courses"`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON = %s, want it to contain %s", s, want)
		}
	}
}

func TestToTodoListResponse_PreservesOrder(t *testing.T) {
	t.Parallel()

	a, b := validTodo(), validTodo()
	b.ID = "t2"

	got := dto.ToTodoListResponse([]todo.Todo{b, a})
	if len(got) != 2 || got[0].ID != "t2" || got[1].ID != "t1" {
		t.Errorf("ToTodoListResponse() ids = %v, want [t2 t1]", got)
	}
	if empty := dto.ToTodoListResponse(nil); empty == nil {
		t.Error("ToTodoListResponse(nil) = nil, want empty slice")
	}
}

func TestToSyncedExpirationResponses(t *testing.T) {
	t.Parallel()

	records := []expiration.Record{{
		ID: "t1_i1",
		Entry: expiration.Entry{
			TodoID: "t1", TodoTitle: "Renew", ItemID: "i1", ItemText: "AWS", ExpirationDate: "2026-06-01",
		},
		UpdatedAt: &testTime,
	}}

	data, err := json.Marshal(dto.ToSyncedExpirationResponses(records))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	want := `[{"id":"t1_i1","todoId":"t1","todoTitle":"Renew","itemId":"i1","itemText":"AWS",` +
		`"expirationDate":"2026-06-01","createdAt":null,"updatedAt":"2026-02-12T15:04:05.000Z"}]`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}

func TestToItemDateResponses(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ToItemDateResponses([]expiration.ItemDate{
		{ItemID: "a", ExpirationDate: stringPtr("2026-01-01")},
		{ItemID: "b"},
	}))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	want := `[{"itemId":"a","expirationDate":"2026-01-01"},{"itemId":"b","expirationDate":null}]`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}

func TestToReindexResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToReindexResponse(&ports.ReindexResult{Total: 3, Synced: 2, Failed: 1})
	if got != (dto.ReindexResponse{Total: 3, Synced: 2, Failed: 1}) {
		t.Errorf("ToReindexResponse() = %+v, want {3 2 1}", got)
	}
}
