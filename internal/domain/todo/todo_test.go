package todo

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-board/internal/domain"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func strPtr(v string) *string    { return &v }
func floatPtr(v float64) *float64 { return &v }

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key and summary.
func requireValidationField(t *testing.T, err error, field, message string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
	if got := verr.HumanMessage(); got != message {
		t.Errorf("HumanMessage() = %q, want %q", got, message)
	}
}

func TestAssignee_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		assignee Assignee
		want     bool
	}{
		{AssigneeEmma, true},
		{AssigneeSouphiane, true},
		{"emma", false},
		{"", false},
		{"Bob", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.assignee), func(t *testing.T) {
			t.Parallel()
			if got := tt.assignee.IsValid(); got != tt.want {
				t.Errorf("Assignee(%q).IsValid() = %v, want %v", tt.assignee, got, tt.want)
			}
		})
	}
}

func TestIsCoursesSubCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"Courses", true},
		{"  course ", true},
		{"COURSES", true},
		{"Coursework", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := IsCoursesSubCategory(tt.in); got != tt.want {
				t.Errorf("IsCoursesSubCategory(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTodo_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		todo      Todo
		wantField string
		wantMsg   string
	}{
		{
			name: "valid todo passes",
			todo: Todo{Title: "Buy milk", Assignee: AssigneeEmma},
		},
		{
			name:      "whitespace title fails",
			todo:      Todo{Title: "  ", Assignee: AssigneeEmma},
			wantField: "title",
			wantMsg:   "Title is required",
		},
		{
			name:      "unknown assignee fails",
			todo:      Todo{Title: "x", Assignee: "Bob"},
			wantField: "assignee",
			wantMsg:   "Assignee must be one of: Emma, Souphiane",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.todo.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField, tt.wantMsg)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	got, err := New(Patch{Title: strPtr("  Buy milk  ")}, testNow)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got.Title != "Buy milk" {
		t.Errorf("Title = %q, want %q", got.Title, "Buy milk")
	}
	if got.Assignee != DefaultAssignee {
		t.Errorf("Assignee = %q, want %q", got.Assignee, DefaultAssignee)
	}
	if want := float64(testNow.UnixMilli()); got.Position != want {
		t.Errorf("Position = %v, want %v", got.Position, want)
	}
	if got.Checklist == nil || len(got.Checklist) != 0 {
		t.Errorf("Checklist = %v, want empty non-nil slice", got.Checklist)
	}
}

func TestNew_MissingTitle(t *testing.T) {
	t.Parallel()

	_, err := New(Patch{Description: strPtr("no title")}, testNow)
	requireValidationField(t, err, "title", "Title is required")
}

func TestNew_NormalizesChecklist(t *testing.T) {
	t.Parallel()

	items := []ChecklistItem{
		{ID: "a", Text: "Go course", Checked: true, ExpirationDate: strPtr("2026-06-01T10:00:00Z")},
		{ID: "b", Text: "   "},
		{ID: "a", Text: "dup id", Checked: false, ExpirationDate: strPtr("2026-06-02")},
	}
	got, err := New(Patch{
		Title:       strPtr("Learn"),
		SubCategory: strPtr("Courses"),
		Checklist:   &items,
	}, testNow)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if len(got.Checklist) != 2 {
		t.Fatalf("len(Checklist) = %d, want 2", len(got.Checklist))
	}
	if d := got.Checklist[0].ExpirationDate; d == nil || *d != "2026-06-01" {
		t.Errorf("Checklist[0].ExpirationDate = %v, want 2026-06-01", d)
	}
	if got.Checklist[1].ID == "a" || got.Checklist[1].ID == "" {
		t.Errorf("Checklist[1].ID = %q, want fresh unique id", got.Checklist[1].ID)
	}
	if got.Checklist[1].ExpirationDate != nil {
		t.Errorf("Checklist[1].ExpirationDate = %v, want nil for unchecked item", *got.Checklist[1].ExpirationDate)
	}
}

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "date only", in: "2026-01-31", want: "2026-01-31"},
		{name: "datetime", in: "2026-01-31T23:00:00Z", want: "2026-01-31"},
		{name: "time value", in: time.Date(2025, 12, 1, 5, 0, 0, 0, time.UTC), want: "2025-12-01"},
		{name: "underscore seconds map", in: map[string]any{"_seconds": float64(1767225600), "_nanoseconds": float64(0)}, want: "2026-01-01"},
		{name: "seconds map", in: map[string]any{"seconds": float64(1767225600)}, want: "2026-01-01"},
		{name: "invalid calendar date", in: "2026-02-30"},
		{name: "garbage", in: "next tuesday"},
		{name: "blank", in: "   "},
		{name: "number", in: float64(1767225600000)},
		{name: "nil", in: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NormalizeDate(tt.in)
			switch {
			case tt.want == "" && got != nil:
				t.Errorf("NormalizeDate(%v) = %q, want nil", tt.in, *got)
			case tt.want != "" && (got == nil || *got != tt.want):
				t.Errorf("NormalizeDate(%v) = %v, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolvePosition(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		position any
		created  any
		want     float64
	}{
		{name: "stored position wins", position: float64(42), created: created, want: 42},
		{name: "falls back to createdAt", created: created, want: float64(created.UnixMilli())},
		{name: "falls back to now", want: float64(testNow.UnixMilli())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ResolvePosition(tt.position, tt.created, testNow); got != tt.want {
				t.Errorf("ResolvePosition() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPatch_Validate(t *testing.T) {
	t.Parallel()

	bad := Assignee("Bob")

	tests := []struct {
		name      string
		patch     Patch
		wantField string
		wantMsg   string
	}{
		{name: "position only passes", patch: Patch{Position: floatPtr(3)}},
		{name: "empty patch fails", patch: Patch{}, wantField: "body", wantMsg: "No data provided for update"},
		{name: "blank title fails", patch: Patch{Title: strPtr(" ")}, wantField: "title", wantMsg: "Title cannot be empty"},
		{name: "bad assignee fails", patch: Patch{Assignee: &bad}, wantField: "assignee", wantMsg: "Assignee must be one of: Emma, Souphiane"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.patch.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField, tt.wantMsg)
		})
	}
}

func TestPatch_Resolve_CategoryChangeMovesToTop(t *testing.T) {
	t.Parallel()

	current := Todo{ID: "t1", Title: "x", Category: "Work", Position: 100}
	p := Patch{Category: strPtr(" Home "), Position: floatPtr(5)}

	out, merged := p.Resolve(current, testNow)

	want := -float64(testNow.UnixMilli())
	if out.Position == nil || *out.Position != want {
		t.Errorf("out.Position = %v, want %v", out.Position, want)
	}
	if merged.Category != "Home" {
		t.Errorf("merged.Category = %q, want %q", merged.Category, "Home")
	}
	if merged.Position != want {
		t.Errorf("merged.Position = %v, want %v", merged.Position, want)
	}
}

func TestPatch_Resolve_SameCategoryKeepsPosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category string
	}{
		{name: "unchanged", category: "Work"},
		{name: "cleared", category: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			current := Todo{ID: "t1", Title: "x", Category: "Work", Position: 100}
			out, merged := Patch{Category: strPtr(tt.category)}.Resolve(current, testNow)
			if out.Position != nil {
				t.Errorf("out.Position = %v, want nil", *out.Position)
			}
			if merged.Position != 100 {
				t.Errorf("merged.Position = %v, want 100", merged.Position)
			}
		})
	}
}

func TestPatch_Resolve_SubCategoryChangeClearsDates(t *testing.T) {
	t.Parallel()

	current := Todo{
		ID:          "t1",
		Title:       "x",
		SubCategory: "Courses",
		Checklist: []ChecklistItem{
			{ID: "i1", Text: "cert", Checked: true, ExpirationDate: strPtr("2026-05-01")},
		},
	}

	out, merged := Patch{SubCategory: strPtr("Books")}.Resolve(current, testNow)

	if out.Checklist == nil {
		t.Fatal("out.Checklist = nil, want cleared checklist persisted")
	}
	if d := (*out.Checklist)[0].ExpirationDate; d != nil {
		t.Errorf("ExpirationDate = %q, want nil", *d)
	}
	if merged.TracksExpirations() {
		t.Error("merged.TracksExpirations() = true, want false")
	}
	if !merged.UpdatedAt.Equal(testNow) {
		t.Errorf("merged.UpdatedAt = %v, want %v", merged.UpdatedAt, testNow)
	}
}

func TestPatch_Resolve_SubCategoryNoDateChange(t *testing.T) {
	t.Parallel()

	current := Todo{
		ID:        "t1",
		Title:     "x",
		Checklist: []ChecklistItem{{ID: "i1", Text: "a"}},
	}

	out, _ := Patch{SubCategory: strPtr("Books")}.Resolve(current, testNow)
	if out.Checklist != nil {
		t.Errorf("out.Checklist = %v, want nil when nothing changed", *out.Checklist)
	}
}

func TestDistinctCategories(t *testing.T) {
	t.Parallel()

	todos := []Todo{
		{Category: "work"},
		{Category: " Home "},
		{Category: ""},
		{Category: "work"},
		{Category: "Errands"},
	}

	got := DistinctCategories(todos)
	want := []string{"Errands", "Home", "work"}

	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("DistinctCategories() = %v, want %v", got, want)
	}
}

func TestGroupByCategory(t *testing.T) {
	t.Parallel()

	todos := []Todo{
		{ID: "1", Category: "Work", Position: 1},
		{ID: "2", Category: "", Position: 5},
		{ID: "3", Category: "Work", Position: 9},
		{ID: "4", Category: "Home", Position: 2},
	}

	groups := GroupByCategory(todos)

	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
	}
	if want := "[Home Uncategorized Work]"; fmt.Sprint(labels) != want {
		t.Errorf("labels = %v, want %s", labels, want)
	}

	work := groups[2].Todos
	if len(work) != 2 || work[0].ID != "3" || work[1].ID != "1" {
		t.Errorf("Work group order = %v, want [3 1]", work)
	}
}

func TestSortByPosition_StableOnTies(t *testing.T) {
	t.Parallel()

	todos := []Todo{
		{ID: "a", Position: 1},
		{ID: "b", Position: 3},
		{ID: "c", Position: 1},
	}
	SortByPosition(todos)

	got := []string{todos[0].ID, todos[1].ID, todos[2].ID}
	if fmt.Sprint(got) != "[b a c]" {
		t.Errorf("SortByPosition() order = %v, want [b a c]", got)
	}
}
