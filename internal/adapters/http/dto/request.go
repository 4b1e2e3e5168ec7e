package dto

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jsamuelsen11/todo-board/internal/domain"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
)

//go:embed schemas/todo.json
var todoSchemaJSON string

const todoSchemaURL = "https://todo-board.local/schemas/todo.json"

var (
	todoSchemaOnce sync.Once
	todoSchema     *jsonschema.Schema
	todoSchemaErr  error
)

func compiledTodoSchema() (*jsonschema.Schema, error) {
	todoSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(todoSchemaURL, strings.NewReader(todoSchemaJSON)); err != nil {
			todoSchemaErr = fmt.Errorf("add todo schema: %w", err)
			return
		}
		todoSchema, todoSchemaErr = compiler.Compile(todoSchemaURL)
	})
	return todoSchema, todoSchemaErr
}

// ChecklistItemRequest is a checklist item as sent by clients.
// ExpirationDate accepts any date representation understood by
// todo.NormalizeDate.
type ChecklistItemRequest struct {
	ID             *string `json:"id"`
	Text           *string `json:"text"`
	Checked        bool    `json:"checked"`
	ExpirationDate any     `json:"expirationDate"`
}

// TodoRequest is the JSON body of create and update requests. Absent keys
// stay nil; explicit nulls for optional text fields mean empty.
type TodoRequest struct {
	Title       *string                 `json:"title"`
	Description *string                 `json:"description"`
	Category    *string                 `json:"category"`
	SubCategory *string                 `json:"subCategory"`
	Assignee    *string                 `json:"assignee"`
	Position    *float64                `json:"position"`
	Checklist   *[]ChecklistItemRequest `json:"checklist"`

	present map[string]bool
}

// ParseTodoRequest reads a request body, checks it against the todo schema
// and decodes it. Unknown keys, server-managed keys such as createdAt, and
// mistyped values are validation errors.
func ParseTodoRequest(r io.Reader) (*TodoRequest, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, invalidBody("could not be read")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, invalidBody("invalid JSON")
	}

	schema, err := compiledTodoSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(doc); err != nil {
		return nil, schemaValidationError(err)
	}

	var req TodoRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, invalidBody("invalid JSON")
	}
	if obj, ok := doc.(map[string]any); ok {
		req.present = make(map[string]bool, len(obj))
		for k := range obj {
			req.present[k] = true
		}
	}
	return &req, nil
}

// Patch converts the request into a domain patch. Keys sent as null count
// as present with an empty value.
func (r *TodoRequest) Patch() todo.Patch {
	var p todo.Patch

	p.Title = r.textField("title", r.Title)
	p.Description = r.textField("description", r.Description)
	p.Category = r.textField("category", r.Category)
	p.SubCategory = r.textField("subCategory", r.SubCategory)
	if a := r.textField("assignee", r.Assignee); a != nil {
		assignee := todo.Assignee(strings.TrimSpace(*a))
		p.Assignee = &assignee
	}
	p.Position = r.Position

	switch {
	case r.Checklist == nil && r.present["checklist"]:
		p.Checklist = &[]todo.ChecklistItem{}
	case r.Checklist != nil:
		items := make([]todo.ChecklistItem, len(*r.Checklist))
		for i, it := range *r.Checklist {
			items[i] = todo.ChecklistItem{
				ID:             deref(it.ID),
				Text:           deref(it.Text),
				Checked:        it.Checked,
				ExpirationDate: todo.NormalizeDate(it.ExpirationDate),
			}
		}
		p.Checklist = &items
	}
	return p
}

func (r *TodoRequest) textField(key string, v *string) *string {
	if v != nil {
		return v
	}
	if r.present[key] {
		empty := ""
		return &empty
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func invalidBody(msg string) error {
	return &domain.ValidationError{
		Fields:  map[string]string{"body": msg},
		Message: "Invalid request body",
	}
}

// schemaValidationError flattens the leaf causes of a schema failure into
// field errors keyed by their JSON pointer.
func schemaValidationError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return invalidBody(err.Error())
	}

	fields := make(map[string]string)
	collectSchemaCauses(ve, fields)
	if len(fields) == 0 {
		fields["body"] = ve.Message
	}
	return &domain.ValidationError{Fields: fields, Message: "Invalid request body"}
}

func collectSchemaCauses(ve *jsonschema.ValidationError, fields map[string]string) {
	if len(ve.Causes) == 0 {
		key := strings.ReplaceAll(strings.TrimPrefix(ve.InstanceLocation, "/"), "/", ".")
		if key == "" {
			key = "body"
		}
		if _, exists := fields[key]; !exists {
			fields[key] = ve.Message
		}
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaCauses(cause, fields)
	}
}
