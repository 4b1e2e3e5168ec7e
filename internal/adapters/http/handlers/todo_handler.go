package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
	"github.com/jsamuelsen11/todo-board/internal/ports"
)

// TodoHandler handles HTTP requests for todo CRUD and the category list.
type TodoHandler struct {
	svc ports.TodoService
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(svc ports.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// ListTodos handles GET /todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	filter := todo.FilterFromQuery(r.URL.Query())

	todos, err := h.svc.ListTodos(r.Context(), filter)
	if err != nil {
		dto.WriteFailure(w, r, "Failed to fetch todos", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoListResponse(todos))
}

// CreateTodo handles POST /todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	req := decodeTodoBody(w, r)
	if req == nil {
		return
	}

	created, err := h.svc.CreateTodo(r.Context(), req.Patch())
	if err != nil {
		dto.WriteFailure(w, r, "Failed to create todo", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.MutationResponse{ID: created.ID, Message: dto.MsgTodoCreated})
}

// GetTodo handles GET /todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	t, err := h.svc.GetTodo(r.Context(), id)
	if err != nil {
		dto.WriteFailure(w, r, "Failed to fetch todo", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(t))
}

// UpdateTodo handles PUT /todos/{id}. Only the keys present in the body
// are changed.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	req := decodeTodoBody(w, r)
	if req == nil {
		return
	}

	if _, err := h.svc.UpdateTodo(r.Context(), id, req.Patch()); err != nil {
		dto.WriteFailure(w, r, "Failed to update todo", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MutationResponse{ID: id, Message: dto.MsgTodoUpdated})
}

// DeleteTodo handles DELETE /todos/{id}. Deleting a missing todo succeeds.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	if err := h.svc.DeleteTodo(r.Context(), id); err != nil {
		dto.WriteFailure(w, r, "Failed to delete todo", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MessageResponse{Message: dto.MsgTodoDeleted})
}

// ListCategories handles GET /categories.
func (h *TodoHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		dto.WriteFailure(w, r, "Failed to fetch categories", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CategoriesResponse{Categories: categories})
}
