// Package http is the inbound HTTP adapter of the todo board: the chi
// routing table and the server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-board/internal/adapters/http/handlers"
)

// NewRouter returns the API routing table. middlewares wrap every route,
// outermost first. Unknown paths and methods answer with problem documents
// like every other failure.
func NewRouter(
	todos *handlers.TodoHandler,
	expirations *handlers.ExpirationHandler,
	health *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteStatus(w, req, http.StatusNotFound, "No route for "+req.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteStatus(w, req, http.StatusMethodNotAllowed, req.Method+" is not supported on "+req.URL.Path)
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", health.Liveness)
		r.Get("/ready", health.Readiness)
	})

	r.Route("/todos", func(r chi.Router) {
		r.Get("/", todos.ListTodos)
		r.Post("/", todos.CreateTodo)
		r.Get("/{id}", todos.GetTodo)
		r.Put("/{id}", todos.UpdateTodo)
		r.Delete("/{id}", todos.DeleteTodo)
	})
	r.Get("/categories", todos.ListCategories)

	// Computed from the todos on every request.
	r.Get("/expirations", expirations.ListLive)
	r.Get("/expirations/{todoId}", expirations.ItemDates)

	// Served from the persisted index.
	r.Get("/course-expirations", expirations.ListSynced)
	r.Post("/course-expirations/reindex", expirations.Reindex)

	return r
}
