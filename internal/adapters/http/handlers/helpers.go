package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-board/internal/domain"
	"github.com/jsamuelsen11/todo-board/internal/platform/logging"
)

// parseID extracts a non-blank document id path parameter from the chi URL params.
func parseID(r *http.Request, param string) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, param))
	if id == "" {
		return "", domain.NewValidationError(param, domain.MsgRequired, "Missing "+param)
	}
	return id, nil
}

// writeJSON sends v as a JSON body with status. Encoding failures are
// logged with the request logger; the status is already on the wire.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeTodoBody parses a todo write body limited to maxJSONBodyBytes. On
// failure it writes a 400 error response and returns nil.
func decodeTodoBody(w http.ResponseWriter, r *http.Request) *dto.TodoRequest {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	req, err := dto.ParseTodoRequest(r.Body)
	if err != nil {
		dto.WriteError(w, r, err)
		return nil
	}
	return req
}
