package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-board/internal/ports"
)

// ExpirationHandler serves the course-expiration report and index.
type ExpirationHandler struct {
	svc ports.ExpirationService
}

// NewExpirationHandler creates a new ExpirationHandler.
func NewExpirationHandler(svc ports.ExpirationService) *ExpirationHandler {
	return &ExpirationHandler{svc: svc}
}

// ListLive handles GET /expirations.
func (h *ExpirationHandler) ListLive(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListLive(r.Context())
	if err != nil {
		dto.WriteFailure(w, r, "Failed to fetch expiration dates", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToExpirationEntryResponses(entries))
}

// ItemDates handles GET /expirations/{todoId}.
func (h *ExpirationHandler) ItemDates(w http.ResponseWriter, r *http.Request) {
	todoID, err := parseID(r, "todoId")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dates, err := h.svc.ItemDates(r.Context(), todoID)
	if err != nil {
		dto.WriteFailure(w, r, "Failed to fetch expiration dates", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToItemDateResponses(dates))
}

// ListSynced handles GET /course-expirations.
func (h *ExpirationHandler) ListSynced(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ListSynced(r.Context())
	if err != nil {
		dto.WriteFailure(w, r, "Failed to fetch course expirations", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToSyncedExpirationResponses(records))
}

// Reindex handles POST /course-expirations/reindex.
func (h *ExpirationHandler) Reindex(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Reindex(r.Context())
	if err != nil {
		dto.WriteFailure(w, r, "Failed to reindex course expirations", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToReindexResponse(res))
}
