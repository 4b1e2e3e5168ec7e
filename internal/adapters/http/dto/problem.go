package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/todo-board/internal/domain"
	"github.com/jsamuelsen11/todo-board/internal/platform/logging"
)

// ContentTypeProblem is the media type of every error body.
const ContentTypeProblem = "application/problem+json"

// Problem is an RFC 9457 problem document. Message is always present and
// safe to show to users; Cause carries the underlying error of server
// failures; Errors lists the offending fields of a validation failure.
type Problem struct {
	Type     string       `json:"type"`
	Title    string       `json:"title"`
	Status   int          `json:"status"`
	Detail   string       `json:"detail,omitempty"`
	Instance string       `json:"instance,omitempty"`
	Message  string       `json:"message"`
	Cause    string       `json:"error,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
}

// FieldError names one invalid request field, e.g. "body.title".
type FieldError struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// statusBySentinel is checked in order; the first match wins.
var statusBySentinel = []struct {
	err    error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

// StatusOf returns the HTTP status for err: the status of the first domain
// sentinel it wraps, or 500.
func StatusOf(err error) int {
	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// NewProblem describes err for the request r. Errors that carry a human
// message supply Message; the others get the status text.
func NewProblem(r *http.Request, err error) Problem {
	p := newStatusProblem(r, StatusOf(err), "")
	p.Detail = err.Error()

	var hm domain.HumanMessager
	if errors.As(err, &hm) {
		p.Message = hm.HumanMessage()
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		p.Errors = fieldErrors(verr.Fields)
	}
	return p
}

// WriteError writes the problem document for err.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	NewProblem(r, err).Write(w, r)
}

// WriteFailure writes err for an operation with a fixed failure message.
// Client errors keep their own message. Server errors report failure as
// the message and err as the cause.
func WriteFailure(w http.ResponseWriter, r *http.Request, failure string, err error) {
	p := NewProblem(r, err)
	if p.Status >= http.StatusInternalServerError {
		p.Message = failure
		p.Cause = err.Error()
	}
	p.Write(w, r)
}

// WriteStatus writes a problem carrying only status and message, for
// failures raised outside the domain such as panics and timeouts.
func WriteStatus(w http.ResponseWriter, r *http.Request, status int, message string) {
	newStatusProblem(r, status, message).Write(w, r)
}

// Write sends p with its status code.
func (p Problem) Write(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", ContentTypeProblem)
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode problem",
			slog.Int("status", p.Status),
			slog.Any("error", err),
		)
	}
}

func newStatusProblem(r *http.Request, status int, message string) Problem {
	return Problem{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Instance: r.RequestURI,
		Message:  cmp.Or(message, http.StatusText(status)),
	}
}

func fieldErrors(fields map[string]string) []FieldError {
	out := make([]FieldError, 0, len(fields))
	for field, msg := range fields {
		out = append(out, FieldError{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(out, func(a, b FieldError) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return out
}
