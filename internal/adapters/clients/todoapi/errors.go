package todoapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/todo-board/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// problemDetail is the server's RFC 9457 error body.
type problemDetail struct {
	Detail  string        `json:"detail"`
	Message string        `json:"message"`
	Cause   string        `json:"error"`
	Errors  []errorDetail `json:"errors"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// APIError is a non-validation failure reported by the server. It wraps the
// domain sentinel matching its status and keeps the server's message for
// display.
type APIError struct {
	Status  int
	Message string
	Cause   string
	kind    error
}

func (e *APIError) Error() string {
	msg := e.Message
	if e.Cause != "" {
		msg += ": " + e.Cause
	}
	return fmt.Sprintf("todo api %d: %s", e.Status, msg)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// HumanMessage returns the server's message.
func (e *APIError) HumanMessage() string {
	return e.Message
}

// TranslateHTTPError maps an HTTP error response to a domain error. Field
// errors on 400 become a *domain.ValidationError; everything else becomes
// an *APIError wrapping the sentinel for its status.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	message := pd.Message
	if message == "" {
		message = pd.Detail
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	var kind error
	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return toValidationError(pd.Errors, message)
	case resp.StatusCode == http.StatusNotFound:
		kind = domain.ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		kind = domain.ErrConflict
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		kind = domain.ErrForbidden
	case resp.StatusCode >= http.StatusInternalServerError:
		kind = domain.ErrUnavailable
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, message)
	}

	return &APIError{Status: resp.StatusCode, Message: message, Cause: pd.Cause, kind: kind}
}

// parseProblemDetail reads a problem or plain JSON body from the response.
// Returns an empty problemDetail if parsing fails.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") && !strings.HasPrefix(ct, "application/json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError strips the "body." prefix from locations to produce
// clean field names.
func toValidationError(details []errorDetail, message string) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "body.")
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields, Message: message}
}
