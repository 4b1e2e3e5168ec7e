package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/todo-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-board/internal/platform/logging"
)

// Recovery turns a handler panic into a 500 problem response and an error
// log with the stack. The panic value is never sent to the client. When the
// handler already started the response only the log line is written.
//
// Recovery sits outside RequestID, so the id is read back from the
// response header.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	logger = logging.OrDiscard(logger)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := newStatusRecorder(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("request_id", sr.Header().Get(headerRequestID)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
				)

				if !sr.started {
					dto.WriteStatus(sr, r, http.StatusInternalServerError, "Internal server error")
				}
			}()

			next.ServeHTTP(sr, r)
		})
	}
}
