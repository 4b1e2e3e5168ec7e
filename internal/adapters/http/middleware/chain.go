package middleware

import "net/http"

// Chain folds middlewares into one, first argument outermost:
// Chain(Recovery, RequestID)(h) is Recovery(RequestID(h)). Nil entries are
// skipped so optional middleware can be passed unconditionally.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			if middlewares[i] == nil {
				continue
			}
			handler = middlewares[i](handler)
		}
		return handler
	}
}
