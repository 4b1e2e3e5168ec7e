// Package middleware holds the inbound pipeline for the todo-board API.
//
// cmd/server composes it in this order:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, Timeout
//
// Every middleware is a func(http.Handler) http.Handler; Chain folds them
// into one.
package middleware
