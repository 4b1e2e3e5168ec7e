package domain

import "context"

// Action is a remote write that can be undone. Units of work execute
// actions in order and roll back the ones that succeeded when a later one
// fails.
type Action interface {
	// Execute performs the write and must respect ctx cancellation.
	Execute(ctx context.Context) error

	// Rollback compensates a successful Execute. It is never called for an
	// action whose Execute failed.
	Rollback(ctx context.Context) error

	// Description names the action in logs, e.g. "set position of todo abc".
	Description() string
}
