package ports

import "context"

// HealthChecker is a dependency whose availability gates readiness: the
// document store on the server, the todo-board API in todoctl.
type HealthChecker interface {
	// Name labels the check in readiness output, e.g. "docstore".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must return
	// promptly once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs every registered checker for /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
