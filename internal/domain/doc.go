// Package domain holds what the todo and expiration packages share: the
// sentinel errors adapters map to HTTP statuses, the validation and
// not-found error types that carry a message fit for end users, and the
// Action contract the terminal client stages remote writes through.
package domain
