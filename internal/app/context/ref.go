package appctx

import "sync"

// Ref holds client state shared between UI events and background work.
//
// Get returns a shallow copy; slices and maps held in T must be cloned
// before they are modified outside Update.
type Ref[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewRef creates a Ref holding val.
func NewRef[T any](val T) *Ref[T] {
	return &Ref[T]{val: val}
}

// Get returns the current value.
func (r *Ref[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

// Update mutates the value under the write lock. fn sees every write that
// completed before it, so it can patch state changed since an earlier Get.
func (r *Ref[T]) Update(fn func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.val)
}
