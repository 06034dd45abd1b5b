// internal/ringbuf/ringbuf.go

// Package ringbuf is a fixed-capacity diagnostic event ring. Writers never
// block and never fail: the ring keeps the last N entries and silently
// overwrites the oldest. It is observational storage only; nothing reads it
// on the hot path.
package ringbuf

import "sync"

// Ring holds the last N entries of type T.
type Ring[T any] struct {
	mu      sync.Mutex
	entries []T
	next    int
	wrapped bool
}

// New creates a ring with the given capacity. Capacity is fixed for the
// ring's lifetime.
func New[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Ring[T]{entries: make([]T, capacity)}
}

// Put records one entry, overwriting the oldest when full.
func (r *Ring[T]) Put(e T) {
	r.mu.Lock()
	r.entries[r.next] = e
	r.next++
	if r.next == len(r.entries) {
		r.next = 0
		r.wrapped = true
	}
	r.mu.Unlock()
}

// Len reports how many entries are currently held.
func (r *Ring[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.wrapped {
		return len(r.entries)
	}
	return r.next
}

// Snapshot copies the held entries, oldest first.
func (r *Ring[T]) Snapshot() []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.wrapped {
		out := make([]T, r.next)
		copy(out, r.entries[:r.next])
		return out
	}

	out := make([]T, 0, len(r.entries))
	out = append(out, r.entries[r.next:]...)
	out = append(out, r.entries[:r.next]...)
	return out
}
