package slotarena

import "sync"

// Store is the part of the arena API that Locked can forward without
// knowing the variant.
type Store interface {
	Len() int
	Metrics() Metrics
	Clear()
}

// Locked is a RWMutex-protected wrapper around an arena for concurrent
// access. Arenas themselves never lock.
//
// Pointers obtained inside Read or Write must not be used after the
// callback returns.
type Locked[A Store] struct {
	mu sync.RWMutex
	a  A
}

// NewLocked wraps a. The caller must not use a directly afterwards.
func NewLocked[A Store](a A) *Locked[A] {
	return &Locked[A]{a: a}
}

// Read calls fn with a shared lock held. fn must not modify the arena.
func (l *Locked[A]) Read(fn func(A)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn(l.a)
}

// Write calls fn with the exclusive lock held.
func (l *Locked[A]) Write(fn func(A)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.a)
}

// Len thread-safely returns the number of stored values.
func (l *Locked[A]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.a.Len()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (l *Locked[A]) Metrics() Metrics {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.a.Metrics()
}

// Clear thread-safely removes every value.
func (l *Locked[A]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.a.Clear()
}
