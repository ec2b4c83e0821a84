package slotarena

import (
	"fmt"
	"iter"
)

// keyed is the Handle based API shared by the generational arenas.
type keyed[T any] struct {
	engine[T]
}

func (k *keyed[T]) handle(i int, gen uint32) Handle {
	return Handle{index: i, gen: gen, brand: k.brand}
}

// Insert stores v and returns its handle.
func (k *keyed[T]) Insert(v T) Handle {
	return k.handle(k.insert(v))
}

// InsertWith stores the value returned by fn, which receives the handle the
// value will be stored under. fn must not modify the arena.
func (k *keyed[T]) InsertWith(fn func(Handle) T) Handle {
	h := k.handle(k.next())
	k.insert(fn(h))
	return h
}

// Get returns a pointer to the value for h. The pointer is valid until the
// value is removed.
func (k *keyed[T]) Get(h Handle) (*T, bool) {
	s := k.lookup(h.brand, h.index, h.gen)
	if s == nil {
		return nil, false
	}
	return &s.value, true
}

// MustGet is like Get but panics with an error wrapping ErrStaleHandle.
func (k *keyed[T]) MustGet(h Handle) *T {
	v, ok := k.Get(h)
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrStaleHandle, h))
	}
	return v
}

// Contains reports whether h addresses a stored value.
func (k *keyed[T]) Contains(h Handle) bool {
	return k.lookup(h.brand, h.index, h.gen) != nil
}

// Remove removes and returns the value for h.
func (k *keyed[T]) Remove(h Handle) (T, bool) {
	if k.lookup(h.brand, h.index, h.gen) == nil {
		var zero T
		return zero, false
	}
	v, _ := k.take(h.index)
	return v, true
}

// Delete removes the value for h and reports whether it was present.
func (k *keyed[T]) Delete(h Handle) bool {
	_, ok := k.Remove(h)
	return ok
}

// Parse returns the handle of the value currently stored at slot i.
func (k *keyed[T]) Parse(i int) (Handle, bool) {
	if i < 0 || i >= k.slots.Len() {
		return Handle{}, false
	}
	s := slotAt(k.slots, i)
	if !s.occupied {
		return Handle{}, false
	}
	return k.handle(i, s.gen), true
}

// GetUnchecked returns a pointer to the value for h, skipping the
// occupancy and generation checks. h must have been returned by this arena
// and its value must not have been removed since. It panics with an error
// wrapping ErrStaleHandle if h has another brand or is out of range.
func (k *keyed[T]) GetUnchecked(h Handle) *T {
	if h.brand != k.brand || h.index < 0 || h.index >= k.slots.Len() {
		panic(fmt.Errorf("%w: %v", ErrStaleHandle, h))
	}
	return &slotAt(k.slots, h.index).value
}

// Retain removes every value for which keep returns false.
func (k *keyed[T]) Retain(keep func(Handle, *T) bool) {
	k.retain(func(i int, s *slot[T]) bool {
		return keep(k.handle(i, s.gen), &s.value)
	})
}

// All yields every handle and value in ascending slot order. Removing
// values while iterating is allowed.
func (k *keyed[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		k.scan(func(i int, s *slot[T]) bool {
			return yield(k.handle(i, s.gen), &s.value)
		})
	}
}

// Keys yields every handle in ascending slot order.
func (k *keyed[T]) Keys() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		k.scan(func(i int, s *slot[T]) bool {
			return yield(k.handle(i, s.gen))
		})
	}
}
