package slotarena

import (
	"fmt"
	"iter"
)

// indexed is the Index based API shared by Slab and Dense.
type indexed[T any] struct {
	engine[T]
}

func (x *indexed[T]) index(i int) Index {
	return Index{index: i, brand: x.brand}
}

// Insert stores v and returns its index.
func (x *indexed[T]) Insert(v T) Index {
	i, _ := x.insert(v)
	return x.index(i)
}

// InsertWith stores the value returned by fn, which receives the index the
// value will be stored under. fn must not modify the arena.
func (x *indexed[T]) InsertWith(fn func(Index) T) Index {
	i, _ := x.next()
	idx := x.index(i)
	x.insert(fn(idx))
	return idx
}

// Get returns a pointer to the value at i.
func (x *indexed[T]) Get(i Index) (*T, bool) {
	s := x.lookup(i.brand, i.index, 0)
	if s == nil {
		return nil, false
	}
	return &s.value, true
}

// MustGet is like Get but panics with an error wrapping ErrStaleHandle.
func (x *indexed[T]) MustGet(i Index) *T {
	v, ok := x.Get(i)
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrStaleHandle, i))
	}
	return v
}

// Contains reports whether i addresses a stored value.
func (x *indexed[T]) Contains(i Index) bool {
	return x.lookup(i.brand, i.index, 0) != nil
}

// Remove removes and returns the value at i.
func (x *indexed[T]) Remove(i Index) (T, bool) {
	if x.lookup(i.brand, i.index, 0) == nil {
		var zero T
		return zero, false
	}
	v, _ := x.take(i.index)
	return v, true
}

// Delete removes the value at i and reports whether it was present.
func (x *indexed[T]) Delete(i Index) bool {
	_, ok := x.Remove(i)
	return ok
}

// Parse returns the index for slot i if it holds a value.
func (x *indexed[T]) Parse(i int) (Index, bool) {
	if i < 0 || i >= x.slots.Len() || !slotAt(x.slots, i).occupied {
		return Index{}, false
	}
	return x.index(i), true
}

// GetUnchecked returns a pointer to the value at i, skipping the occupancy
// check. It panics with an error wrapping ErrStaleHandle if i has another
// brand or is out of range.
func (x *indexed[T]) GetUnchecked(i Index) *T {
	if i.brand != x.brand || i.index < 0 || i.index >= x.slots.Len() {
		panic(fmt.Errorf("%w: %v", ErrStaleHandle, i))
	}
	return &slotAt(x.slots, i.index).value
}

// Retain removes every value for which keep returns false.
func (x *indexed[T]) Retain(keep func(Index, *T) bool) {
	x.retain(func(i int, s *slot[T]) bool {
		return keep(x.index(i), &s.value)
	})
}

// All yields every index and value in ascending slot order.
func (x *indexed[T]) All() iter.Seq2[Index, *T] {
	return func(yield func(Index, *T) bool) {
		x.scan(func(i int, s *slot[T]) bool {
			return yield(x.index(i), &s.value)
		})
	}
}

// Keys yields every index in ascending slot order.
func (x *indexed[T]) Keys() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		x.scan(func(i int, _ *slot[T]) bool {
			return yield(x.index(i))
		})
	}
}
