package slotarena

import "github.com/pavanmanishd/slotarena/seq"

// none terminates free-list links.
const none = -1

// slot is either occupied (value valid) or vacant (link fields valid).
// Go has no unions, so both live side by side.
type slot[T any] struct {
	value    T
	gen      uint32
	occupied bool
	// retired slots exhausted their generation and are never reused.
	retired bool
	// next and prev link vacant slots (prev and end are used by hopList).
	next int
	prev int
	end  int
}

func (s *slot[T]) reusable() bool {
	return !s.occupied && !s.retired
}

// vacancy tracks reusable vacant slots. Implementations keep their links
// inside the vacant slots themselves.
type vacancy[T any] interface {
	// peek returns the slot pop would return, or none.
	peek() int
	// pop detaches and returns a reusable slot, or none.
	pop(slots *seq.Sequence[slot[T]]) int
	// push links slot i, which has just become vacant.
	push(slots *seq.Sequence[slot[T]], i int)
	// retire records that slot i became vacant but will never be reused.
	retire(slots *seq.Sequence[slot[T]], i int)
	// skip returns the next position to probe after vacant slot i.
	skip(slots *seq.Sequence[slot[T]], i int) int
	// rebuild relinks every reusable slot in ascending order.
	rebuild(slots *seq.Sequence[slot[T]])
}

func slotAt[T any](slots *seq.Sequence[slot[T]], i int) *slot[T] {
	return slots.GetUnchecked(slots.UncheckedIndex(i))
}
