package slotarena

// Hop is a generational arena that groups vacant slots into runs. Iteration
// jumps over a whole run in one step, so its cost is proportional to the
// number of values plus the number of gaps rather than to the number of
// slots. Insert and Remove stay O(1).
type Hop[T any] struct {
	keyed[T]
}

// NewHop creates an empty Hop arena.
func NewHop[T any](opts ...Option) *Hop[T] {
	a := &Hop[T]{}
	a.init("hop", policy{generational: true}, newHopList[T](), opts)
	return a
}
