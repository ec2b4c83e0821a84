package slotarena

// Sparse is a generational arena. Removed slots are reused most recently
// vacated first, and each reuse bumps the slot generation so handles to
// the old value stop resolving.
//
// Iteration inspects every slot up to the last occupied one; use Hop when
// the arena is expected to stay sparse.
type Sparse[T any] struct {
	keyed[T]
}

// NewSparse creates an empty Sparse arena.
func NewSparse[T any](opts ...Option) *Sparse[T] {
	a := &Sparse[T]{}
	a.init("sparse", policy{generational: true}, newStackList[T](), opts)
	return a
}
