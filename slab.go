package slotarena

// Slab reuses vacant slots like Sparse but keeps no generation. An Index
// into a Slab must not be used after its value is removed: a later insert
// may reuse the slot and the old Index would then address the new value.
type Slab[T any] struct {
	indexed[T]
}

// NewSlab creates an empty Slab.
func NewSlab[T any](opts ...Option) *Slab[T] {
	a := &Slab[T]{}
	a.init("slab", policy{}, newStackList[T](), opts)
	return a
}
