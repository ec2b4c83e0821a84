package slotarena

// Dense keeps its values packed in slots [0, Len). Removal moves the last
// value into the gap and reports the move as a Relocation so callers can
// patch any index they hold for it.
//
// Retain visits values from the last slot to the first and may relocate
// kept values without reporting it.
type Dense[T any] struct {
	indexed[T]
}

// NewDense creates an empty Dense arena.
func NewDense[T any](opts ...Option) *Dense[T] {
	a := &Dense[T]{}
	a.init("dense", policy{swapRemove: true}, newStackList[T](), opts)
	return a
}

// Remove removes and returns the value at i. If another value was moved
// into slot i the Relocation says where it came from.
func (d *Dense[T]) Remove(i Index) (T, Relocation, bool) {
	if d.lookup(i.brand, i.index, 0) == nil {
		var zero T
		return zero, Relocation{}, false
	}
	v, moved := d.take(i.index)
	if moved == none {
		return v, Relocation{}, true
	}
	return v, Relocation{From: d.index(moved), To: i, Moved: true}, true
}

// Delete removes the value at i. See Remove.
func (d *Dense[T]) Delete(i Index) (Relocation, bool) {
	_, r, ok := d.Remove(i)
	return r, ok
}

// Swap exchanges the values at a and b. It reports false if either index
// does not address a value.
func (d *Dense[T]) Swap(a, b Index) bool {
	sa := d.lookup(a.brand, a.index, 0)
	sb := d.lookup(b.brand, b.index, 0)
	if sa == nil || sb == nil {
		return false
	}
	sa.value, sb.value = sb.value, sa.value
	return true
}
