package slotarena

import (
	"iter"
	"log/slog"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/pavanmanishd/slotarena/seq"
	"github.com/pavanmanishd/slotarena/token"
)

// policy selects the behaviour shared by a family of arenas.
type policy struct {
	// generational stamps slots with a generation that handles must match.
	generational bool
	// swapRemove moves the last occupied slot into the gap left by a
	// removal, keeping occupied slots in the prefix [0, count).
	swapRemove bool
}

// engine is the storage shared by every arena variant. It never locks;
// see Locked.
type engine[T any] struct {
	slots   *seq.Sequence[slot[T]]
	free    vacancy[T]
	brand   token.Token
	count   int
	retired int
	maxGen  uint32
	policy
	log  *slog.Logger
	kind string

	// taken is the position last passed to take; scanPrefix uses it to
	// notice that the current value was removed.
	taken int
}

func (e *engine[T]) init(kind string, p policy, free vacancy[T], opts []Option) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e.slots = seq.New[slot[T]](seq.WithChunkLen(o.chunkLen), seq.WithToken(o.brand))
	e.free = free
	e.taken = none
	e.brand = o.brand
	e.maxGen = o.maxGen
	e.policy = p
	e.log = o.logger
	e.kind = kind
	if o.capacity > 0 {
		e.Reserve(o.capacity)
	}
}

// lookup returns the occupied slot addressed by (brand, i, gen), or nil.
// gen is ignored by non-generational arenas.
func (e *engine[T]) lookup(brand token.Token, i int, gen uint32) *slot[T] {
	if brand != e.brand || i < 0 || i >= e.slots.Len() {
		return nil
	}
	s := slotAt(e.slots, i)
	if !s.occupied || (e.generational && s.gen != gen) {
		return nil
	}
	return s
}

// next predicts the position and generation the next insert will use.
func (e *engine[T]) next() (int, uint32) {
	i := e.free.peek()
	if i == none {
		return e.slots.Len(), 0
	}
	gen := slotAt(e.slots, i).gen
	if e.generational {
		gen++
	}
	return i, gen
}

func (e *engine[T]) insert(v T) (int, uint32) {
	i := e.free.pop(e.slots)
	if i != none {
		s := slotAt(e.slots, i)
		if e.generational {
			s.gen++
		}
		s.value = v
		s.occupied = true
		e.count++
		return i, s.gen
	}

	chunks := e.slots.NumChunks()
	idx := e.slots.Push(slot[T]{value: v, occupied: true, next: none, prev: none, end: none})
	if e.slots.NumChunks() != chunks {
		e.logGrow()
	}
	e.count++
	return idx.Int(), 0
}

// take removes the value at occupied position i. With swapRemove the last
// occupied slot is moved into i and its old position is returned as moved;
// otherwise moved is none.
func (e *engine[T]) take(i int) (v T, moved int) {
	s := slotAt(e.slots, i)
	v = s.value
	moved = none
	e.taken = i
	if e.swapRemove {
		if last := e.count - 1; last != i {
			l := slotAt(e.slots, last)
			s.value = l.value
			s, i, moved = l, last, last
		}
	}
	e.vacate(i, s)
	e.count--
	return v, moved
}

func (e *engine[T]) vacate(i int, s *slot[T]) {
	var zero T
	s.value = zero
	s.occupied = false
	if e.generational && s.gen >= e.maxGen {
		s.retired = true
		e.retired++
		e.free.retire(e.slots, i)
		e.logRetired(i, s.gen)
		return
	}
	e.free.push(e.slots, i)
}

// Clear removes every value. Slots keep their generation, so handles
// issued before Clear stop resolving. Slots at the maximum generation are
// retired.
func (e *engine[T]) Clear() {
	removed := e.count
	var zero T
	n := e.slots.Len()
	for i := 0; i < n; i++ {
		s := slotAt(e.slots, i)
		if !s.occupied {
			continue
		}
		s.value = zero
		s.occupied = false
		if e.generational && s.gen >= e.maxGen {
			s.retired = true
			e.retired++
			e.logRetired(i, s.gen)
		}
	}
	e.count = 0
	e.free.rebuild(e.slots)
	e.logCleared(removed)
}

// scan calls yield for occupied slots in ascending order. It stops after
// as many slots as were occupied when it started and reports the number
// of slots it inspected.
func (e *engine[T]) scan(yield func(i int, s *slot[T]) bool) (probes int) {
	if e.swapRemove {
		return e.scanPrefix(yield)
	}
	left := e.count
	for i := 0; i < e.slots.Len() && left > 0; {
		probes++
		s := slotAt(e.slots, i)
		if !s.occupied {
			i = max(e.free.skip(e.slots, i), i+1)
			continue
		}
		left--
		if !yield(i, s) {
			return probes
		}
		i++
	}
	return probes
}

// scanPrefix walks the occupied prefix of a swap-removing arena. When
// yield removes the current value the last value is moved into i, so i is
// inspected again.
func (e *engine[T]) scanPrefix(yield func(i int, s *slot[T]) bool) (probes int) {
	for i := 0; i < e.count; {
		probes++
		e.taken = none
		if !yield(i, slotAt(e.slots, i)) {
			return probes
		}
		if e.taken != i {
			i++
		}
	}
	return probes
}

// retain removes every value for which keep returns false.
func (e *engine[T]) retain(keep func(i int, s *slot[T]) bool) {
	if e.swapRemove {
		// Backwards, so the slot moved into i has already been kept.
		for i := e.count - 1; i >= 0; i-- {
			if !keep(i, slotAt(e.slots, i)) {
				e.take(i)
			}
		}
		return
	}
	e.scan(func(i int, s *slot[T]) bool {
		if !keep(i, s) {
			e.take(i)
		}
		return true
	})
}

// Drain removes and returns every value in ascending slot order.
func (e *engine[T]) Drain() []T {
	out := make([]T, 0, e.count)
	e.scan(func(_ int, s *slot[T]) bool {
		out = append(out, s.value)
		return true
	})
	e.Clear()
	return out
}

// Values yields a pointer to every stored value in ascending slot order.
func (e *engine[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		e.scan(func(_ int, s *slot[T]) bool {
			return yield(&s.value)
		})
	}
}

// Occupancy returns a 64-bit bitmap of occupied slot positions.
func (e *engine[T]) Occupancy() *roaring64.Bitmap {
	bm := roaring64.New()
	e.scan(func(i int, _ *slot[T]) bool {
		bm.Add(uint64(i))
		return true
	})
	return bm
}

// Len returns the number of stored values.
func (e *engine[T]) Len() int {
	return e.count
}

// IsEmpty reports whether the arena holds no values.
func (e *engine[T]) IsEmpty() bool {
	return e.count == 0
}

// Slots returns the number of slots ever created, occupied or not.
func (e *engine[T]) Slots() int {
	return e.slots.Len()
}

// Capacity returns the number of slots the allocated chunks can hold.
func (e *engine[T]) Capacity() int {
	return e.slots.Capacity()
}

// Reserve makes room for at least n more inserts without growing.
func (e *engine[T]) Reserve(n int) {
	n -= e.vacant()
	if n <= 0 {
		return
	}
	chunks := e.slots.NumChunks()
	e.slots.Reserve(n)
	if e.slots.NumChunks() != chunks {
		e.logGrow()
	}
}

// Token returns the arena's brand.
func (e *engine[T]) Token() token.Token {
	return e.brand
}

// vacant counts reusable vacant slots.
func (e *engine[T]) vacant() int {
	return e.slots.Len() - e.count - e.retired
}
