// Package slotarena implements arenas: containers that hand out small
// copyable handles for stored values and reuse the slots of removed values.
//
// # Overview
//
// A slot arena stores values in slots of an append-only chunked sequence
// (package seq). Removing a value leaves its slot vacant and links it into
// a free list inside the vacant slots themselves; the next insert reuses
// it. Pointers to stored values never move as the arena grows.
//
// Branding is opt-in. An arena created with WithToken binds its handles to
// that token (package token), and a handle presented to an arena with a
// different brand reads as not found. Arenas created without WithToken
// all share the trivial token, so their handles are not told apart.
//
// Arenas are useful for:
//
//   - Graphs and trees whose nodes refer to each other by handle
//   - Entity tables where stale references must be detected
//   - Object pools with stable addresses and O(1) insert and remove
//
// # Variants
//
//	Type       Handle   Generations  Removal                   Iteration
//	Sparse[T]  Handle   yes          in place, LIFO reuse      every slot
//	Hop[T]     Handle   yes          in place, run bookkeeping values + gaps
//	Slab[T]    Index    no           in place, LIFO reuse      every slot
//	Dense[T]   Index    no           swap with last value      prefix only
//
// Generational arenas stamp every slot with a generation that is bumped
// each time the slot is reused. A Handle remembers the generation it was
// issued for, so a handle whose value was removed never resolves to a
// value stored later in the same slot.
//
// # Basic Usage
//
//	a := slotarena.NewSparse[string](slotarena.WithToken(token.New()))
//
//	h := a.Insert("alpha")
//	v, ok := a.Get(h)   // *v == "alpha", ok == true
//	a.Remove(h)
//	_, ok = a.Get(h)    // ok == false
//
//	for h, v := range a.All() {
//		fmt.Println(h, *v)
//	}
//
// # Thread Safety
//
// Arenas are not thread-safe. For concurrent access, wrap one in Locked:
//
//	l := slotarena.NewLocked(slotarena.NewHop[Node]())
//	l.Write(func(a *slotarena.Hop[Node]) { a.Insert(Node{}) })
//
// # Generation Exhaustion
//
// Generations are 32 bits wide by default (see WithMaxGeneration). When a
// slot at the maximum generation is removed it is retired: it stays vacant
// and is never reused, so no handle can be confused with a later value.
// Retired slots are reported by Metrics and logged at warn level.
//
// # Performance Characteristics
//
//   - Insert, Remove, Get: O(1)
//   - Iteration: O(slots) for Sparse and Slab, O(values + gaps) for Hop,
//     O(values) for Dense
//   - Clear: O(slots)
//   - Memory overhead: one slot header per slot
package slotarena
