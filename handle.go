package slotarena

import (
	"fmt"

	"github.com/pavanmanishd/slotarena/token"
)

// Handle addresses a value in a generational arena (Sparse, Hop). It is a
// capability to attempt access, not ownership: once the slot is removed or
// reused the handle reads as not found.
//
// Two handles refer to the same live element iff they are equal (==) and
// the arena still contains them.
type Handle struct {
	index int
	gen   uint32
	brand token.Token
}

// Index returns the slot position.
func (h Handle) Index() int { return h.index }

// Generation returns the slot generation the handle was issued for.
func (h Handle) Generation() uint32 { return h.gen }

// Brand returns the token of the issuing arena.
func (h Handle) Brand() token.Token { return h.brand }

func (h Handle) String() string {
	return fmt.Sprintf("%dv%d", h.index, h.gen)
}

// Index addresses a value in an index-only arena (Slab, Dense). It carries
// no generation, so the caller is trusted not to keep it past removal.
type Index struct {
	index int
	brand token.Token
}

// Int returns the slot position.
func (i Index) Int() int { return i.index }

// Brand returns the token of the issuing arena.
func (i Index) Brand() token.Token { return i.brand }

func (i Index) String() string {
	return fmt.Sprintf("#%d", i.index)
}

// Relocation reports the element a Dense removal moved to fill the gap.
// External references to From must be rewritten to To.
type Relocation struct {
	From  Index
	To    Index
	Moved bool
}
