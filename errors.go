package slotarena

import "errors"

// ErrStaleHandle is wrapped by the panic value of MustGet when a handle is
// out of range, vacant, outdated, or branded by another arena.
var ErrStaleHandle = errors.New("slotarena: stale handle")
