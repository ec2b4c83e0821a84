// Package seq implements an append-only, optionally branded sequence.
//
// # Overview
//
// A Sequence only grows: Push appends and there is no removal, so every
// index in [0, Len()) stays valid for the lifetime of the sequence.
// Storage is a list of fixed-length chunks; growth adds a chunk and never
// copies existing elements, which keeps element pointers stable.
//
// # Branding
//
// A Sequence created with WithToken stamps its token into every Index it
// mints. At rejects an Index whose brand differs, so an index taken from
// one sequence cannot address another one even if the raw positions
// coincide.
//
// Go has no way to prove at compile time that an Index belongs to a given
// sequence. The brand is therefore compared at run time, once per checked
// access. GetUnchecked skips both the brand and the bounds check; it is
// only sound for indices minted by the same sequence.
//
// # Performance Characteristics
//
//   - Push: O(1) amortized, one chunk allocation every ChunkLen() pushes
//   - Get / At: O(1), one bounds check (plus one token comparison for At)
//   - GetUnchecked: O(1), no checks
package seq
