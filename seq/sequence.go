package seq

import (
	"fmt"
	"iter"
	"math/bits"
	"unsafe"

	"github.com/pavanmanishd/slotarena/token"
)

// DefaultChunkLen is the default number of elements per chunk.
const DefaultChunkLen = 1 << 8

// Index is a position in a Sequence together with the brand of the
// sequence that produced it.
type Index struct {
	raw   int
	brand token.Token
}

// Int returns the raw position.
func (i Index) Int() int {
	return i.raw
}

// Brand returns the token of the sequence that minted i.
func (i Index) Brand() token.Token {
	return i.brand
}

// Sequence is a growth-only, 0-indexed container. Elements live in fixed
// length chunks, so pointers returned by Get stay valid as the sequence
// grows. Not goroutine-safe.
type Sequence[T any] struct {
	chunks [][]T
	length int
	shift  uint
	mask   int
	brand  token.Token
}

type options struct {
	chunkLen int
	brand    token.Token
}

// Option configures a Sequence.
type Option func(*options)

// WithChunkLen sets the chunk length, rounded up to a power of two.
// Values <= 0 select DefaultChunkLen.
func WithChunkLen(n int) Option {
	return func(o *options) {
		o.chunkLen = n
	}
}

// WithToken brands the sequence; indices it mints carry t.
func WithToken(t token.Token) Option {
	return func(o *options) {
		o.brand = t
	}
}

// New creates an empty Sequence. It panics if the brand is a scoped token
// whose scope has already ended.
func New[T any](opts ...Option) *Sequence[T] {
	o := options{chunkLen: DefaultChunkLen}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.brand.Alive() {
		panic(fmt.Errorf("seq: %w: %s", token.ErrScopeClosed, o.brand))
	}
	if o.chunkLen <= 0 {
		o.chunkLen = DefaultChunkLen
	}
	shift := uint(bits.Len(uint(o.chunkLen - 1)))
	return &Sequence[T]{
		shift: shift,
		mask:  1<<shift - 1,
		brand: o.brand,
	}
}

// Push appends v and returns its index (the length before the push).
func (s *Sequence[T]) Push(v T) Index {
	i := s.length
	c := i >> s.shift
	if c == len(s.chunks) {
		s.grow()
	}
	s.chunks[c][i&s.mask] = v
	s.length++
	return Index{raw: i, brand: s.brand}
}

// Get returns a pointer to element i, or false if i is out of range.
func (s *Sequence[T]) Get(i int) (*T, bool) {
	if i < 0 || i >= s.length {
		return nil, false
	}
	return &s.chunks[i>>s.shift][i&s.mask], true
}

// At returns a pointer to the element at idx. It reports false when idx
// was minted by a differently branded sequence or is out of range.
func (s *Sequence[T]) At(idx Index) (*T, bool) {
	if idx.brand != s.brand {
		return nil, false
	}
	return s.Get(idx.raw)
}

// GetUnchecked returns a pointer to the element at idx without checking
// brand or bounds.
//
// idx must have been minted by this sequence (Push, Index, UncheckedIndex
// or All) and idx.Int() must be < Len(). Anything else is undefined
// behaviour.
func (s *Sequence[T]) GetUnchecked(idx Index) *T {
	i := idx.raw
	chunk := *(*[]T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(s.chunks)), uintptr(i>>s.shift)*unsafe.Sizeof([]T(nil))))
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(chunk)), uintptr(i&s.mask)*unsafe.Sizeof(zero)))
}

// Index converts a raw position into a branded Index if it is in range.
func (s *Sequence[T]) Index(i int) (Index, bool) {
	if i < 0 || i >= s.length {
		return Index{}, false
	}
	return Index{raw: i, brand: s.brand}, true
}

// UncheckedIndex brands i without a bounds check. It is meant for owners
// that already track which positions exist.
func (s *Sequence[T]) UncheckedIndex(i int) Index {
	return Index{raw: i, brand: s.brand}
}

// Swap exchanges two elements. It reports false if either index is foreign
// or out of range.
func (s *Sequence[T]) Swap(a, b Index) bool {
	pa, ok := s.At(a)
	if !ok {
		return false
	}
	pb, ok := s.At(b)
	if !ok {
		return false
	}
	*pa, *pb = *pb, *pa
	return true
}

// All yields every index and element in ascending order. The length is
// captured when iteration starts.
func (s *Sequence[T]) All() iter.Seq2[Index, *T] {
	return func(yield func(Index, *T) bool) {
		n := s.length
		for i := 0; i < n; i++ {
			if !yield(Index{raw: i, brand: s.brand}, &s.chunks[i>>s.shift][i&s.mask]) {
				return
			}
		}
	}
}

// Reserve makes room for at least additional more elements.
func (s *Sequence[T]) Reserve(additional int) {
	need := s.length + additional
	for s.Capacity() < need {
		s.grow()
	}
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int {
	return s.length
}

// IsEmpty reports whether the sequence holds no elements.
func (s *Sequence[T]) IsEmpty() bool {
	return s.length == 0
}

// Capacity returns the number of elements the allocated chunks can hold.
func (s *Sequence[T]) Capacity() int {
	return len(s.chunks) << s.shift
}

// NumChunks returns the number of allocated chunks.
func (s *Sequence[T]) NumChunks() int {
	return len(s.chunks)
}

// ChunkLen returns the number of elements per chunk.
func (s *Sequence[T]) ChunkLen() int {
	return 1 << s.shift
}

// Token returns the sequence's brand.
func (s *Sequence[T]) Token() token.Token {
	return s.brand
}

// grow appends one zeroed chunk.
func (s *Sequence[T]) grow() {
	s.chunks = append(s.chunks, make([]T, 1<<s.shift))
}
