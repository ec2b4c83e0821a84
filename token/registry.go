package token

import (
	"fmt"
	"math"
	"sync/atomic"
)

// sources numbers registries so that tokens of different registries differ.
var sources atomic.Uint64

// global is initialised before first use and never torn down.
var global = newRegistry(KindGlobal, options{limit: math.MaxUint64})

// scoped feeds InScope. Its ids are never recycled.
var scoped = newRegistry(KindScoped, options{limit: math.MaxUint64})

// Registry issues tokens that are unique among all tokens it has issued and
// not released. It is safe for concurrent use.
type Registry struct {
	kind   Kind
	source uint64
	next   atomic.Uint64
	limit  uint64
	pool   Pool
}

type options struct {
	limit uint64
	pool  Pool
}

// Option configures a Registry.
type Option func(*options)

// WithPool lets the registry recycle released identifiers through p.
func WithPool(p Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithLimit caps the number of identifiers the registry mints.
// A zero limit is ignored.
func WithLimit(n uint64) Option {
	return func(o *options) {
		if n > 0 {
			o.limit = n
		}
	}
}

// New issues a token from the process-wide registry.
func New() Token {
	return global.Issue()
}

// Global returns the process-wide registry.
func Global() *Registry {
	return global
}

// NewRegistry creates an independent issuing scope.
func NewRegistry(opts ...Option) *Registry {
	o := options{limit: math.MaxUint64}
	for _, opt := range opts {
		opt(&o)
	}
	return newRegistry(KindLocal, o)
}

func newRegistry(kind Kind, o options) *Registry {
	return &Registry{
		kind:   kind,
		source: sources.Add(1),
		limit:  o.limit,
		pool:   o.pool,
	}
}

// Issue returns a token distinct from every other live token of r.
// It panics with an error wrapping ErrExhausted once the limit is reached.
func (r *Registry) Issue() Token {
	if r.pool != nil {
		if id, ok := r.pool.Get(); ok {
			return r.token(id)
		}
	}
	return r.token(r.bump())
}

// Release hands t's identifier back for reuse. It reports false when t was
// not issued by r, when r has no pool, or when the pool refuses the id.
//
// The caller must guarantee that no container or handle branded with t is
// still reachable; a recycled id compares equal to the released token.
func (r *Registry) Release(t Token) bool {
	if r.pool == nil || !r.Owns(t) {
		return false
	}
	return r.pool.Put(t.id)
}

// Owns reports whether t was issued by r.
func (r *Registry) Owns(t Token) bool {
	return t.kind == r.kind && t.source == r.source && t.id != 0
}

// Issued returns how many distinct identifiers r has minted.
func (r *Registry) Issued() uint64 {
	return r.next.Load()
}

// Kind reports the kind of tokens r issues.
func (r *Registry) Kind() Kind {
	return r.kind
}

func (r *Registry) token(id uint64) Token {
	return Token{kind: r.kind, source: r.source, id: id}
}

// bump never wraps: identifiers start at 1 and stop at limit.
func (r *Registry) bump() uint64 {
	for {
		cur := r.next.Load()
		if cur >= r.limit {
			panic(fmt.Errorf("%w: %s registry %d issued %d ids", ErrExhausted, r.kind, r.source, cur))
		}
		if r.next.CompareAndSwap(cur, cur+1) {
			return cur + 1
		}
	}
}
