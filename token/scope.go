package token

import (
	"fmt"
	"sync/atomic"
)

// Scope owns one scoped token for the duration of an InScope callback.
type Scope struct {
	tok    Token
	closed atomic.Bool
}

// InScope runs fn with a fresh Scope. The scope's token dies when fn
// returns, including when fn panics.
func InScope(fn func(s *Scope)) {
	s := openScope()
	defer s.closed.Store(true)
	fn(s)
}

// WithScope is InScope for callbacks that produce a value.
func WithScope[R any](fn func(s *Scope) R) R {
	s := openScope()
	defer s.closed.Store(true)
	return fn(s)
}

func openScope() *Scope {
	s := &Scope{}
	s.tok = scoped.Issue()
	s.tok.scope = s
	return s
}

// Token returns the scope's token. It panics with an error wrapping
// ErrScopeClosed once the scope has ended.
func (s *Scope) Token() Token {
	if s.closed.Load() {
		panic(fmt.Errorf("%w: %s", ErrScopeClosed, s.tok))
	}
	return s.tok
}

// Alive reports whether the scope's callback is still running.
func (s *Scope) Alive() bool {
	return !s.closed.Load()
}
