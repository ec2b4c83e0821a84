package token

import (
	"errors"
	"fmt"
)

var (
	// ErrExhausted is the panic value (wrapped) raised when a registry has
	// handed out every identifier it can represent.
	ErrExhausted = errors.New("token: identifier space exhausted")
	// ErrScopeClosed is the panic value (wrapped) raised when a scoped token
	// is requested or used after its scope has ended.
	ErrScopeClosed = errors.New("token: scope closed")
)

// Kind identifies the scope a Token was issued in.
type Kind uint8

const (
	// KindTrivial is the zero Kind; trivial tokens carry no identity.
	KindTrivial Kind = iota
	// KindGlobal tokens come from the process-wide registry.
	KindGlobal
	// KindLocal tokens come from a registry created with NewRegistry.
	KindLocal
	// KindScoped tokens are bound to an InScope callback.
	KindScoped
)

func (k Kind) String() string {
	switch k {
	case KindTrivial:
		return "trivial"
	case KindGlobal:
		return "global"
	case KindLocal:
		return "local"
	case KindScoped:
		return "scoped"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Token is an opaque identifier. Tokens are comparable with ==.
// The zero value is the trivial token.
type Token struct {
	kind   Kind
	source uint64
	id     uint64
	scope  *Scope
}

// Trivial returns the trivial token. All trivial tokens are equal.
func Trivial() Token {
	return Token{}
}

// Kind reports which scope issued t.
func (t Token) Kind() Kind {
	return t.kind
}

// IsTrivial reports whether t is the zero token.
func (t Token) IsTrivial() bool {
	return t == Token{}
}

// ID returns the raw identifier of t within its source.
func (t Token) ID() uint64 {
	return t.id
}

// Alive reports whether t may still be used to brand new containers.
// Only scoped tokens ever die.
func (t Token) Alive() bool {
	return t.scope == nil || !t.scope.closed.Load()
}

func (t Token) String() string {
	switch t.kind {
	case KindTrivial:
		return "trivial"
	case KindLocal:
		return fmt.Sprintf("local(%d)#%d", t.source, t.id)
	default:
		return fmt.Sprintf("%s#%d", t.kind, t.id)
	}
}
