// Package token issues process-unique identifiers used to brand containers
// and the handles they hand out.
//
// # Overview
//
// A Token is an opaque, comparable value. Within the scope it was issued in,
// no two live tokens compare equal, so a container that stores a token and
// stamps it into every index it returns can later reject indices that were
// produced by a different container.
//
// Four kinds of token exist:
//
//   - Global: issued by the process-wide Registry with an atomic counter.
//   - Local: issued by a Registry created with NewRegistry. Go has no
//     goroutine-local storage, so an explicitly owned registry plays the role
//     of a per-thread allocator. Tokens of two registries never compare equal.
//   - Scoped: bound to the dynamic extent of an InScope callback. The token
//     reports Alive() == false once the callback returns and its id is never
//     reused.
//   - Trivial: the zero Token. It carries no runtime value and every trivial
//     token equals every other one; whatever it brands is only as safe as
//     the caller's own bookkeeping.
//
// # Basic Usage
//
//	t := token.New() // process-wide
//
//	reg := token.NewRegistry(token.WithPool(token.NewStackPool(64)))
//	a := reg.Issue()
//	reg.Release(a) // a's id may now be handed out again
//
//	token.InScope(func(s *token.Scope) {
//		use(s.Token())
//	})
//
// # Comparing Tokens
//
// Uniqueness only holds inside one scope. Tokens of different kinds or
// registries always differ, but a released id that is issued again compares
// equal to its previous incarnation, so Release must only be called once
// nothing branded with the token is reachable.
//
// # Exhaustion
//
// Registries never wrap around. When a counter reaches its limit Issue
// panics with an error wrapping ErrExhausted; this is treated as fatal.
package token
