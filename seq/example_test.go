package seq_test

import (
	"fmt"

	"github.com/pavanmanishd/slotarena/seq"
	"github.com/pavanmanishd/slotarena/token"
)

// Example shows branded indices: an index from one sequence is refused by
// another even though both hold an element at position 0.
func Example() {
	names := seq.New[string](seq.WithToken(token.New()))
	ages := seq.New[string](seq.WithToken(token.New()))

	alice := names.Push("alice")
	ages.Push("31")

	v, ok := names.At(alice)
	fmt.Println(*v, ok)

	_, ok = ages.At(alice)
	fmt.Println(ok)

	// Output:
	// alice true
	// false
}
