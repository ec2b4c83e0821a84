package slotarena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/slotarena/token"
)

func TestDense_RemoveRelocatesLast(t *testing.T) {
	a := NewDense[string]()
	i0 := a.Insert("a")
	i1 := a.Insert("b")
	i2 := a.Insert("c")

	got, rel, ok := a.Remove(i0)
	require.True(t, ok)
	assert.Equal(t, "a", got)
	assert.True(t, rel.Moved)
	assert.Equal(t, i2, rel.From)
	assert.Equal(t, i0, rel.To)

	assert.Equal(t, "c", *a.MustGet(i0))
	assert.Equal(t, "b", *a.MustGet(i1))
	assert.False(t, a.Contains(i2))
	checkInvariants(t, &a.engine)
}

func TestDense_RemoveLast(t *testing.T) {
	a := NewDense[string]()
	a.Insert("a")
	i1 := a.Insert("b")

	rel, ok := a.Delete(i1)
	require.True(t, ok)
	assert.False(t, rel.Moved)
	assert.Equal(t, Relocation{}, rel)

	_, ok = a.Delete(i1)
	assert.False(t, ok)
}

func TestDense_KeepsPrefix(t *testing.T) {
	a := NewDense[int]()
	idx := make([]Index, 10)
	for i := range idx {
		idx[i] = a.Insert(i)
	}
	for _, i := range []int{3, 0, 5} {
		a.Remove(idx[i])
		checkInvariants(t, &a.engine)
	}

	assert.Equal(t, 7, a.Len())
	assert.Equal(t, 7, a.scan(func(int, *slot[int]) bool { return true }), "scan stops at the prefix")

	// Reinserts fill the prefix.
	i := a.Insert(100)
	assert.Equal(t, 7, i.Int())
	checkInvariants(t, &a.engine)
}

func TestDense_Retain(t *testing.T) {
	a := NewDense[int]()
	for i := 0; i < 10; i++ {
		a.Insert(i)
	}

	a.Retain(func(_ Index, v *int) bool { return *v%3 == 0 })

	var got []int
	for v := range a.Values() {
		got = append(got, *v)
	}
	assert.ElementsMatch(t, []int{0, 3, 6, 9}, got)
	checkInvariants(t, &a.engine)
}

func TestDense_Swap(t *testing.T) {
	a := NewDense[string](WithToken(token.New()))
	i0 := a.Insert("a")
	i1 := a.Insert("b")

	require.True(t, a.Swap(i0, i1))
	assert.Equal(t, "b", *a.MustGet(i0))
	assert.Equal(t, "a", *a.MustGet(i1))

	other := NewDense[string](WithToken(token.New()))
	foreign := other.Insert("x")
	assert.False(t, a.Swap(i0, foreign))
	assert.False(t, a.Contains(foreign))
}

func TestDense_InsertWith(t *testing.T) {
	a := NewDense[Index]()
	i := a.InsertWith(func(i Index) Index { return i })
	assert.Equal(t, i, *a.MustGet(i))
}

func TestDense_RemoveWhileIterating(t *testing.T) {
	a := NewDense[string]()
	for _, s := range []string{"a", "b", "c", "d"} {
		a.Insert(s)
	}

	var seen []string
	for i, s := range a.All() {
		seen = append(seen, *s)
		a.Remove(i)
	}
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, seen)
	assert.True(t, a.IsEmpty())
	checkInvariants(t, &a.engine)
}

func TestDense_RemoveSomeWhileIterating(t *testing.T) {
	a := NewDense[int]()
	for i := 0; i < 10; i++ {
		a.Insert(i)
	}

	var seen []int
	for i, v := range a.All() {
		seen = append(seen, *v)
		if *v%2 == 0 {
			a.Remove(i)
		}
	}
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, seen)
	assert.Equal(t, 5, a.Len())

	var left []int
	for v := range a.Values() {
		left = append(left, *v)
	}
	assert.ElementsMatch(t, []int{1, 3, 5, 7, 9}, left)
	checkInvariants(t, &a.engine)
}
