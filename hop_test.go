package slotarena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fill inserts n values and returns their handles.
func fill[T any](a interface{ Insert(T) Handle }, vals ...T) []Handle {
	hs := make([]Handle, len(vals))
	for i, v := range vals {
		hs[i] = a.Insert(v)
	}
	return hs
}

func TestHop_SkipsVacantRun(t *testing.T) {
	hop := NewHop[int]()
	sparse := NewSparse[int]()
	hh := fill[int](hop, 0, 1, 2, 3, 4)
	sh := fill[int](sparse, 0, 1, 2, 3, 4)
	for i := 1; i <= 3; i++ {
		hop.Remove(hh[i])
		sparse.Remove(sh[i])
	}

	var visited []int
	probes := hop.scan(func(_ int, s *slot[int]) bool {
		visited = append(visited, s.value)
		return true
	})
	assert.Equal(t, []int{0, 4}, visited)
	assert.Equal(t, 3, probes, "one probe for the whole vacant run")

	assert.Equal(t, 5, sparse.scan(func(int, *slot[int]) bool { return true }))
	checkInvariants(t, &hop.engine)
}

func TestHop_ProbesIndependentOfGapLength(t *testing.T) {
	a := NewHop[int](WithChunkLen(16))
	hs := fill[int](a, make([]int, 1000)...)
	for _, h := range hs[1:999] {
		a.Remove(h)
	}
	assert.Equal(t, 3, a.scan(func(int, *slot[int]) bool { return true }))
}

func TestHop_RunMerging(t *testing.T) {
	tests := []struct {
		name   string
		remove []int
		runs   [][2]int
	}{
		{"single", []int{3}, [][2]int{{3, 3}}},
		{"append", []int{2, 3}, [][2]int{{2, 3}}},
		{"prepend", []int{3, 2}, [][2]int{{2, 3}}},
		{"join", []int{1, 3, 2}, [][2]int{{1, 3}}},
		{"separate", []int{1, 5}, [][2]int{{5, 5}, {1, 1}}},
		{"join long", []int{0, 1, 4, 5, 6, 2, 3}, [][2]int{{0, 6}}},
		{"trailing", []int{7, 6}, [][2]int{{6, 7}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewHop[int]()
			hs := fill[int](a, 0, 1, 2, 3, 4, 5, 6, 7)
			for _, i := range tt.remove {
				_, ok := a.Remove(hs[i])
				require.True(t, ok)
			}
			checkInvariants(t, &a.engine)
			assert.Equal(t, tt.runs, hopRuns(a))
		})
	}
}

func TestHop_InsertShrinksRun(t *testing.T) {
	a := NewHop[int]()
	hs := fill[int](a, 0, 1, 2, 3, 4)
	for _, h := range hs[1:4] {
		a.Remove(h)
	}

	h := a.Insert(10)
	assert.Equal(t, 1, h.Index())
	assert.Equal(t, uint32(1), h.Generation())
	assert.Equal(t, [][2]int{{2, 3}}, hopRuns(a))
	checkInvariants(t, &a.engine)

	a.Insert(11)
	a.Insert(12)
	assert.Empty(t, hopRuns(a))
	checkInvariants(t, &a.engine)

	h = a.Insert(13)
	assert.Equal(t, 5, h.Index())
}

func TestHop_ReusesMostRecentRun(t *testing.T) {
	a := NewHop[int]()
	hs := fill[int](a, 0, 1, 2, 3, 4)
	a.Remove(hs[1])
	a.Remove(hs[3])

	h := a.Insert(9)
	assert.Equal(t, 3, h.Index())
	h = a.Insert(9)
	assert.Equal(t, 1, h.Index())
}

// hopRuns lists the vacant runs of a in free list order.
func hopRuns[T any](a *Hop[T]) [][2]int {
	l := a.free.(*hopList[T])
	var runs [][2]int
	for st := l.head; st != none; st = slotAt(a.slots, st).next {
		runs = append(runs, [2]int{st, slotAt(a.slots, st).end})
	}
	return runs
}
