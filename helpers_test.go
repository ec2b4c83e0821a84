package slotarena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants verifies the bookkeeping of e against its slots.
func checkInvariants[T any](t *testing.T, e *engine[T]) {
	t.Helper()

	n := e.slots.Len()
	occupied, retired := 0, 0
	for i := 0; i < n; i++ {
		s := slotAt(e.slots, i)
		require.False(t, s.occupied && s.retired, "slot %d occupied and retired", i)
		if s.occupied {
			occupied++
		}
		if s.retired {
			retired++
		}
	}
	require.Equal(t, occupied, e.count, "count")
	require.Equal(t, retired, e.retired, "retired")

	if e.swapRemove {
		for i := 0; i < n; i++ {
			require.Equal(t, i < e.count, slotAt(e.slots, i).occupied, "dense prefix at %d", i)
		}
	}

	switch free := e.free.(type) {
	case *stackList[T]:
		checkStack(t, e, free)
	case *hopList[T]:
		checkRuns(t, e, free)
	default:
		t.Fatalf("unknown vacancy %T", free)
	}
}

func checkStack[T any](t *testing.T, e *engine[T], l *stackList[T]) {
	t.Helper()

	seen := make(map[int]bool)
	for i := l.head; i != none; i = slotAt(e.slots, i).next {
		require.False(t, seen[i], "free list cycles at %d", i)
		require.True(t, slotAt(e.slots, i).reusable(), "free list holds slot %d", i)
		seen[i] = true
	}
	require.Len(t, seen, e.vacant(), "free list length")
}

func checkRuns[T any](t *testing.T, e *engine[T], l *hopList[T]) {
	t.Helper()

	n := e.slots.Len()
	reusable := func(i int) bool {
		return i >= 0 && i < n && slotAt(e.slots, i).reusable()
	}

	total, prev := 0, none
	seen := make(map[int]bool)
	for st := l.head; st != none; st = slotAt(e.slots, st).next {
		require.False(t, seen[st], "run list cycles at %d", st)
		seen[st] = true

		s := slotAt(e.slots, st)
		require.Equal(t, prev, s.prev, "prev link of run %d", st)
		end := s.end
		require.GreaterOrEqual(t, end, st, "run %d end", st)
		require.Equal(t, st, slotAt(e.slots, end).end, "run %d back link", st)
		require.False(t, reusable(st-1), "run %d is not maximal on the left", st)
		require.False(t, reusable(end+1), "run %d is not maximal on the right", st)
		for i := st; i <= end; i++ {
			require.True(t, reusable(i), "run %d holds slot %d", st, i)
		}
		total += end - st + 1
		prev = st
	}
	require.Equal(t, e.vacant(), total, "vacant slots in runs")

	for i := 0; i < n; i++ {
		if s := slotAt(e.slots, i); s.retired {
			require.Equal(t, i, s.end, "retired slot %d", i)
		}
	}
}
