package slotarena

import "github.com/pavanmanishd/slotarena/seq"

// hopList tracks maximal runs of reusable vacant slots.
//
// Encoding:
//   - both ends of a run store end = index of the opposite end
//     (a run of one slot points at itself);
//   - the first slot of a run stores next/prev = first slots of the
//     neighbouring runs in a doubly linked list rooted at head;
//   - interior slots carry stale links and are never read.
//
// Forward iteration that meets a vacant slot is always at the start of a
// run and jumps straight to end+1. Retired slots are runs of one that are
// never linked, so they are skipped but never handed out.
type hopList[T any] struct {
	head int
}

func newHopList[T any]() *hopList[T] {
	return &hopList[T]{head: none}
}

func (l *hopList[T]) peek() int {
	return l.head
}

// pop hands out the first slot of the head run.
func (l *hopList[T]) pop(slots *seq.Sequence[slot[T]]) int {
	start := l.head
	if start == none {
		return none
	}
	run := slotAt(slots, start)
	if run.end == start {
		l.unlink(slots, start)
		return start
	}

	// Shrink the run from the front.
	ns := start + 1
	n := slotAt(slots, ns)
	n.next, n.prev, n.end = run.next, run.prev, run.end
	slotAt(slots, run.end).end = ns
	l.relink(slots, n, ns)
	return start
}

func (l *hopList[T]) push(slots *seq.Sequence[slot[T]], i int) {
	left := i > 0 && slotAt(slots, i-1).reusable()
	right := i+1 < slots.Len() && slotAt(slots, i+1).reusable()
	cur := slotAt(slots, i)

	switch {
	case !left && !right:
		// new run
		cur.end = i
		l.pushFront(slots, i)
	case !left && right:
		// prepend: i+1 was the start of its run
		r := slotAt(slots, i+1)
		cur.next, cur.prev, cur.end = r.next, r.prev, r.end
		slotAt(slots, r.end).end = i
		l.relink(slots, cur, i)
	case left && !right:
		// append: i-1 was the end of its run
		start := slotAt(slots, i-1).end
		slotAt(slots, start).end = i
		cur.end = start
	default:
		// join the left and right runs through i
		r := slotAt(slots, i+1)
		last := r.end
		l.unlink(slots, i+1)
		start := slotAt(slots, i-1).end
		slotAt(slots, start).end = last
		slotAt(slots, last).end = start
	}
}

func (l *hopList[T]) retire(slots *seq.Sequence[slot[T]], i int) {
	slotAt(slots, i).end = i
}

func (l *hopList[T]) skip(slots *seq.Sequence[slot[T]], i int) int {
	return slotAt(slots, i).end + 1
}

func (l *hopList[T]) rebuild(slots *seq.Sequence[slot[T]]) {
	l.head = none
	last := none
	n := slots.Len()
	for i := 0; i < n; i++ {
		s := slotAt(slots, i)
		if !s.reusable() {
			if s.retired {
				s.end = i
			}
			continue
		}
		start := i
		for i+1 < n && slotAt(slots, i+1).reusable() {
			i++
		}
		first := slotAt(slots, start)
		first.end = i
		slotAt(slots, i).end = start
		first.prev, first.next = last, none
		if last == none {
			l.head = start
		} else {
			slotAt(slots, last).next = start
		}
		last = start
	}
}

func (l *hopList[T]) pushFront(slots *seq.Sequence[slot[T]], i int) {
	s := slotAt(slots, i)
	s.prev, s.next = none, l.head
	if l.head != none {
		slotAt(slots, l.head).prev = i
	}
	l.head = i
}

func (l *hopList[T]) unlink(slots *seq.Sequence[slot[T]], i int) {
	s := slotAt(slots, i)
	if s.prev == none {
		l.head = s.next
	} else {
		slotAt(slots, s.prev).next = s.next
	}
	if s.next != none {
		slotAt(slots, s.next).prev = s.prev
	}
}

// relink points the neighbours of s (now stored at i) back at i.
func (l *hopList[T]) relink(slots *seq.Sequence[slot[T]], s *slot[T], i int) {
	if s.prev == none {
		l.head = i
	} else {
		slotAt(slots, s.prev).next = i
	}
	if s.next != none {
		slotAt(slots, s.next).prev = i
	}
}
