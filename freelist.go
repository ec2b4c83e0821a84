package slotarena

import "github.com/pavanmanishd/slotarena/seq"

// stackList is a LIFO free list threaded through the next field of vacant
// slots. head is the most recently vacated slot.
type stackList[T any] struct {
	head int
}

func newStackList[T any]() *stackList[T] {
	return &stackList[T]{head: none}
}

func (l *stackList[T]) peek() int {
	return l.head
}

func (l *stackList[T]) pop(slots *seq.Sequence[slot[T]]) int {
	i := l.head
	if i == none {
		return none
	}
	l.head = slotAt(slots, i).next
	return i
}

func (l *stackList[T]) push(slots *seq.Sequence[slot[T]], i int) {
	slotAt(slots, i).next = l.head
	l.head = i
}

func (l *stackList[T]) retire(*seq.Sequence[slot[T]], int) {}

func (l *stackList[T]) skip(_ *seq.Sequence[slot[T]], i int) int {
	return i + 1
}

func (l *stackList[T]) rebuild(slots *seq.Sequence[slot[T]]) {
	l.head = none
	for i := slots.Len() - 1; i >= 0; i-- {
		if s := slotAt(slots, i); s.reusable() {
			s.next = l.head
			l.head = i
		}
	}
}
