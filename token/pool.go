package token

import (
	"sync"

	"github.com/eapache/queue"
)

// Pool stores released identifiers until a registry issues them again.
// Implementations must be safe for concurrent use and must refuse an id
// they already hold, so a double Release cannot produce duplicate tokens.
type Pool interface {
	Put(id uint64) bool
	Get() (uint64, bool)
	Len() int
}

// StackPool hands identifiers back in LIFO order.
type StackPool struct {
	mu   sync.Mutex
	ids  []uint64
	held map[uint64]struct{}
	max  int
}

// NewStackPool creates a LIFO pool holding at most max ids (0 = unbounded).
func NewStackPool(max int) *StackPool {
	return &StackPool{held: make(map[uint64]struct{}), max: max}
}

// Put stores id, reporting false if the pool is full or already holds it.
func (p *StackPool) Put(id uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.max > 0 && len(p.ids) >= p.max {
		return false
	}
	if _, dup := p.held[id]; dup {
		return false
	}
	p.ids = append(p.ids, id)
	p.held[id] = struct{}{}
	return true
}

// Get removes the most recently stored id.
func (p *StackPool) Get() (uint64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := len(p.ids)
	if n == 0 {
		return 0, false
	}
	id := p.ids[n-1]
	p.ids = p.ids[:n-1]
	delete(p.held, id)
	return id, true
}

// Len returns the number of stored ids.
func (p *StackPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.ids)
}

// QueuePool hands identifiers back in FIFO order, which maximises the time
// between an id's release and its reuse.
type QueuePool struct {
	mu   sync.Mutex
	q    *queue.Queue
	held map[uint64]struct{}
	max  int
}

// NewQueuePool creates a FIFO pool holding at most max ids (0 = unbounded).
func NewQueuePool(max int) *QueuePool {
	return &QueuePool{q: queue.New(), held: make(map[uint64]struct{}), max: max}
}

// Put stores id, reporting false if the pool is full or already holds it.
func (p *QueuePool) Put(id uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.max > 0 && p.q.Length() >= p.max {
		return false
	}
	if _, dup := p.held[id]; dup {
		return false
	}
	p.q.Add(id)
	p.held[id] = struct{}{}
	return true
}

// Get removes the least recently stored id.
func (p *QueuePool) Get() (uint64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.q.Length() == 0 {
		return 0, false
	}
	id := p.q.Remove().(uint64)
	delete(p.held, id)
	return id, true
}

// Len returns the number of stored ids.
func (p *QueuePool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.q.Length()
}
