package sim

import "github.com/sirupsen/logrus"

// Token grants exclusive use of one pool slot until released.
type Token struct {
	pool     *Pool
	slot     int
	released bool
}

// Slot identifies the capacity slot this token holds. Slot indices are
// stable across acquisitions: a direct hand-off passes the releaser's slot
// to the next waiter, and a fresh grant takes the lowest free index.
func (t *Token) Slot() int {
	return t.slot
}

// Release returns the slot to the pool. If requesters are waiting, ownership
// passes directly to the longest-waiting one without re-contention.
// Releasing an already-released token is a no-op.
func (t *Token) Release() {
	if t.released {
		return
	}
	t.released = true
	t.pool.release(t.slot)
}

// Pool is a bounded-capacity resource with a strict FIFO wait queue. Grants
// happen either synchronously inside Acquire, when a slot is free, or inside
// release, when a slot is handed over; in_use never exceeds capacity.
type Pool struct {
	sim      *Simulator
	name     string
	capacity int
	inUse    int
	free     []int // free slot indices, kept ascending
	waiters  []func(*Token)
}

func NewPool(sim *Simulator, name string, capacity int) (*Pool, error) {
	if capacity <= 0 {
		return nil, &ConfigError{Field: name + " capacity", Reason: "must be positive"}
	}
	free := make([]int, capacity)
	for i := range free {
		free[i] = i
	}
	return &Pool{sim: sim, name: name, capacity: capacity, free: free}, nil
}

func (p *Pool) Capacity() int { return p.capacity }
func (p *Pool) InUse() int    { return p.inUse }
func (p *Pool) Waiting() int  { return len(p.waiters) }

// Acquire requests a slot. When one is free the grant callback runs before
// Acquire returns; otherwise the caller joins the FIFO queue and the
// callback runs when a releasing holder hands its slot over. The caller is
// responsible for timing the wait, from its own call site to the grant.
func (p *Pool) Acquire(grant func(*Token)) {
	if p.inUse < p.capacity {
		slot := p.free[0]
		p.free = p.free[1:]
		p.inUse++
		grant(&Token{pool: p, slot: slot})
		return
	}
	logrus.Debugf("[t=%8.3f] %s saturated, %d waiting", p.sim.Now(), p.name, len(p.waiters)+1)
	p.waiters = append(p.waiters, grant)
}

func (p *Pool) release(slot int) {
	if len(p.waiters) > 0 {
		next := p.waiters[0]
		p.waiters = p.waiters[1:]
		next(&Token{pool: p, slot: slot})
		return
	}
	p.inUse--
	p.returnSlot(slot)
}

// returnSlot inserts slot back into the ascending free list so fresh grants
// stay deterministic.
func (p *Pool) returnSlot(slot int) {
	i := 0
	for i < len(p.free) && p.free[i] < slot {
		i++
	}
	p.free = append(p.free, 0)
	copy(p.free[i+1:], p.free[i:])
	p.free[i] = slot
}
