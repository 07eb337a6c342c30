package tabu

import "math/rand"

// Partition is a two-set split of {1..N} into Free and Tabu, with a
// fixed-capacity FIFO governing Tabu membership. Zero value is not
// meaningful; use NewPartition.
type Partition struct {
	n   int
	cap int // ceil(fraction * n), at least 1

	free      []int // customers currently free, order arbitrary
	freeIndex []int // freeIndex[c] = position in free, or -1 if tabu

	queue   []int // ring buffer of tabu customers, length cap
	head    int   // index of oldest entry
	tabuLen int   // number of occupied slots in queue
	inTabu  []bool
}

// NewPartition creates a Partition over {1..n} with every customer
// initially Free. The tabu FIFO capacity is ceil(0.10*n).
//
// Complexity: O(n) time and space.
func NewPartition(n int) *Partition {
	return NewPartitionFrac(n, 0.10)
}

// NewPartitionFrac is NewPartition with a caller-chosen tabu fraction
// (tabu_fraction in the engine configuration), in place of the hardcoded
// 0.10. The FIFO capacity is ceil(fraction*n), minimum 1 when n >= 1.
//
// Complexity: O(n) time and space.
func NewPartitionFrac(n int, fraction float64) *Partition {
	cap := int(fraction*float64(n) + 0.999999)
	if cap < 1 {
		cap = 1
	}

	p := &Partition{
		n:         n,
		cap:       cap,
		free:      make([]int, n),
		freeIndex: make([]int, n+1),
		queue:     make([]int, cap),
		inTabu:    make([]bool, n+1),
	}
	for c := 1; c <= n; c++ {
		p.free[c-1] = c
		p.freeIndex[c] = c - 1
	}
	return p
}

// FreeLen returns the current number of free customers.
func (p *Partition) FreeLen() int { return len(p.free) }

// TabuLen returns the current number of tabu customers.
func (p *Partition) TabuLen() int { return p.tabuLen }

// IsTabu reports whether customer c is currently in the tabu set.
func (p *Partition) IsTabu(c int) bool { return p.inTabu[c] }

// FreeSnapshot returns an independent copy of the current free set.
func (p *Partition) FreeSnapshot() []int {
	out := make([]int, len(p.free))
	copy(out, p.free)
	return out
}

// TabuSnapshot returns an independent copy of the current tabu set, oldest first.
func (p *Partition) TabuSnapshot() []int {
	out := make([]int, 0, p.tabuLen)
	for i := 0; i < p.tabuLen; i++ {
		out = append(out, p.queue[(p.head+i)%p.cap])
	}
	return out
}

// DrawAndTabu selects up to k distinct customers from Free uniformly at
// random without replacement, moving each into Tabu (evicting the oldest
// Tabu member back into Free whenever the FIFO is at capacity). If
// len(Free) < k, it clamps to whatever Free contains. Returns the
// selected customers; the caller is responsible for removing them from
// the solution.
//
// The k draws are completed against Free before any of them are pushed
// into the Tabu FIFO: pushTabu can evict an older entry back into Free
// mid-call, and folding that eviction into an in-progress draw would let
// the same customer be selected twice, violating the "k distinct
// customers" contract.
//
// Complexity: O(k) time (amortized), zero allocation beyond the output slice.
func (p *Partition) DrawAndTabu(rng *rand.Rand, k int) []int {
	if k > len(p.free) {
		k = len(p.free)
	}
	if k <= 0 {
		return nil
	}

	out := make([]int, 0, k)
	for i := 0; i < k; i++ {
		idx := rng.Intn(len(p.free))
		c := p.free[idx]
		p.removeFreeAt(idx)
		out = append(out, c)
	}
	for _, c := range out {
		p.pushTabu(c)
	}
	return out
}

// removeFreeAt swap-removes the free slice entry at idx.
func (p *Partition) removeFreeAt(idx int) {
	last := len(p.free) - 1
	c := p.free[idx]
	p.free[idx] = p.free[last]
	p.freeIndex[p.free[idx]] = idx
	p.free = p.free[:last]
	p.freeIndex[c] = -1
}

// pushTabu inserts c at the tail of the FIFO, evicting the oldest entry
// back into Free when the queue is already at capacity.
func (p *Partition) pushTabu(c int) {
	if p.tabuLen == p.cap {
		evicted := p.queue[p.head]
		p.head = (p.head + 1) % p.cap
		p.tabuLen--
		p.inTabu[evicted] = false
		p.free = append(p.free, evicted)
		p.freeIndex[evicted] = len(p.free) - 1
	}
	tail := (p.head + p.tabuLen) % p.cap
	p.queue[tail] = c
	p.tabuLen++
	p.inTabu[c] = true
}

// Reset clears the tabu set, returning every tabu customer to Free.
// Used on LNS restart (see package lns).
//
// Complexity: O(tabuLen).
func (p *Partition) Reset() {
	for p.tabuLen > 0 {
		c := p.queue[p.head]
		p.head = (p.head + 1) % p.cap
		p.tabuLen--
		p.inTabu[c] = false
		p.free = append(p.free, c)
		p.freeIndex[c] = len(p.free) - 1
	}
	p.head = 0
}
