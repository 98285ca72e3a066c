package barrier

import (
	"sync/atomic"

	"github.com/zeebo/tscskew/internal/debug"
)

// Sequencer admits parties one at a time in order of their id. It reuses the
// arrival counter of its Barrier as the id of the next admitted party, which
// is only valid once the barrier has published StampRelay.
type Sequencer struct {
	b *Barrier
}

// Sequencer returns the relay view of the barrier's arrival counter.
func (b *Barrier) Sequencer() *Sequencer { return &Sequencer{b: b} }

// AwaitTurn spins until the party with the given id is admitted.
func (s *Sequencer) AwaitTurn(id int) (spins uint64) {
	for atomic.LoadUint32(&s.b.arrived.v) != uint32(id) {
		spins++
		s.b.relax(spins)
	}
	return spins
}

// SignalDone admits the party with the next id. It must only be called by the
// currently admitted party after finishing its critical section.
func (s *Sequencer) SignalDone(id int) {
	debug.Assert("only the admitted party signals", func() bool {
		return atomic.LoadUint32(&s.b.arrived.v) == uint32(id)
	})
	atomic.AddUint32(&s.b.arrived.v, 1)
}

// AwaitAll spins until every party has signaled done.
func (s *Sequencer) AwaitAll() (spins uint64) {
	for atomic.LoadUint32(&s.b.arrived.v) != s.b.parties {
		spins++
		s.b.relax(spins)
	}
	return spins
}
