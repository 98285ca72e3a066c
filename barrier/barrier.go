// package barrier provides a lock free phase barrier and relay sequencer for a
// fixed party of pinned workers. All waiting is done by spinning on a pair of
// shared counters.
package barrier

import (
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/zeebo/tscskew/internal/debug"
	"github.com/zeebo/tscskew/internal/machine"
)

// Observer is informed by the coordinator every time it releases a phase. It
// is called after all parties have arrived and before the arrival counter is
// reset, so arrived is the count that allowed the release.
type Observer interface {
	OnRelease(next Phase, arrived uint32)
}

// counter is a cache line sized uint32 so that the two shared counters never
// share a line with each other or with anything else.
type counter struct {
	v uint32
	_ machine.Pad60
}

type ( // ensure counters are exactly the size of a cache line
	_ [unsafe.Sizeof(counter{}) - machine.CacheLine]byte
	_ [machine.CacheLine - unsafe.Sizeof(counter{})]byte
)

// Barrier coordinates a fixed number of parties through the phases. Party 0
// is the coordinator and is the only one allowed to call Advance. Every party,
// the coordinator included, calls Arrive once per phase.
type Barrier struct {
	_       machine.Pad64
	phase   counter
	arrived counter

	parties uint32
	yield   uint64
	obs     Observer
}

// New constructs a Barrier for the given number of parties. The barrier starts
// in the Setup phase with no arrivals, so it must be constructed before any
// party starts.
func New(parties int) *Barrier {
	debug.Assert("parties in range", func() bool {
		return parties > 0 && parties <= machine.MaxThreads
	})

	return &Barrier{parties: uint32(parties)}
}

// SetYield causes spin loops to call runtime.Gosched once every mask+1
// iterations. The mask must be one less than a power of two, and zero
// disables yielding. It must be called before any party starts.
func (b *Barrier) SetYield(mask uint64) {
	debug.Assert("yield mask is a power of two minus one", func() bool {
		return mask&(mask+1) == 0
	})
	b.yield = mask
}

// SetObserver installs an Observer. It must be called before any party starts.
func (b *Barrier) SetObserver(obs Observer) { b.obs = obs }

// Parties returns the number of parties the barrier was constructed with.
func (b *Barrier) Parties() int { return int(b.parties) }

// Phase returns the current phase.
func (b *Barrier) Phase() Phase { return Phase(atomic.LoadUint32(&b.phase.v)) }

// Arrived returns the current value of the arrival counter.
func (b *Barrier) Arrived() uint32 { return atomic.LoadUint32(&b.arrived.v) }

// Arrive records that the caller finished the work for the current phase.
func (b *Barrier) Arrive() { atomic.AddUint32(&b.arrived.v, 1) }

// Await spins until the phase becomes p, returning the number of iterations.
func (b *Barrier) Await(p Phase) (spins uint64) {
	for atomic.LoadUint32(&b.phase.v) != uint32(p) {
		spins++
		b.relax(spins)
	}
	return spins
}

// Advance spins until every party has arrived, then resets the arrival counter
// and publishes next. Only the coordinator may call it. It returns the number
// of iterations spent waiting.
func (b *Barrier) Advance(next Phase) (spins uint64) {
	debug.Assert("phase advances by one", func() bool {
		return next.Valid() && next == b.Phase()+1
	})

	for atomic.LoadUint32(&b.arrived.v) != b.parties {
		spins++
		b.relax(spins)
	}

	if b.obs != nil {
		b.obs.OnRelease(next, atomic.LoadUint32(&b.arrived.v))
	}

	// the reset must be visible before the new phase: parties only arrive
	// again after observing the phase, so they always add to a zeroed count.
	atomic.StoreUint32(&b.arrived.v, 0)
	atomic.StoreUint32(&b.phase.v, uint32(next))

	return spins
}

// relax yields the processor when the barrier is configured to.
func (b *Barrier) relax(spins uint64) {
	if b.yield != 0 && spins&b.yield == 0 {
		runtime.Gosched()
	}
}
