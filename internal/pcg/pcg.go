// package pcg is a tiny permuted congruential generator used to shuffle the
// arrival order of workers in tests.
package pcg

import (
	"math/bits"
	"runtime"
)

const mul = 6364136223846793005

type PCG struct {
	state uint64
	inc   uint64
}

// New constructs a generator seeded with state on stream inc.
func New(state, inc uint64) PCG {
	inc = inc<<1 | 1
	return PCG{
		state: (inc+state)*mul + inc,
		inc:   inc,
	}
}

// Uint32 returns a random uint32. The zero value behaves like New(0, 0).
func (p *PCG) Uint32() uint32 {
	if p.inc == 0 {
		*p = New(0, 0)
	}

	old := p.state
	p.state = old*mul + p.inc

	xorshift := uint32(((old >> 18) ^ old) >> 27)
	return bits.RotateLeft32(xorshift, -int(old>>59))
}

// Intn returns an int uniformly in [0, n).
func (p *PCG) Intn(n int) int {
	return int((uint64(p.Uint32()) * uint64(n)) >> 32)
}

// Stall burns a random number of iterations below max, yielding the processor
// every so often so oversubscribed tests still make progress.
func (p *PCG) Stall(max int) {
	for n := p.Intn(max); n > 0; n-- {
		if n&255 == 0 {
			runtime.Gosched()
		}
	}
}
