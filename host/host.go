// package host provides the machine capabilities a drift run consumes on the
// machine the process is running on.
package host

import (
	"github.com/zeebo/tscskew/drift"
	"github.com/zeebo/tscskew/internal/cycles"
)

// Native implements drift.Host for the current machine.
type Native struct{}

var _ drift.Host = Native{}

// Bind pins the calling thread to the processor. The caller must have locked
// its goroutine to the thread.
func (Native) Bind(id, cpu int) error { return bindThread(cpu) }

// Usage returns the resource usage of the calling thread.
func (Native) Usage(id int) (drift.Usage, error) { return threadUsage() }

// Cycles reads the cycle counter.
func (Native) Cycles(id int) uint64 { return cycles.Now() }

// Source names the counter read by Cycles.
func (Native) Source() string { return cycles.Source() }
