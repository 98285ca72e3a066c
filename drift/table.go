package drift

import (
	"unsafe"

	"github.com/zeebo/tscskew/internal/machine"
)

// Sample holds the two cycle counter readings taken by one worker. Each
// Sample fills a cache line so that workers stamping at the same moment do
// not contend on it.
type Sample struct {
	Simultaneous uint64
	Relay        uint64
	_            machine.Pad48
}

type ( // ensure samples are exactly the size of a cache line
	_ [unsafe.Sizeof(Sample{}) - machine.CacheLine]byte
	_ [machine.CacheLine - unsafe.Sizeof(Sample{})]byte
)

// Record is what a worker reports about itself besides its samples.
type Record struct {
	CPU   int
	Bound bool

	// Before and After bracket the synchronized region. They are only
	// meaningful when HaveUsage is true.
	Before    Usage
	After     Usage
	HaveUsage bool

	// Spin iterations spent waiting, a crude measure of contention.
	Assemble     uint64
	Simultaneous uint64
	Relay        uint64

	Warnings []error
}

// Delta returns the usage accrued during the synchronized region.
func (r *Record) Delta() Usage {
	if !r.HaveUsage {
		return Usage{}
	}
	return r.After.Sub(r.Before)
}

// Result is the output of a completed run. Sample and Record i were written
// only by worker i.
type Result struct {
	Workers int
	Samples []Sample
	Records []Record

	warnings []error
}

// Warnings returns every warning produced by the run, run wide warnings first
// followed by each worker's in id order.
func (r *Result) Warnings() (out []error) {
	out = append(out, r.warnings...)
	for i := range r.Records {
		out = append(out, r.Records[i].Warnings...)
	}
	return out
}
