package drift

// Host is the set of machine capabilities a run consumes. Every method is
// called by the worker with the given id from that worker's own locked OS
// thread, so implementations may act on the calling thread.
type Host interface {
	// Bind pins the calling thread to the logical processor cpu.
	Bind(id, cpu int) error

	// Usage returns resource usage counters for the calling thread.
	Usage(id int) (Usage, error)

	// Cycles reads the cycle counter of the processor running the thread.
	Cycles(id int) uint64
}

// Usage is a snapshot of per-thread resource usage counters.
type Usage struct {
	MinorFaults         int64
	MajorFaults         int64
	VoluntarySwitches   int64
	InvoluntarySwitches int64
}

// Sub returns the counters in u minus the counters in v.
func (u Usage) Sub(v Usage) Usage {
	return Usage{
		MinorFaults:         u.MinorFaults - v.MinorFaults,
		MajorFaults:         u.MajorFaults - v.MajorFaults,
		VoluntarySwitches:   u.VoluntarySwitches - v.VoluntarySwitches,
		InvoluntarySwitches: u.InvoluntarySwitches - v.InvoluntarySwitches,
	}
}
