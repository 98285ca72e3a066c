package drift

import (
	"github.com/zeebo/tscskew/barrier"
	"github.com/zeebo/tscskew/internal/machine"
)

// Config describes a single run. It must not be modified once passed to Run.
type Config struct {
	// Workers is the number of workers, one per processor.
	Workers int

	// Limit bounds Workers. Zero means machine.MaxThreads, and it may not be
	// larger than that.
	Limit int

	// CPUs optionally lists the logical processor for each worker. When nil,
	// worker i is bound to processor i.
	CPUs []int

	// Host provides processor binding, usage accounting and the cycle counter.
	Host Host

	// Observer, if set, is told about every phase release.
	Observer barrier.Observer
}

func (c Config) limit() int {
	if c.Limit == 0 {
		return machine.MaxThreads
	}
	return c.Limit
}

// Validate returns a Fatal error if the configuration cannot be run.
func (c Config) Validate() error {
	if c.Limit < 0 || c.Limit > machine.MaxThreads {
		return Fatal.New("limit %d out of range [1, %d]", c.Limit, machine.MaxThreads)
	}
	if limit := c.limit(); c.Workers < 1 || c.Workers > limit {
		return Fatal.New("worker count %d out of range [1, %d]", c.Workers, limit)
	}
	if c.Host == nil {
		return Fatal.New("no host capabilities")
	}
	if c.CPUs != nil {
		if len(c.CPUs) != c.Workers {
			return Fatal.New("%d cpus listed for %d workers", len(c.CPUs), c.Workers)
		}
		seen := make(map[int]bool, len(c.CPUs))
		for _, cpu := range c.CPUs {
			if cpu < 0 {
				return Fatal.New("invalid cpu %d", cpu)
			}
			if seen[cpu] {
				return Fatal.New("cpu %d listed twice", cpu)
			}
			seen[cpu] = true
		}
	}
	return nil
}

// cpu returns the processor worker id is bound to.
func (c Config) cpu(id int) int {
	if c.CPUs == nil {
		return id
	}
	return c.CPUs[id]
}
