//go:build linux

package host

import (
	"unsafe"

	"github.com/zeebo/errs"
	"golang.org/x/sys/unix"

	"github.com/zeebo/tscskew/drift"
)

// maxCPU returns the number of processors the set can describe.
func maxCPU(set *unix.CPUSet) int { return int(unsafe.Sizeof(*set)) * 8 }

// bindThread sets the affinity of the calling thread to exactly cpu.
func bindThread(cpu int) error {
	var set unix.CPUSet
	if cpu < 0 || cpu >= maxCPU(&set) {
		return errs.New("cpu %d outside of affinity mask", cpu)
	}
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return errs.Wrap(err)
	}
	return nil
}

func threadUsage() (drift.Usage, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_THREAD, &ru); err != nil {
		return drift.Usage{}, errs.Wrap(err)
	}
	return drift.Usage{
		MinorFaults:         int64(ru.Minflt),
		MajorFaults:         int64(ru.Majflt),
		VoluntarySwitches:   int64(ru.Nvcsw),
		InvoluntarySwitches: int64(ru.Nivcsw),
	}, nil
}

// Online returns the number of processors the process may run on.
func Online() (int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return 0, errs.Wrap(err)
	}
	return set.Count(), nil
}
