//go:build !linux

package host

import (
	"runtime"

	"github.com/zeebo/errs"

	"github.com/zeebo/tscskew/drift"
)

func bindThread(cpu int) error {
	return errs.New("thread affinity unsupported on %s", runtime.GOOS)
}

func threadUsage() (drift.Usage, error) {
	return drift.Usage{}, errs.New("per thread usage unsupported on %s", runtime.GOOS)
}

// Online returns the number of processors the process may run on.
func Online() (int, error) { return runtime.NumCPU(), nil }
