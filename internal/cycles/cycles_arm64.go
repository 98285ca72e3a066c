//go:build arm64

package cycles

const source = "cntvct_el0"

// Now returns the virtual counter. Implemented in cycles_arm64.s
//
//go:noescape
func Now() uint64
