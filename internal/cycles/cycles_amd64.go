//go:build amd64

package cycles

const source = "rdtsc"

// Now returns the time stamp counter. Implemented in cycles_amd64.s
//
//go:noescape
func Now() uint64
