//go:build !amd64 && !arm64

package cycles

import "time"

const source = "monotonic"

var epoch = time.Now()

// Now falls back to nanoseconds on the monotonic clock.
func Now() uint64 {
	return uint64(time.Since(epoch))
}
