package cycles

import (
	"runtime"
	"testing"

	"github.com/zeebo/assert"
)

func TestNowMonotonic(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	prev := Now()
	for i := 0; i < 1000; i++ {
		next := Now()
		assert.That(t, next >= prev)
		prev = next
	}
	assert.That(t, Source() != "")
}

func BenchmarkNow(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Now()
	}
}
