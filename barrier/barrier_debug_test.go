//go:build !release
// +build !release

package barrier

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestAdvanceSkipsPhase(t *testing.T) {
	b := New(1)
	b.Arrive()

	defer func() { assert.That(t, recover() != nil) }()
	b.Advance(StampSimultaneous)
}
