package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sugawarayuuta/sonnet"
	"github.com/zeebo/assert"

	"github.com/zeebo/tscskew/drift"
	"github.com/zeebo/tscskew/internal/pcg"
)

func TestNormalize(t *testing.T) {
	t.Run("Fixed", func(t *testing.T) {
		offsets, min := Normalize([]uint64{100, 105, 98, 110})
		assert.Equal(t, min, uint64(98))
		assert.DeepEqual(t, offsets, []uint64{2, 7, 0, 12})
	})

	t.Run("Single", func(t *testing.T) {
		offsets, min := Normalize([]uint64{12345})
		assert.Equal(t, min, uint64(12345))
		assert.DeepEqual(t, offsets, []uint64{0})
	})

	t.Run("Empty", func(t *testing.T) {
		offsets, min := Normalize(nil)
		assert.Equal(t, len(offsets), 0)
		assert.Equal(t, min, uint64(0))
	})

	t.Run("MinimumIsZero", func(t *testing.T) {
		p := pcg.New(7, 11)
		for round := 0; round < 100; round++ {
			samples := make([]uint64, 1+p.Intn(32))
			for i := range samples {
				samples[i] = uint64(p.Uint32())<<20 | uint64(p.Uint32())
			}

			offsets, _ := Normalize(samples)
			zeros := 0
			for _, off := range offsets {
				if off == 0 {
					zeros++
				}
			}
			assert.That(t, zeros >= 1)
		}
	})
}

func fourWorkers() *drift.Result {
	res := &drift.Result{
		Workers: 4,
		Samples: make([]drift.Sample, 4),
		Records: make([]drift.Record, 4),
	}
	simultaneous := []uint64{100, 105, 98, 110}
	for i := range res.Samples {
		res.Samples[i].Simultaneous = simultaneous[i]
		res.Samples[i].Relay = 200 + uint64(i)
		res.Records[i] = drift.Record{
			CPU:          i,
			Bound:        true,
			Before:       drift.Usage{MinorFaults: 5},
			After:        drift.Usage{MinorFaults: 8, MajorFaults: 1},
			HaveUsage:    true,
			Assemble:     uint64(1000 * i),
			Simultaneous: 1234567,
			Relay:        uint64(i),
		}
	}
	res.Records[2].Bound = false
	res.Records[2].Warnings = []error{errors.New("worker 2: bind to cpu 2: nope")}
	return res
}

func TestNew(t *testing.T) {
	rep := New(fourWorkers(), "rdtsc")

	assert.Equal(t, rep.Workers, 4)
	assert.Equal(t, rep.Source, "rdtsc")
	assert.Equal(t, rep.Min, uint64(98))
	assert.Equal(t, len(rep.Fingerprint), 16)
	assert.DeepEqual(t, rep.Warnings, []string{"worker 2: bind to cpu 2: nope"})

	wantStamps := []uint64{2, 7, 0, 12}
	for i, row := range rep.Rows {
		assert.Equal(t, row.Worker, i)
		assert.Equal(t, row.Stamp, wantStamps[i])
		assert.Equal(t, row.StampRelay, int64(102+i))
		assert.Equal(t, row.MinorFaults, int64(3))
		assert.Equal(t, row.MajorFaults, int64(1))
		assert.Equal(t, row.Bound, i != 2)
	}
}

func TestRelayBelowMinimum(t *testing.T) {
	res := fourWorkers()
	res.Samples[3].Relay = 90

	rep := New(res, "rdtsc")
	assert.Equal(t, rep.Rows[3].StampRelay, int64(-8))
}

func TestFingerprint(t *testing.T) {
	res := fourWorkers()
	a := Fingerprint(res.Samples)
	assert.Equal(t, a, Fingerprint(fourWorkers().Samples))

	res.Samples[1].Relay++
	assert.That(t, a != Fingerprint(res.Samples))
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, New(fourWorkers(), "rdtsc").WriteText(&buf))
	out := buf.String()

	for _, want := range []string{
		"Assemble", "Stamp mp", "Stamp-mp",
		"3,1", "1,234,567", "3,000",
		"4 workers, rdtsc counter, minimum 98",
	} {
		assert.That(t, strings.Contains(out, want))
	}
}

func TestWriteJSON(t *testing.T) {
	rep := New(fourWorkers(), "rdtsc")

	var buf bytes.Buffer
	assert.NoError(t, rep.WriteJSON(&buf))

	var got Report
	assert.NoError(t, sonnet.Unmarshal(buf.Bytes(), &got))
	assert.DeepEqual(t, got, *rep)
	assert.That(t, strings.Contains(buf.String(), `"stamp_relay":`))
}
