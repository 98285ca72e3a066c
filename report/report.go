// package report turns the raw samples of a run into the per processor tables
// printed by the tool.
package report

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"

	"github.com/zeebo/tscskew/drift"
)

// Row is the report line for a single worker.
type Row struct {
	Worker int  `json:"worker"`
	CPU    int  `json:"cpu"`
	Bound  bool `json:"bound"`
	Usage  bool `json:"usage"`

	MinorFaults         int64 `json:"minor_faults"`
	MajorFaults         int64 `json:"major_faults"`
	VoluntarySwitches   int64 `json:"voluntary_switches"`
	InvoluntarySwitches int64 `json:"involuntary_switches"`

	AssembleSpins     uint64 `json:"assemble_spins"`
	SimultaneousSpins uint64 `json:"simultaneous_spins"`
	RelaySpins        uint64 `json:"relay_spins"`

	// Stamp is the simultaneous sample minus the smallest simultaneous sample
	// of the run. StampRelay is the relay sample minus that same minimum, and
	// is signed because a lagging counter can read below it.
	Stamp      uint64 `json:"stamp"`
	StampRelay int64  `json:"stamp_relay"`

	RawStamp      uint64 `json:"raw_stamp"`
	RawStampRelay uint64 `json:"raw_stamp_relay"`
}

// Report is the aggregated output of a run.
type Report struct {
	Workers     int      `json:"workers"`
	Source      string   `json:"source"`
	Min         uint64   `json:"min"`
	Fingerprint string   `json:"fingerprint"`
	Rows        []Row    `json:"rows"`
	Warnings    []string `json:"warnings,omitempty"`
}

// Normalize subtracts the smallest sample from every sample, so the smallest
// offset is always zero. It returns the offsets and the minimum.
func Normalize(samples []uint64) (offsets []uint64, min uint64) {
	if len(samples) == 0 {
		return nil, 0
	}

	min = samples[0]
	for _, s := range samples[1:] {
		if s < min {
			min = s
		}
	}

	offsets = make([]uint64, len(samples))
	for i, s := range samples {
		offsets[i] = s - min
	}
	return offsets, min
}

// Fingerprint hashes the raw samples so reports of the same run can be
// recognized.
func Fingerprint(samples []drift.Sample) uint64 {
	buf := make([]byte, 0, 16*len(samples))
	for _, s := range samples {
		buf = binary.LittleEndian.AppendUint64(buf, s.Simultaneous)
		buf = binary.LittleEndian.AppendUint64(buf, s.Relay)
	}
	return xxhash.Sum64(buf)
}

// New builds the report for the result. The source names the cycle counter
// the samples came from.
func New(res *drift.Result, source string) *Report {
	simultaneous := make([]uint64, len(res.Samples))
	for i, s := range res.Samples {
		simultaneous[i] = s.Simultaneous
	}
	offsets, min := Normalize(simultaneous)

	rep := &Report{
		Workers:     res.Workers,
		Source:      source,
		Min:         min,
		Fingerprint: fmt.Sprintf("%016x", Fingerprint(res.Samples)),
		Rows:        make([]Row, len(res.Samples)),
	}

	for i := range res.Samples {
		sample, rec := res.Samples[i], &res.Records[i]
		delta := rec.Delta()

		rep.Rows[i] = Row{
			Worker: i,
			CPU:    rec.CPU,
			Bound:  rec.Bound,
			Usage:  rec.HaveUsage,

			MinorFaults:         delta.MinorFaults,
			MajorFaults:         delta.MajorFaults,
			VoluntarySwitches:   delta.VoluntarySwitches,
			InvoluntarySwitches: delta.InvoluntarySwitches,

			AssembleSpins:     rec.Assemble,
			SimultaneousSpins: rec.Simultaneous,
			RelaySpins:        rec.Relay,

			Stamp:      offsets[i],
			StampRelay: int64(sample.Relay - min),

			RawStamp:      sample.Simultaneous,
			RawStampRelay: sample.Relay,
		}
	}

	for _, err := range res.Warnings() {
		rep.Warnings = append(rep.Warnings, err.Error())
	}

	return rep
}
