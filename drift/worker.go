package drift

import (
	"runtime"

	"github.com/zeebo/tscskew/barrier"
)

// worker is the per-thread state machine. Worker 0 coordinates the phase
// changes; every other worker only waits on them.
type worker struct {
	id     int
	cpu    int
	host   Host
	bar    *barrier.Barrier
	seq    *barrier.Sequencer
	sample *Sample
	rec    *Record
}

// newWorker checks the id against the configuration and binds the worker to
// its own entries in the result tables.
func newWorker(cfg Config, id int, bar *barrier.Barrier, seq *barrier.Sequencer,
	res *Result) (*worker, error) {

	if id < 0 || id >= cfg.Workers || id >= len(res.Samples) || id >= len(res.Records) {
		return nil, Fatal.New("worker id %d out of range [0, %d)", id, cfg.Workers)
	}

	return &worker{
		id:     id,
		cpu:    cfg.cpu(id),
		host:   cfg.Host,
		bar:    bar,
		seq:    seq,
		sample: &res.Samples[id],
		rec:    &res.Records[id],
	}, nil
}

func (w *worker) coordinator() bool { return w.id == 0 }

// release waits for the barrier to enter next. The coordinator publishes it
// once everyone has arrived; everyone else spins until they see it.
func (w *worker) release(next barrier.Phase) uint64 {
	if w.coordinator() {
		return w.bar.Advance(next)
	}
	return w.bar.Await(next)
}

func (w *worker) run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	rec := w.rec
	rec.CPU = w.cpu

	// setup: the barrier was constructed in the Setup phase with no arrivals.
	if err := w.host.Bind(w.id, w.cpu); err != nil {
		rec.Warnings = append(rec.Warnings,
			Warning.New("worker %d: bind to cpu %d: %v", w.id, w.cpu, err))
	} else {
		rec.Bound = true
	}

	before, err := w.host.Usage(w.id)
	if err != nil {
		rec.Warnings = append(rec.Warnings,
			Warning.New("worker %d: usage before: %v", w.id, err))
	}
	w.bar.Arrive()

	// before stamp: gather everyone so they are all spinning for the stamp.
	rec.Assemble += w.release(barrier.BeforeStamp)
	w.bar.Arrive()

	// stamp simultaneous: nothing between the release and the read.
	if w.coordinator() {
		rec.Assemble += w.bar.Advance(barrier.StampSimultaneous)
	} else {
		rec.Simultaneous += w.bar.Await(barrier.StampSimultaneous)
	}
	w.sample.Simultaneous = w.host.Cycles(w.id)
	w.bar.Arrive()

	// stamp relay: the arrival counter is zero again and admits by id.
	if w.coordinator() {
		rec.Simultaneous += w.bar.Advance(barrier.StampRelay)
	} else {
		rec.Relay += w.bar.Await(barrier.StampRelay)
	}
	rec.Relay += w.seq.AwaitTurn(w.id)
	w.sample.Relay = w.host.Cycles(w.id)
	w.seq.SignalDone(w.id)

	// done
	if w.coordinator() {
		rec.Relay += w.seq.AwaitAll()
	}

	after, aerr := w.host.Usage(w.id)
	if aerr != nil {
		rec.Warnings = append(rec.Warnings,
			Warning.New("worker %d: usage after: %v", w.id, aerr))
	}

	if err == nil && aerr == nil {
		rec.Before, rec.After, rec.HaveUsage = before, after, true
	}
}
