package drift

import (
	"runtime"
	"sync"

	"github.com/zeebo/tscskew/barrier"
)

// yieldMask is handed to the barrier when there are fewer Go processors than
// workers, so that spinning workers periodically give up their processor.
const yieldMask = 1<<12 - 1

// Run spawns one worker per configured processor, drives them through every
// phase and returns their samples. It returns a Fatal error, and starts no
// worker, if the configuration is invalid. Run does not return until every
// worker finishes, so a worker that never arrives hangs it.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		Workers: cfg.Workers,
		Samples: make([]Sample, cfg.Workers),
		Records: make([]Record, cfg.Workers),
	}

	if cfg.Workers == 1 {
		res.warnings = append(res.warnings,
			Warning.New("single worker: there is no other processor to compare against"))
	}

	bar := barrier.New(cfg.Workers)
	if procs := runtime.GOMAXPROCS(0); procs < cfg.Workers {
		res.warnings = append(res.warnings,
			Warning.New("%d workers share %d processors: waits will yield", cfg.Workers, procs))
		bar.SetYield(yieldMask)
	}
	if cfg.Observer != nil {
		bar.SetObserver(cfg.Observer)
	}
	seq := bar.Sequencer()

	workers := make([]*worker, cfg.Workers)
	for id := range workers {
		w, err := newWorker(cfg, id, bar, seq, res)
		if err != nil {
			return nil, err
		}
		workers[id] = w
	}

	var wg sync.WaitGroup
	for _, w := range workers {
		wg.Add(1)
		go func(w *worker) {
			defer wg.Done()
			w.run()
		}(w)
	}
	wg.Wait()

	return res, nil
}
