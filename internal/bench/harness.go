// Package bench runs the fill sweep and times one iteration pass per
// storage at every step.
package bench

import (
	"fmt"
	"time"

	"github.com/xgzlucario/storagebench/internal/churn"
	"github.com/xgzlucario/storagebench/internal/storage"
)

type Options struct {
	Capacity int
	From, To int
	Churn    churn.Options
	// Strict also compares the member sets of all storages at every step.
	Strict bool
}

var DefaultOptions = Options{
	Capacity: 10_000_000,
	From:     0,
	To:       100,
	Churn:    churn.DefaultOptions,
}

// Phases are the wall times of one step, measured from its start.
type Phases struct {
	Fill  time.Duration
	Churn time.Duration
	Total time.Duration
}

// Result is the outcome of one sweep step.
type Result struct {
	Percent int
	// Times holds the iteration time of each storage, indexed by kind.
	Times  [5]time.Duration
	Live   int
	Phases Phases
}

// Time returns the iteration time of the given storage.
func (r Result) Time(kind storage.Kind) time.Duration { return r.Times[kind] }

// Harness drives sweep steps. It is single threaded and rebuilds every
// storage at each step.
type Harness struct {
	opts Options
	rng  churn.Rand

	// afterChurn runs between churn and measurement. Tests use it to
	// corrupt a storage.
	afterChurn func(w *churn.World)
}

func New(opts Options, rng churn.Rand) *Harness {
	return &Harness{opts: opts, rng: rng}
}

// Step builds a fresh world filled to percent, churns it, then times and
// cross-checks one pass over every storage.
func (h *Harness) Step(percent int) (Result, error) {
	start := time.Now()
	res := Result{Percent: percent}

	w := churn.NewWorld(h.opts.Capacity)
	defer w.Close()

	if err := churn.Fill(w, h.rng, percent); err != nil {
		return res, fmt.Errorf("fill %d%%: %w", percent, err)
	}
	res.Phases.Fill = time.Since(start)

	if err := churn.Churn(w, h.rng, h.opts.Churn); err != nil {
		return res, fmt.Errorf("churn %d%%: %w", percent, err)
	}
	res.Phases.Churn = time.Since(start)

	if h.afterChurn != nil {
		h.afterChurn(w)
	}

	var m measurements
	for _, kind := range storage.Kinds {
		s := w.Storage(kind)
		if kind.HasValues() {
			m.sums[kind], m.counts[kind], res.Times[kind] = sumOrdinals(s)
		} else {
			m.counts[kind], res.Times[kind] = countMembers(s)
		}
	}
	res.Phases.Total = time.Since(start)
	res.Live = m.counts[storage.KindNull]

	if err := m.validate(percent); err != nil {
		return res, err
	}
	if h.opts.Strict {
		if err := validateMembers(w, percent); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Sweep runs every step from opts.From to opts.To and hands each result to
// emit. It stops at the first error.
func (h *Harness) Sweep(emit func(Result) error) error {
	for p := h.opts.From; p <= h.opts.To; p++ {
		res, err := h.Step(p)
		if err != nil {
			return err
		}
		if err := emit(res); err != nil {
			return err
		}
	}
	return nil
}

func sumOrdinals[S storage.Storage](s S) (sum uint64, n int, d time.Duration) {
	start := time.Now()
	for _, p := range s.All() {
		sum += p.Ordinal
		n++
	}
	return sum, n, time.Since(start)
}

func countMembers[S storage.Storage](s S) (n int, d time.Duration) {
	start := time.Now()
	for range s.All() {
		n++
	}
	return n, time.Since(start)
}
