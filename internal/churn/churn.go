package churn

import "fmt"

// Options controls the randomized churn pass.
type Options struct {
	// Passes is the number of probes per pass.
	Passes int
	// WindowDivisor bounds a probe window to spread/WindowDivisor slots.
	WindowDivisor int
	// LowerBoundPercent is where the churn region starts, as a percentage
	// of capacity.
	LowerBoundPercent int
}

var DefaultOptions = Options{
	Passes:            2000,
	WindowDivisor:     5000,
	LowerBoundPercent: 0,
}

// Fill allocates the whole capacity range so that percent of it holds a
// payload. Skipped stretches are allocated placeholders.
func Fill(w *World, r Rand, percent int) error {
	for _, run := range Runs(r, w.capacity, percent) {
		switch run.Kind {
		case Populate:
			if err := w.Spawn(run.Len); err != nil {
				return err
			}
		case Skip:
			w.Reserve(run.Len)
		}
	}
	return nil
}

// Churn runs opts.Passes probes. Each probe picks a random window in the
// churn region, despawns every live entity in it and spawns as many fresh
// ones, which take over the freed slots.
func Churn(w *World, r Rand, opts Options) error {
	minBound := w.capacity * opts.LowerBoundPercent / 100
	spread := w.capacity - minBound
	if spread < 1 {
		return nil
	}
	// window length is drawn from [1, hi), hi >= 2
	hi := max(spread/max(opts.WindowDivisor, 1), 2)

	for pass := 0; pass < opts.Passes; pass++ {
		length := min(1+r.IntN(hi-1), spread)
		offset := minBound
		if n := spread - length; n > 0 {
			offset += r.IntN(n)
		}
		if err := w.churnWindow(offset, length); err != nil {
			return fmt.Errorf("churn pass %d [%d,%d): %w", pass, offset, offset+length, err)
		}
	}
	return nil
}

func (w *World) churnWindow(offset, length int) error {
	w.deletes = w.deletes[:0]
	for j := offset; j < offset+length; j++ {
		if w.presence.Has(uint32(j)) {
			w.deletes = append(w.deletes, w.alloc.EntityAt(uint32(j)))
		}
	}
	for _, e := range w.deletes {
		if err := w.Despawn(e); err != nil {
			return err
		}
	}
	return w.Spawn(len(w.deletes))
}
