package churn

import (
	"iter"
)

// Rand is the entropy the simulator consumes. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type RunKind byte

const (
	Populate RunKind = iota + 1
	Skip
)

func (k RunKind) String() string {
	switch k {
	case Populate:
		return "populate"
	case Skip:
		return "skip"
	default:
		return "unknown"
	}
}

// Run is a stretch of consecutive allocations of one kind.
type Run struct {
	Len  int
	Kind RunKind
}

// Cuts splits total into random lengths. Each cut is drawn uniformly from
// [1, max(2, remaining/2)], capped at what remains, so run sizes decay
// roughly geometrically.
func Cuts(r Rand, total int) iter.Seq[int] {
	return func(yield func(int) bool) {
		remaining := total
		for remaining > 0 {
			maxLen := min(max(remaining/2, 2), remaining)
			cut := 1 + r.IntN(maxLen)
			remaining -= cut
			if !yield(cut) {
				return
			}
		}
	}
}

// Runs plans a fill of capacity slots where percent of them hold a
// payload. Populate and skip runs are shuffled together.
func Runs(r Rand, capacity, percent int) []Run {
	numSet := capacity * percent / 100
	numUnset := capacity - numSet

	var runs []Run
	for n := range Cuts(r, numSet) {
		runs = append(runs, Run{Len: n, Kind: Populate})
	}
	for n := range Cuts(r, numUnset) {
		runs = append(runs, Run{Len: n, Kind: Skip})
	}
	r.Shuffle(len(runs), func(i, j int) {
		runs[i], runs[j] = runs[j], runs[i]
	})
	return runs
}
