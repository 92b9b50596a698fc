package pkg

import (
	"slices"
	"time"
)

// Quantile collects durations and reports order statistics over them.
type Quantile struct {
	d      []time.Duration
	sorted bool
}

func NewQuantile(size int) *Quantile {
	return &Quantile{d: make([]time.Duration, 0, size)}
}

func (q *Quantile) Add(v time.Duration) {
	q.d = append(q.d, v)
	q.sorted = false
}

// Quantile returns the p-th quantile, p in [0,1]. Empty sets report 0.
func (q *Quantile) Quantile(p float64) time.Duration {
	if len(q.d) == 0 {
		return 0
	}
	if !q.sorted {
		slices.Sort(q.d)
		q.sorted = true
	}
	i := int(float64(len(q.d)) * p)
	if i >= len(q.d) {
		i = len(q.d) - 1
	}
	return q.d[i]
}

func (q *Quantile) Max() time.Duration { return q.Quantile(1) }
