package report

import (
	"time"

	"github.com/xgzlucario/storagebench/internal/bench"
	"github.com/xgzlucario/storagebench/internal/pkg"
	"github.com/xgzlucario/storagebench/internal/storage"
)

// Summary aggregates iteration times per storage across a sweep.
type Summary struct {
	q [5]*pkg.Quantile
}

type Line struct {
	Kind          storage.Kind
	P90, P99, Max time.Duration
}

func NewSummary(steps int) *Summary {
	var s Summary
	for i := range s.q {
		s.q[i] = pkg.NewQuantile(steps)
	}
	return &s
}

func (s *Summary) Add(res bench.Result) {
	for _, kind := range storage.Kinds {
		s.q[kind].Add(res.Time(kind))
	}
}

func (s *Summary) Lines() []Line {
	lines := make([]Line, 0, len(storage.Kinds))
	for _, kind := range storage.Kinds {
		q := s.q[kind]
		lines = append(lines, Line{
			Kind: kind,
			P90:  q.Quantile(0.9),
			P99:  q.Quantile(0.99),
			Max:  q.Max(),
		})
	}
	return lines
}
