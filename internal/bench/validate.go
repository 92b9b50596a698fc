package bench

import (
	"fmt"
	"maps"

	"github.com/xgzlucario/storagebench/internal/churn"
	"github.com/xgzlucario/storagebench/internal/storage"
)

type measurements struct {
	sums   [5]uint64
	counts [5]int
}

func (m *measurements) validate(percent int) error {
	want := m.sums[storage.KindVec]
	for _, kind := range storage.Kinds {
		if kind.HasValues() && m.sums[kind] != want {
			return m.mismatch(percent, fmt.Sprintf("%v sum differs from %v", kind, storage.KindVec))
		}
	}
	if m.counts[storage.KindNull] != m.counts[storage.KindVec] {
		return m.mismatch(percent, fmt.Sprintf("%v count differs from %v", storage.KindNull, storage.KindVec))
	}
	return nil
}

func (m *measurements) mismatch(percent int, detail string) *MismatchError {
	err := &MismatchError{
		Percent: percent,
		Sums:    make(map[storage.Kind]uint64, len(storage.Kinds)),
		Counts:  make(map[storage.Kind]int, len(storage.Kinds)),
		Detail:  detail,
	}
	for _, kind := range storage.Kinds {
		if kind.HasValues() {
			err.Sums[kind] = m.sums[kind]
		}
		err.Counts[kind] = m.counts[kind]
	}
	return err
}

// validateMembers compares the member set of every storage to the
// presence storage.
func validateMembers(w *churn.World, percent int) error {
	want := w.Members(storage.KindNull)
	counts := map[storage.Kind]int{storage.KindNull: want.Cardinality()}
	for _, kind := range storage.Kinds {
		if kind == storage.KindNull {
			continue
		}
		got := w.Members(kind)
		counts[kind] = got.Cardinality()
		if !got.Equal(want) {
			return &MismatchError{
				Percent: percent,
				Counts:  maps.Clone(counts),
				Detail:  fmt.Sprintf("%v members differ from %v", kind, storage.KindNull),
			}
		}
	}
	return nil
}
