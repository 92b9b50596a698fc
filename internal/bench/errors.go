package bench

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xgzlucario/storagebench/internal/storage"
)

var ErrCrossBackendMismatch = errors.New("cross backend mismatch")

// MismatchError describes a failed cross-check of one sweep step.
type MismatchError struct {
	Percent int
	// Sums holds the ordinal sum of every value-bearing storage.
	Sums map[storage.Kind]uint64
	// Counts holds the number of entities iterated per storage.
	Counts map[storage.Kind]int
	// Detail names what disagreed.
	Detail string
}

func (e *MismatchError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v at %d%%: %s", ErrCrossBackendMismatch, e.Percent, e.Detail)
	for _, kind := range storage.Kinds {
		if sum, ok := e.Sums[kind]; ok {
			fmt.Fprintf(&sb, " %v(sum=%d,n=%d)", kind, sum, e.Counts[kind])
		} else if n, ok := e.Counts[kind]; ok {
			fmt.Fprintf(&sb, " %v(n=%d)", kind, n)
		}
	}
	return sb.String()
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrCrossBackendMismatch
}
