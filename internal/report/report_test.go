package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xgzlucario/storagebench/internal/bench"
)

func genResult(percent int, times ...time.Duration) bench.Result {
	res := bench.Result{Percent: percent}
	copy(res.Times[:], times)
	return res
}

func TestAppendRow(t *testing.T) {
	assert := assert.New(t)
	res := genResult(42, 1500*time.Microsecond, 2*time.Millisecond, 3*time.Microsecond, 0, 999*time.Nanosecond)
	assert.Equal("42%, 1500, 2000, 3, 0, 0\n", string(AppendRow(nil, res)))
}

func TestCSV(t *testing.T) {
	assert := assert.New(t)
	var buf bytes.Buffer

	c := NewCSV(&buf)
	assert.Nil(c.WriteHeader())
	assert.Nil(c.Write(genResult(0)))
	assert.Nil(c.Write(genResult(1, time.Microsecond, 2*time.Microsecond, 3*time.Microsecond, 4*time.Microsecond, 5*time.Microsecond)))
	assert.Nil(c.Close())

	assert.Equal(Header+"\n0%, 0, 0, 0, 0, 0\n1%, 1, 2, 3, 4, 5\n", buf.String())
}

func TestCreateTruncates(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "out.csv")
	assert.Nil(os.WriteFile(path, []byte("stale content from an earlier run\n"), 0644))

	c, err := Create(path)
	assert.Nil(err)
	assert.Nil(c.Write(genResult(100, time.Millisecond)))
	assert.Nil(c.Close())

	data, err := os.ReadFile(path)
	assert.Nil(err)
	assert.Equal(Header+"\n100%, 1000, 0, 0, 0, 0\n", string(data))

	_, err = Create(filepath.Join(t.TempDir(), "missing", "out.csv"))
	assert.NotNil(err)
}

func TestSummary(t *testing.T) {
	assert := assert.New(t)
	s := NewSummary(100)
	for i := 1; i <= 100; i++ {
		d := time.Duration(i) * time.Microsecond
		s.Add(genResult(i, d, 2*d, 3*d, 4*d, 5*d))
	}

	lines := s.Lines()
	assert.Len(lines, 5)
	assert.Equal("Vec", lines[0].Kind.String())
	assert.Equal(91*time.Microsecond, lines[0].P90)
	assert.Equal(100*time.Microsecond, lines[0].P99)
	assert.Equal(100*time.Microsecond, lines[0].Max)
	assert.Equal(500*time.Microsecond, lines[4].Max)

	empty := NewSummary(0).Lines()
	assert.Equal(time.Duration(0), empty[2].Max)
}
