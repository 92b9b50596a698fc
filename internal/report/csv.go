// Package report writes sweep results.
package report

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/xgzlucario/storagebench/internal/bench"
	"github.com/xgzlucario/storagebench/internal/pkg"
	"github.com/xgzlucario/storagebench/internal/storage"
)

const Header = "Percent Filled, Vec iter time, DenseVec iter time, BTree iter time, HashMap iter time, Null iter time"

var bufferpool = pkg.NewBufferPool()

// CSV writes one row per sweep step. Times are integer microseconds.
type CSV struct {
	w      *bufio.Writer
	closer io.Closer
}

// Create truncates path and writes the header.
func Create(path string) (*CSV, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	c := NewCSV(f)
	c.closer = f
	if err := c.WriteHeader(); err != nil {
		f.Close()
		return nil, err
	}
	return c, nil
}

func NewCSV(w io.Writer) *CSV {
	return &CSV{w: bufio.NewWriter(w)}
}

func (c *CSV) WriteHeader() error {
	_, err := c.w.WriteString(Header + "\n")
	return err
}

// Write appends a row and flushes it, so a fatal later step keeps every
// earlier row on disk.
func (c *CSV) Write(res bench.Result) error {
	buf := bufferpool.Get(64)
	buf = AppendRow(buf, res)
	_, err := c.w.Write(buf)
	bufferpool.Put(buf)
	if err != nil {
		return err
	}
	return c.w.Flush()
}

func (c *CSV) Close() error {
	err := c.w.Flush()
	if c.closer != nil {
		if cerr := c.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// AppendRow formats res as "<p>%, <vec>, <densevec>, <btree>, <hashmap>, <null>\n".
func AppendRow(buf []byte, res bench.Result) []byte {
	buf = strconv.AppendInt(buf, int64(res.Percent), 10)
	buf = append(buf, '%')
	for _, kind := range storage.Kinds {
		buf = append(buf, ", "...)
		buf = strconv.AppendInt(buf, res.Time(kind).Microseconds(), 10)
	}
	return append(buf, '\n')
}
