package pkg

import (
	"sync"
)

// BufferPool is a bytes buffer pool.
type BufferPool struct {
	pool *sync.Pool
}

// Get returns an empty buffer with at least want bytes of capacity.
func (p *BufferPool) Get(want int) []byte {
	buf := p.pool.Get().(*[]byte)
	if cap(*buf) < want {
		*buf = make([]byte, 0, want)
	}
	return (*buf)[:0]
}

// Put adds given buffer to the pool.
func (p *BufferPool) Put(b []byte) {
	p.pool.Put(&b)
}

// NewBufferPool creates a new buffer pool instance.
func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: &sync.Pool{
			New: func() interface{} { return new([]byte) },
		},
	}
}
