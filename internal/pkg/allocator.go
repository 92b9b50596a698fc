package pkg

import (
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/swiss"
)

// Allocator recycles swiss table groups between maps. Storages are rebuilt
// for every sweep step, so the groups of a closed map serve the next one.
type Allocator[K comparable, V any] struct {
	pool      *sync.Pool
	miss, hit atomic.Uint64
}

func NewAllocator[K comparable, V any]() *Allocator[K, V] {
	return &Allocator[K, V]{
		pool: &sync.Pool{
			New: func() interface{} { return new([]swiss.Group[K, V]) },
		},
	}
}

// Alloc returns want zeroed groups. Reused buffers are cleared first,
// since a swiss map expects fresh group memory.
func (p *Allocator[K, V]) Alloc(want int) []swiss.Group[K, V] {
	buf := p.pool.Get().(*[]swiss.Group[K, V])

	if cap(*buf) < want {
		*buf = make([]swiss.Group[K, V], want)
		p.miss.Add(1)

	} else {
		*buf = (*buf)[:want]
		clear(*buf)
		p.hit.Add(1)
	}

	return *buf
}

// Free returns groups of a closed map to the pool. b must not be used after.
func (p *Allocator[K, V]) Free(b []swiss.Group[K, V]) {
	p.pool.Put(&b)
}

func (p *Allocator[K, V]) Miss() uint64 {
	return p.miss.Load()
}

func (p *Allocator[K, V]) Hit() uint64 {
	return p.hit.Load()
}
