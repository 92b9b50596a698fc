package storage

import (
	"iter"

	"github.com/cockroachdb/swiss"
	"github.com/xgzlucario/storagebench/internal/entity"
	"github.com/xgzlucario/storagebench/internal/pkg"
)

var (
	_ Storage = (*HashMap)(nil)

	hashAllocator = pkg.NewAllocator[uint32, item]()
)

// HashMap keys payloads by slot index in a swiss table.
type HashMap struct {
	m *swiss.Map[uint32, item]
}

func NewHashMap(capacity int) *HashMap {
	return &HashMap{
		m: swiss.New(capacity/8, swiss.WithAllocator[uint32, item](hashAllocator)),
	}
}

func (h *HashMap) Insert(e entity.Entity, p Payload) error {
	if h.Contains(e) {
		return alreadyPresent(e)
	}
	h.m.Put(e.Index(), item{e: e, p: p})
	return nil
}

func (h *HashMap) Remove(e entity.Entity) bool {
	if !h.Contains(e) {
		return false
	}
	h.m.Delete(e.Index())
	return true
}

func (h *HashMap) Contains(e entity.Entity) bool {
	it, ok := h.m.Get(e.Index())
	return ok && it.e == e
}

func (h *HashMap) Get(e entity.Entity) (Payload, bool) {
	it, ok := h.m.Get(e.Index())
	if !ok || it.e != e {
		return Payload{}, false
	}
	return it.p, true
}

func (h *HashMap) All() iter.Seq2[entity.Entity, *Payload] {
	return func(yield func(entity.Entity, *Payload) bool) {
		var cur item
		h.m.All(func(_ uint32, it item) bool {
			cur = it
			return yield(cur.e, &cur.p)
		})
	}
}

func (h *HashMap) Len() int { return h.m.Len() }

// Close hands the table memory back to the shared group pool.
func (h *HashMap) Close() { h.m.Close() }

// PoolStats reports hits and misses of the group pool shared by all
// HashMap storages.
func PoolStats() (hit, miss uint64) {
	return hashAllocator.Hit(), hashAllocator.Miss()
}
