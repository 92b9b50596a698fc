package churn

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/xgzlucario/storagebench/internal/entity"
	"github.com/xgzlucario/storagebench/internal/storage"
)

// World owns one allocator and one storage of every kind, and mutates
// them in lockstep. A World is used by a single goroutine.
type World struct {
	capacity int
	alloc    *entity.Allocator
	stores   []storage.Storage
	presence *storage.Null
	ordinal  uint64

	batch   []entity.Entity
	deletes []entity.Entity
}

func NewWorld(capacity int) *World {
	w := &World{
		capacity: capacity,
		alloc:    entity.NewAllocator(capacity),
		stores:   make([]storage.Storage, len(storage.Kinds)),
	}
	for i, kind := range storage.Kinds {
		w.stores[i] = storage.New(kind, capacity)
	}
	w.presence = w.stores[storage.KindNull].(*storage.Null)
	return w
}

func (w *World) Allocator() *entity.Allocator { return w.alloc }

// Storage returns the storage of the given kind.
func (w *World) Storage(kind storage.Kind) storage.Storage { return w.stores[kind] }

// Live is the number of entities holding a payload.
func (w *World) Live() int { return w.presence.Len() }

// Spawn allocates n entities and inserts a payload for each into every
// storage. Ordinals keep increasing across calls.
func (w *World) Spawn(n int) error {
	w.batch = w.alloc.AllocateN(w.batch[:0], n)
	for _, e := range w.batch {
		p := storage.Payload{Ordinal: w.ordinal}
		w.ordinal++
		for i, s := range w.stores {
			if err := s.Insert(e, p); err != nil {
				return fmt.Errorf("spawn into %v: %w", storage.Kinds[i], err)
			}
		}
	}
	return nil
}

// Reserve allocates n placeholder entities that never receive a payload.
func (w *World) Reserve(n int) {
	for i := 0; i < n; i++ {
		w.alloc.Allocate()
	}
}

// Despawn removes e from every storage and frees it.
func (w *World) Despawn(e entity.Entity) error {
	for i, s := range w.stores {
		if !s.Remove(e) {
			return fmt.Errorf("despawn from %v: %w: %v", storage.Kinds[i], storage.ErrNotPresent, e)
		}
	}
	return w.alloc.Free(e)
}

// Members returns the entities held by the storage of the given kind.
func (w *World) Members(kind storage.Kind) mapset.Set[entity.Entity] {
	s := w.stores[kind]
	set := mapset.NewThreadUnsafeSetWithSize[entity.Entity](s.Len())
	for e := range s.All() {
		set.Add(e)
	}
	return set
}

// Close releases pooled storage memory. The World must not be used after.
func (w *World) Close() {
	for _, s := range w.stores {
		storage.Close(s)
	}
}
