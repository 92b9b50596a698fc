package storage

import (
	"iter"

	"github.com/xgzlucario/storagebench/internal/entity"
)

var _ Storage = (*DenseVec)(nil)

// DenseVec keeps payloads packed in one slice. sparse maps a slot to its
// dense position plus one, zero meaning absent. Removal swaps the last
// element into the hole.
type DenseVec struct {
	dense  []Payload
	owners []entity.Entity
	sparse []uint32
}

func NewDenseVec(capacity int) *DenseVec {
	return &DenseVec{
		sparse: make([]uint32, 0, capacity),
	}
}

func (d *DenseVec) lookup(e entity.Entity) (int, bool) {
	idx := int(e.Index())
	if idx >= len(d.sparse) || d.sparse[idx] == 0 {
		return 0, false
	}
	pos := int(d.sparse[idx] - 1)
	return pos, d.owners[pos] == e
}

func (d *DenseVec) Insert(e entity.Entity, p Payload) error {
	idx := int(e.Index())
	if idx >= len(d.sparse) {
		d.sparse = append(d.sparse, make([]uint32, idx+1-len(d.sparse))...)
	}
	if pos, ok := d.lookup(e); ok {
		return alreadyPresent(e)
	} else if d.sparse[idx] != 0 {
		// stale occupant is overwritten
		d.dense[pos] = p
		d.owners[pos] = e
		return nil
	}
	d.dense = append(d.dense, p)
	d.owners = append(d.owners, e)
	d.sparse[idx] = uint32(len(d.dense))
	return nil
}

func (d *DenseVec) Remove(e entity.Entity) bool {
	pos, ok := d.lookup(e)
	if !ok {
		return false
	}
	last := len(d.dense) - 1
	if pos != last {
		moved := d.owners[last]
		d.dense[pos] = d.dense[last]
		d.owners[pos] = moved
		d.sparse[moved.Index()] = uint32(pos + 1)
	}
	d.dense = d.dense[:last]
	d.owners = d.owners[:last]
	d.sparse[e.Index()] = 0
	return true
}

func (d *DenseVec) Contains(e entity.Entity) bool {
	_, ok := d.lookup(e)
	return ok
}

func (d *DenseVec) Get(e entity.Entity) (Payload, bool) {
	pos, ok := d.lookup(e)
	if !ok {
		return Payload{}, false
	}
	return d.dense[pos], true
}

func (d *DenseVec) All() iter.Seq2[entity.Entity, *Payload] {
	return func(yield func(entity.Entity, *Payload) bool) {
		for i := range d.dense {
			if !yield(d.owners[i], &d.dense[i]) {
				return
			}
		}
	}
}

func (d *DenseVec) Len() int { return len(d.dense) }
