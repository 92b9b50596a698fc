package storage

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
	"github.com/xgzlucario/storagebench/internal/entity"
)

var _ Storage = (*Vec)(nil)

// Vec stores payloads directly at their slot index. Iteration walks the
// occupancy mask, so its cost grows with the highest slot, not the
// live count.
type Vec struct {
	data []Payload
	gens []uint32
	mask *bitset.BitSet
	n    int
}

func NewVec(capacity int) *Vec {
	return &Vec{
		data: make([]Payload, 0, capacity),
		gens: make([]uint32, 0, capacity),
		mask: bitset.New(uint(capacity)),
	}
}

func (v *Vec) grow(idx int) {
	if idx < len(v.data) {
		return
	}
	n := idx + 1 - len(v.data)
	v.data = append(v.data, make([]Payload, n)...)
	v.gens = append(v.gens, make([]uint32, n)...)
}

func (v *Vec) Insert(e entity.Entity, p Payload) error {
	idx := int(e.Index())
	v.grow(idx)
	if v.mask.Test(uint(idx)) {
		if v.gens[idx] == e.Gen() {
			return alreadyPresent(e)
		}
		// stale occupant is overwritten
		v.n--
	}
	v.data[idx] = p
	v.gens[idx] = e.Gen()
	v.mask.Set(uint(idx))
	v.n++
	return nil
}

func (v *Vec) Remove(e entity.Entity) bool {
	if !v.Contains(e) {
		return false
	}
	idx := e.Index()
	v.mask.Clear(uint(idx))
	v.data[idx] = Payload{}
	v.n--
	return true
}

func (v *Vec) Contains(e entity.Entity) bool {
	idx := int(e.Index())
	return idx < len(v.gens) && v.mask.Test(uint(idx)) && v.gens[idx] == e.Gen()
}

func (v *Vec) Get(e entity.Entity) (Payload, bool) {
	if !v.Contains(e) {
		return Payload{}, false
	}
	return v.data[e.Index()], true
}

func (v *Vec) All() iter.Seq2[entity.Entity, *Payload] {
	return func(yield func(entity.Entity, *Payload) bool) {
		for i, ok := v.mask.NextSet(0); ok; i, ok = v.mask.NextSet(i + 1) {
			if !yield(entity.New(uint32(i), v.gens[i]), &v.data[i]) {
				return
			}
		}
	}
}

func (v *Vec) Len() int { return v.n }
