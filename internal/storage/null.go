package storage

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
	"github.com/xgzlucario/storagebench/internal/entity"
)

var _ Storage = (*Null)(nil)

// Null records membership only. Get returns a zero Payload for members and
// All yields a nil payload pointer.
type Null struct {
	gens []uint32
	mask *bitset.BitSet
	n    int
}

func NewNull(capacity int) *Null {
	return &Null{
		gens: make([]uint32, 0, capacity),
		mask: bitset.New(uint(capacity)),
	}
}

func (s *Null) Insert(e entity.Entity, _ Payload) error {
	idx := int(e.Index())
	if idx >= len(s.gens) {
		s.gens = append(s.gens, make([]uint32, idx+1-len(s.gens))...)
	}
	if s.mask.Test(uint(idx)) {
		if s.gens[idx] == e.Gen() {
			return alreadyPresent(e)
		}
		s.n--
	}
	s.gens[idx] = e.Gen()
	s.mask.Set(uint(idx))
	s.n++
	return nil
}

func (s *Null) Remove(e entity.Entity) bool {
	if !s.Contains(e) {
		return false
	}
	s.mask.Clear(uint(e.Index()))
	s.n--
	return true
}

func (s *Null) Contains(e entity.Entity) bool {
	idx := int(e.Index())
	return idx < len(s.gens) && s.mask.Test(uint(idx)) && s.gens[idx] == e.Gen()
}

func (s *Null) Get(e entity.Entity) (Payload, bool) {
	return Payload{}, s.Contains(e)
}

func (s *Null) All() iter.Seq2[entity.Entity, *Payload] {
	return func(yield func(entity.Entity, *Payload) bool) {
		for i, ok := s.mask.NextSet(0); ok; i, ok = s.mask.NextSet(i + 1) {
			if !yield(entity.New(uint32(i), s.gens[i]), nil) {
				return
			}
		}
	}
}

// Has reports whether slot idx is occupied, whatever its generation.
func (s *Null) Has(idx uint32) bool { return s.mask.Test(uint(idx)) }

func (s *Null) Len() int { return s.n }
