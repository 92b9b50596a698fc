package entity

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/zyedidia/generic/heap"
)

var ErrStaleEntity = errors.New("stale entity")

// Allocator hands out recyclable entities. Freed slots go to a min-heap
// so the lowest freed index is always reused first.
// Allocator is not safe for concurrent use.
type Allocator struct {
	gens  []uint32
	alive *bitset.BitSet
	free  *heap.Heap[uint32]
	live  int
}

func NewAllocator(capacity int) *Allocator {
	return &Allocator{
		gens:  make([]uint32, 0, capacity),
		alive: bitset.New(uint(capacity)),
		free: heap.New(func(a, b uint32) bool {
			return a < b
		}),
	}
}

// Allocate returns a fresh entity, reusing the lowest freed slot if any.
func (a *Allocator) Allocate() Entity {
	idx, ok := a.free.Pop()
	if !ok {
		idx = uint32(len(a.gens))
		a.gens = append(a.gens, 0)
	}
	a.alive.Set(uint(idx))
	a.live++
	return Entity{index: idx, gen: a.gens[idx]}
}

// AllocateN appends n fresh entities to dst and returns it.
func (a *Allocator) AllocateN(dst []Entity, n int) []Entity {
	for i := 0; i < n; i++ {
		dst = append(dst, a.Allocate())
	}
	return dst
}

// Free kills e and bumps its slot generation.
func (a *Allocator) Free(e Entity) error {
	if !a.IsAlive(e) {
		return fmt.Errorf("%w: %v", ErrStaleEntity, e)
	}
	a.gens[e.index]++
	a.alive.Clear(uint(e.index))
	a.free.Push(e.index)
	a.live--
	return nil
}

func (a *Allocator) IsAlive(e Entity) bool {
	if int(e.index) >= len(a.gens) {
		return false
	}
	return a.gens[e.index] == e.gen && a.alive.Test(uint(e.index))
}

// EntityAt returns the current entity value of a slot without implying
// that it is alive. Slots never handed out report generation 0.
func (a *Allocator) EntityAt(index uint32) Entity {
	if int(index) >= len(a.gens) {
		return Entity{index: index}
	}
	return Entity{index: index, gen: a.gens[index]}
}

// Slots is the number of slots ever handed out.
func (a *Allocator) Slots() int { return len(a.gens) }

// Live is the number of currently alive entities.
func (a *Allocator) Live() int { return a.live }
