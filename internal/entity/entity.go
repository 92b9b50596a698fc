package entity

import "fmt"

// Entity is a generational identifier. index addresses a slot in the
// allocator's table, gen tells apart successive occupants of that slot.
type Entity struct {
	index uint32
	gen   uint32
}

// New builds an Entity from raw parts.
func New(index, gen uint32) Entity {
	return Entity{index: index, gen: gen}
}

func (e Entity) Index() uint32 { return e.index }

func (e Entity) Gen() uint32 { return e.gen }

func (e Entity) String() string {
	return fmt.Sprintf("%d@%d", e.index, e.gen)
}
