// Package storage holds the five component storages under comparison.
// Every storage associates one Payload with a live entity. They share a
// contract and differ only in representation and iteration cost.
package storage

import (
	"errors"
	"fmt"
	"iter"

	"github.com/xgzlucario/storagebench/internal/entity"
)

var (
	ErrAlreadyPresent = errors.New("component already present")
	ErrNotPresent     = errors.New("component not present")
)

// Payload is the benchmarked component. Ordinal is checked across
// storages, the filler makes every move copy a few words.
type Payload struct {
	Ordinal uint64
	_       [3]uint64
}

// Storage is the capability shared by all backends.
// Storages are not safe for concurrent use.
type Storage interface {
	// Insert fails with ErrAlreadyPresent if e already has a payload.
	Insert(e entity.Entity, p Payload) error
	// Remove reports whether e had a payload.
	Remove(e entity.Entity) bool
	Contains(e entity.Entity) bool
	Get(e entity.Entity) (Payload, bool)
	// All yields every live pair exactly once. Each call starts a fresh pass.
	All() iter.Seq2[entity.Entity, *Payload]
	Len() int
}

// Kind tags a storage variant.
type Kind byte

const (
	KindVec Kind = iota
	KindDenseVec
	KindBTree
	KindHashMap
	KindNull
)

// Kinds lists every variant in result column order.
var Kinds = []Kind{KindVec, KindDenseVec, KindBTree, KindHashMap, KindNull}

var kindNames = [...]string{
	KindVec:      "Vec",
	KindDenseVec: "DenseVec",
	KindBTree:    "BTree",
	KindHashMap:  "HashMap",
	KindNull:     "Null",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// HasValues reports whether the variant stores payloads.
func (k Kind) HasValues() bool { return k != KindNull }

// New creates an empty storage of the given kind sized for capacity slots.
func New(kind Kind, capacity int) Storage {
	switch kind {
	case KindVec:
		return NewVec(capacity)
	case KindDenseVec:
		return NewDenseVec(capacity)
	case KindBTree:
		return NewBTree()
	case KindHashMap:
		return NewHashMap(capacity)
	case KindNull:
		return NewNull(capacity)
	default:
		panic(fmt.Sprintf("unknown storage kind: %d", kind))
	}
}

// Close releases pooled memory held by s, if any.
func Close(s Storage) {
	if c, ok := s.(interface{ Close() }); ok {
		c.Close()
	}
}

func alreadyPresent(e entity.Entity) error {
	return fmt.Errorf("%w: %v", ErrAlreadyPresent, e)
}
