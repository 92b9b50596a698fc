package storage

import (
	"iter"

	"github.com/google/btree"
	"github.com/xgzlucario/storagebench/internal/entity"
)

const btreeDegree = 32

var _ Storage = (*BTree)(nil)

type item struct {
	e entity.Entity
	p Payload
}

func itemLess(a, b item) bool {
	return a.e.Index() < b.e.Index()
}

// BTree keeps payloads ordered by slot index.
type BTree struct {
	tree *btree.BTreeG[item]
}

func NewBTree() *BTree {
	return &BTree{tree: btree.NewG(btreeDegree, itemLess)}
}

func (b *BTree) Insert(e entity.Entity, p Payload) error {
	if b.Contains(e) {
		return alreadyPresent(e)
	}
	b.tree.ReplaceOrInsert(item{e: e, p: p})
	return nil
}

func (b *BTree) Remove(e entity.Entity) bool {
	if !b.Contains(e) {
		return false
	}
	b.tree.Delete(item{e: e})
	return true
}

func (b *BTree) Contains(e entity.Entity) bool {
	it, ok := b.tree.Get(item{e: e})
	return ok && it.e == e
}

func (b *BTree) Get(e entity.Entity) (Payload, bool) {
	it, ok := b.tree.Get(item{e: e})
	if !ok || it.e != e {
		return Payload{}, false
	}
	return it.p, true
}

func (b *BTree) All() iter.Seq2[entity.Entity, *Payload] {
	return func(yield func(entity.Entity, *Payload) bool) {
		// one copy per pass, so yielding &cur.p does not move every item to the heap
		var cur item
		b.tree.Ascend(func(it item) bool {
			cur = it
			return yield(cur.e, &cur.p)
		})
	}
}

func (b *BTree) Len() int { return b.tree.Len() }
