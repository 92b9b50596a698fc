package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xgzlucario/storagebench/internal/entity"
)

func scan(s Storage, values bool) (sum uint64, members []entity.Entity) {
	for e, p := range s.All() {
		if values {
			sum += p.Ordinal
		}
		members = append(members, e)
	}
	return
}

func TestStorage(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := New(kind, 16)
			defer Close(s)
			testStorage(s, kind, t)
		})
	}
}

func testStorage(s Storage, kind Kind, t *testing.T) {
	assert := assert.New(t)
	e1 := entity.New(0, 0)
	e2 := entity.New(5, 0)
	e3 := entity.New(40, 2)

	// insert
	assert.Nil(s.Insert(e1, Payload{Ordinal: 10}))
	assert.Nil(s.Insert(e2, Payload{Ordinal: 20}))
	assert.Nil(s.Insert(e3, Payload{Ordinal: 30}))
	assert.ErrorIs(s.Insert(e1, Payload{Ordinal: 11}), ErrAlreadyPresent)
	assert.Equal(3, s.Len())

	// contains
	assert.True(s.Contains(e1))
	assert.True(s.Contains(e3))
	assert.False(s.Contains(entity.New(5, 1)))
	assert.False(s.Contains(entity.New(6, 0)))
	assert.False(s.Contains(entity.New(1000, 0)))

	// get
	p, ok := s.Get(e2)
	assert.True(ok)
	if kind.HasValues() {
		assert.Equal(uint64(20), p.Ordinal)
	}
	_, ok = s.Get(entity.New(7, 0))
	assert.False(ok)

	// iterate
	sum, members := scan(s, kind.HasValues())
	assert.ElementsMatch([]entity.Entity{e1, e2, e3}, members)
	if kind.HasValues() {
		assert.Equal(uint64(60), sum)
	}

	// remove
	assert.True(s.Remove(e2))
	assert.False(s.Remove(e2))
	assert.False(s.Remove(entity.New(0, 1)))
	assert.False(s.Contains(e2))
	assert.Equal(2, s.Len())

	// newer generation on the same slot
	e2b := entity.New(5, 1)
	assert.Nil(s.Insert(e2b, Payload{Ordinal: 21}))
	assert.True(s.Contains(e2b))
	assert.False(s.Contains(e2))

	// restartable
	sum1, members1 := scan(s, kind.HasValues())
	sum2, members2 := scan(s, kind.HasValues())
	assert.Equal(sum1, sum2)
	assert.ElementsMatch(members1, members2)
	if kind.HasValues() {
		assert.Equal(uint64(61), sum1)
	}

	// early stop
	n := 0
	for range s.All() {
		n++
		break
	}
	assert.Equal(1, n)
}

func TestStorageStaleOccupant(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			assert := assert.New(t)
			s := New(kind, 4)
			defer Close(s)

			old := entity.New(3, 0)
			assert.Nil(s.Insert(old, Payload{Ordinal: 1}))
			assert.Nil(s.Insert(entity.New(3, 1), Payload{Ordinal: 2}))

			assert.Equal(1, s.Len())
			assert.False(s.Contains(old))
			assert.True(s.Contains(entity.New(3, 1)))
			if kind.HasValues() {
				p, _ := s.Get(entity.New(3, 1))
				assert.Equal(uint64(2), p.Ordinal)
			}
		})
	}
}

func TestDenseVecSwapRemove(t *testing.T) {
	assert := assert.New(t)
	s := NewDenseVec(0)

	for i := 0; i < 10; i++ {
		assert.Nil(s.Insert(entity.New(uint32(i), 0), Payload{Ordinal: uint64(i * 100)}))
	}
	for _, i := range []uint32{0, 9, 4, 5} {
		assert.True(s.Remove(entity.New(i, 0)))
	}
	assert.Equal(6, s.Len())

	for _, i := range []uint32{1, 2, 3, 6, 7, 8} {
		p, ok := s.Get(entity.New(i, 0))
		assert.True(ok)
		assert.Equal(uint64(i*100), p.Ordinal)
	}
	for _, i := range []uint32{0, 4, 5, 9} {
		assert.False(s.Contains(entity.New(i, 0)))
	}
}

func TestBTreeOrdered(t *testing.T) {
	assert := assert.New(t)
	s := NewBTree()

	for _, i := range []uint32{9, 3, 7, 1, 5} {
		assert.Nil(s.Insert(entity.New(i, 0), Payload{Ordinal: uint64(i)}))
	}
	var got []uint32
	for e := range s.All() {
		got = append(got, e.Index())
	}
	assert.Equal([]uint32{1, 3, 5, 7, 9}, got)
}

func TestNullHasNoPayload(t *testing.T) {
	assert := assert.New(t)
	s := NewNull(4)
	e := entity.New(2, 0)

	assert.Nil(s.Insert(e, Payload{Ordinal: 99}))
	p, ok := s.Get(e)
	assert.True(ok)
	assert.Equal(Payload{}, p)
	assert.True(s.Has(2))
	assert.False(s.Has(1))

	for _, p := range s.All() {
		assert.Nil(p)
	}
}

func TestKind(t *testing.T) {
	assert := assert.New(t)
	names := make([]string, 0, len(Kinds))
	for _, kind := range Kinds {
		names = append(names, kind.String())
	}
	assert.Equal([]string{"Vec", "DenseVec", "BTree", "HashMap", "Null"}, names)
	assert.False(KindNull.HasValues())
	assert.True(KindHashMap.HasValues())
	assert.Equal("Kind(9)", Kind(9).String())
	assert.Panics(func() { New(Kind(9), 1) })
}

func TestStorageIterAllocs(t *testing.T) {
	const N = 10000
	for _, kind := range Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := New(kind, N)
			defer Close(s)
			for i := 0; i < N; i++ {
				assert.Nil(t, s.Insert(entity.New(uint32(i), 0), Payload{Ordinal: uint64(i)}))
			}

			var n int
			allocs := testing.AllocsPerRun(10, func() {
				n = 0
				for range s.All() {
					n++
				}
			})
			assert.Equal(t, N, n)
			// a pass may allocate its closures, never one object per element
			assert.LessOrEqual(t, allocs, float64(8))
		})
	}
}
