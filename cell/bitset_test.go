package cell_test

import (
	"testing"

	"github.com/katalvlaran/collapse/cell"
	"github.com/stretchr/testify/assert"
)

func TestBitset_SetHasClear(t *testing.T) {
	b := cell.NewBitset(70)
	assert.True(t, b.IsEmpty())

	b.Set(0)
	b.Set(63)
	b.Set(64)
	b.Set(69)
	assert.True(t, b.Has(0))
	assert.True(t, b.Has(63))
	assert.True(t, b.Has(64))
	assert.True(t, b.Has(69))
	assert.False(t, b.Has(1))
	assert.Equal(t, 4, b.Count())

	b.Clear(64)
	assert.False(t, b.Has(64))
	assert.Equal(t, 3, b.Count())
}

func TestBitset_FullBitsetMasksTail(t *testing.T) {
	b := cell.FullBitset(70)
	assert.Equal(t, 70, b.Count())
	assert.Equal(t, 70, b.Len())
}

func TestBitset_AndOr(t *testing.T) {
	a := cell.NewBitset(10)
	a.Set(1)
	a.Set(2)
	a.Set(3)

	b := cell.NewBitset(10)
	b.Set(2)
	b.Set(3)
	b.Set(4)

	and := a.And(b)
	assert.Equal(t, []int{2, 3}, and.Slice())

	or := a.Or(b)
	assert.Equal(t, []int{1, 2, 3, 4}, or.Slice())
}

func TestBitset_CloneIsIndependent(t *testing.T) {
	a := cell.NewBitset(10)
	a.Set(1)
	b := a.Clone()
	b.Set(2)
	assert.False(t, a.Has(2))
	assert.True(t, b.Has(2))
}

func TestBitset_Equal(t *testing.T) {
	a := cell.NewBitset(128)
	b := cell.NewBitset(128)
	assert.True(t, a.Equal(b))
	a.Set(100)
	assert.False(t, a.Equal(b))
	b.Set(100)
	assert.True(t, a.Equal(b))
}

func TestBitset_ForEachOrder(t *testing.T) {
	b := cell.NewBitset(200)
	b.Set(150)
	b.Set(5)
	b.Set(64)

	var got []int
	b.ForEach(func(i int) { got = append(got, i) })
	assert.Equal(t, []int{5, 64, 150}, got)
}
