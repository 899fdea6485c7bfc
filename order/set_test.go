package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-fca/lattice/order"
)

func intLess(a, b int) bool { return a < b }

func TestSet_BasicMembership(t *testing.T) {
	s := order.NewSetFrom(intLess, 3, 1, 2)
	require.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(5))
	assert.Equal(t, []int{1, 2, 3}, s.Elements())
}

func TestSet_AddRemoveIdempotent(t *testing.T) {
	s := order.NewSet(intLess)
	assert.True(t, s.Add(1))
	assert.False(t, s.Add(1)) // already present
	assert.True(t, s.Remove(1))
	assert.False(t, s.Remove(1)) // already absent
	assert.True(t, s.IsEmpty())
}

func TestSet_FirstLast(t *testing.T) {
	s := order.NewSetFrom(intLess, 5, 1, 9, 3)
	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, 1, first)

	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, 9, last)

	empty := order.NewSet(intLess)
	_, ok = empty.First()
	assert.False(t, ok)
}

func TestSet_SetOps(t *testing.T) {
	a := order.NewSetFrom(intLess, 1, 2, 3)
	b := order.NewSetFrom(intLess, 2, 3, 4)

	assert.Equal(t, []int{1, 2, 3, 4}, a.Union(b).Elements())
	assert.Equal(t, []int{2, 3}, a.Intersect(b).Elements())
	assert.Equal(t, []int{1}, a.Diff(b).Elements())
	assert.Equal(t, []int{1, 4}, a.SymmetricDiff(b).Elements())

	assert.True(t, order.NewSetFrom(intLess, 1, 2).SubsetOf(a))
	assert.False(t, b.SubsetOf(a))
}

func TestSet_Equal(t *testing.T) {
	a := order.NewSetFrom(intLess, 1, 2, 3)
	b := order.NewSetFrom(intLess, 3, 2, 1)
	c := order.NewSetFrom(intLess, 1, 2)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestSet_CompareLectic(t *testing.T) {
	// Universe 1<2<3<4<5. {1,3} vs {1,4}: symmetric diff {3,4}, least is 3,
	// which belongs to the first set => first set is lectically LARGER.
	s1 := order.NewSetFrom(intLess, 1, 3)
	s2 := order.NewSetFrom(intLess, 1, 4)
	assert.Equal(t, 1, s1.CompareLectic(s2))
	assert.Equal(t, -1, s2.CompareLectic(s1))

	assert.Equal(t, 0, s1.CompareLectic(s1.Clone()))
}

func TestSet_Clone_Independent(t *testing.T) {
	a := order.NewSetFrom(intLess, 1, 2)
	b := a.Clone()
	b.Add(3)
	assert.False(t, a.Contains(3))
	assert.True(t, b.Contains(3))
}
