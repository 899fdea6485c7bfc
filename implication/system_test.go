package implication_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-fca/lattice/closure"
	"github.com/go-fca/lattice/implication"
	"github.com/go-fca/lattice/order"
)

func runeLess(a, b rune) bool { return a < b }
func runeID(a rune) string    { return string(a) }

func buildS3(t *testing.T) *implication.System[rune] {
	t.Helper()
	sys := implication.New[rune](runeLess, runeID)

	add := func(premise, conclusion rune) {
		ok := sys.AddRule(order.NewSetFrom(runeLess, premise), order.NewSetFrom(runeLess, conclusion))
		require.True(t, ok)
	}
	add('a', 'b')
	add('b', 'c')
	add('c', 'd')

	return sys
}

func TestSystem_S3_ChainedImplications(t *testing.T) {
	sys := buildS3(t)

	closA := sys.Closure(order.NewSetFrom(runeLess, 'a'))
	assert.ElementsMatch(t, []rune{'a', 'b', 'c', 'd'}, closA.Elements())

	closB := sys.Closure(order.NewSetFrom(runeLess, 'b'))
	assert.ElementsMatch(t, []rune{'b', 'c', 'd'}, closB.Elements())
}

func TestSystem_ClosureIsExtensiveMonotoneIdempotent(t *testing.T) {
	sys := buildS3(t)

	s := order.NewSetFrom(runeLess, 'b')
	cl1 := sys.Closure(s)
	assert.True(t, s.SubsetOf(cl1), "extensive")

	cl2 := sys.Closure(cl1)
	assert.True(t, cl1.Equal(cl2), "idempotent")

	t2 := order.NewSetFrom(runeLess, 'a', 'b')
	assert.True(t, sys.Closure(s).SubsetOf(sys.Closure(t2)), "monotone")
}

func TestSystem_AddRule_RejectsExactDuplicate(t *testing.T) {
	sys := implication.New[rune](runeLess, runeID)
	p, c := order.NewSetFrom(runeLess, 'x'), order.NewSetFrom(runeLess, 'y')

	assert.True(t, sys.AddRule(p, c))
	assert.False(t, sys.AddRule(p, c))
}

func TestSystem_NormalForms(t *testing.T) {
	sys := buildS3(t)
	assert.True(t, sys.IsUnary())
	assert.True(t, sys.IsBinary())
	assert.True(t, sys.IsProper())
}

func TestSystem_NextClosureEnumeratesAll(t *testing.T) {
	sys := buildS3(t)
	all := closure.AllClosures[rune](sys)
	// The closed sets of the chain a->b->c->d are exactly the tails:
	// ∅, {d}, {c,d}, {b,c,d} and {a,b,c,d} (top).
	assert.Len(t, all, 5)
	assert.True(t, all[0].IsEmpty())
}
