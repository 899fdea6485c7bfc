package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-fca/lattice/fcontext"
	"github.com/go-fca/lattice/implication"
	"github.com/go-fca/lattice/lattice"
	"github.com/go-fca/lattice/order"
)

func intLess(a, b int) bool   { return a < b }
func runeLess(a, b rune) bool { return a < b }
func intID(o int) string      { return string(rune('0' + o)) }
func runeID(a rune) string    { return string(a) }

func buildS1Context(t *testing.T) *fcontext.Context[int, rune] {
	t.Helper()
	ctx := fcontext.New[int, rune](intLess, runeLess, intID, runeID)
	for _, o := range []int{1, 2, 3, 4} {
		require.True(t, ctx.AddObservation(o))
	}
	for _, a := range []rune{'a', 'b', 'c', 'd', 'e'} {
		require.True(t, ctx.AddAttribute(a))
	}
	rel := map[int][]rune{
		1: {'a', 'c'},
		2: {'a', 'b'},
		3: {'b', 'd', 'e'},
		4: {'c', 'e'},
	}
	for o, attrs := range rel {
		for _, a := range attrs {
			require.True(t, ctx.AddRelation(o, a))
		}
	}

	return ctx
}

func TestComplete_S1_SevenNodes(t *testing.T) {
	ctx := buildS1Context(t)
	dag := lattice.CompleteFull[int, rune](ctx)
	assert.Equal(t, 7, dag.NodeCount())
}

func TestDiagram_EqualsTransitiveReductionOfComplete(t *testing.T) {
	ctx := buildS1Context(t)

	complete := lattice.CompleteFull[int, rune](ctx)
	diagram := lattice.DiagramFull[int, rune](ctx)

	completeEdgesBefore := complete.EdgeCount()
	removed := complete.TransitiveReduction()
	assert.Greater(t, removed, 0)
	assert.Equal(t, diagram.EdgeCount(), complete.EdgeCount(),
		"diagramLattice must equal transitiveReduction(completeLattice) as labeled graphs")
	assert.Less(t, complete.EdgeCount(), completeEdgesBefore)
}

func buildS3Chain(t *testing.T) *implication.System[rune] {
	t.Helper()
	sys := implication.New[rune](runeLess, runeID)
	add := func(p, c rune) {
		require.True(t, sys.AddRule(order.NewSetFrom(runeLess, p), order.NewSetFrom(runeLess, c)))
	}
	add('a', 'b')
	add('b', 'c')
	add('c', 'd')

	return sys
}

func TestComplete_S3_ChainHeightFive(t *testing.T) {
	sys := buildS3Chain(t)
	dag := lattice.Complete[rune](sys)
	assert.Equal(t, 5, dag.NodeCount())

	// A 5-element chain is totally ordered: every pair is comparable, so
	// completeLattice has C(5,2) = 10 edges.
	assert.Equal(t, 10, dag.EdgeCount())

	topo := dag.TopologicalSort()
	assert.Len(t, topo, 5)
}

func TestDiagram_S3_ChainHasFourCovers(t *testing.T) {
	sys := buildS3Chain(t)
	dag := lattice.Diagram[rune](sys)
	assert.Equal(t, 5, dag.NodeCount())
	assert.Equal(t, 4, dag.EdgeCount(), "a 5-element chain has exactly 4 covering edges")
}
