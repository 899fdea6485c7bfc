// File: contextlattice.go
// Role: concept-lattice completion for a Context: build over the
// attribute-side closure system, then fill in each node's extent side
// via the context's ExtentOfSet, so every node becomes a full concept
// (A = intent(B), B = extent(A)).
package lattice

import (
	"github.com/go-fca/lattice/concept"
	"github.com/go-fca/lattice/dgraph"
	"github.com/go-fca/lattice/fcontext"
)

// CompleteFull builds the fully transitive concept lattice of ctx, with
// every node completed to a full concept.
func CompleteFull[O comparable, A comparable](ctx *fcontext.Context[O, A], opts ...Option) *dgraph.DAG[concept.Concept[O, A], struct{}] {
	dag := Complete[A](ctx, opts...)

	return completeExtents(dag, ctx)
}

// DiagramFull builds the Hasse diagram of ctx, with every node completed
// to a full concept.
func DiagramFull[O comparable, A comparable](ctx *fcontext.Context[O, A], opts ...Option) *dgraph.DAG[concept.Concept[O, A], struct{}] {
	dag := Diagram[A](ctx, opts...)

	return completeExtents(dag, ctx)
}

func completeExtents[O comparable, A comparable](dag *dgraph.DAG[concept.Concept[A, A], struct{}], ctx *fcontext.Context[O, A]) *dgraph.DAG[concept.Concept[O, A], struct{}] {
	out := dgraph.New[concept.Concept[O, A], struct{}]()
	for _, id := range dag.Nodes() {
		c, _ := dag.Content(id)
		intent, _ := c.Intent()
		extent := ctx.ExtentOfSet(intent)
		_ = out.AddNode(id, concept.Full(extent, intent))
	}
	for _, e := range dag.Edges() {
		_, _ = out.AddEdge(e.From, e.To, struct{}{})
	}

	full, err := dgraph.AsDAG(out)
	if err != nil {
		// Copies the already-acyclic dag edge-for-edge; a cycle here
		// would mean dag.Edges()/AsDAG disagree with each other.
		panic("lattice: concept completion introduced a cycle")
	}

	return full
}
