// File: precedence.go
// Role: the precedence graph and reducible-element detection built on
// top of it via strongly-connected-component collapsing.
package closure

import (
	"github.com/go-fca/lattice/dgraph"
	"github.com/go-fca/lattice/order"
)

// PrecedenceGraph builds the graph whose nodes are sys.Elements() and
// whose edge a -> b exists iff a ∈ cl({b}) ∧ a ≠ b.
//
// Complexity: O(|E|) closures (one per candidate b) plus O(|E|^2)
// membership checks.
func PrecedenceGraph[E any](sys System[E]) *dgraph.Graph[E, struct{}] {
	less := sys.Less()
	elems := sys.Elements().Elements()

	g := dgraph.New[E, struct{}]()
	for _, e := range elems {
		_ = g.AddNode(sys.ID(e), e)
	}

	for _, b := range elems {
		clB := sys.Closure(order.NewSetFrom(less, b))
		for _, a := range elems {
			if sys.ID(a) == sys.ID(b) {
				continue
			}
			if clB.Contains(a) {
				_, _ = g.AddEdge(sys.ID(a), sys.ID(b), struct{}{})
			}
		}
	}

	return g
}

// Reduction describes how a reducible element collapses: its closure
// equals the closure of Equivalence, so it can be dropped without
// changing the lattice up to isomorphism on the surviving elements.
type Reduction[E any] struct {
	Equivalence *order.Set[E]
}

// ReducibleElements runs a four-step algorithm:
//
//  1. Build the precedence graph.
//  2. Collapse each strongly connected component of size > 1: its
//     minimum element (by sys.Less) survives as representative, every
//     other member is reducible to the singleton {representative}.
//  3. If, after removing the step-2 casualties, exactly one sink remains
//     in the (survivor-induced) precedence graph and its closure equals
//     cl(∅), it is reducible to ∅. Multiple remaining sinks are
//     deliberately left untouched.
//  4. For each remaining node x with >= 2 surviving predecessors P, if
//     cl({x}) = cl(P), x is reducible to P.
//
// The returned map is keyed by sys.ID of the reducible element.
func ReducibleElements[E any](sys System[E]) map[string]Reduction[E] {
	less := sys.Less()
	elemByID := make(map[string]E)
	for _, e := range sys.Elements().Elements() {
		elemByID[sys.ID(e)] = e
	}

	g := PrecedenceGraph(sys)
	reducible := make(map[string]Reduction[E])

	survivors := make(map[string]struct{}, len(elemByID))
	for id := range elemByID {
		survivors[id] = struct{}{}
	}

	// Step 2: collapse SCCs of size > 1.
	cond := g.StronglyConnectedComponents()
	for _, compID := range cond.Nodes() {
		members, _ := cond.Content(compID)
		ids := members.Elements()
		if len(ids) <= 1 {
			continue
		}

		repID, repElem := ids[0], elemByID[ids[0]]
		for _, id := range ids[1:] {
			e := elemByID[id]
			if less(e, repElem) {
				repID, repElem = id, e
			}
		}

		equiv := order.NewSetFrom(less, repElem)
		for _, id := range ids {
			if id == repID {
				continue
			}
			reducible[id] = Reduction[E]{Equivalence: equiv}
			delete(survivors, id)
		}
	}

	// Step 3: a single surviving sink whose closure is cl(∅) is
	// equivalent to ∅.
	survivorIDs := make([]string, 0, len(survivors))
	for id := range survivors {
		survivorIDs = append(survivorIDs, id)
	}
	subG := g.Subgraph(survivorIDs)
	if sinks := subG.Sinks(); len(sinks) == 1 {
		empty := order.NewSet(less)
		clSink := sys.Closure(order.NewSetFrom(less, elemByID[sinks[0]]))
		if clSink.Equal(sys.Closure(empty)) {
			reducible[sinks[0]] = Reduction[E]{Equivalence: empty}
			delete(survivors, sinks[0])
		}
	}

	// Step 4: nodes with >= 2 surviving predecessors whose closure
	// matches the closure of those predecessors collapse to them.
	for id := range survivors {
		preds := subG.Predecessors(id)

		var predElems []E
		for _, p := range preds {
			if _, ok := survivors[p]; ok {
				predElems = append(predElems, elemByID[p])
			}
		}
		if len(predElems) < 2 {
			continue
		}

		clX := sys.Closure(order.NewSetFrom(less, elemByID[id]))
		predSet := order.NewSetFrom(less, predElems...)
		clP := sys.Closure(predSet)
		if clX.Equal(clP) {
			reducible[id] = Reduction[E]{Equivalence: predSet}
		}
	}

	return reducible
}
