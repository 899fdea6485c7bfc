// File: diagram.go
// Role: diagramLattice, the Bordat adaptation: a worklist of closed sets,
// each popped once to compute its immediate successors (covers) by
// partitioning elements \ X under the map e -> cl(X ∪ {e}) and keeping
// the minimal closures, producing the Hasse diagram directly with no
// transitive-reduction post-pass.
package lattice

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/go-fca/lattice/closure"
	"github.com/go-fca/lattice/concept"
	"github.com/go-fca/lattice/dgraph"
	"github.com/go-fca/lattice/order"
)

// Diagram builds the Hasse diagram of sys's concept lattice directly.
func Diagram[E any](sys closure.System[E], opts ...Option) *dgraph.DAG[concept.Concept[E, E], struct{}] {
	o := buildOptions(opts)
	less := sys.Less()

	bottom := sys.Closure(order.NewSet(less))
	bottomKey := canonicalKey(sys, bottom)

	g := dgraph.New[concept.Concept[E, E], struct{}]()
	_ = g.AddNode(bottomKey, concept.IntentOnly[E, E](bottom))

	seen := map[string]struct{}{bottomKey: {}}
	worklist := []*order.Set[E]{bottom}
	visited := 0

	for len(worklist) > 0 {
		x := worklist[0]
		worklist = worklist[1:]
		xKey := canonicalKey(sys, x)
		visited++

		// Partition elements \ X by the closure they induce; the minimal
		// distinct closures are the covers of X.
		covers := make(map[string]*order.Set[E])
		for _, e := range sys.Elements().Elements() {
			if x.Contains(e) {
				continue
			}
			candidate := x.Clone()
			candidate.Add(e)
			y := sys.Closure(candidate)
			yKey := canonicalKey(sys, y)
			if _, ok := covers[yKey]; !ok {
				covers[yKey] = y
			}
		}

		// A closure strictly containing another candidate lies above that
		// candidate, not directly above X, so it is not a cover.
		for yKey, y := range covers {
			for zKey, z := range covers {
				if zKey != yKey && z.SubsetOf(y) {
					delete(covers, yKey)

					break
				}
			}
		}

		for yKey, y := range covers {
			if _, ok := seen[yKey]; !ok {
				seen[yKey] = struct{}{}
				if err := g.AddNode(yKey, concept.IntentOnly[E, E](y)); err != nil {
					panic(fmt.Sprintf("lattice: duplicate closed-set key %q: %v", yKey, err))
				}
				worklist = append(worklist, y)
			}
			_, _ = g.AddEdge(xKey, yKey, struct{}{})
		}
	}

	o.logger.Debug("diagramLattice: worklist drained", zap.Int("concepts", visited))

	dag, err := dgraph.AsDAG(g)
	if err != nil {
		// Cover edges only ever point from a closed set to a strictly
		// larger one, so a cycle here is unreachable for a correct
		// closure operator.
		panic(fmt.Sprintf("lattice: diagramLattice produced a cycle: %v", err))
	}

	return dag
}
