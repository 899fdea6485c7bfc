// File: complete.go
// Role: completeLattice: enumerate every closed set via Next-Closure,
// then add an edge c -> d for every strict-subset pair of intents.
// Because "ordered by intent inclusion" is itself transitive, the
// resulting graph is transitively closed with no extra pass.
package lattice

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/go-fca/lattice/closure"
	"github.com/go-fca/lattice/concept"
	"github.com/go-fca/lattice/dgraph"
)

// Complete builds the fully transitive concept lattice of sys. Edge
// direction is from smaller intent to larger intent, fixed and
// documented here rather than left implicit.
func Complete[E any](sys closure.System[E], opts ...Option) *dgraph.DAG[concept.Concept[E, E], struct{}] {
	o := buildOptions(opts)

	closures := closure.AllClosures[E](sys)
	o.logger.Debug("completeLattice: enumerated closed sets", zap.Int("count", len(closures)))

	g := dgraph.New[concept.Concept[E, E], struct{}]()
	keys := make([]string, len(closures))
	for i, cl := range closures {
		keys[i] = canonicalKey(sys, cl)
		if err := g.AddNode(keys[i], concept.IntentOnly[E, E](cl)); err != nil {
			// AllClosures never repeats a closed set, so a duplicate key
			// here would indicate two distinct closed sets colliding under
			// canonicalKey — an ID-stability bug in sys.
			panic(fmt.Sprintf("lattice: duplicate closed-set key %q: %v", keys[i], err))
		}
	}

	for i := range closures {
		for j := range closures {
			if i == j {
				continue
			}
			if closures[i].SubsetOf(closures[j]) && !closures[i].Equal(closures[j]) {
				_, _ = g.AddEdge(keys[i], keys[j], struct{}{})
			}
		}
	}

	dag, err := dgraph.AsDAG(g)
	if err != nil {
		// Strict subset is a strict partial order; a cycle here would
		// mean SubsetOf/Equal disagree with each other, not a valid
		// runtime condition.
		panic(fmt.Sprintf("lattice: completeLattice produced a cycle: %v", err))
	}

	return dag
}
